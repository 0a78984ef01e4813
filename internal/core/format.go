package core

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatNumber renders an integer with thousands separators for HUDs and scoreboards.
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}
