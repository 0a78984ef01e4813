package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColor(5, 5, 'A', ColorCyan)

	c := s.GetCell(5, 5)
	if c.Rune != 'A' || c.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected A/cyan", c)
	}

	s.Tint(5, 5, ColorRed)
	if s.GetCell(5, 5).Color != ColorRed || s.Get(5, 5) != 'A' {
		t.Error("Tint should change color only")
	}

	// Out of bounds writes are ignored and reads return blank
	s.SetColor(-1, 0, 'X', ColorRed)
	s.SetColor(0, 100, 'X', ColorRed)
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextClipsAndCounts(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColor(8, 0, "Hello", ColorGreen)
	if s.Get(8, 0) != 'H' || s.Get(9, 0) != 'e' {
		t.Error("text should be clipped at the right edge")
	}

	// Multi-byte runes occupy one cell each
	s.DrawText(0, 1, "♥♥")
	if s.Get(0, 1) != '♥' || s.Get(1, 1) != '♥' || s.Get(2, 1) != ' ' {
		t.Errorf("row 1 = %q, expected two hearts", s.Row(1))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCenteredColor(1, "Hi", ColorYellow)
	if s.Get(9, 1) != 'H' || s.Get(10, 1) != 'i' {
		t.Errorf("row = %q, expected Hi centered", s.Row(1))
	}
}

func TestScreenDrawBoxColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBoxColor(NewRect(1, 1, 5, 4), ColorMagenta)

	corners := map[[2]int]rune{{1, 1}: '┌', {5, 1}: '┐', {1, 4}: '└', {5, 4}: '┘'}
	for pos, r := range corners {
		c := s.GetCell(pos[0], pos[1])
		if c.Rune != r || c.Color != ColorMagenta {
			t.Errorf("corner %v = %+v, expected %q magenta", pos, c, r)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("edges should be drawn")
	}
}

func TestScreenShift(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ABCD")
	s.Shift(1, 1)

	if s.Row(0) != "    " {
		t.Errorf("row 0 = %q, expected blank after shift", s.Row(0))
	}
	if s.Row(1) != " ABC" {
		t.Errorf("row 1 = %q, expected \" ABC\"", s.Row(1))
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.Resize(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, expected 4x2", s.Width(), s.Height())
	}
	if s.Row(0) != "Hell" {
		t.Errorf("row 0 = %q, expected Hell", s.Row(0))
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "AAA")
	s.DrawText(0, 1, "BBB")
	if got := s.String(); got != "AAA\nBBB" {
		t.Errorf("String() = %q", got)
	}
	if s.Row(5) != "   " {
		t.Error("out of range row should be spaces")
	}
}

func TestScreenDrawMessageBox(t *testing.T) {
	s := NewScreen(40, 11)
	s.DrawMessageBox("PAUSED", ColorCyan, "Press P to resume")

	// 17-rune line + 4 padding = 21 wide, 5 tall, centered
	if s.Get(9, 3) != '┌' || s.Get(29, 7) != '┘' {
		t.Errorf("box corners misplaced:\n%s", s.String())
	}
	if got := s.Row(4); !strings.Contains(got, "PAUSED") {
		t.Errorf("title row = %q", got)
	}
	if s.GetCell(17, 4).Color != ColorCyan {
		t.Error("title should use the box color")
	}
	if got := s.Row(6); !strings.Contains(got, "Press P to resume") {
		t.Errorf("subtitle row = %q", got)
	}
}
