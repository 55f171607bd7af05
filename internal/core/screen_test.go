package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("NewScreen(80, 24) = %dx%d", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 80)+"\n", 24), "\n") {
		t.Error("new screen should be blank")
	}
	if s := NewScreen(-1, 3); s.Width() != 0 || s.Height() != 3 {
		t.Errorf("NewScreen(-1, 3) = %dx%d, expected 0x3", s.Width(), s.Height())
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetColor(5, 5, 'X', ColorRed)

	tests := []struct {
		name     string
		x, y     int
		expected Cell
	}{
		{"written", 5, 5, Cell{Rune: 'X', Color: ColorRed}},
		{"untouched", 4, 5, Cell{Rune: ' '}},
		{"left of screen", -1, 0, Cell{Rune: ' '}},
		{"below screen", 0, 10, Cell{Rune: ' '}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.GetCell(tc.x, tc.y); got != tc.expected {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.expected)
			}
		})
	}

	// Out of bounds writes are dropped
	s.SetColor(100, 0, 'A', ColorRed)
	s.SetColor(0, -1, 'A', ColorRed)
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out of bounds SetColor should not write")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorGreen)

	s.Clear()

	for y := range 10 {
		for x := range 10 {
			if cell := s.GetCell(x, y); cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string
	}{
		{"plain", 2, "Hello", "  Hello   "},
		{"clipped right", 8, "Hello", "        He"},
		{"clipped left", -2, "Hello", "llo       "},
		{"multibyte", 0, "•ab", "•ab       "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawTextColor(tc.x, 0, tc.text, ColorYellow)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "[ 3 ]", ColorBrightCyan)

	if got := s.Row(2); got != "       [ 3 ]        " {
		t.Errorf("Row(2) = %q, expected centered text", got)
	}
	if c := s.GetCell(9, 2); c.Color != ColorBrightCyan {
		t.Errorf("centered text color = %v, expected bright cyan", c.Color)
	}
}

func TestScreenDrawEllipse(t *testing.T) {
	s := NewScreen(20, 20)
	s.DrawEllipse(NewRect(2, 2, 8, 8), 'o', ColorBrightCyan)

	if c := s.GetCell(6, 6); c.Rune != 'o' || c.Color != ColorBrightCyan {
		t.Errorf("ellipse center = %+v, expected cyan 'o'", c)
	}
	if c := s.GetCell(2, 2); c.Rune != ' ' {
		t.Error("ellipse bounding box corner should stay empty")
	}

	// Tiny shapes fill their whole box
	s.DrawEllipse(NewRect(15, 15, 1, 2), '*', ColorRed)
	if s.GetCell(15, 15).Rune != '*' || s.GetCell(15, 16).Rune != '*' {
		t.Error("one-cell-wide ellipse should be filled completely")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawTextColor(0, 0, "AAAAA", ColorDefault)
	s.DrawTextColor(0, 1, "BBBBB", ColorRed)
	s.DrawTextColor(0, 2, "CC", ColorGreen)

	if got, expected := s.String(), "AAAAA\nBBBBB\nCC   "; got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if got := NewScreen(4, 0).String(); got != "" {
		t.Errorf("String() of an empty screen = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColor(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.Row(0)) != "" {
		t.Errorf("Resize should clear content, row 0 = %q", s.Row(0))
	}
	if got := s.Row(-1); got != "        " {
		t.Errorf("Row(-1) = %q, expected blank row", got)
	}

	s.Resize(-3, 2)
	if s.Width() != 0 {
		t.Errorf("negative width should clamp to 0, got %d", s.Width())
	}
}
