package core

import (
	"strings"
	"testing"
)

func lines(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetColor(p[0], p[1], '█', ColorRed)
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
	if strings.ContainsRune(s.String(), '█') {
		t.Error("out-of-bounds writes leaked into the buffer")
	}
}

func TestScreenColorsAndClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColor(1, 1, "██", ColorOrange)

	for x := 1; x <= 2; x++ {
		if c := s.GetCell(x, 1); c.Rune != '█' || c.Color != ColorOrange {
			t.Errorf("GetCell(%d, 1) = %+v, expected orange block", x, c)
		}
	}
	if s.GetCell(0, 1).Color != ColorDefault {
		t.Error("neighbouring cell picked up the color")
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blankCell {
		t.Errorf("after Clear GetCell(1, 1) = %+v", c)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(5, 0, "SCORE")
	if got := s.String(); got != "     SCO" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	tests := []struct {
		width int
		text  string
		want  string
	}{
		{10, "PAUSED", "  PAUSED  "},
		{9, "PAUSED", " PAUSED  "},
		{10, "██", "    ██    "},
	}

	for _, tc := range tests {
		s := NewScreen(tc.width, 1)
		s.DrawTextCentered(0, tc.text)
		if got := s.String(); got != tc.want {
			t.Errorf("width %d: %q, expected %q", tc.width, got, tc.want)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, line := range lines(s) {
		if line != want[y] {
			t.Errorf("row %d = %q, expected %q", y, line, want[y])
		}
	}
}

func TestScreenFillRectOverwrites(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 1, "#####")
	s.FillRect(NewRect(1, 0, 3, 3), ' ')

	if got := lines(s)[1]; got != "#   #" {
		t.Errorf("row 1 = %q, expected %q", got, "#   #")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawText(0, 0, "LINES: 12")

	s.Resize(5, 2)
	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 5x2", s.Width(), s.Height())
	}
	if got := lines(s)[0]; got != "LINES" {
		t.Errorf("row 0 after shrink = %q", got)
	}

	s.Resize(12, 3)
	if got := lines(s)[0]; got != "LINES       " {
		t.Errorf("row 0 after grow = %q", got)
	}

	s.Resize(12, 3)
	if got := len(lines(s)); got != 3 {
		t.Errorf("same-size resize changed the row count to %d", got)
	}
}
