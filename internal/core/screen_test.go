package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Errorf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColorClips(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColor(2, 3, 'O', ColorRed)

	if c := s.GetCell(2, 3); c.Rune != 'O' || c.Color != ColorRed {
		t.Errorf("GetCell(2, 3) = %+v", c)
	}

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A')
	s.Set(5, 0, 'A')
	s.Set(0, 5, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(99, 99) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(7, 1, "Score", ColorYellow)

	if got := s.Row(1); got != "       Sco" {
		t.Errorf("Row(1) = %q, expected clipped text", got)
	}
	if s.GetCell(8, 1).Color != ColorYellow {
		t.Error("text color not applied")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "ÉTÉ", ColorDefault)

	if got := s.Row(0); got != "    ÉTÉ    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenFillRectAndBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)
	s.FillRect(NewRect(1, 1, 4, 2), '#', ColorGreen)

	expected := strings.Join([]string{
		"┌────┐",
		"│####│",
		"│####│",
		"└────┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
	if s.GetCell(0, 0).Color != ColorGray || s.GetCell(2, 2).Color != ColorGreen {
		t.Error("colors not applied")
	}
}

func TestScreenResizeClears(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("size = %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("resize should clear the screen")
	}
	if got := s.Row(-1); got != "        " {
		t.Errorf("out of range row = %q", got)
	}
}

func TestClampAndHitColors(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}

	if ColorForHits(1) != ColorGreen {
		t.Errorf("ColorForHits(1) = %v", ColorForHits(1))
	}
	if ColorForHits(99) != ColorRed {
		t.Errorf("ColorForHits(99) = %v", ColorForHits(99))
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionLaunch)

	if !f.Has(ActionLeft) || !f.Has(ActionLaunch) || f.Has(ActionRight) {
		t.Errorf("actions = %v", f.Actions)
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionLaunch) {
		t.Error("Clear should reset actions")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
	if ActionLaunch.String() != "Launch" {
		t.Errorf("String() = %q", ActionLaunch.String())
	}
}
