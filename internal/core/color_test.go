package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorBrightYellow, "11"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}

	for _, tt := range tests {
		if got := tt.color.ANSI(); got != tt.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tt.color, got, tt.expected)
		}
	}
}

func TestColorsCoverPalette(t *testing.T) {
	colors := Colors()
	if len(colors) != int(colorCount) {
		t.Fatalf("Colors() returned %d entries, expected %d", len(colors), colorCount)
	}
	if colors[0] != ColorDefault {
		t.Errorf("first color = %d, expected ColorDefault", colors[0])
	}
	for _, c := range colors[1:] {
		if c.ANSI() == "" {
			t.Errorf("Color(%d) has no ANSI code", c)
		}
	}
}
