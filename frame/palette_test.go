package frame

import (
	"errors"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Pixel
	}{
		{"#00ff7f", Pixel{0, 255, 127, 255}},
		{"102030", Pixel{16, 32, 48, 255}},
		{"#FFFFFF", White()},
	}
	for _, tt := range tests {
		have, err := ParseHexColor(tt.in)
		if err != nil || have != tt.want {
			t.Errorf("%q: want %v but have %v, %v", tt.in, tt.want, have, err)
		}
	}
	for _, in := range []string{"zz0000", "#fff", "", "#1234567"} {
		if _, err := ParseHexColor(in); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%q: want ErrInvalidArgument but have %v", in, err)
		}
	}
}

func TestPaletteIsLive(t *testing.T) {
	if !DefaultPalette.IsLive(Black()) {
		t.Error("want black to be live")
	}
	if DefaultPalette.IsLive(White()) {
		t.Error("want white to be dead")
	}
	if DefaultPalette.Color(true) != Black() || DefaultPalette.Color(false) != White() {
		t.Error("want black live cells on white")
	}
}
