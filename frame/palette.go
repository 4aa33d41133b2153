package frame

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Palette maps the two cell states of the automaton to colours.
type Palette struct {
	Live Pixel
	Dead Pixel
}

// DefaultPalette draws live cells black on white, the same colours the
// random fill uses.
var DefaultPalette = Palette{Live: Black(), Dead: White()}

// IsLive reports whether pixel has the live colour, ignoring alpha.
func (palette Palette) IsLive(pixel Pixel) bool {
	return pixel.R == palette.Live.R && pixel.G == palette.Live.G && pixel.B == palette.Live.B
}

func (palette Palette) Color(alive bool) Pixel {
	if alive {
		return palette.Live
	}
	return palette.Dead
}

// ParseHexColor reads an opaque colour written as rrggbb, with or without a
// leading '#'.
func ParseHexColor(s string) (Pixel, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return Pixel{}, fmt.Errorf("colour %q is not rrggbb: %w", s, ErrInvalidArgument)
	}
	rgb, err := hex.DecodeString(digits)
	if err != nil {
		return Pixel{}, fmt.Errorf("colour %q: %v: %w", s, err, ErrInvalidArgument)
	}
	return Pixel{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}
