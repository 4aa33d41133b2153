package frame

import (
	"fmt"
	"strings"
)

// PixelFormat describes the layout of one packed pixel. Channel order is
// always blue, green, red; a fourth byte, when present, is left untouched.
type PixelFormat struct {
	Name         string
	BitsPerPixel int
}

var (
	BGR24  = PixelFormat{Name: "bgr24", BitsPerPixel: 24}
	BGRA32 = PixelFormat{Name: "bgra32", BitsPerPixel: 32}
)

// minimum bytes per pixel needed to hold blue, green and red
const packedChannels = 3

func (format PixelFormat) BytesPerPixel() int {
	return format.BitsPerPixel / 8
}

func (format PixelFormat) String() string {
	return format.Name
}

// ParseFormat maps a format name as given on the command line to a
// PixelFormat.
func ParseFormat(name string) (PixelFormat, error) {
	switch strings.ToLower(name) {
	case BGR24.Name:
		return BGR24, nil
	case BGRA32.Name:
		return BGRA32, nil
	}
	return PixelFormat{}, fmt.Errorf("unknown pixel format %q: %w", name, ErrInvalidArgument)
}

func (format PixelFormat) validate() error {
	if format.BytesPerPixel() < packedChannels {
		return fmt.Errorf("pixel format %q has %d bits per pixel, need at least %d: %w",
			format.Name, format.BitsPerPixel, packedChannels*8, ErrInvalidArgument)
	}
	return nil
}
