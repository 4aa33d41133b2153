// Package display shows a packed frame.Bitmap in a window.
package display

import (
	"fmt"
	"strings"

	"vsasakiv/lifeframe/frame"
)

// Backend puts a bitmap on screen and returns once the window is closed.
type Backend interface {
	Show(bmp frame.Bitmap, title string) error
}

func ByName(name string, scale int) (Backend, error) {
	switch strings.ToLower(name) {
	case "ebiten", "":
		return Ebiten{Scale: scale}, nil
	case "sdl":
		return SDL{Scale: scale}, nil
	}
	return nil, fmt.Errorf("unknown display backend %q: %w", name, frame.ErrInvalidArgument)
}
