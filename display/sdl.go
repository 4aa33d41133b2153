package display

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"vsasakiv/lifeframe/frame"
)

// SDL uploads the packed buffer unchanged into an SDL2 texture.
type SDL struct {
	Scale int
}

func (backend SDL) Show(bmp frame.Bitmap, title string) error {
	format, err := textureFormat(bmp.Format)
	if err != nil {
		return err
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	scale := int32(max(backend.Scale, 1))
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(bmp.Width)*scale, int32(bmp.Height)*scale, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("sdl window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("sdl renderer: %w", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(format, sdl.TEXTUREACCESS_STATIC, int32(bmp.Width), int32(bmp.Height))
	if err != nil {
		return fmt.Errorf("sdl texture: %w", err)
	}
	defer texture.Destroy()

	if err := texture.Update(nil, unsafe.Pointer(&bmp.Pix[0]), bmp.Stride); err != nil {
		return fmt.Errorf("sdl texture upload: %w", err)
	}

	for {
		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		// redraw on every event until the window is closed
		if _, quit := sdl.WaitEvent().(*sdl.QuitEvent); quit {
			return nil
		}
	}
}

// textureFormat picks the SDL format whose memory layout is blue, green, red
// with the given pixel width. 4 byte pixels assume a little-endian host,
// where RGB888 is stored as B, G, R, X.
func textureFormat(format frame.PixelFormat) (uint32, error) {
	switch format.BytesPerPixel() {
	case 3:
		return uint32(sdl.PIXELFORMAT_BGR24), nil
	case 4:
		return uint32(sdl.PIXELFORMAT_RGB888), nil
	}
	return 0, fmt.Errorf("no SDL texture format for %s: %w", format, frame.ErrInvalidArgument)
}
