package frame

import "image/color"

// Pixel is the colour of a single cell. The zero value is transparent black,
// which is what a freshly constructed Frame holds before it is filled.
type Pixel struct {
	R, G, B, A uint8
}

// NewPixel returns an opaque pixel, channels are clamped to [0, 255].
func NewPixel(red, green, blue int) Pixel {
	return NewPixelAlpha(red, green, blue, 255)
}

func NewPixelAlpha(red, green, blue, alpha int) Pixel {
	return Pixel{
		R: clampChannel(red),
		G: clampChannel(green),
		B: clampChannel(blue),
		A: clampChannel(alpha),
	}
}

func Black() Pixel {
	return Pixel{0, 0, 0, 255}
}

func White() Pixel {
	return Pixel{255, 255, 255, 255}
}

func (pixel Pixel) Red() int   { return int(pixel.R) }
func (pixel Pixel) Green() int { return int(pixel.G) }
func (pixel Pixel) Blue() int  { return int(pixel.B) }
func (pixel Pixel) Alpha() int { return int(pixel.A) }

// RGBA implements color.Color. Pixel channels are stored unpremultiplied,
// the conversion matches color.NRGBA.
func (pixel Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: pixel.A}.RGBA()
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
