package display

import (
	"bytes"
	"errors"
	"testing"

	"vsasakiv/lifeframe/frame"
)

func TestConvertToRGBA(t *testing.T) {
	for _, format := range []frame.PixelFormat{frame.BGR24, frame.BGRA32} {
		f, err := frame.New(2, 2, format)
		if err != nil {
			t.Fatal(err)
		}
		f.SetCell(0, 0, frame.NewPixel(1, 2, 3))
		f.SetCell(1, 0, frame.White())
		f.SetCell(0, 1, frame.Black())
		f.SetCell(1, 1, frame.NewPixel(200, 100, 50))

		dst := make([]byte, 2*2*4)
		ConvertToRGBA(dst, f.ToPackedBuffer())
		want := []byte{
			1, 2, 3, 255, 255, 255, 255, 255,
			0, 0, 0, 255, 200, 100, 50, 255,
		}
		if !bytes.Equal(dst, want) {
			t.Errorf("%s: want %v but have %v", format, want, dst)
		}
	}
}

func TestByName(t *testing.T) {
	if b, err := ByName("ebiten", 2); err != nil || b != (Ebiten{Scale: 2}) {
		t.Errorf("want ebiten backend but have %v, %v", b, err)
	}
	if b, err := ByName("SDL", 1); err != nil || b != (SDL{Scale: 1}) {
		t.Errorf("want sdl backend but have %v, %v", b, err)
	}
	if _, err := ByName("wpf", 1); !errors.Is(err, frame.ErrInvalidArgument) {
		t.Errorf("want ErrInvalidArgument but have %v", err)
	}
}
