package frame

import (
	"fmt"
	"image"
	"image/color"
	"sync"
)

// DPI is declared for both axes of every packed bitmap.
const DPI = 96.0

// Frame owns a fixed width x height grid of cells and the packed byte buffer
// derived from it. The buffer is rebuilt in full on every pack.
type Frame struct {
	format    PixelFormat
	width     int
	height    int
	cells     []Pixel
	pixelData []uint8
}

// FillPolicy computes the cell at (x, y). Policies are called once per cell
// and must not depend on other cells of the frame being filled.
type FillPolicy func(x, y int) Pixel

// Bitmap is the packed form of a frame handed to a display surface. Pix
// aliases the frame's buffer and is overwritten by the next pack.
type Bitmap struct {
	Pix    []uint8
	Width  int
	Height int
	Stride int
	DpiX   float64
	DpiY   float64
	Format PixelFormat
}

func New(width, height int, format PixelFormat) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame size %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if err := format.validate(); err != nil {
		return nil, err
	}

	frame := Frame{
		format: format,
		width:  width,
		height: height,
		cells:  make([]Pixel, width*height),
	}
	frame.pixelData = make([]uint8, width*height*format.BytesPerPixel())
	return &frame, nil
}

func (frame *Frame) Width() int          { return frame.width }
func (frame *Frame) Height() int         { return frame.height }
func (frame *Frame) Format() PixelFormat { return frame.format }

// Stride is the number of bytes between vertically adjacent pixels.
func (frame *Frame) Stride() int {
	return frame.width * frame.format.BytesPerPixel()
}

// Cell returns the cell at (x, y) and panics with an *IndexError outside
// the grid.
func (frame *Frame) Cell(x, y int) Pixel {
	CheckBounds(x, y, frame.width, frame.height)
	return frame.cells[y*frame.width+x]
}

func (frame *Frame) SetCell(x, y int, pixel Pixel) {
	CheckBounds(x, y, frame.width, frame.height)
	frame.cells[y*frame.width+x] = pixel
}

// FillCells stores policy(x, y) for every cell, row by row.
func (frame *Frame) FillCells(policy FillPolicy) {
	frame.fillRows(0, frame.height, policy)
}

// FillCellsParallel splits the rows into bands, one goroutine per band, and
// asks policyFor for a separate policy for each worker. It returns once every
// band is filled.
func (frame *Frame) FillCellsParallel(threads int, policyFor func(worker int) FillPolicy) {
	bands := rowBands(frame.height, threads)
	if len(bands) == 1 {
		frame.fillRows(0, frame.height, policyFor(0))
		return
	}

	var wg sync.WaitGroup
	for worker, band := range bands {
		wg.Add(1)
		go func() {
			defer wg.Done()
			frame.fillRows(band.startY, band.endY, policyFor(worker))
		}()
	}
	wg.Wait()
}

func (frame *Frame) fillRows(startY, endY int, policy FillPolicy) {
	for y := startY; y < endY; y++ {
		row := frame.cells[y*frame.width : (y+1)*frame.width]
		for x := range row {
			row[x] = policy(x, y)
		}
	}
}

// ToPackedBuffer recomputes the whole buffer from the grid and returns it as
// a Bitmap. Each pixel is written blue, green, red; any further byte of the
// format is never written.
func (frame *Frame) ToPackedBuffer() Bitmap {
	frame.pack(0, len(frame.pixelData))
	return frame.bitmap()
}

// ToPackedBufferParallel produces the same buffer as ToPackedBuffer with row
// bands packed concurrently.
func (frame *Frame) ToPackedBufferParallel(threads int) Bitmap {
	bands := rowBands(frame.height, threads)
	if len(bands) == 1 {
		return frame.ToPackedBuffer()
	}

	stride := frame.Stride()
	var wg sync.WaitGroup
	for _, band := range bands {
		wg.Add(1)
		go func() {
			defer wg.Done()
			frame.pack(band.startY*stride, band.endY*stride)
		}()
	}
	wg.Wait()
	return frame.bitmap()
}

// pack writes the pixels whose first byte lies in [start, end).
func (frame *Frame) pack(start, end int) {
	bytesPerPixel := frame.format.BytesPerPixel()
	for i := start; i < end; i += bytesPerPixel {
		posX := (i / bytesPerPixel) % frame.width
		posY := (i / bytesPerPixel) / frame.width
		pixel := frame.cells[posY*frame.width+posX]
		frame.pixelData[i] = pixel.B
		frame.pixelData[i+1] = pixel.G
		frame.pixelData[i+2] = pixel.R
	}
}

func (frame *Frame) bitmap() Bitmap {
	return Bitmap{
		Pix:    frame.pixelData,
		Width:  frame.width,
		Height: frame.height,
		Stride: frame.Stride(),
		DpiX:   DPI,
		DpiY:   DPI,
		Format: frame.format,
	}
}

func (frame *Frame) ColorModel() color.Model {
	return color.NRGBAModel
}

func (frame *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, frame.width, frame.height)
}

// At implements image.Image, so unlike Cell it returns the zero Pixel
// outside the grid.
func (frame *Frame) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(frame.Bounds())) {
		return Pixel{}
	}
	return frame.cells[y*frame.width+x]
}

type rowBand struct {
	startY, endY int
}

// rowBands divides height rows between threads workers. The last band takes
// whatever does not divide evenly.
func rowBands(height, threads int) []rowBand {
	if threads < 1 {
		threads = 1
	}
	if threads > height {
		threads = height
	}
	bandHeight := height / threads
	bands := make([]rowBand, threads)
	for i := range threads {
		bands[i] = rowBand{startY: i * bandHeight, endY: (i + 1) * bandHeight}
	}
	bands[threads-1].endY = height
	return bands
}
