package display

import "vsasakiv/lifeframe/frame"

// ConvertToRGBA expands a packed blue, green, red bitmap into dst as opaque
// RGBA. dst must hold Width*Height*4 bytes.
func ConvertToRGBA(dst []byte, bmp frame.Bitmap) {
	bytesPerPixel := bmp.Format.BytesPerPixel()
	di := 0
	for y := range bmp.Height {
		row := bmp.Pix[y*bmp.Stride : y*bmp.Stride+bmp.Width*bytesPerPixel]
		for si := 0; si < len(row); si += bytesPerPixel {
			dst[di] = row[si+2]
			dst[di+1] = row[si+1]
			dst[di+2] = row[si]
			dst[di+3] = 0xFF // Opaque alpha
			di += 4
		}
	}
}
