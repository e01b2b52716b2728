// Package bmp decodes the uncompressed 24- and 32-bit Windows bitmaps that
// the page renderer hands back, into top-down RGBA buffers.
//
// Decoding never fails loudly: a missing file, a bad signature, an
// unsupported depth or a truncated pixel array all produce an empty bitmap.
package bmp

import (
	"encoding/binary"
	"io"
	"os"

	"squ1d/pkg/gfx"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	// maxDimension bounds width and height so a corrupt header cannot
	// request an absurd allocation.
	maxDimension = 1 << 14
)

// Load reads and decodes the bitmap at path.
func Load(path string) gfx.Bitmap {
	data, err := os.ReadFile(path)
	if err != nil {
		return gfx.Bitmap{}
	}
	return Decode(data)
}

// DecodeReader reads r to the end and decodes it.
func DecodeReader(r io.Reader) gfx.Bitmap {
	data, err := io.ReadAll(r)
	if err != nil {
		return gfx.Bitmap{}
	}
	return Decode(data)
}

// Decode converts a bottom-up BGR or BGRA bitmap into a top-down RGBA buffer.
// 24-bit pixels come out fully opaque; 32-bit pixels keep their alpha.
func Decode(data []byte) gfx.Bitmap {
	if len(data) < fileHeaderSize+infoHeaderSize {
		return gfx.Bitmap{}
	}
	if data[0] != 'B' || data[1] != 'M' {
		return gfx.Bitmap{}
	}

	pixelOffset := int64(binary.LittleEndian.Uint32(data[10:14]))
	info := data[fileHeaderSize : fileHeaderSize+infoHeaderSize]
	width := int64(int32(binary.LittleEndian.Uint32(info[4:8])))
	height := int64(int32(binary.LittleEndian.Uint32(info[8:12])))
	bitsPerPixel := int64(binary.LittleEndian.Uint16(info[14:16]))

	if bitsPerPixel != 24 && bitsPerPixel != 32 {
		return gfx.Bitmap{}
	}
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return gfx.Bitmap{}
	}

	bytesPerPixel := bitsPerPixel / 8
	rowSize := RowSize(int(width), int(bitsPerPixel))
	pixelDataSize := int64(rowSize) * height
	if pixelOffset < 0 || pixelOffset+pixelDataSize > int64(len(data)) {
		return gfx.Bitmap{}
	}
	src := data[pixelOffset : pixelOffset+pixelDataSize]

	w, h := int(width), int(height)
	out := gfx.NewBitmap(w, h)
	bpp := int(bytesPerPixel)

	for y := 0; y < h; y++ {
		srcRow := src[(h-1-y)*rowSize:]
		dstRow := out.Pix[y*w*4:]

		for x := 0; x < w; x++ {
			p := srcRow[x*bpp:]
			a := uint8(255)
			if bpp == 4 {
				a = p[3]
			}
			dstRow[x*4+0] = p[2]
			dstRow[x*4+1] = p[1]
			dstRow[x*4+2] = p[0]
			dstRow[x*4+3] = a
		}
	}

	return out
}

// RowSize returns the padded length in bytes of one pixel row.
func RowSize(width, bitsPerPixel int) int {
	return ((width*bitsPerPixel + 31) / 32) * 4
}
