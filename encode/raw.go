package encode

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image/color"
	"io"

	"rasterproc/raster"
)

// PPM writes b as ASCII P3 with rows from bottom to top, one "R G B" line per
// pixel.
func PPM(w io.Writer, b *raster.Buffer) error {
	if err := check(b); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3 %d %d 255\n", b.Width(), b.Height())

	var c color.NRGBA
	for y := b.Height() - 1; y >= 0; y-- {
		for x := range b.Width() {
			_ = b.PixelInto(x, y, &c)
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}
	return bw.Flush()
}

const (
	bmpHeaderSize = 14 + 40
	bmpPixPerM    = 2835 // 72 DPI
)

// BMP writes b as an uncompressed 24-bit bitmap. Rows are stored bottom up in
// B, G, R order and padded to a multiple of four bytes.
func BMP(w io.Writer, b *raster.Buffer) error {
	if err := check(b); err != nil {
		return err
	}

	width, height := b.Width(), b.Height()
	stride := (width*3 + 3) &^ 3
	imageSize := stride * height

	var hdr [bmpHeaderSize]byte
	hdr[0], hdr[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(hdr[2:], uint32(bmpHeaderSize+imageSize))
	binary.LittleEndian.PutUint32(hdr[10:], bmpHeaderSize)
	binary.LittleEndian.PutUint32(hdr[14:], 40)
	binary.LittleEndian.PutUint32(hdr[18:], uint32(width))
	binary.LittleEndian.PutUint32(hdr[22:], uint32(height))
	binary.LittleEndian.PutUint16(hdr[26:], 1)  // planes
	binary.LittleEndian.PutUint16(hdr[28:], 24) // bits per pixel
	binary.LittleEndian.PutUint32(hdr[34:], uint32(imageSize))
	binary.LittleEndian.PutUint32(hdr[38:], bmpPixPerM)
	binary.LittleEndian.PutUint32(hdr[42:], bmpPixPerM)

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(hdr[:]); err != nil {
		return fmt.Errorf("could not write BMP header: %w", err)
	}

	row := make([]byte, stride)
	for y := height - 1; y >= 0; y-- {
		bgrRow(b, y, row)
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("could not write BMP row %d: %w", y, err)
		}
	}
	return bw.Flush()
}

// TGA writes b as an uncompressed true-color Targa image with a top-left
// origin, rows from top to bottom in B, G, R order.
func TGA(w io.Writer, b *raster.Buffer) error {
	if err := check(b); err != nil {
		return err
	}

	width, height := b.Width(), b.Height()
	hdr := [18]byte{
		2:  0x02, // uncompressed true color
		16: 24,   // bits per pixel
		17: 0x20, // top-left origin
	}
	binary.LittleEndian.PutUint16(hdr[12:], uint16(width))
	binary.LittleEndian.PutUint16(hdr[14:], uint16(height))

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(hdr[:]); err != nil {
		return fmt.Errorf("could not write TGA header: %w", err)
	}

	row := make([]byte, width*3)
	for y := range height {
		bgrRow(b, y, row)
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("could not write TGA row %d: %w", y, err)
		}
	}
	return bw.Flush()
}

// bgrRow fills dst with row y in B, G, R order. Bytes past the pixels are
// left as they are.
func bgrRow(b *raster.Buffer, y int, dst []byte) {
	var c color.NRGBA
	for x := range b.Width() {
		_ = b.PixelInto(x, y, &c)
		dst[x*3], dst[x*3+1], dst[x*3+2] = c.B, c.G, c.R
	}
}
