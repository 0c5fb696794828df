// Package encode serializes raster buffers into image files.
package encode

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/tiff"

	"rasterproc/raster"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

type Format string

const (
	PPMFormat  Format = "ppm"
	BMPFormat  Format = "bmp"
	TGAFormat  Format = "tga"
	PNGFormat  Format = "png"
	TIFFFormat Format = "tiff"
	JPEGFormat Format = "jpeg"
	GIFFormat  Format = "gif"
)

var encoders = map[Format]func(io.Writer, *raster.Buffer) error{
	PPMFormat:  PPM,
	BMPFormat:  BMP,
	TGAFormat:  TGA,
	PNGFormat:  PNG,
	TIFFFormat: TIFF,
	JPEGFormat: JPEG,
	GIFFormat:  GIF,
}

// Formats lists every supported format.
func Formats() []Format {
	return []Format{PPMFormat, BMPFormat, TGAFormat, PNGFormat, TIFFFormat, JPEGFormat, GIFFormat}
}

// ParseFormat accepts a format name or a file extension, with or without the
// leading dot.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	switch s {
	case "tif":
		s = "tiff"
	case "jpg":
		s = "jpeg"
	}
	f := Format(s)
	if _, ok := encoders[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
	return f, nil
}

// FormatOf derives the format from the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode writes b to w in format f.
func Encode(w io.Writer, f Format, b *raster.Buffer) error {
	enc, ok := encoders[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return enc(w, b)
}

func PNG(w io.Writer, b *raster.Buffer) error {
	if err := check(b); err != nil {
		return err
	}
	enc := png.Encoder{
		CompressionLevel: png.BestCompression,
		BufferPool:       pngPool,
	}
	return enc.Encode(w, toNRGBA(b))
}

func TIFF(w io.Writer, b *raster.Buffer) error {
	if err := check(b); err != nil {
		return err
	}
	return tiff.Encode(w, toNRGBA(b), &tiff.Options{Compression: tiff.Deflate})
}

func JPEG(w io.Writer, b *raster.Buffer) error {
	if err := check(b); err != nil {
		return err
	}
	return jpeg.Encode(w, toNRGBA(b), &jpeg.Options{Quality: 100})
}

func GIF(w io.Writer, b *raster.Buffer) error {
	if err := check(b); err != nil {
		return err
	}
	return gif.Encode(w, toNRGBA(b), nil)
}

// toNRGBA copies b into an image type the library encoders write without
// premultiplying alpha.
func toNRGBA(b *raster.Buffer) *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	var c color.NRGBA
	for y := range b.Height() {
		for x := range b.Width() {
			_ = b.PixelInto(x, y, &c)
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func check(b *raster.Buffer) error {
	if b == nil {
		return raster.ErrNilBuffer
	}
	if !b.Valid() {
		return raster.ErrNilStorage
	}
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
