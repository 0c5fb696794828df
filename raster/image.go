package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

var _ draw.Image = (*Buffer)(nil)

func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width(), b.Height())
}

func (b *Buffer) At(x, y int) color.Color {
	c, err := b.Pixel(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return c
}

func (b *Buffer) Set(x, y int, c color.Color) {
	_ = b.SetPixel(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

// FromImage copies img into a new buffer of the given depth.
func FromImage(img image.Image, depth Depth) (*Buffer, error) {
	r := img.Bounds()
	b, err := New(r.Dx(), r.Dy(), depth)
	if err != nil {
		return b, err
	}
	draw.Draw(b, b.Bounds(), img, r.Min, draw.Src)
	return b, nil
}

// Fit selects how Resize treats a change of aspect ratio.
type Fit int

const (
	// Stretch scales to exactly the requested size.
	Stretch Fit = iota
	// Crop trims the source to the destination aspect ratio first.
	Crop
	// Pad keeps the whole source centered and fills the margins.
	Pad
)

// Resize scales b to width x height with Catmull-Rom interpolation. A zero
// dimension keeps the source size on that axis. fill paints the margins left
// by Pad.
func Resize(b *Buffer, width, height int, fit Fit, fill color.Color) (*Buffer, error) {
	if err := b.check(); err != nil {
		return &Buffer{}, err
	}
	if width < 0 || height < 0 {
		return &Buffer{}, fmt.Errorf("%w: resize to %dx%d", ErrInvalidDimensions, width, height)
	}

	srcBounds := b.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())

	destWidth := float64(width)
	if destWidth == 0 {
		destWidth = srcWidth
	}
	destHeight := float64(height)
	if destHeight == 0 {
		destHeight = srcHeight
	}

	if (srcWidth == destWidth) && (srcHeight == destHeight) {
		return Clone(b), nil
	}

	dest, err := New(int(destWidth), int(destHeight), b.depth)
	if err != nil {
		return dest, err
	}
	destBounds := dest.Bounds()

	srcAR := srcWidth / srcHeight
	destAR := destWidth / destHeight
	switch fit {
	case Crop:
		if srcAR < destAR {
			dh := int(math.Round((srcHeight - srcWidth/destAR) / 2))
			srcBounds.Min.Y += dh
			srcBounds.Max.Y -= dh
		} else if srcAR > destAR {
			dw := int(math.Round((srcWidth - srcHeight*destAR) / 2))
			srcBounds.Min.X += dw
			srcBounds.Max.X -= dw
		}
	case Pad:
		if fill != nil {
			draw.Draw(dest, dest.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
		}
		if srcAR < destAR {
			idw := int(math.Round((destWidth - destHeight*srcAR) / 2))
			destBounds.Min.X += idw
			destBounds.Max.X -= idw
		} else if srcAR > destAR {
			idh := int(math.Round((destHeight - destWidth/srcAR) / 2))
			destBounds.Min.Y += idh
			destBounds.Max.Y -= idh
		}
	}

	draw.CatmullRom.Scale(dest, destBounds, b, srcBounds, draw.Src, nil)
	return dest, nil
}
