package raster

import (
	"errors"
	"fmt"
	"image/color"
)

// Depth is the number of bytes stored per pixel.
type Depth int

const (
	Gray Depth = 1
	RGB  Depth = 3
	RGBA Depth = 4
)

const (
	MaxWidth  = 16384
	MaxHeight = 16384
)

var (
	ErrNilBuffer         = errors.New("nil buffer")
	ErrNilStorage        = errors.New("buffer has no pixel storage")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrNilComponent      = errors.New("nil color component destination")
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrInvalidDepth      = errors.New("invalid depth")
)

func (d Depth) Valid() bool {
	return d == Gray || d == RGB || d == RGBA
}

func (d Depth) String() string {
	switch d {
	case Gray:
		return "gray"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	}
	return fmt.Sprintf("depth(%d)", int(d))
}

// Buffer is a row-major pixel buffer. The pixel at (x, y) starts at
// pix[(y*width + x)*depth]. A Buffer with no storage is the invalid buffer
// returned by failed constructors; every operation on it reports
// ErrNilStorage.
type Buffer struct {
	width  int
	height int
	depth  Depth
	pix    []byte
}

// New allocates a zeroed buffer. On invalid parameters it returns the invalid
// buffer together with the reason.
func New(width, height int, depth Depth) (*Buffer, error) {
	if width <= 0 || width > MaxWidth || height <= 0 || height > MaxHeight {
		return &Buffer{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !depth.Valid() {
		return &Buffer{}, fmt.Errorf("%w: %d", ErrInvalidDepth, int(depth))
	}

	return &Buffer{
		width:  width,
		height: height,
		depth:  depth,
		pix:    make([]byte, width*height*int(depth)),
	}, nil
}

// Clone returns a deep copy of b. Nil, storage-less or oversized buffers
// clone into the invalid buffer.
func Clone(b *Buffer) *Buffer {
	if b == nil || b.pix == nil {
		return &Buffer{}
	}
	c, err := New(b.width, b.height, b.depth)
	if err != nil {
		return c
	}
	copy(c.pix, b.pix)
	return c
}

func (b *Buffer) Width() int {
	if b == nil {
		return 0
	}
	return b.width
}

func (b *Buffer) Height() int {
	if b == nil {
		return 0
	}
	return b.height
}

func (b *Buffer) Depth() Depth {
	if b == nil {
		return 0
	}
	return b.depth
}

// Size returns the length in bytes of the pixel storage.
func (b *Buffer) Size() int {
	if b == nil {
		return 0
	}
	return b.width * b.height * int(b.depth)
}

// Valid reports whether b has storage to operate on.
func (b *Buffer) Valid() bool {
	return b.check() == nil
}

// Pix returns a copy of the raw pixel bytes.
func (b *Buffer) Pix() []byte {
	if b == nil || b.pix == nil {
		return nil
	}
	return append([]byte(nil), b.pix...)
}

// Row returns a read-only copy of row y.
func (b *Buffer) Row(y int) ([]byte, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if y < 0 || y >= b.height {
		return nil, ErrOutOfBounds
	}
	stride := b.width * int(b.depth)
	return append([]byte(nil), b.pix[y*stride:(y+1)*stride]...), nil
}

// CopyFrom overwrites the pixels of b with the pixels of src. Both buffers
// must share dimensions and depth.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if err := b.check(); err != nil {
		return err
	}
	if err := src.check(); err != nil {
		return err
	}
	if b.width != src.width || b.height != src.height || b.depth != src.depth {
		return fmt.Errorf("%w: %dx%dx%d vs %dx%dx%d", ErrInvalidDimensions,
			b.width, b.height, b.depth, src.width, src.height, src.depth)
	}
	copy(b.pix, src.pix)
	return nil
}

func (b *Buffer) Clear() error {
	if err := b.check(); err != nil {
		return err
	}
	clear(b.pix)
	return nil
}

// Pixel returns the color at (x, y). Gray and RGB buffers report an opaque
// alpha.
func (b *Buffer) Pixel(x, y int) (color.NRGBA, error) {
	var c color.NRGBA
	err := b.PixelInto(x, y, &c)
	return c, err
}

// PixelInto stores the color at (x, y) into dst.
func (b *Buffer) PixelInto(x, y int, dst *color.NRGBA) error {
	if err := b.check(); err != nil {
		return err
	}
	if dst == nil {
		return ErrNilComponent
	}
	i, err := b.offset(x, y)
	if err != nil {
		return err
	}

	p := b.pix[i : i+int(b.depth)]
	switch b.depth {
	case Gray:
		*dst = color.NRGBA{R: p[0], G: p[0], B: p[0], A: 0xff}
	case RGB:
		*dst = color.NRGBA{R: p[0], G: p[1], B: p[2], A: 0xff}
	default:
		*dst = color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}
	return nil
}

// SetPixel stores c at (x, y). Gray buffers store the luma of c, RGB buffers
// drop alpha.
func (b *Buffer) SetPixel(x, y int, c color.NRGBA) error {
	if err := b.check(); err != nil {
		return err
	}
	i, err := b.offset(x, y)
	if err != nil {
		return err
	}

	p := b.pix[i : i+int(b.depth)]
	switch b.depth {
	case Gray:
		p[0] = Luma(c.R, c.G, c.B)
	case RGB:
		p[0], p[1], p[2] = c.R, c.G, c.B
	default:
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	}
	return nil
}

// SetPixelMax raises each color channel at (x, y) to the matching channel of
// c if it is greater. Alpha is always overwritten.
func (b *Buffer) SetPixelMax(x, y int, c color.NRGBA) error {
	if err := b.check(); err != nil {
		return err
	}
	i, err := b.offset(x, y)
	if err != nil {
		return err
	}

	p := b.pix[i : i+int(b.depth)]
	switch b.depth {
	case Gray:
		p[0] = max(p[0], Luma(c.R, c.G, c.B))
	case RGB:
		p[0], p[1], p[2] = max(p[0], c.R), max(p[1], c.G), max(p[2], c.B)
	default:
		p[0], p[1], p[2], p[3] = max(p[0], c.R), max(p[1], c.G), max(p[2], c.B), c.A
	}
	return nil
}

// Luma converts a color to gray with the fixed-point BT.601 weights
// 77/256, 150/256 and 29/256.
func Luma(r, g, b uint8) uint8 {
	return uint8((77*uint32(r) + 150*uint32(g) + 29*uint32(b)) >> 8)
}

// InBounds reports whether (x, y) addresses a pixel of b.
func (b *Buffer) InBounds(x, y int) bool {
	return b != nil && x >= 0 && y >= 0 && x < b.width && y < b.height
}

func (b *Buffer) check() error {
	if b == nil {
		return ErrNilBuffer
	}
	if b.pix == nil {
		return ErrNilStorage
	}
	return nil
}

func (b *Buffer) offset(x, y int) (int, error) {
	if !b.InBounds(x, y) {
		return 0, ErrOutOfBounds
	}
	return (y*b.width + x) * int(b.depth), nil
}
