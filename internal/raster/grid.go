package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Channel positions within a pixel. The order matches the ARGB_8888 layout
// used by Android bitmaps, so channel 0 is alpha.
const (
	ChannelA = 0
	ChannelR = 1
	ChannelG = 2
	ChannelB = 3

	// BytesPerPixel is the stride of a single pixel in Pix.
	BytesPerPixel = 4
)

var ErrInvalidGrid = errors.New("invalid pixel grid")

// Grid is the mutable pixel buffer the codec operates on. Pixels are stored
// as interleaved A,R,G,B bytes (4 bytes per pixel, row-major order).
type Grid struct {
	Width  int
	Height int
	Pix    []byte // len = Width * Height * 4
}

// New allocates a zeroed grid.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*BytesPerPixel),
	}
}

// Channels returns width*height*4, the number of addressable 8-bit channels.
func (g *Grid) Channels() int {
	return g.Width * g.Height * BytesPerPixel
}

// Validate checks that the buffer length agrees with the dimensions.
func (g *Grid) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidGrid)
	}
	if g.Width < 0 || g.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	if len(g.Pix) != g.Channels() {
		return fmt.Errorf("%w: expected %d bytes for %dx%d, got %d",
			ErrInvalidGrid, g.Channels(), g.Width, g.Height, len(g.Pix))
	}
	return nil
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	pix := make([]byte, len(g.Pix))
	copy(pix, g.Pix)
	return &Grid{Width: g.Width, Height: g.Height, Pix: pix}
}

// PixOffset returns the index of the first channel of pixel (x, y).
func (g *Grid) PixOffset(x, y int) int {
	return (y*g.Width + x) * BytesPerPixel
}

// FromImage copies img into a new grid. Colors are taken non-premultiplied
// so that every channel's low bit survives the conversion.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := New(b.Dx(), b.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < g.Height; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < g.Width; x++ {
				s := row[x*4 : x*4+4]
				d := g.Pix[g.PixOffset(x, y):]
				d[ChannelA], d[ChannelR], d[ChannelG], d[ChannelB] = s[3], s[0], s[1], s[2]
			}
		}
		return g
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			d := g.Pix[g.PixOffset(x, y):]
			d[ChannelA], d[ChannelR], d[ChannelG], d[ChannelB] = c.A, c.R, c.G, c.B
		}
	}
	return g
}

// NRGBA converts the grid to a non-premultiplied image suitable for a
// lossless encoder.
func (g *Grid) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			s := g.Pix[g.PixOffset(x, y):]
			d := img.Pix[img.PixOffset(x, y):]
			d[0], d[1], d[2], d[3] = s[ChannelR], s[ChannelG], s[ChannelB], s[ChannelA]
		}
	}
	return img
}
