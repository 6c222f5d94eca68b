package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndValidate(t *testing.T) {
	t.Parallel()

	g := New(3, 2)
	require.NoError(t, g.Validate())
	assert.Equal(t, 24, g.Channels())
	assert.Len(t, g.Pix, 24)

	g.Pix = g.Pix[:23]
	assert.ErrorIs(t, g.Validate(), ErrInvalidGrid)

	var nilGrid *Grid
	assert.ErrorIs(t, nilGrid.Validate(), ErrInvalidGrid)
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	g := New(1, 1)
	g.Pix[0] = 7
	c := g.Clone()
	c.Pix[0] = 9
	assert.Equal(t, byte(7), g.Pix[0])
}

func TestFromImageChannelOrder(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	img.SetNRGBA(1, 0, color.NRGBA{R: 11, G: 21, B: 31, A: 255})

	g := FromImage(img)
	require.Equal(t, 2, g.Width)
	require.Equal(t, 1, g.Height)
	assert.Equal(t, []byte{40, 10, 20, 30, 255, 11, 21, 31}, g.Pix)
}

func TestFromImageSubImageBounds(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(2, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	sub := img.SubImage(image.Rect(2, 3, 4, 4))

	g := FromImage(sub)
	require.Equal(t, 2, g.Width)
	require.Equal(t, 1, g.Height)
	assert.Equal(t, []byte{4, 1, 2, 3}, g.Pix[:4])
}

func TestNRGBARoundTripKeepsLowBits(t *testing.T) {
	t.Parallel()

	g := New(4, 4)
	for i := range g.Pix {
		g.Pix[i] = byte(i*37 + 1)
	}

	back := FromImage(g.NRGBA())
	assert.Equal(t, g.Pix, back.Pix)
}

func TestFromImageOpaqueRGBA(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 201, G: 3, B: 77, A: 255})

	g := FromImage(img)
	assert.Equal(t, []byte{255, 201, 3, 77}, g.Pix)
}
