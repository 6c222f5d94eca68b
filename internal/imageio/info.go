package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	Format     string
	Width      int
	Height     int
	ColorModel string
	Lossless   bool
}

// Channels returns the number of LSB slots the image offers.
func (i *ImageInfo) Channels() int {
	return i.Width * i.Height * 4
}

// GetInfo reads image metadata without decoding pixel data.
func GetInfo(data []byte) (*ImageInfo, error) {
	if len(data) < 8 {
		return nil, ErrTooShort
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("reading image header: %w", err)
	}

	return &ImageInfo{
		Format:     format,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ColorModel: colorModelName(cfg.ColorModel),
		Lossless:   IsLossless(format),
	}, nil
}

func colorModelName(m color.Model) string {
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.CMYKModel:
		return "CMYK"
	}
	if _, ok := m.(color.Palette); ok {
		return "Paletted"
	}
	return "Unknown"
}
