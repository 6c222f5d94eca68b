package imageio

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/suyash9664/EnPix/internal/raster"
)

// EncoderOptions controls PNG encoding.
type EncoderOptions struct {
	Compression png.CompressionLevel // zero is png.DefaultCompression
}

// EncodePNG encodes g as a non-premultiplied PNG. Compression level only
// affects file size; pixel data is always stored exactly.
func EncodePNG(g *raster.Grid, opts EncoderOptions) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Width == 0 || g.Height == 0 {
		return nil, fmt.Errorf("cannot encode empty %dx%d image", g.Width, g.Height)
	}

	enc := png.Encoder{CompressionLevel: opts.Compression}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, g.NRGBA()); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}
