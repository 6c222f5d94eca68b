package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/suyash9664/EnPix/internal/raster"
)

var (
	ErrLossyFormat = errors.New("lossy image format cannot carry LSB data")
	ErrTooShort    = errors.New("data too short for an image")
)

// lossless lists the registered formats that preserve every channel bit.
var lossless = map[string]bool{
	"png": true,
	"bmp": true,
	"gif": true,
}

// IsLossless reports whether format (as named by image.Decode) round-trips
// pixel values exactly.
func IsLossless(format string) bool {
	return lossless[format]
}

// Decoded holds the result of decoding a cover image.
type Decoded struct {
	Format string
	Grid   *raster.Grid
}

// Decode decodes an image from memory into a pixel grid. JPEG input is
// refused: anything it could carry has already been destroyed by
// quantization, and it cannot be re-encoded without loss.
func Decode(data []byte) (*Decoded, error) {
	if len(data) < 8 {
		return nil, ErrTooShort
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if !IsLossless(format) {
		return nil, fmt.Errorf("%w: %s", ErrLossyFormat, format)
	}

	return &Decoded{
		Format: format,
		Grid:   raster.FromImage(img),
	}, nil
}
