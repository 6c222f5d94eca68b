// Package stego hides password-protected UTF-8 messages in pixel grids.
//
// Embedding encrypts the message and writes the ciphertext into the grid's
// channel LSBs. Extraction reverses both steps. Neither operation logs or
// retries; callers branch on the returned error with errors.Is.
package stego

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/suyash9664/EnPix/internal/bitplane"
	"github.com/suyash9664/EnPix/internal/crypt"
	"github.com/suyash9664/EnPix/internal/raster"
)

// Error kinds surfaced to callers.
var (
	ErrCapacityExceeded         = bitplane.ErrCapacityExceeded
	ErrCorruptedOrWrongPassword = bitplane.ErrCorruptedOrWrongPassword
	ErrBadKeyOrData             = crypt.ErrBadKeyOrData
	ErrInvalidUTF8              = errors.New("decrypted message is not valid UTF-8")
)

// Options tunes the payload construction. The zero value selects the legacy
// scheme, which is compatible with the Android app.
type Options struct {
	Scheme crypt.Scheme
	Rand   io.Reader // randomness for the sealed scheme; nil means crypto/rand
}

// EmbedMessage encrypts message under password and writes it into g.
// On ErrCapacityExceeded g is left unmodified.
func EmbedMessage(g *raster.Grid, message, password string) error {
	return EmbedMessageWith(g, message, password, Options{})
}

// EmbedMessageWith is EmbedMessage with an explicit scheme.
func EmbedMessageWith(g *raster.Grid, message, password string, opts Options) error {
	payload, err := opts.Scheme.Seal([]byte(message), password, opts.Rand)
	if err != nil {
		return fmt.Errorf("encrypting message: %w", err)
	}
	if err := bitplane.Embed(g, payload); err != nil {
		return fmt.Errorf("embedding payload: %w", err)
	}
	return nil
}

// ExtractMessage reads and decrypts the message hidden in g.
func ExtractMessage(g *raster.Grid, password string) (string, error) {
	return ExtractMessageWith(g, password, Options{})
}

// ExtractMessageWith is ExtractMessage with an explicit scheme.
func ExtractMessageWith(g *raster.Grid, password string, opts Options) (string, error) {
	payload, err := bitplane.Extract(g)
	if err != nil {
		return "", fmt.Errorf("extracting payload: %w", err)
	}
	plain, err := opts.Scheme.Open(payload, password)
	if err != nil {
		return "", fmt.Errorf("decrypting payload: %w", err)
	}
	if !utf8.Valid(plain) {
		return "", ErrInvalidUTF8
	}
	return string(plain), nil
}

// MaxMessageLen returns the largest message, in UTF-8 bytes, that fits in g
// under scheme, or -1 if nothing fits.
func MaxMessageLen(g *raster.Grid, scheme crypt.Scheme) int {
	capacity := bitplane.Capacity(g)
	if capacity < 0 {
		return -1
	}
	return scheme.MaxPlaintext(capacity)
}

// Fits reports whether message can be embedded in g under scheme.
func Fits(g *raster.Grid, message string, scheme crypt.Scheme) bool {
	return len(message) <= MaxMessageLen(g, scheme)
}
