package crypt

import (
	"crypto/aes"
	"fmt"
	"io"
)

// Scheme selects the payload construction. The frame around the payload is
// the same for every scheme, so the reader must be told which one was used.
type Scheme int

const (
	// SchemeLegacy is AES-128-CBC, unsalted SHA-256 key, zero IV. It is
	// byte-compatible with images produced by the EnPix Android app.
	SchemeLegacy Scheme = iota
	// SchemeSealed is scrypt + AES-256-GCM with random salt and nonce.
	SchemeSealed
)

// ParseScheme converts a scheme name to a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case "", "legacy":
		return SchemeLegacy, nil
	case "sealed":
		return SchemeSealed, nil
	default:
		return 0, fmt.Errorf("unknown scheme: %q", s)
	}
}

func (s Scheme) String() string {
	switch s {
	case SchemeLegacy:
		return "legacy"
	case SchemeSealed:
		return "sealed"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// Seal encrypts plaintext under the scheme. rnd is only read by the sealed
// scheme; nil means crypto/rand.
func (s Scheme) Seal(plaintext []byte, password string, rnd io.Reader) ([]byte, error) {
	switch s {
	case SchemeLegacy:
		return Encrypt(plaintext, password), nil
	case SchemeSealed:
		return Seal(plaintext, password, rnd)
	default:
		return nil, fmt.Errorf("unknown scheme: %d", int(s))
	}
}

// Open decrypts a payload produced by Seal under the same scheme.
func (s Scheme) Open(payload []byte, password string) ([]byte, error) {
	switch s {
	case SchemeLegacy:
		return Decrypt(payload, password)
	case SchemeSealed:
		return Open(payload, password)
	default:
		return nil, fmt.Errorf("unknown scheme: %d", int(s))
	}
}

// SealedLen returns the payload length produced for an n-byte plaintext.
func (s Scheme) SealedLen(n int) int {
	switch s {
	case SchemeSealed:
		return n + SealedOverhead
	default:
		return (n/aes.BlockSize + 1) * aes.BlockSize
	}
}

// MaxPlaintext returns the largest plaintext whose payload fits in
// payloadCap bytes, or -1 if not even an empty message fits.
func (s Scheme) MaxPlaintext(payloadCap int) int {
	switch s {
	case SchemeSealed:
		if payloadCap < SealedOverhead {
			return -1
		}
		return payloadCap - SealedOverhead
	default:
		blocks := payloadCap / aes.BlockSize
		if blocks == 0 {
			return -1
		}
		return blocks*aes.BlockSize - 1
	}
}
