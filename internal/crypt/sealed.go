package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

// Parameters of the sealed scheme. The payload layout is
// salt || nonce || AES-256-GCM ciphertext and tag.
const (
	SaltSize  = 16
	NonceSize = 12
	TagSize   = 16

	sealedKeySize = 32
	scryptN       = 1 << 15
	scryptR       = 8
	scryptP       = 1
)

// SealedOverhead is the number of bytes Seal adds to a plaintext.
const SealedOverhead = SaltSize + NonceSize + TagSize

// DeriveSealedKey stretches password with scrypt under salt.
func DeriveSealedKey(password string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, sealedKeySize)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	return key, nil
}

// Seal encrypts plaintext with a fresh random salt and nonce read from rnd.
func Seal(plaintext []byte, password string, rnd io.Reader) ([]byte, error) {
	if rnd == nil {
		rnd = rand.Reader
	}

	out := make([]byte, SaltSize+NonceSize, SealedOverhead+len(plaintext))
	if _, err := io.ReadFull(rnd, out); err != nil {
		return nil, fmt.Errorf("reading salt and nonce: %w", err)
	}
	salt, nonce := out[:SaltSize], out[SaltSize:]

	aead, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}
	return aead.Seal(out, nonce, plaintext, nil), nil
}

// Open authenticates and decrypts a payload produced by Seal. Any wrong
// password or tampering yields ErrBadKeyOrData.
func Open(payload []byte, password string) ([]byte, error) {
	if len(payload) < SealedOverhead {
		return nil, ErrBadKeyOrData
	}
	salt := payload[:SaltSize]
	nonce := payload[SaltSize : SaltSize+NonceSize]

	aead, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}
	plain, err := aead.Open(nil, nonce, payload[SaltSize+NonceSize:], nil)
	if err != nil {
		return nil, ErrBadKeyOrData
	}
	return plain, nil
}

func newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key, err := DeriveSealedKey(password, salt)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
