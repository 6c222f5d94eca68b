// Package crypt turns a message and a password into the opaque payload that
// gets hidden in an image, and back.
package crypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"errors"
)

// KeySize is the length of the legacy AES-128 key.
const KeySize = 16

var ErrBadKeyOrData = errors.New("bad key or corrupted data")

// Key is password-derived AES key material.
type Key [KeySize]byte

// zeroIV is fixed so that output is reproducible across implementations.
var zeroIV [aes.BlockSize]byte

// DeriveKey hashes the UTF-8 password with SHA-256 and keeps the first
// 16 bytes. No salt.
func DeriveKey(password string) Key {
	sum := sha256.Sum256([]byte(password))
	var k Key
	copy(k[:], sum[:KeySize])
	return k
}

// Encrypt applies AES-128-CBC with PKCS#7 padding and an all-zero IV.
// Identical inputs always yield identical ciphertext.
func Encrypt(plaintext []byte, password string) []byte {
	key := DeriveKey(password)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		// aes.NewCipher only fails on key length.
		panic(err)
	}

	buf := pad(plaintext, aes.BlockSize)
	cipher.NewCBCEncrypter(block, zeroIV[:]).CryptBlocks(buf, buf)
	return buf
}

// Decrypt reverses Encrypt. A ciphertext that is empty, not block aligned,
// or whose padding fails to validate yields ErrBadKeyOrData.
func Decrypt(ciphertext []byte, password string) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrBadKeyOrData
	}

	key := DeriveKey(password)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	buf := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, zeroIV[:]).CryptBlocks(buf, ciphertext)
	return unpad(buf, aes.BlockSize)
}

func pad(data []byte, size int) []byte {
	n := size - len(data)%size
	out := make([]byte, len(data), len(data)+n)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, size int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > size || n > len(data) {
		return nil, ErrBadKeyOrData
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrBadKeyOrData
		}
	}
	return data[:len(data)-n], nil
}
