// Package bitplane maps a length-prefixed byte frame into the least
// significant bits of a pixel grid's channels and back.
//
// Bit i of the frame lives in channel i%4 of pixel i/4, pixels scanned in
// row-major order. Bytes are written least-significant-bit first and the
// frame starts with a 4-byte little-endian payload length.
package bitplane

import (
	"errors"
	"fmt"

	"github.com/suyash9664/EnPix/internal/raster"
)

// PrefixBits is the size of the length field that precedes every payload.
const PrefixBits = 32

var (
	ErrCapacityExceeded         = errors.New("message too large for this image")
	ErrCorruptedOrWrongPassword = errors.New("corrupted image or wrong password")
)

// RequiredBits returns the number of channels a frame carrying n payload
// bytes occupies.
func RequiredBits(n int) int {
	return PrefixBits + 8*n
}

// Capacity returns the largest payload, in bytes, that fits in g.
// A grid that cannot hold the length prefix has capacity -1.
func Capacity(g *raster.Grid) int {
	free := g.Channels() - PrefixBits
	if free < 0 {
		return -1
	}
	return free / 8
}

// channelOffset resolves bit index i to its byte in g.Pix.
func channelOffset(g *raster.Grid, i int) int {
	p := i / raster.BytesPerPixel
	x := p % g.Width
	y := p / g.Width
	return g.PixOffset(x, y) + i%raster.BytesPerPixel
}

// WriteBit replaces the LSB of the channel addressed by i with bit.
// The upper seven bits of that channel are left untouched.
func WriteBit(g *raster.Grid, i int, bit byte) {
	off := channelOffset(g, i)
	g.Pix[off] = g.Pix[off]&0xFE | bit&1
}

// ReadBit returns the LSB of the channel addressed by i.
func ReadBit(g *raster.Grid, i int) byte {
	return g.Pix[channelOffset(g, i)] & 1
}

func writeByte(g *raster.Grid, i int, b byte) int {
	for j := 0; j < 8; j++ {
		WriteBit(g, i, (b>>j)&1)
		i++
	}
	return i
}

func readByte(g *raster.Grid, i int) (byte, int) {
	var b byte
	for j := 0; j < 8; j++ {
		b |= ReadBit(g, i) << j
		i++
	}
	return b, i
}

// Embed writes payload into g. The capacity check happens before any
// channel is modified, so a failed call leaves g exactly as it was.
func Embed(g *raster.Grid, payload []byte) error {
	if err := g.Validate(); err != nil {
		return err
	}

	required := RequiredBits(len(payload))
	if uint64(len(payload)) > 0xFFFFFFFF || required > g.Channels() {
		return fmt.Errorf("%w: need %d bits, have %d", ErrCapacityExceeded, required, g.Channels())
	}

	length := uint32(len(payload))
	bit := 0
	for k := 0; k < 4; k++ {
		bit = writeByte(g, bit, byte(length>>(8*k)))
	}
	for _, b := range payload {
		bit = writeByte(g, bit, b)
	}
	return nil
}

// Extract reads a frame previously written by Embed.
func Extract(g *raster.Grid) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.Channels() < PrefixBits {
		return nil, fmt.Errorf("%w: image holds only %d bits", ErrCorruptedOrWrongPassword, g.Channels())
	}

	var length uint32
	bit := 0
	for k := 0; k < 4; k++ {
		var b byte
		b, bit = readByte(g, bit)
		length |= uint32(b) << (8 * k)
	}

	// Compare in 64 bits: a garbage prefix can claim up to 2^32-1 bytes.
	if uint64(PrefixBits)+8*uint64(length) > uint64(g.Channels()) {
		return nil, fmt.Errorf("%w: frame claims %d bytes", ErrCorruptedOrWrongPassword, length)
	}

	payload := make([]byte, length)
	for k := range payload {
		payload[k], bit = readByte(g, bit)
	}
	return payload, nil
}
