package stego

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suyash9664/EnPix/internal/bitplane"
	"github.com/suyash9664/EnPix/internal/crypt"
	"github.com/suyash9664/EnPix/internal/raster"
)

func coverGrid(w, h int) *raster.Grid {
	g := raster.New(w, h)
	for i := range g.Pix {
		g.Pix[i] = byte(255 - i*7)
	}
	return g
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	messages := []string{
		"",
		"hi",
		"The quick brown fox jumps over the lazy dog",
		"Ünïcödé ✓ 日本語 🔐",
		strings.Repeat("x", 200),
	}
	for _, msg := range messages {
		g := coverGrid(32, 32)
		require.NoError(t, EmbedMessage(g, msg, "pw"))

		got, err := ExtractMessage(g, "pw")
		require.NoError(t, err)
		assert.Equal(t, msg, got)
	}
}

func TestRoundTripSealed(t *testing.T) {
	t.Parallel()

	opts := Options{Scheme: crypt.SchemeSealed}
	g := coverGrid(16, 16)
	require.NoError(t, EmbedMessageWith(g, "sealed hello", "pw", opts))

	got, err := ExtractMessageWith(g, "pw", opts)
	require.NoError(t, err)
	assert.Equal(t, "sealed hello", got)

	_, err = ExtractMessageWith(g, "nope", opts)
	assert.ErrorIs(t, err, ErrBadKeyOrData)
}

func TestWrongPassword(t *testing.T) {
	t.Parallel()

	g := coverGrid(32, 32)
	require.NoError(t, EmbedMessage(g, "a reasonably long secret message for the test", "p1"))

	_, err := ExtractMessage(g, "p2")
	require.Error(t, err)
	if !errors.Is(err, ErrBadKeyOrData) && !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmptyMessageUsesOneBlock(t *testing.T) {
	t.Parallel()

	// Legacy padding turns "" into a single 16-byte block.
	g := coverGrid(10, 10)
	orig := g.Clone()
	require.NoError(t, EmbedMessage(g, "", "pw"))

	used := bitplane.RequiredBits(16)
	for i := used; i < len(g.Pix); i++ {
		assert.Equal(t, orig.Pix[i], g.Pix[i])
	}

	got, err := ExtractMessage(g, "pw")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestCapacityExceededLeavesGridUntouched(t *testing.T) {
	t.Parallel()

	// 10x10 = 400 channels, 368 payload bits = 46 bytes = 2 AES blocks.
	g := coverGrid(10, 10)
	require.Equal(t, 31, MaxMessageLen(g, crypt.SchemeLegacy))

	require.NoError(t, EmbedMessage(g.Clone(), strings.Repeat("a", 31), "pw"))

	before := g.Clone()
	err := EmbedMessage(g, strings.Repeat("a", 32), "pw")
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, before.Pix, g.Pix)
}

func TestExactFit(t *testing.T) {
	t.Parallel()

	// 32 prefix bits + 8*48 ciphertext bits = 416 channels = 104 pixels.
	g := coverGrid(104, 1)
	require.Equal(t, 48, bitplane.Capacity(g))
	require.NoError(t, EmbedMessage(g, strings.Repeat("z", 47), "pw"))

	got, err := ExtractMessage(g, "pw")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("z", 47), got)

	assert.ErrorIs(t, EmbedMessage(coverGrid(103, 1), strings.Repeat("z", 47), "pw"), ErrCapacityExceeded)
}

func TestExtractFromSaturatedImage(t *testing.T) {
	t.Parallel()

	// All LSBs set: the length prefix reads as 0xFFFFFFFF.
	g := raster.New(8, 8)
	for i := range g.Pix {
		g.Pix[i] = 0xFF
	}
	_, err := ExtractMessage(g, "pw")
	assert.ErrorIs(t, err, ErrCorruptedOrWrongPassword)
}

func TestExtractEmptyFrame(t *testing.T) {
	t.Parallel()

	// A zero-length payload is a valid frame but not a valid ciphertext.
	g := raster.New(8, 8)
	_, err := ExtractMessage(g, "pw")
	assert.ErrorIs(t, err, ErrBadKeyOrData)
}

func TestInvalidUTF8(t *testing.T) {
	t.Parallel()

	g := coverGrid(16, 16)
	require.NoError(t, bitplane.Embed(g, crypt.Encrypt([]byte{0xff, 0xfe, 0xfd}, "pw")))

	_, err := ExtractMessage(g, "pw")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestFits(t *testing.T) {
	t.Parallel()

	g := coverGrid(10, 10)
	assert.True(t, Fits(g, strings.Repeat("a", 31), crypt.SchemeLegacy))
	assert.False(t, Fits(g, strings.Repeat("a", 32), crypt.SchemeLegacy))
	assert.Equal(t, 46-crypt.SealedOverhead, MaxMessageLen(g, crypt.SchemeSealed))

	tiny := raster.New(2, 2)
	assert.Equal(t, -1, MaxMessageLen(tiny, crypt.SchemeLegacy))
	assert.False(t, Fits(tiny, "", crypt.SchemeLegacy))
}

func TestShortMessageNeedsFullBlock(t *testing.T) {
	t.Parallel()

	// "hi" encrypts to one 16-byte block: 32 + 128 channels, more than 4x4 offers.
	g := coverGrid(4, 4)
	orig := g.Clone()
	assert.ErrorIs(t, EmbedMessage(g, "hi", "pw"), ErrCapacityExceeded)
	assert.Equal(t, orig.Pix, g.Pix)

	require.NoError(t, EmbedMessage(coverGrid(40, 1), "hi", "pw"))
}
