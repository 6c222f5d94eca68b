package pipeline

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/suyash9664/EnPix/internal/crypt"
	"github.com/suyash9664/EnPix/internal/imageio"
	"github.com/suyash9664/EnPix/internal/logger"
	"github.com/suyash9664/EnPix/internal/stego"
)

// Options controls the embed and extract pipelines.
type Options struct {
	Password    string
	Scheme      crypt.Scheme
	Compression png.CompressionLevel // output PNG compression; pixels are unaffected
	Logger      *slog.Logger         // nil discards
	Rand        io.Reader            // sealed scheme randomness; nil means crypto/rand
}

func (o Options) log() *slog.Logger {
	if o.Logger == nil {
		return logger.Discard()
	}
	return o.Logger.With(logger.Component("pipeline"))
}

// Result holds the output of an embed run.
type Result struct {
	Data         []byte // encoded PNG carrying the message
	Width        int
	Height       int
	SrcFormat    string
	PayloadBytes int // ciphertext length written after the length prefix
}

// ExtractResult holds the output of an extract run.
type ExtractResult struct {
	Message   string
	Width     int
	Height    int
	SrcFormat string
}

// Embed runs decode → encrypt and embed → PNG encode.
func Embed(imageData []byte, message string, opts Options) (*Result, error) {
	log := opts.log().With(logger.Action("embed"))
	start := time.Now()

	// 1. Decode the cover image
	decoded, err := imageio.Decode(imageData)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	g := decoded.Grid
	log.Debug("decoded cover image",
		slog.String("format", decoded.Format),
		logger.Dimensions(g.Width, g.Height))

	// 2. Encrypt and write into the LSB plane
	err = stego.EmbedMessageWith(g, message, opts.Password, stego.Options{
		Scheme: opts.Scheme,
		Rand:   opts.Rand,
	})
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	payload := opts.Scheme.SealedLen(len(message))

	// 3. Encode as PNG; anything lossy would destroy the payload
	encoded, err := imageio.EncodePNG(g, imageio.EncoderOptions{Compression: opts.Compression})
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	log.Info("message embedded",
		slog.String("scheme", opts.Scheme.String()),
		logger.Bytes("payload_bytes", payload),
		logger.Bytes("output_bytes", len(encoded)),
		logger.Elapsed(start))

	return &Result{
		Data:         encoded,
		Width:        g.Width,
		Height:       g.Height,
		SrcFormat:    decoded.Format,
		PayloadBytes: payload,
	}, nil
}

// Extract runs decode → extract and decrypt.
func Extract(imageData []byte, opts Options) (*ExtractResult, error) {
	log := opts.log().With(logger.Action("extract"))
	start := time.Now()

	decoded, err := imageio.Decode(imageData)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	g := decoded.Grid

	msg, err := stego.ExtractMessageWith(g, opts.Password, stego.Options{Scheme: opts.Scheme})
	if err != nil {
		log.Debug("extraction failed", logger.Error(err), logger.Elapsed(start))
		return nil, fmt.Errorf("extract: %w", err)
	}

	log.Info("message extracted",
		slog.String("scheme", opts.Scheme.String()),
		logger.Count("message_bytes", len(msg)),
		logger.Elapsed(start))

	return &ExtractResult{
		Message:   msg,
		Width:     g.Width,
		Height:    g.Height,
		SrcFormat: decoded.Format,
	}, nil
}

// OutputName returns a fresh file name for an embedded image.
func OutputName() string {
	return "enpix_stego_" + uuid.NewString() + ".png"
}
