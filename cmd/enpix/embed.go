package main

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suyash9664/EnPix/internal/logger"
	"github.com/suyash9664/EnPix/internal/pipeline"
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Encrypt a message and hide it in an image",
	RunE:  runEmbed,
}

func init() {
	embedCmd.Flags().StringP("input", "i", "", "Cover image (PNG, BMP or GIF)")
	embedCmd.Flags().StringP("output", "o", "", "Output PNG (default: generated name in ENPIX_OUTPUT_DIR)")
	embedCmd.Flags().StringP("message", "m", "", "Message to hide")
	embedCmd.Flags().String("message-file", "", "Read the message from a file")
	embedCmd.Flags().Bool("best", false, "Use best PNG compression")
	addSecretFlags(embedCmd)
	embedCmd.MarkFlagRequired("input")
	embedCmd.MarkFlagsMutuallyExclusive("message", "message-file")
	rootCmd.AddCommand(embedCmd)
}

func readMessage(cmd *cobra.Command) (string, error) {
	msg, _ := cmd.Flags().GetString("message")
	if path, _ := cmd.Flags().GetString("message-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading message: %w", err)
		}
		msg = string(data)
	}
	if strings.TrimSpace(msg) == "" {
		return "", fmt.Errorf("message must not be blank")
	}
	return msg, nil
}

func runEmbed(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	best, _ := cmd.Flags().GetBool("best")

	msg, err := readMessage(cmd)
	if err != nil {
		return err
	}
	password, err := resolvePassword(cmd)
	if err != nil {
		return err
	}
	scheme, err := resolveScheme(cmd)
	if err != nil {
		return err
	}

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	opts := pipeline.Options{
		Password: password,
		Scheme:   scheme,
		Logger:   log,
	}
	if best {
		opts.Compression = png.BestCompression
	}

	result, err := pipeline.Embed(inputData, msg, opts)
	if err != nil {
		return err
	}

	if outputPath == "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		outputPath = filepath.Join(cfg.OutputDir, pipeline.OutputName())
	}
	if err := os.WriteFile(outputPath, result.Data, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	log.Debug("wrote output", logger.Path(outputPath))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Embedded %d-byte %s payload in %dx%d %s\n",
		result.PayloadBytes, scheme, result.Width, result.Height, result.SrcFormat)
	fmt.Fprintf(out, "Input:  %s (%d bytes)\n", inputPath, len(inputData))
	fmt.Fprintf(out, "Output: %s (%d bytes)\n", outputPath, len(result.Data))
	return nil
}
