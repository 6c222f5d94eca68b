package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suyash9664/EnPix/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Recover and decrypt a hidden message",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringP("input", "i", "", "Image carrying a message")
	extractCmd.Flags().String("out", "", "Write the message to a file instead of stdout")
	addSecretFlags(extractCmd)
	extractCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outPath, _ := cmd.Flags().GetString("out")

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

	result, err := pipeline.Extract(inputData, pipeline.Options{
		Password: password,
		Scheme:   scheme,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(result.Message), 0o600); err != nil {
			return fmt.Errorf("writing message: %w", err)
		}
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Message)
	return nil
}
