package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/suyash9664/EnPix/internal/bitplane"
	"github.com/suyash9664/EnPix/internal/crypt"
	"github.com/suyash9664/EnPix/internal/imageio"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity [file]",
	Short: "Show how large a message an image can carry",
	Args:  cobra.ExactArgs(1),
	RunE:  runCapacity,
}

func init() {
	rootCmd.AddCommand(capacityCmd)
}

func runCapacity(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	decoded, err := imageio.Decode(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	g := decoded.Grid
	payload := bitplane.Capacity(g)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", g.Width, g.Height)
	fmt.Fprintf(out, "Channels:   %s\n", humanize.Comma(int64(g.Channels())))
	if payload < 0 {
		fmt.Fprintln(out, "Payload:    none (image too small for the length prefix)")
		return nil
	}
	fmt.Fprintf(out, "Payload:    %s\n", humanize.IBytes(uint64(payload)))
	for _, s := range []crypt.Scheme{crypt.SchemeLegacy, crypt.SchemeSealed} {
		if n := s.MaxPlaintext(payload); n >= 0 {
			fmt.Fprintf(out, "Max message (%s): %s bytes\n", s, humanize.Comma(int64(n)))
		} else {
			fmt.Fprintf(out, "Max message (%s): none\n", s)
		}
	}
	return nil
}
