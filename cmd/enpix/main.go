package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suyash9664/EnPix/internal/config"
	"github.com/suyash9664/EnPix/internal/crypt"
	"github.com/suyash9664/EnPix/internal/logger"
)

var (
	cfg config.Config
	log = logger.Discard()
)

var rootCmd = &cobra.Command{
	Use:           "enpix",
	Short:         "Hide password-protected messages in lossless images",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		log, err = cfg.Logger(logger.WithAttr(slog.String("cmd", cmd.Name())))
		return err
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var errNoPassword = errors.New("password must not be blank (use --password or ENPIX_PASSWORD)")

// resolvePassword prefers the flag over the environment.
func resolvePassword(cmd *cobra.Command) (string, error) {
	pw, _ := cmd.Flags().GetString("password")
	if pw == "" {
		pw = cfg.Password
	}
	if strings.TrimSpace(pw) == "" {
		return "", errNoPassword
	}
	return pw, nil
}

// resolveScheme prefers the flag over the environment.
func resolveScheme(cmd *cobra.Command) (crypt.Scheme, error) {
	name, _ := cmd.Flags().GetString("scheme")
	if name == "" {
		name = cfg.Scheme
	}
	return crypt.ParseScheme(name)
}

func addSecretFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("password", "p", "", "Password (falls back to ENPIX_PASSWORD)")
	cmd.Flags().String("scheme", "", "Payload scheme: legacy or sealed (falls back to ENPIX_SCHEME)")
}
