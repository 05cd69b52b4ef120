package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hnimtadd/fwtype"
	"github.com/hnimtadd/fwtype/config"
	"github.com/hnimtadd/fwtype/logger"
)

// conversionError wraps failures that were logged while converting.
type conversionError struct {
	error
}

func (e conversionError) Unwrap() error {
	return e.error
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		logLevel   string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:           "fwtype [FILE...]",
		Short:         "generate fix width printing for LaTeX from plain text",
		Version:       longVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			format, err := logger.ParseType(logFormat)
			if err != nil {
				return err
			}
			log := logger.New(logger.Options{Buffer: stderr, Level: level, Type: format})

			params := config.Default()
			if configPath != "" {
				if params, err = config.LoadFile(configPath, params); err != nil {
					return err
				}
			}
			if err := applyParamFlags(cmd.Flags(), &params); err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{fwtype.StdinName}
			}
			if slices.Contains(args, fwtype.StdinName) && term.IsTerminal(int(os.Stdin.Fd())) {
				log.Info("reading from the terminal, end the input with Ctrl-D")
			}

			conv, err := fwtype.New(fwtype.Options{
				Params: params,
				Output: stdout,
				Logger: log,
			})
			if err != nil {
				return err
			}
			if err := conv.ConvertFiles(args); err != nil {
				return conversionError{err}
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	addParamFlags(cmd.Flags())
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with default parameters")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	return cmd
}

func main() {
	cmd := newRootCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		var conv conversionError
		if !errors.As(err, &conv) {
			fmt.Fprintln(os.Stderr, "fwtype:", err)
		}
		os.Exit(1)
	}
}
