// Package commands wires the agedcache CLI.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"agedcache/internal/config"
)

// state is shared by the root command and its children once
// PersistentPreRunE has run.
type state struct {
	settings config.Settings
	log      *slog.Logger
}

// Execute runs the CLI application.
func Execute(version string) error {
	root := NewRootCmd(version)
	err := root.Execute()
	if err != nil {
		slog.Error("command failed", "error", err.Error())
	}
	return err
}

// NewRootCmd builds the command tree. Observations go to the command's
// stdout, logs to its stderr.
func NewRootCmd(version string) *cobra.Command {
	st := &state{
		settings: config.Defaults(),
		log:      slog.Default(),
	}

	root := &cobra.Command{
		Use:           "agedcache",
		Short:         "Time-bounded key/value cache demos",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			s, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if format, _ := cmd.Flags().GetString("log-format"); format != "" {
				s.LogFormat = format
			}
			if err := s.Validate(); err != nil {
				return err
			}

			st.settings = s
			st.log = newLogger(cmd.ErrOrStderr(), s.LogFormat)
			slog.SetDefault(st.log)
			return nil
		},
	}

	root.PersistentFlags().String("config", defaultConfigPath(), "Path to YAML settings (missing file means defaults)")
	root.PersistentFlags().String("log-format", "", "Log format: json|text (default: settings log_format)")

	root.AddCommand(newDemoCmd(st))
	root.AddCommand(newLiveCmd(st))

	return root
}

func newLogger(w io.Writer, format string) *slog.Logger {
	if format == config.LogFormatText {
		return slog.New(slog.NewTextHandler(w, nil))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

func defaultConfigPath() string {
	if p := os.Getenv("AGEDCACHE_CONFIG"); p != "" {
		return p
	}
	return "agedcache.yaml"
}
