// Package options defines the command-line flags of sandboxctl.
package options

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/reglet-dev/script-sandbox/log"
	"github.com/spf13/cobra"
)

// DefaultTimeout bounds loading definitions, including remote ones.
const DefaultTimeout = time.Minute

// RootOptions defines flags available to every subcommand.
type RootOptions struct {
	// LogLevel sets the minimum log level (debug, info, warn, error).
	LogLevel string
	// LogJSON forces JSON log output; by default terminals get text.
	LogJSON bool
	// Timeout sets the maximum duration for command execution.
	Timeout time.Duration
	// Output selects how results and errors are printed (text, json).
	Output string
}

// JSONOutput reports whether results are printed as JSON.
func (o *RootOptions) JSONOutput() bool {
	return o.Output == "json"
}

// Validate checks flag values that cobra cannot check itself.
func (o *RootOptions) Validate() error {
	switch o.Output {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid --output %q: must be text or json", o.Output)
	}
}

// AddFlags adds the root-level flags to cmd.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "warn",
		"set the minimum log level (debug, info, warn, error)")

	cmd.PersistentFlags().BoolVar(&o.LogJSON, "log-json", false,
		"write logs as JSON")

	cmd.PersistentFlags().StringVar(&o.Output, "output", "text",
		"print results and errors as text or json")

	cmd.PersistentFlags().DurationVarP(&o.Timeout, "timeout", "t", DefaultTimeout,
		"timeout for commands")
}

// NewLogger creates the logger selected by the flags, writing to w.
func (o *RootOptions) NewLogger(cmd *cobra.Command, w io.Writer) (*slog.Logger, error) {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := []log.HandlerOption{log.WithLevel(level)}
	if cmd.Flags().Changed("log-json") {
		opts = append(opts, log.WithJSON(o.LogJSON))
	}
	return log.New(w, opts...), nil
}
