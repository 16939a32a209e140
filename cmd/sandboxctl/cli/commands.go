// Package cli implements the sandboxctl commands.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/reglet-dev/script-sandbox/cmd/sandboxctl/cli/options"
	"github.com/spf13/cobra"
)

// exitError carries a process exit status for outcomes that are not failures
// of the tool itself, such as a rejected check.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

// New builds the sandboxctl root command.
func New() *cobra.Command {
	ro := &options.RootOptions{}
	var logger *slog.Logger

	cmd := &cobra.Command{
		Use:               "sandboxctl",
		Short:             "Inspect and test script sandbox policies.",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := ro.Validate(); err != nil {
				return err
			}
			l, err := ro.NewLogger(cmd, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			logger = l
			return nil
		},
	}
	ro.AddFlags(cmd)

	loggerFn := func() *slog.Logger {
		if logger == nil {
			return slog.Default()
		}
		return logger
	}

	for _, sub := range []*cobra.Command{
		Check(ro, loggerFn),
		Lint(ro, loggerFn),
		Schema(),
		Approvals(loggerFn),
	} {
		reportErrors(ro, sub)
		cmd.AddCommand(sub)
	}
	return cmd
}
