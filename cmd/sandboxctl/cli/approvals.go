package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/reglet-dev/script-sandbox/application/approval"
	"github.com/reglet-dev/script-sandbox/cmd/sandboxctl/cli/options"
	"github.com/reglet-dev/script-sandbox/infrastructure/approvalstore"
	"github.com/reglet-dev/script-sandbox/infrastructure/prompter"
	"github.com/spf13/cobra"
)

// Approvals builds the approvals command.
func Approvals(logger func() *slog.Logger) *cobra.Command {
	o := &options.ApprovalsOptions{}

	cmd := &cobra.Command{
		Use:   "approvals [--store FILE] [--list] [--approve SIGNATURE]...",
		Short: "Review signatures awaiting approval.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var storeOpts []approvalstore.FileStoreOption
			if o.StorePath != "" {
				storeOpts = append(storeOpts, approvalstore.WithPath(o.StorePath))
			}
			store := approvalstore.NewFileStore(storeOpts...)
			svc := approval.NewService(store, approval.WithLogger(logger()))
			if err := svc.Load(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(o.Approve) > 0 {
				for _, sig := range o.Approve {
					if err := svc.Approve(sig); err != nil {
						return err
					}
				}
				return svc.Save()
			}

			if o.List {
				printApprovals(out, svc)
				return nil
			}

			pending := svc.Pending()
			if len(pending) == 0 {
				_, _ = fmt.Fprintln(out, "nothing pending")
				return nil
			}
			p := prompter.NewCliPrompter(cmd.InOrStdin(), out)
			if !p.IsInteractive() {
				return p.FormatNonInteractiveError(pending, store.ConfigPath())
			}
			res, err := svc.Review(p)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "%d approved, %d denied, %d skipped\n", res.Approved, res.Denied, res.Skipped)
			return nil
		},
	}
	o.AddFlags(cmd)
	return cmd
}

func printApprovals(out io.Writer, svc *approval.Service) {
	_, _ = fmt.Fprintln(out, "approved:")
	for _, s := range svc.Approved() {
		_, _ = fmt.Fprintf(out, "  %s\n", s)
	}
	_, _ = fmt.Fprintln(out, "pending:")
	for _, s := range svc.Pending() {
		_, _ = fmt.Fprintf(out, "  %s\n", s)
	}
}
