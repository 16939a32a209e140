package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reglet-dev/script-sandbox/application/sandbox"
	"github.com/reglet-dev/script-sandbox/cmd/sandboxctl/cli/options"
	"github.com/reglet-dev/script-sandbox/domain/entities"
	sberrors "github.com/reglet-dev/script-sandbox/domain/errors"
	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/spf13/cobra"
)

// Check builds the check command.
func Check(ro *options.RootOptions, logger func() *slog.Logger) *cobra.Command {
	o := &options.CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check --config FILE [--arg VALUE]... SIGNATURE",
		Short: "Check whether a call is allowed by a sandbox configuration.",
		Long: `Check whether a call is allowed by a sandbox configuration.

The call is given as a definition line, for example:

  sandboxctl check -c sandbox.yaml 'staticMethod java.lang.System getenv java.lang.String' --arg HOME`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := policy.ParseSignature(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if sig.IsWildcard() {
				return fmt.Errorf("cannot check wildcard signature %q", sig.String())
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), ro.Timeout)
			defer cancel()

			var extra []sandbox.BuilderOption
			if !o.Record {
				extra = append(extra, sandbox.WithGuardOptions(sandbox.WithApprovalQueue(nil)))
			}
			sb, err := loadSandbox(ctx, o.ConfigPath, logger(), extra...)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := sb.Close(); cerr != nil {
					logger().Warn("approvals not recorded", slog.Any("error", cerr))
				}
			}()

			values := make([]any, len(o.Args))
			for i, a := range o.Args {
				values[i] = a
			}

			err = checkSignature(sb.Guard, sig, values, o.Set)
			var rejected *sberrors.SecurityError
			if err != nil && !errors.As(err, &rejected) {
				return err
			}

			out := cmd.OutOrStdout()
			if ro.JSONOutput() {
				writeJSON(out, checkResult{
					Signature: sig.String(),
					Allowed:   rejected == nil,
					Error:     sberrors.ToErrorDetail(err),
				})
			} else if rejected != nil {
				_, _ = fmt.Fprintln(out, rejected.Error())
			} else {
				_, _ = fmt.Fprintln(out, "allowed")
			}
			if rejected != nil {
				return &exitError{code: 1, err: rejected}
			}
			return nil
		},
	}
	o.AddFlags(cmd)
	return cmd
}

type checkResult struct {
	Signature string                `json:"signature"`
	Allowed   bool                  `json:"allowed"`
	Error     *entities.ErrorDetail `json:"error,omitempty"`
}

// checkSignature asks g about the call sig describes, with every named type
// taken as a bootstrap type.
func checkSignature(g *sandbox.Guard, sig entities.Signature, args []any, set bool) error {
	declaring := entities.TypeByName(sig.TypeName(), nil)
	params := make([]*entities.Type, 0, len(sig.Params()))
	for _, p := range sig.Params() {
		params = append(params, entities.TypeByName(p, nil))
	}

	switch sig.Kind() {
	case entities.KindMethod:
		return g.CheckMethod(&entities.Method{Declaring: declaring, Name: sig.Member(), Params: params}, nil, args)
	case entities.KindStaticMethod:
		return g.CheckStaticMethod(&entities.Method{Declaring: declaring, Name: sig.Member(), Params: params, Static: true}, args)
	case entities.KindNew:
		return g.CheckConstructor(&entities.Constructor{Declaring: declaring, Params: params}, args)
	case entities.KindField:
		f := &entities.Field{Declaring: declaring, Name: sig.Member()}
		if set {
			return g.CheckFieldSet(f, nil, firstOrNil(args))
		}
		return g.CheckFieldGet(f, nil)
	case entities.KindStaticField:
		f := &entities.Field{Declaring: declaring, Name: sig.Member(), Static: true}
		if set {
			return g.CheckStaticFieldSet(f, firstOrNil(args))
		}
		return g.CheckStaticFieldGet(f)
	default:
		return fmt.Errorf("unsupported signature kind %s", sig.Kind())
	}
}

func firstOrNil(args []any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}
