package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/reglet-dev/script-sandbox/application/validation"
	"github.com/reglet-dev/script-sandbox/cmd/sandboxctl/cli/options"
	"github.com/reglet-dev/script-sandbox/domain/entities"
	sberrors "github.com/reglet-dev/script-sandbox/domain/errors"
	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/reglet-dev/script-sandbox/domain/ports"
	"github.com/reglet-dev/script-sandbox/infrastructure/parser"
	"github.com/reglet-dev/script-sandbox/infrastructure/typeregistry"
	"github.com/spf13/cobra"
)

// Lint builds the lint command.
func Lint(ro *options.RootOptions, logger func() *slog.Logger) *cobra.Command {
	o := &options.LintOptions{}

	cmd := &cobra.Command{
		Use:   "lint [--catalog FILE] [--config FILE] DEFINITION...",
		Short: "Parse definition files and report problems.",
		Long: `Parse definition files and report problems.

Malformed lines are errors. Permanently blacklisted signatures, and with
--catalog signatures naming members that do not exist, are warnings.`,
		RunE: func(cmd *cobra.Command, files []string) error {
			if len(files) == 0 && o.ConfigPath == "" {
				return fmt.Errorf("nothing to lint")
			}
			out := cmd.OutOrStdout()
			r := newReporter(ro, out)

			var types ports.TypeResolver
			if o.CatalogPath != "" {
				reg := typeregistry.NewRegistry()
				if err := reg.LoadCatalogFile(o.CatalogPath); err != nil {
					return err
				}
				types = reg
			}

			var errs, warnings int
			if o.ConfigPath != "" {
				n, err := lintConfig(r, o.ConfigPath)
				if err != nil {
					return err
				}
				errs += n
			}
			for _, file := range files {
				e, w := lintDefinition(r, file, types)
				errs += e
				warnings += w
			}

			logger().Debug("lint finished", slog.Int("files", len(files)), slog.Int("errors", errs), slog.Int("warnings", warnings))
			if ro.JSONOutput() {
				writeJSON(out, map[string]int{"errors": errs, "warnings": warnings})
			} else {
				_, _ = fmt.Fprintf(out, "%d error(s), %d warning(s)\n", errs, warnings)
			}
			if errs > 0 || (o.Strict && warnings > 0) {
				return &exitError{code: 1, err: fmt.Errorf("lint found %d error(s), %d warning(s)", errs, warnings)}
			}
			return nil
		},
	}
	o.AddFlags(cmd)
	return cmd
}

func lintDefinition(r reporter, file string, types ports.TypeResolver) (errs, warnings int) {
	f, err := os.Open(file)
	if err != nil {
		r.finding(sberrors.ToErrorDetail(&sberrors.SourceError{Source: file, Err: err}), fmt.Sprintf("%s: %v", file, err))
		return 1, 0
	}
	defer func() { _ = f.Close() }()

	sigs, err := policy.ParseDefinition(f, file)
	if err != nil {
		r.finding(sberrors.ToErrorDetail(err), err.Error())
		return 1, 0
	}

	seen := make(map[string]bool, len(sigs))
	for _, sig := range sigs {
		line := sig.String()
		var d *entities.ErrorDetail
		switch {
		case seen[line]:
			d = warning("duplicate", fmt.Sprintf("duplicate %q", line), file, line)
		case policy.IsPermanentlyBlacklisted(line):
			d = warning("blacklisted", fmt.Sprintf("%q is permanently blacklisted", line), file, line)
		case types != nil && !sig.IsWildcard() && !policy.Exists(sig, types):
			d = warning("not_found", fmt.Sprintf("%q does not exist", line), file, line)
		}
		if d != nil {
			r.finding(d, fmt.Sprintf("%s: warning: %s", file, d.Message))
			warnings++
		}
		seen[line] = true
	}
	return 0, warnings
}

func lintConfig(r reporter, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read config: %w", err)
	}
	v, err := validation.NewConfigValidator()
	if err != nil {
		return 0, err
	}
	var res *entities.ValidationResult
	if parser.IsTOML(path) {
		var doc map[string]interface{}
		if doc, err = parser.DecodeTOMLDocument(data); err == nil {
			res, err = v.ValidateObject(doc)
		}
	} else {
		res, err = v.ValidateDocument(data)
	}
	if err != nil {
		r.finding(sberrors.ToErrorDetail(&sberrors.ConfigError{Err: err}), fmt.Sprintf("%s: %v", path, err))
		return 1, nil
	}
	for _, e := range res.Errors {
		d := sberrors.ToErrorDetail(&sberrors.ConfigError{Field: e.Field, Err: errors.New(e.Message)}).
			WithDetails(map[string]any{"source": path})
		r.finding(d, fmt.Sprintf("%s: %s: %s", path, e.Field, e.Message))
	}
	return len(res.Errors), nil
}
