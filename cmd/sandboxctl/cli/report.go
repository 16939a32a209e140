package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/reglet-dev/script-sandbox/cmd/sandboxctl/cli/options"
	"github.com/reglet-dev/script-sandbox/domain/entities"
	sberrors "github.com/reglet-dev/script-sandbox/domain/errors"
	"github.com/spf13/cobra"
)

// reporter prints findings as text lines or, with --output json, as one
// ErrorDetail object per line.
type reporter struct {
	out  io.Writer
	json bool
}

func newReporter(ro *options.RootOptions, out io.Writer) reporter {
	return reporter{out: out, json: ro.JSONOutput()}
}

// finding prints d, or text when printing text.
func (r reporter) finding(d *entities.ErrorDetail, text string) {
	if r.json {
		writeJSON(r.out, d)
		return
	}
	_, _ = fmt.Fprintln(r.out, text)
}

// warning builds the detail of a lint warning about signature in source.
func warning(code, message, source, signature string) *entities.ErrorDetail {
	return entities.NewErrorDetail("lint", message).
		WithCode(code).
		WithDetails(map[string]any{"severity": "warning", "source": source, "signature": signature})
}

func writeJSON(w io.Writer, v any) {
	_ = json.NewEncoder(w).Encode(v)
}

// reportErrors makes cmd print a failure as {"error": ErrorDetail} on stderr
// when JSON output is selected. The returned exitError stops main from
// printing it again.
func reportErrors(ro *options.RootOptions, cmd *cobra.Command) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(c *cobra.Command, args []string) error {
		err := run(c, args)
		var ee *exitError
		if err == nil || !ro.JSONOutput() || errors.As(err, &ee) {
			return err
		}
		writeJSON(c.ErrOrStderr(), map[string]any{"error": sberrors.ToErrorDetail(err)})
		return &exitError{code: 1, err: err}
	}
}
