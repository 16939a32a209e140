package prompter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reglet-dev/script-sandbox/domain/policy"
	"github.com/reglet-dev/script-sandbox/domain/ports"
	"golang.org/x/term"
)

var _ ports.Prompter = (*CliPrompter)(nil)

// CliPrompter implements ports.Prompter for CLI environments.
type CliPrompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

// NewCliPrompter creates a new CliPrompter.
func NewCliPrompter(in io.Reader, out io.Writer) *CliPrompter {
	return &CliPrompter{in: in, reader: bufio.NewReader(in), out: out}
}

// IsInteractive checks if the input is a terminal.
func (p *CliPrompter) IsInteractive() bool {
	f, ok := p.in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PromptForApproval asks whether one pending signature should be approved.
// An empty answer leaves it pending.
func (p *CliPrompter) PromptForApproval(signature string) (approved bool, skip bool, err error) {
	_, _ = fmt.Fprintf(p.out, "Pending: %s\n", signature)
	_, _ = fmt.Fprintf(p.out, "Approve? [y/n/s(kip)]: ")

	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return false, false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, false, nil
	case "n", "no":
		return false, false, nil
	default:
		return false, true, nil
	}
}

// FormatNonInteractiveError explains how to review pending signatures when
// no terminal is attached.
func (p *CliPrompter) FormatNonInteractiveError(pending []string, storePath string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d signature(s) awaiting approval in %s; edit the file or rerun in a terminal", len(pending), storePath)
	for _, sig := range pending {
		b.WriteString("\n  ")
		b.WriteString(sig)
		if policy.IsPermanentlyBlacklisted(sig) {
			b.WriteString(" (permanently blacklisted)")
		}
	}
	return errors.New(b.String())
}
