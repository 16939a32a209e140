package policy

import (
	"bufio"
	"io"
	"strings"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/errors"
)

const maxLineLength = 1 << 20

// filterLine returns the trimmed content of a definition line, or false for
// blank lines and comments.
func filterLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	return trimmed, true
}

// ParseSignature parses one definition line. Named types and members are not
// checked for existence.
func ParseSignature(line string) (entities.Signature, error) {
	toks := strings.Fields(line)
	if len(toks) == 0 {
		return entities.Signature{}, &errors.ParseError{Line: line, Err: errors.ErrTokenCount}
	}

	kind, ok := entities.ParseKind(toks[0])
	if !ok {
		return entities.Signature{}, &errors.ParseError{Line: line, Err: errors.ErrUnknownKind}
	}

	switch kind {
	case entities.KindMethod, entities.KindStaticMethod:
		if len(toks) < 3 {
			return entities.Signature{}, &errors.ParseError{Line: line, Err: errors.ErrTokenCount}
		}
		return entities.NewSignature(kind, toks[1], toks[2], toks[3:]), nil
	case entities.KindNew:
		if len(toks) < 2 {
			return entities.Signature{}, &errors.ParseError{Line: line, Err: errors.ErrTokenCount}
		}
		return entities.NewSignature(kind, toks[1], "", toks[2:]), nil
	default:
		if len(toks) != 3 {
			return entities.Signature{}, &errors.ParseError{Line: line, Err: errors.ErrTokenCount}
		}
		return entities.NewSignature(kind, toks[1], toks[2], nil), nil
	}
}

// ParseLines parses definition lines, skipping blanks and comments. The first
// malformed line aborts parsing.
func ParseLines(lines []string, source string) ([]entities.Signature, error) {
	sigs := make([]entities.Signature, 0, len(lines))
	for i, raw := range lines {
		line, ok := filterLine(raw)
		if !ok {
			continue
		}
		s, err := ParseSignature(line)
		if err != nil {
			return nil, annotate(err, raw, i+1, source)
		}
		sigs = append(sigs, s)
	}
	return sigs, nil
}

// ParseDefinition reads a whole definition from r.
func ParseDefinition(r io.Reader, source string) ([]entities.Signature, error) {
	var sigs []entities.Signature
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	n := 0
	for scanner.Scan() {
		n++
		raw := scanner.Text()
		line, ok := filterLine(raw)
		if !ok {
			continue
		}
		s, err := ParseSignature(line)
		if err != nil {
			return nil, annotate(err, raw, n, source)
		}
		sigs = append(sigs, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, &errors.SourceError{Source: source, Err: err}
	}
	return sigs, nil
}

func annotate(err error, raw string, lineNumber int, source string) error {
	if pe, ok := err.(*errors.ParseError); ok {
		pe.Line = raw
		pe.LineNumber = lineNumber
		pe.Source = source
		return pe
	}
	return err
}

// FormatDefinition renders signatures one per line in canonical form.
func FormatDefinition(sigs []entities.Signature) string {
	var b strings.Builder
	for _, s := range sigs {
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	return b.String()
}
