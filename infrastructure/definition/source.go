// Package definition provides DefinitionSource adapters for files, globs,
// URLs, fs.FS trees, inline lines and the definitions shipped with the module.
package definition

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/reglet-dev/script-sandbox/domain/ports"
)

var (
	_ ports.DefinitionSource = (*FileSource)(nil)
	_ ports.DefinitionSource = (*FSSource)(nil)
	_ ports.DefinitionSource = (*URLSource)(nil)
	_ ports.DefinitionSource = (*LinesSource)(nil)
)

// FileSource reads a definition file from disk.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return s.path }

func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(s.path)
}

// FSSource reads a definition file from an fs.FS.
type FSSource struct {
	fsys fs.FS
	name string
}

// NewFSSource creates an FSSource for name within fsys.
func NewFSSource(fsys fs.FS, name string) *FSSource {
	return &FSSource{fsys: fsys, name: name}
}

func (s *FSSource) Name() string { return s.name }

func (s *FSSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fsys.Open(s.name)
}

// DefaultMaxDefinitionSize limits how much a URLSource reads (4MB).
const DefaultMaxDefinitionSize = 4 * 1024 * 1024

// URLSource fetches a definition over HTTP(S).
type URLSource struct {
	url     string
	client  *http.Client
	maxSize int64
}

// NewURLSource creates a URLSource. A nil client means http.DefaultClient.
func NewURLSource(url string, client *http.Client) *URLSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &URLSource{url: url, client: client, maxSize: DefaultMaxDefinitionSize}
}

// WithMaxSize sets the largest body Open will deliver; reading past it fails
// rather than truncating, since a truncated deny-list would permit too much.
func (s *URLSource) WithMaxSize(n int64) *URLSource {
	s.maxSize = n
	return s
}

func (s *URLSource) Name() string { return s.url }

func (s *URLSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	if resp.ContentLength > s.maxSize {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("definition is %d bytes, limit is %d", resp.ContentLength, s.maxSize)
	}
	return &boundedBody{ReadCloser: resp.Body, remaining: s.maxSize}, nil
}

// boundedBody fails once more than its limit has been read.
type boundedBody struct {
	io.ReadCloser
	remaining int64
}

func (b *boundedBody) Read(p []byte) (int, error) {
	if b.remaining < 0 {
		return 0, errTooLarge
	}
	if int64(len(p)) > b.remaining+1 {
		p = p[:b.remaining+1]
	}
	n, err := b.ReadCloser.Read(p)
	b.remaining -= int64(n)
	if b.remaining < 0 {
		return n, errTooLarge
	}
	return n, err
}

var errTooLarge = errors.New("definition exceeds size limit")

// LinesSource serves definition lines held in memory.
type LinesSource struct {
	name  string
	lines []string
}

// NewLinesSource creates a LinesSource reported under name.
func NewLinesSource(name string, lines []string) *LinesSource {
	return &LinesSource{name: name, lines: lines}
}

func (s *LinesSource) Name() string { return s.name }

func (s *LinesSource) Open(_ context.Context) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(strings.Join(s.lines, "\n"))), nil
}
