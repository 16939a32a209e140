package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/reglet-dev/script-sandbox/application/sandbox"
	"github.com/reglet-dev/script-sandbox/application/validation"
	"github.com/reglet-dev/script-sandbox/domain/ports"
	"github.com/reglet-dev/script-sandbox/infrastructure/approvalstore"
	"github.com/reglet-dev/script-sandbox/infrastructure/definition"
	"github.com/reglet-dev/script-sandbox/infrastructure/parser"
)

// loadSandbox reads, validates and builds the sandbox described by the
// configuration at path. Relative paths inside it are relative to its directory.
func loadSandbox(ctx context.Context, path string, logger *slog.Logger, opts ...sandbox.BuilderOption) (*sandbox.Sandbox, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := parser.ForPath(path).Parse(data)
	if err != nil {
		return nil, err
	}
	validator, err := validation.NewConfigValidator()
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(path)
	builder := sandbox.NewBuilder(append([]sandbox.BuilderOption{
		sandbox.WithResolver(definition.NewResolver(definition.WithBaseDir(baseDir))),
		sandbox.WithValidator(validator),
		sandbox.WithApprovalStores(func(p string) ports.ApprovalStore {
			return approvalstore.NewFileStore(approvalstore.WithPath(resolvePath(baseDir, p)))
		}),
		sandbox.WithBuilderLogger(logger),
	}, opts...)...)
	return builder.Build(ctx, cfg)
}

// resolvePath expands a leading "~/" and anchors relative paths at baseDir.
func resolvePath(baseDir, p string) string {
	if rest, ok := strings.CutPrefix(p, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
