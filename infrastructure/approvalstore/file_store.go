// Package approvalstore persists the approval workflow state as YAML.
package approvalstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/reglet-dev/script-sandbox/domain/entities"
	"github.com/reglet-dev/script-sandbox/domain/ports"
	"gopkg.in/yaml.v3"
)

// fileStoreConfig holds configuration for the FileStore.
type fileStoreConfig struct {
	path     string      // Path to the approvals file
	dirPerm  os.FileMode // Permission for created directories
	filePerm os.FileMode // Permission for the approvals file
}

func defaultFileStoreConfig() fileStoreConfig {
	return fileStoreConfig{
		path:     filepath.Join(os.Getenv("HOME"), ".sandbox", "approvals.yaml"),
		dirPerm:  0o755,
		filePerm: 0o600, // User-only read/write
	}
}

// FileStoreOption configures a FileStore instance.
type FileStoreOption func(*fileStoreConfig)

// WithPath sets the path to the approvals file.
func WithPath(path string) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.path = path
	}
}

// WithFilePermissions sets the file permissions for the approvals file.
// Default is 0o600 (user-only).
func WithFilePermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.filePerm = perm
	}
}

// WithDirPermissions sets the permissions of directories created on save.
// Default is 0o755.
func WithDirPermissions(perm os.FileMode) FileStoreOption {
	return func(c *fileStoreConfig) {
		c.dirPerm = perm
	}
}

// FileStore provides file-based persistence for approved and pending signatures.
type FileStore struct {
	config fileStoreConfig
}

var _ ports.ApprovalStore = (*FileStore)(nil)

// NewFileStore creates a new FileStore with the given options.
func NewFileStore(opts ...FileStoreOption) *FileStore {
	cfg := defaultFileStoreConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FileStore{config: cfg}
}

// Load reads the approval state. A missing file is an empty state.
func (s *FileStore) Load() (*entities.ApprovalSet, error) {
	data, err := os.ReadFile(s.config.path)
	if os.IsNotExist(err) {
		return &entities.ApprovalSet{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read approval store: %w", err)
	}

	var set entities.ApprovalSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse approval store: %w", err)
	}
	return &set, nil
}

// Save writes the approval state, creating parent directories as needed.
func (s *FileStore) Save(set *entities.ApprovalSet) error {
	if set == nil {
		set = &entities.ApprovalSet{}
	}
	data, err := yaml.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to marshal approvals: %w", err)
	}

	dir := filepath.Dir(s.config.path)
	if err := os.MkdirAll(dir, s.config.dirPerm); err != nil {
		return fmt.Errorf("failed to create approval store directory: %w", err)
	}

	if err := os.WriteFile(s.config.path, data, s.config.filePerm); err != nil {
		return fmt.Errorf("failed to write approval store: %w", err)
	}
	return nil
}

// ConfigPath returns the path to the backing store.
func (s *FileStore) ConfigPath() string {
	return s.config.path
}
