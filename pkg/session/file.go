package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore is a file-based result store for CLI applications.
// Results are stored as JSON files in a config directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a new file-based result store.
// If baseDir is empty, defaults to ~/.config/pipesmith/results/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "pipesmith", "results")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create result dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) resultPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Get(ctx context.Context, id string) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.resultPath(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read result file: %w", err)
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parse result: %w", err)
	}

	if res.IsExpired() {
		os.Remove(path)
		return nil, nil
	}
	return &res, nil
}

func (s *FileStore) Set(ctx context.Context, res *Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	path := s.resultPath(res.ID)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write result file: %w", err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.resultPath(id)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove result file: %w", err)
	}
	return nil
}

func (s *FileStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return fmt.Errorf("read result dir: %w", err)
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(s.baseDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var res Result
		if err := json.Unmarshal(data, &res); err != nil {
			continue
		}
		if now.After(res.ExpiresAt) {
			os.Remove(path)
		}
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for result files.
func (s *FileStore) Path() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)

// =============================================================================
// CLI convenience wrapper
// =============================================================================

const latestResultID = "latest"

// CLIStore wraps FileStore to track the most recent CLI run.
type CLIStore struct {
	store *FileStore
}

// NewCLIStore creates a store for the CLI's last-run result.
func NewCLIStore() (*CLIStore, error) {
	store, err := NewFileStore("")
	if err != nil {
		return nil, err
	}
	return &CLIStore{store: store}, nil
}

// Latest retrieves the most recent result.
func (c *CLIStore) Latest(ctx context.Context) (*Result, error) {
	return c.store.Get(ctx, latestResultID)
}

// SaveLatest stores a result as the most recent one.
func (c *CLIStore) SaveLatest(ctx context.Context, res *Result) error {
	res.ID = latestResultID
	return c.store.Set(ctx, res)
}

// Path returns the path of the last-run result file.
func (c *CLIStore) Path() string {
	return c.store.resultPath(latestResultID)
}
