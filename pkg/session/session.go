// Package session provides storage for generation results.
//
// A Result captures one pipeline run: the finalized requirements model and
// the artifacts generated from it. The Store interface supports different
// backends:
//   - memory: In-memory storage for development/testing
//   - redis: Redis-backed storage for multi-instance API deployments
//   - file: File-based storage for CLI applications
//
// # Architecture
//
// Results are stored with automatic expiration. The Store interface
// supports:
//   - Get/Set/Delete operations
//   - Automatic expiration checking
//   - Cleanup of expired results
//
// # Usage
//
// Create a store:
//
//	// Development
//	store := session.NewMemoryStore()
//
//	// Production
//	store := session.NewRedisStore(session.RedisConfig{
//	    Addr: "localhost:6379",
//	})
//
//	// CLI
//	store, err := session.NewFileStore("")  // Uses ~/.config/pipesmith/results/
//
// Manage results:
//
//	res := session.NewResult(model, files, session.DefaultTTL)
//	if err := store.Set(ctx, res); err != nil {
//	    return err
//	}
//
//	res, err := store.Get(ctx, resultID)
//	if err != nil {
//	    return err
//	}
//	if res == nil {
//	    // Result not found or expired
//	}
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pipesmith/pipesmith/pkg/generate"
	"github.com/pipesmith/pipesmith/pkg/requirements"
)

// Sentinel errors for result operations.
var (
	// ErrNotFound is returned when a result does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExpired is returned when a result has exceeded its TTL.
	ErrExpired = errors.New("expired")
)

// Result stores one pipeline run: the finalized model and its artifacts.
type Result struct {
	ID        string                    `json:"id"`
	Model     requirements.Requirements `json:"model"`
	Files     generate.Files            `json:"files"`
	ExpiresAt time.Time                 `json:"expires_at"`
	CreatedAt time.Time                 `json:"created_at"`
}

// IsExpired returns true if the result has expired.
func (r *Result) IsExpired() bool {
	return time.Now().After(r.ExpiresAt)
}

// Store is the interface for result storage backends.
type Store interface {
	// Get retrieves a result by ID.
	// Returns nil, nil if the result doesn't exist or has expired.
	Get(ctx context.Context, id string) (*Result, error)

	// Set stores a result.
	Set(ctx context.Context, result *Result) error

	// Delete removes a result.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired results (may be a no-op for Redis).
	Cleanup(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is the default result retention duration.
const DefaultTTL = 24 * time.Hour

// NewResult creates a result with a fresh ID.
func NewResult(model requirements.Requirements, files generate.Files, ttl time.Duration) *Result {
	now := time.Now()
	return &Result{
		ID:        uuid.NewString(),
		Model:     model,
		Files:     files,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}
