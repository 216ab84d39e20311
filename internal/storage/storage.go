// Package storage provides the data persistence layer for the fare
// application: a narrow key-value port over which each ledger
// collection is read and written independently as JSON.
package storage

import "context"

// Store is the persistence port consumed by the ledger. Each collection
// lives under its own key; values are JSON documents.
type Store interface {
	// Load reads the value stored under key into v. It returns false
	// with a nil error when no value has ever been stored under key, so
	// the caller can apply its documented default.
	Load(ctx context.Context, key string, v any) (bool, error)

	// Save writes v under key, replacing any previous value.
	Save(ctx context.Context, key string, v any) error

	// Delete removes the value stored under key. Missing keys are a no-op.
	Delete(ctx context.Context, key string) error

	Close() error
}
