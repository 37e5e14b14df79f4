// Package storage holds the durable key/value backends the study store
// persists its single record to.
package storage

import (
	"context"
	"errors"
)

// ErrInvalidKey is returned for keys a backend cannot address.
var ErrInvalidKey = errors.New("invalid storage key")

// Storage is durable key/value storage. Get reports absence through the
// bool rather than an error. Set replaces the value atomically: readers see
// either the old value or the new one, never a partial write.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
