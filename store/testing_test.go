package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrewpaige1/studysync-api/models"
	"github.com/andrewpaige1/studysync-api/storage"
	"github.com/andrewpaige1/studysync-api/store"
)

var errDiskFull = errors.New("disk full")

// recordingStorage wraps Memory and counts writes. getErr and setErr inject failures.
type recordingStorage struct {
	*storage.Memory

	mu     sync.Mutex
	sets   int
	getErr error
	setErr error
}

func newRecordingStorage() *recordingStorage {
	return &recordingStorage{Memory: storage.NewMemory()}
}

func (r *recordingStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	r.mu.Lock()
	err := r.getErr
	r.mu.Unlock()
	if err != nil {
		return nil, false, err
	}
	return r.Memory.Get(ctx, key)
}

func (r *recordingStorage) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	r.sets++
	err := r.setErr
	r.mu.Unlock()
	if err != nil {
		return err
	}
	return r.Memory.Set(ctx, key, value)
}

func (r *recordingStorage) Sets() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sets
}

// sequentialIDs returns a generator producing id-1, id-2, ...
func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("id-%d", n.Add(1))
	}
}

func newLoadedStore(t *testing.T) (*store.Store, *recordingStorage) {
	t.Helper()

	st := newRecordingStorage()
	s := store.New(st, store.WithIDGenerator(sequentialIDs()))
	s.Load(context.Background())
	require.True(t, s.Loaded())
	return s, st
}

// storedSubjects decodes what is currently persisted.
func storedSubjects(t *testing.T, st storage.Storage) []models.Subject {
	t.Helper()

	raw, ok, err := st.Get(context.Background(), store.DefaultKey)
	require.NoError(t, err)
	require.True(t, ok, "nothing persisted")

	data, err := models.DecodeStudyData(raw)
	require.NoError(t, err)
	return data.Subjects
}

// found drops the entity from an Update* result.
func found(_ any, ok bool) bool { return ok }
