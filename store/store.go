// Package store owns the in-memory subject tree and mirrors it to durable
// storage under one fixed key.
//
// The tree is treated as an immutable value: every mutation builds new
// slices along the edited path, so snapshots handed out earlier stay valid.
// Update and delete operations on unknown ids are silent no-ops; they return
// false so callers that care can tell, and persist nothing.
package store

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/andrewpaige1/studysync-api/logger"
	"github.com/andrewpaige1/studysync-api/models"
	"github.com/andrewpaige1/studysync-api/storage"
	"github.com/andrewpaige1/studysync-api/utils"
)

// DefaultKey is the record key the tree is stored under.
const DefaultKey = "studySyncData"

type Store struct {
	mu       sync.Mutex
	storage  storage.Storage
	key      string
	log      *logger.Logger
	newID    func() string
	subjects []models.Subject

	// loaded is read without mu so readiness checks never wait on a slow load.
	loaded atomic.Bool
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithIDGenerator overrides id generation. Ids must never repeat.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New returns an empty, not yet loaded store. Call Load before serving.
func New(st storage.Storage, opts ...Option) *Store {
	s := &Store{
		storage:  st,
		key:      DefaultKey,
		log:      logger.NewNop(),
		newID:    utils.NewID,
		subjects: []models.Subject{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "StudyDataStore", "key", s.key)
	return s
}

// Load reads the durable record once. An absent record leaves the tree
// empty; a malformed or unreadable one is logged and also leaves it empty.
// Load never fails, and calls after the first are no-ops.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded.Load() {
		return
	}
	defer s.loaded.Store(true)

	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.log.Error("Failed to read study data, starting empty", "error", err)
		s.subjects = []models.Subject{}
		return
	}
	if !ok {
		s.log.Info("No study data stored yet")
		return
	}

	data, err := models.DecodeStudyData(raw)
	if err != nil {
		s.log.Error("Failed to parse study data, starting empty", "error", err)
		s.subjects = []models.Subject{}
		return
	}

	// A stored record replaces anything built against the empty default.
	s.subjects = data.Subjects
	s.log.Info("Loaded study data", "subjects", len(data.Subjects))
}

// Loaded reports whether the initial load has completed, successfully or
// by falling back to an empty tree.
func (s *Store) Loaded() bool {
	return s.loaded.Load()
}

// Subjects returns a copy of the current subject collection.
func (s *Store) Subjects() []models.Subject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneSubjects(s.subjects)
}

// Overview summarizes progress over the current tree.
func (s *Store) Overview() models.Overview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Summarize(s.subjects)
}

// ReplaceSubjects swaps in a whole new tree.
func (s *Store) ReplaceSubjects(ctx context.Context, subjects []models.Subject) {
	next := models.CloneSubjects(subjects)
	s.mutate(ctx, func(_ []models.Subject) ([]models.Subject, bool) {
		return next, true
	})
}

// mutate applies fn to the current tree under the lock. When fn reports a
// change, the new tree becomes current and is persisted exactly once.
func (s *Store) mutate(ctx context.Context, fn func([]models.Subject) ([]models.Subject, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := fn(s.subjects)
	if !changed {
		return false
	}
	s.subjects = next
	s.persistLocked(ctx)
	return true
}

// persistLocked writes the full tree. Failures are logged and the in-memory
// tree stays authoritative. Nothing is written before the initial load, so
// the empty default can't clobber stored data.
func (s *Store) persistLocked(ctx context.Context) {
	if !s.loaded.Load() {
		return
	}

	raw, err := models.EncodeStudyData(s.subjects)
	if err != nil {
		s.log.Error("Failed to encode study data", "error", err)
		return
	}
	// The write outlives the request that caused it.
	if err := s.storage.Set(context.WithoutCancel(ctx), s.key, raw); err != nil {
		s.log.Error("Failed to save study data", "error", err)
	}
}
