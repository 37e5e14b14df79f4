package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrewpaige1/studysync-api/models"
	"github.com/andrewpaige1/studysync-api/storage"
	"github.com/andrewpaige1/studysync-api/store"
)

func openSQLStorage(t *testing.T) *storage.SQL {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "studysync.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	st, err := storage.NewSQL(db)
	require.NoError(t, err)
	return st
}

func Test_Mutation_Persists_When_Caller_Context_Is_Cancelled(t *testing.T) {
	t.Parallel()

	backend := openSQLStorage(t)
	s := store.New(backend, store.WithIDGenerator(sequentialIDs()))
	s.Load(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	subject := s.AddSubject(ctx, "Algebra", "#3b82f6")
	chapter, ok := s.AddChapter(ctx, subject.ID, "Linear Equations")
	require.True(t, ok)

	stored := storedSubjects(t, backend)
	require.Len(t, stored, 1)
	assert.Equal(t, "Algebra", stored[0].Title)
	require.Len(t, stored[0].Chapters, 1)
	assert.Equal(t, chapter.ID, stored[0].Chapters[0].ID)

	reloaded := store.New(backend)
	reloaded.Load(context.Background())
	assert.Equal(t, s.Subjects(), reloaded.Subjects())
}

func Test_Updates_Return_The_Merged_Entity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newLoadedStore(t)
	subject := s.AddSubject(ctx, "Algebra", "#3b82f6")
	chapter, _ := s.AddChapter(ctx, subject.ID, "Linear Equations")
	st, _ := s.AddSubTopic(ctx, subject.ID, chapter.ID, "Slope", models.PriorityHigh)
	ref, _ := s.AddReference(ctx, subject.ID, chapter.ID, "Video", models.ReferenceLink, "https://example.com/v")

	gotSubject, ok := s.UpdateSubject(ctx, subject.ID, models.SubjectUpdate{Color: ptr("#000000")})
	require.True(t, ok)
	assert.Equal(t, "Algebra", gotSubject.Title)
	assert.Equal(t, "#000000", gotSubject.Color)
	require.Len(t, gotSubject.Chapters, 1)

	gotChapter, ok := s.UpdateChapter(ctx, subject.ID, chapter.ID, models.ChapterUpdate{Title: ptr("Lines")})
	require.True(t, ok)
	assert.Equal(t, "Lines", gotChapter.Title)
	assert.Len(t, gotChapter.SubTopics, 1)

	gotSubTopic, ok := s.UpdateSubTopic(ctx, subject.ID, chapter.ID, st.ID, models.SubTopicUpdate{Completed: ptr(true)})
	require.True(t, ok)
	assert.Equal(t, models.SubTopic{ID: st.ID, Title: "Slope", Completed: true, Priority: models.PriorityHigh}, gotSubTopic)

	gotRef, ok := s.UpdateReference(ctx, subject.ID, chapter.ID, ref.ID, models.ReferenceUpdate{Title: ptr("Lecture")})
	require.True(t, ok)
	assert.Equal(t, models.Reference{ID: ref.ID, Title: "Lecture", Type: models.ReferenceLink, Content: "https://example.com/v"}, gotRef)

	// The returned subject is a copy.
	gotSubject.Chapters[0].Title = "mutated"
	current, _ := s.GetChapter(subject.ID, chapter.ID)
	assert.Equal(t, "Lines", current.Title)

	missing, ok := s.UpdateSubTopic(ctx, subject.ID, chapter.ID, "missing", models.SubTopicUpdate{Completed: ptr(true)})
	assert.False(t, ok)
	assert.Zero(t, missing)
}
