package store

import (
	"context"

	"github.com/andrewpaige1/studysync-api/models"
)

func (s *Store) AddReference(ctx context.Context, subjectID, chapterID, title string, refType models.ReferenceType, content string) (models.Reference, bool) {
	ref := models.Reference{
		ID:      s.newID(),
		Title:   title,
		Type:    refType,
		Content: content,
	}
	ok := s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		return editChapter(subjects, subjectID, chapterID, func(c models.Chapter) (models.Chapter, bool) {
			c.References = withAppended(c.References, ref)
			return c, true
		})
	})
	if !ok {
		return models.Reference{}, false
	}
	return ref, true
}

func (s *Store) UpdateReference(ctx context.Context, subjectID, chapterID, referenceID string, update models.ReferenceUpdate) (models.Reference, bool) {
	var updated models.Reference
	ok := s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		return editChapter(subjects, subjectID, chapterID, func(c models.Chapter) (models.Chapter, bool) {
			i := referenceIndex(c.References, referenceID)
			if i < 0 {
				return c, false
			}
			updated = update.Apply(c.References[i])
			c.References = withReplaced(c.References, i, updated)
			return c, true
		})
	})
	if !ok {
		return models.Reference{}, false
	}
	return updated, true
}

func (s *Store) DeleteReference(ctx context.Context, subjectID, chapterID, referenceID string) bool {
	return s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		return editChapter(subjects, subjectID, chapterID, func(c models.Chapter) (models.Chapter, bool) {
			i := referenceIndex(c.References, referenceID)
			if i < 0 {
				return c, false
			}
			c.References = withRemoved(c.References, i)
			return c, true
		})
	})
}
