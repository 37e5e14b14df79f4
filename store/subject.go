package store

import (
	"context"

	"github.com/andrewpaige1/studysync-api/models"
)

// AddSubject appends a new subject with a fresh id and no chapters.
func (s *Store) AddSubject(ctx context.Context, title, color string) models.Subject {
	subject := models.Subject{
		ID:       s.newID(),
		Title:    title,
		Color:    color,
		Chapters: []models.Chapter{},
	}
	s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		return withAppended(subjects, subject), true
	})
	return subject.Clone()
}

// UpdateSubject merges update into the subject and returns the result.
// Unknown ids are ignored.
func (s *Store) UpdateSubject(ctx context.Context, id string, update models.SubjectUpdate) (models.Subject, bool) {
	var updated models.Subject
	ok := s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		return editSubject(subjects, id, func(subject models.Subject) (models.Subject, bool) {
			updated = update.Apply(subject)
			return updated, true
		})
	})
	if !ok {
		return models.Subject{}, false
	}
	return updated.Clone(), true
}

// DeleteSubject removes the subject and everything below it.
func (s *Store) DeleteSubject(ctx context.Context, id string) bool {
	return s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		i := subjectIndex(subjects, id)
		if i < 0 {
			return subjects, false
		}
		return withRemoved(subjects, i), true
	})
}

func (s *Store) GetSubject(id string) (models.Subject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := subjectIndex(s.subjects, id)
	if i < 0 {
		return models.Subject{}, false
	}
	return s.subjects[i].Clone(), true
}
