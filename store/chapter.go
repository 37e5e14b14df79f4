package store

import (
	"context"

	"github.com/andrewpaige1/studysync-api/models"
)

// AddChapter appends a chapter to the subject. When the subject does not
// exist nothing is created and ok is false.
func (s *Store) AddChapter(ctx context.Context, subjectID, title string) (chapter models.Chapter, ok bool) {
	chapter = models.Chapter{
		ID:         s.newID(),
		Title:      title,
		SubTopics:  []models.SubTopic{},
		References: []models.Reference{},
	}
	ok = s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		return editSubject(subjects, subjectID, func(subject models.Subject) (models.Subject, bool) {
			subject.Chapters = withAppended(subject.Chapters, chapter)
			return subject, true
		})
	})
	if !ok {
		return models.Chapter{}, false
	}
	return chapter.Clone(), true
}

func (s *Store) UpdateChapter(ctx context.Context, subjectID, chapterID string, update models.ChapterUpdate) (models.Chapter, bool) {
	var updated models.Chapter
	ok := s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		return editChapter(subjects, subjectID, chapterID, func(c models.Chapter) (models.Chapter, bool) {
			updated = update.Apply(c)
			return updated, true
		})
	})
	if !ok {
		return models.Chapter{}, false
	}
	return updated.Clone(), true
}

// DeleteChapter removes the chapter with all of its sub-topics and references.
func (s *Store) DeleteChapter(ctx context.Context, subjectID, chapterID string) bool {
	return s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		return editSubject(subjects, subjectID, func(subject models.Subject) (models.Subject, bool) {
			i := chapterIndex(subject.Chapters, chapterID)
			if i < 0 {
				return subject, false
			}
			subject.Chapters = withRemoved(subject.Chapters, i)
			return subject, true
		})
	})
}

func (s *Store) GetChapter(subjectID, chapterID string) (models.Chapter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	si := subjectIndex(s.subjects, subjectID)
	if si < 0 {
		return models.Chapter{}, false
	}
	ci := chapterIndex(s.subjects[si].Chapters, chapterID)
	if ci < 0 {
		return models.Chapter{}, false
	}
	return s.subjects[si].Chapters[ci].Clone(), true
}
