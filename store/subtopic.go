package store

import (
	"context"

	"github.com/andrewpaige1/studysync-api/models"
)

// AddSubTopic appends an uncompleted sub-topic to the chapter.
func (s *Store) AddSubTopic(ctx context.Context, subjectID, chapterID, title string, priority models.Priority) (models.SubTopic, bool) {
	subTopic := models.SubTopic{
		ID:       s.newID(),
		Title:    title,
		Priority: priority,
	}
	ok := s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		return editChapter(subjects, subjectID, chapterID, func(c models.Chapter) (models.Chapter, bool) {
			c.SubTopics = withAppended(c.SubTopics, subTopic)
			return c, true
		})
	})
	if !ok {
		return models.SubTopic{}, false
	}
	return subTopic, true
}

// UpdateSubTopic returns the merged sub-topic as it now stands in the tree.
func (s *Store) UpdateSubTopic(ctx context.Context, subjectID, chapterID, subTopicID string, update models.SubTopicUpdate) (models.SubTopic, bool) {
	var updated models.SubTopic
	ok := s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		return editChapter(subjects, subjectID, chapterID, func(c models.Chapter) (models.Chapter, bool) {
			i := subTopicIndex(c.SubTopics, subTopicID)
			if i < 0 {
				return c, false
			}
			updated = update.Apply(c.SubTopics[i])
			c.SubTopics = withReplaced(c.SubTopics, i, updated)
			return c, true
		})
	})
	if !ok {
		return models.SubTopic{}, false
	}
	return updated, true
}

func (s *Store) DeleteSubTopic(ctx context.Context, subjectID, chapterID, subTopicID string) bool {
	return s.mutate(ctx, func(subjects []models.Subject) ([]models.Subject, bool) {
		return editChapter(subjects, subjectID, chapterID, func(c models.Chapter) (models.Chapter, bool) {
			i := subTopicIndex(c.SubTopics, subTopicID)
			if i < 0 {
				return c, false
			}
			c.SubTopics = withRemoved(c.SubTopics, i)
			return c, true
		})
	})
}
