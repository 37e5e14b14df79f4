package store

import (
	"slices"

	"github.com/andrewpaige1/studysync-api/models"
)

// The helpers below never write into an existing backing array. Each edit
// copies the slice it touches and leaves siblings shared.

func withReplaced[T any](items []T, i int, v T) []T {
	out := slices.Clone(items)
	out[i] = v
	return out
}

func withAppended[T any](items []T, v T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, v)
}

func withRemoved[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func subjectIndex(subjects []models.Subject, id string) int {
	return slices.IndexFunc(subjects, func(s models.Subject) bool { return s.ID == id })
}

func chapterIndex(chapters []models.Chapter, id string) int {
	return slices.IndexFunc(chapters, func(c models.Chapter) bool { return c.ID == id })
}

func subTopicIndex(subTopics []models.SubTopic, id string) int {
	return slices.IndexFunc(subTopics, func(st models.SubTopic) bool { return st.ID == id })
}

func referenceIndex(refs []models.Reference, id string) int {
	return slices.IndexFunc(refs, func(r models.Reference) bool { return r.ID == id })
}

// editSubject rewrites the subject with the given id.
func editSubject(subjects []models.Subject, id string, fn func(models.Subject) (models.Subject, bool)) ([]models.Subject, bool) {
	i := subjectIndex(subjects, id)
	if i < 0 {
		return subjects, false
	}
	updated, ok := fn(subjects[i])
	if !ok {
		return subjects, false
	}
	return withReplaced(subjects, i, updated), true
}

// editChapter rewrites one chapter inside one subject.
func editChapter(subjects []models.Subject, subjectID, chapterID string, fn func(models.Chapter) (models.Chapter, bool)) ([]models.Subject, bool) {
	return editSubject(subjects, subjectID, func(s models.Subject) (models.Subject, bool) {
		i := chapterIndex(s.Chapters, chapterID)
		if i < 0 {
			return s, false
		}
		updated, ok := fn(s.Chapters[i])
		if !ok {
			return s, false
		}
		s.Chapters = withReplaced(s.Chapters, i, updated)
		return s, true
	})
}
