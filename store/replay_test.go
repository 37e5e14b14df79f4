package store_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrewpaige1/studysync-api/models"
	"github.com/andrewpaige1/studysync-api/store"
)

// naiveTree is a straightforward mutable replay of the same operations the
// store performs immutably.
type naiveTree struct {
	subjects []*naiveSubject
}

type naiveSubject struct {
	models.Subject
	chapters []*models.Chapter
}

func (n *naiveTree) subject(id string) *naiveSubject {
	for _, s := range n.subjects {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (n *naiveTree) chapter(subjectID, chapterID string) *models.Chapter {
	s := n.subject(subjectID)
	if s == nil {
		return nil
	}
	for _, c := range s.chapters {
		if c.ID == chapterID {
			return c
		}
	}
	return nil
}

func (n *naiveTree) export() []models.Subject {
	out := []models.Subject{}
	for _, s := range n.subjects {
		subject := s.Subject
		subject.Chapters = []models.Chapter{}
		for _, c := range s.chapters {
			subject.Chapters = append(subject.Chapters, c.Clone())
		}
		out = append(out, subject)
	}
	return out
}

func Test_Random_Operation_Sequences_Match_Naive_Replay(t *testing.T) {
	t.Parallel()

	for seed := uint64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			t.Parallel()
			replay(t, seed, 300)
		})
	}
}

func replay(t *testing.T, seed uint64, steps int) {
	t.Helper()

	ctx := context.Background()
	rng := rand.New(rand.NewPCG(seed, seed*7919))
	s, st := newLoadedStore(t)
	model := &naiveTree{}

	// pick returns an existing id most of the time and an unknown one otherwise.
	pick := func(ids []string) string {
		if len(ids) == 0 || rng.IntN(10) == 0 {
			return "missing"
		}
		return ids[rng.IntN(len(ids))]
	}
	subjectIDs := func() []string {
		var ids []string
		for _, s := range model.subjects {
			ids = append(ids, s.ID)
		}
		return ids
	}
	chapterIDs := func(subjectID string) []string {
		var ids []string
		if s := model.subject(subjectID); s != nil {
			for _, c := range s.chapters {
				ids = append(ids, c.ID)
			}
		}
		return ids
	}
	priorities := []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}

	for step := 0; step < steps; step++ {
		sid := pick(subjectIDs())
		cid := pick(chapterIDs(sid))
		title := fmt.Sprintf("t%d", step)

		switch rng.IntN(12) {
		case 0, 1:
			got := s.AddSubject(ctx, title, "#fff")
			model.subjects = append(model.subjects, &naiveSubject{Subject: models.Subject{ID: got.ID, Title: title, Color: "#fff"}})
		case 2:
			s.UpdateSubject(ctx, sid, models.SubjectUpdate{Title: &title})
			if m := model.subject(sid); m != nil {
				m.Title = title
			}
		case 3:
			s.DeleteSubject(ctx, sid)
			for i, m := range model.subjects {
				if m.ID == sid {
					model.subjects = append(model.subjects[:i], model.subjects[i+1:]...)
					break
				}
			}
		case 4, 5:
			got, ok := s.AddChapter(ctx, sid, title)
			if m := model.subject(sid); m != nil {
				if !ok {
					t.Fatalf("step %d: AddChapter reported missing subject %s", step, sid)
				}
				m.chapters = append(m.chapters, &models.Chapter{ID: got.ID, Title: title, SubTopics: []models.SubTopic{}, References: []models.Reference{}})
			}
		case 6:
			s.DeleteChapter(ctx, sid, cid)
			if m := model.subject(sid); m != nil {
				for i, c := range m.chapters {
					if c.ID == cid {
						m.chapters = append(m.chapters[:i], m.chapters[i+1:]...)
						break
					}
				}
			}
		case 7, 8:
			priority := priorities[rng.IntN(len(priorities))]
			got, ok := s.AddSubTopic(ctx, sid, cid, title, priority)
			if c := model.chapter(sid, cid); c != nil {
				if !ok {
					t.Fatalf("step %d: AddSubTopic reported missing chapter", step)
				}
				c.SubTopics = append(c.SubTopics, models.SubTopic{ID: got.ID, Title: title, Priority: priority})
			}
		case 9:
			c := model.chapter(sid, cid)
			var ids []string
			if c != nil {
				for _, st := range c.SubTopics {
					ids = append(ids, st.ID)
				}
			}
			id := pick(ids)
			done := rng.IntN(2) == 0
			s.UpdateSubTopic(ctx, sid, cid, id, models.SubTopicUpdate{Completed: &done})
			if c != nil {
				for i := range c.SubTopics {
					if c.SubTopics[i].ID == id {
						c.SubTopics[i].Completed = done
					}
				}
			}
		case 10:
			got, ok := s.AddReference(ctx, sid, cid, title, models.ReferenceNote, "body")
			if c := model.chapter(sid, cid); c != nil {
				if !ok {
					t.Fatalf("step %d: AddReference reported missing chapter", step)
				}
				c.References = append(c.References, models.Reference{ID: got.ID, Title: title, Type: models.ReferenceNote, Content: "body"})
			}
		case 11:
			c := model.chapter(sid, cid)
			var ids []string
			if c != nil {
				for _, r := range c.References {
					ids = append(ids, r.ID)
				}
			}
			id := pick(ids)
			s.DeleteReference(ctx, sid, cid, id)
			if c != nil {
				for i, r := range c.References {
					if r.ID == id {
						c.References = append(c.References[:i], c.References[i+1:]...)
						break
					}
				}
			}
		}

		if diff := cmp.Diff(model.export(), s.Subjects()); diff != "" {
			t.Fatalf("step %d: tree mismatch (-model +store):\n%s", step, diff)
		}
	}

	if st.Sets() > 0 {
		if diff := cmp.Diff(model.export(), storedSubjects(t, st)); diff != "" {
			t.Fatalf("persisted tree mismatch (-model +stored):\n%s", diff)
		}
	}

	reloaded := store.New(st)
	reloaded.Load(ctx)
	if diff := cmp.Diff(s.Subjects(), reloaded.Subjects()); diff != "" {
		t.Fatalf("reload mismatch (-live +reloaded):\n%s", diff)
	}
}
