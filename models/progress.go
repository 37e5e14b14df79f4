package models

// Counts returns the number of completed sub-topics and the total number of
// sub-topics across all chapters of the subject.
func (s Subject) Counts() (completed, total int) {
	for _, c := range s.Chapters {
		for _, st := range c.SubTopics {
			total++
			if st.Completed {
				completed++
			}
		}
	}
	return completed, total
}

// Progress is the completed share of the subject's sub-topics as a
// percentage in [0, 100]. A subject without sub-topics reports 0.
func (s Subject) Progress() float64 {
	completed, total := s.Counts()
	return percentage(completed, total)
}

// NextSubTopic points at the first uncompleted sub-topic in tree order.
type NextSubTopic struct {
	SubjectID    string `json:"subjectId"`
	SubjectTitle string `json:"subjectTitle"`
	ChapterID    string `json:"chapterId"`
	SubTopicID   string `json:"subTopicId"`
	TopicTitle   string `json:"topicTitle"`
}

// Overview aggregates progress over every subject.
type Overview struct {
	Subjects           int           `json:"subjects"`
	TotalSubTopics     int           `json:"totalSubTopics"`
	CompletedSubTopics int           `json:"completedSubTopics"`
	Percentage         float64       `json:"percentage"`
	Next               *NextSubTopic `json:"next"`
}

func Summarize(subjects []Subject) Overview {
	o := Overview{Subjects: len(subjects)}
	for _, s := range subjects {
		completed, total := s.Counts()
		o.CompletedSubTopics += completed
		o.TotalSubTopics += total

		if o.Next != nil {
			continue
		}
		for _, c := range s.Chapters {
			if next := firstOpen(s, c); next != nil {
				o.Next = next
				break
			}
		}
	}
	o.Percentage = percentage(o.CompletedSubTopics, o.TotalSubTopics)
	return o
}

func firstOpen(s Subject, c Chapter) *NextSubTopic {
	for _, st := range c.SubTopics {
		if !st.Completed {
			return &NextSubTopic{
				SubjectID:    s.ID,
				SubjectTitle: s.Title,
				ChapterID:    c.ID,
				SubTopicID:   st.ID,
				TopicTitle:   st.Title,
			}
		}
	}
	return nil
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
