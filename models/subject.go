package models

// Subject represents a top-level study area, e.g. a course
type Subject struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Color    string    `json:"color"`
	Chapters []Chapter `json:"chapters"`
}

// SubjectUpdate carries the fields of a partial subject update. Nil fields
// keep their prior value.
type SubjectUpdate struct {
	Title *string `json:"title,omitempty"`
	Color *string `json:"color,omitempty"`
}

// Apply merges the update into s and returns the result.
func (u SubjectUpdate) Apply(s Subject) Subject {
	if u.Title != nil {
		s.Title = *u.Title
	}
	if u.Color != nil {
		s.Color = *u.Color
	}
	return s
}

// Clone returns a deep copy of the subject.
func (s Subject) Clone() Subject {
	out := s
	out.Chapters = make([]Chapter, len(s.Chapters))
	for i, c := range s.Chapters {
		out.Chapters[i] = c.Clone()
	}
	return out
}

// CloneSubjects deep-copies a subject collection. The result is never nil.
func CloneSubjects(subjects []Subject) []Subject {
	out := make([]Subject, len(subjects))
	for i, s := range subjects {
		out[i] = s.Clone()
	}
	return out
}
