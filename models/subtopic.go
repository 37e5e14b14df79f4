package models

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// SubTopic is a trackable unit of study within a Chapter
type SubTopic struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
}

// SubTopicUpdate is most commonly used to flip Completed.
type SubTopicUpdate struct {
	Title     *string   `json:"title,omitempty"`
	Completed *bool     `json:"completed,omitempty"`
	Priority  *Priority `json:"priority,omitempty"`
}

func (u SubTopicUpdate) Apply(st SubTopic) SubTopic {
	if u.Title != nil {
		st.Title = *u.Title
	}
	if u.Completed != nil {
		st.Completed = *u.Completed
	}
	if u.Priority != nil {
		st.Priority = *u.Priority
	}
	return st
}
