package models

type ReferenceType string

const (
	ReferenceLink ReferenceType = "link"
	ReferenceNote ReferenceType = "note"
)

func (t ReferenceType) Valid() bool {
	return t == ReferenceLink || t == ReferenceNote
}

// Reference is a link or note attached to a Chapter. Content holds a URL
// when Type is link and free text when Type is note.
type Reference struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Type    ReferenceType `json:"type"`
	Content string        `json:"content"`
}

type ReferenceUpdate struct {
	Title   *string        `json:"title,omitempty"`
	Type    *ReferenceType `json:"type,omitempty"`
	Content *string        `json:"content,omitempty"`
}

func (u ReferenceUpdate) Apply(r Reference) Reference {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.Type != nil {
		r.Type = *u.Type
	}
	if u.Content != nil {
		r.Content = *u.Content
	}
	return r
}
