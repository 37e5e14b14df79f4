package models

// Chapter is a subdivision of a Subject. It owns its sub-topics and references.
type Chapter struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	SubTopics  []SubTopic  `json:"subTopics"`
	References []Reference `json:"references"`
}

type ChapterUpdate struct {
	Title *string `json:"title,omitempty"`
}

func (u ChapterUpdate) Apply(c Chapter) Chapter {
	if u.Title != nil {
		c.Title = *u.Title
	}
	return c
}

func (c Chapter) Clone() Chapter {
	out := c
	out.SubTopics = append(make([]SubTopic, 0, len(c.SubTopics)), c.SubTopics...)
	out.References = append(make([]Reference, 0, len(c.References)), c.References...)
	return out
}
