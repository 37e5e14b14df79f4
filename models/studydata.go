package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is returned when a stored record is not parseable or does not
// have the {"subjects": [...]} shape.
var ErrMalformed = errors.New("malformed study data")

// StudyData is the durable record: the whole subject tree under one key.
type StudyData struct {
	Subjects []Subject `json:"subjects"`
}

// DecodeStudyData parses a stored record. There is no version field; any
// shape mismatch is reported as ErrMalformed.
func DecodeStudyData(data []byte) (StudyData, error) {
	var envelope struct {
		Subjects json.RawMessage `json:"subjects"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return StudyData{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	raw := bytes.TrimSpace(envelope.Subjects)
	if len(raw) == 0 || raw[0] != '[' {
		return StudyData{}, fmt.Errorf("%w: subjects is not an array", ErrMalformed)
	}

	var subjects []Subject
	if err := json.Unmarshal(raw, &subjects); err != nil {
		return StudyData{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return StudyData{Subjects: normalize(subjects)}, nil
}

// EncodeStudyData serializes the full subject collection. Cloning also
// turns nil child sequences into empty ones.
func EncodeStudyData(subjects []Subject) ([]byte, error) {
	return json.Marshal(StudyData{Subjects: CloneSubjects(subjects)})
}

// normalize replaces nil child sequences with empty ones so that records
// always serialize arrays, never null.
func normalize(subjects []Subject) []Subject {
	if subjects == nil {
		return []Subject{}
	}
	for i := range subjects {
		if subjects[i].Chapters == nil {
			subjects[i].Chapters = []Chapter{}
		}
		for j := range subjects[i].Chapters {
			c := &subjects[i].Chapters[j]
			if c.SubTopics == nil {
				c.SubTopics = []SubTopic{}
			}
			if c.References == nil {
				c.References = []Reference{}
			}
		}
	}
	return subjects
}

// ErrInvalidID reports an empty id, or an id repeated within its collection.
var ErrInvalidID = errors.New("invalid id")

// CheckIDs verifies that every id is non-empty and unique among its
// siblings: subjects, chapters of a subject, sub-topics and references of
// a chapter.
func CheckIDs(subjects []Subject) error {
	seen := make(map[string]struct{}, len(subjects))
	for _, s := range subjects {
		if err := checkID(seen, "subject", s.ID); err != nil {
			return err
		}
		chapters := make(map[string]struct{}, len(s.Chapters))
		for _, c := range s.Chapters {
			if err := checkID(chapters, "chapter", c.ID); err != nil {
				return err
			}
			subTopics := make(map[string]struct{}, len(c.SubTopics))
			for _, st := range c.SubTopics {
				if err := checkID(subTopics, "sub-topic", st.ID); err != nil {
					return err
				}
			}
			refs := make(map[string]struct{}, len(c.References))
			for _, r := range c.References {
				if err := checkID(refs, "reference", r.ID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkID(seen map[string]struct{}, kind, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s with empty id", ErrInvalidID, kind)
	}
	if _, dup := seen[id]; dup {
		return fmt.Errorf("%w: duplicate %s id %q", ErrInvalidID, kind, id)
	}
	seen[id] = struct{}{}
	return nil
}
