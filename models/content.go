package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ContentSection is one headed part of a content block
type ContentSection struct {
	Heading    string   `json:"heading" yaml:"heading"`
	Paragraphs []string `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Items      []string `json:"items,omitempty" yaml:"items,omitempty"`
}

// ContentBlock is the pre-authored legal information shown for one
// (state, practice area) pair
type ContentBlock struct {
	Title       string           `json:"title" yaml:"title"`
	Summary     string           `json:"summary,omitempty" yaml:"summary,omitempty"`
	Sections    []ContentSection `json:"sections" yaml:"sections"`
	Legislation []string         `json:"legislation,omitempty" yaml:"legislation,omitempty"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Clone returns a deep copy of the block
func (c ContentBlock) Clone() ContentBlock {
	out := c
	if c.Sections != nil {
		out.Sections = make([]ContentSection, len(c.Sections))
		for i, section := range c.Sections {
			out.Sections[i] = ContentSection{
				Heading:    section.Heading,
				Paragraphs: cloneStrings(section.Paragraphs),
				Items:      cloneStrings(section.Items),
			}
		}
	}
	out.Legislation = cloneStrings(c.Legislation)
	if c.UpdatedAt != nil {
		t := *c.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// Value implements driver.Valuer for JSONB
func (c ContentBlock) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB
func (c *ContentBlock) Scan(value interface{}) error {
	if value == nil {
		return errors.New("content block is null")
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported content block column type")
	}

	return json.Unmarshal(bytes, c)
}
