package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents one idea under development
type Project struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	BrainDump  string      `json:"brainDump"`
	QuickNotes []QuickNote `json:"quickNotes"`
	Tags       []string    `json:"tags"`
	Docs       []Doc       `json:"docs"`
	Blueprint  *Blueprint  `json:"blueprint"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// NewProject creates a new project with an empty brain dump, no docs, no tags
// and no blueprint
func NewProject(name string) *Project {
	return &Project{
		ID:         uuid.New().String(),
		Name:       name,
		BrainDump:  "",
		QuickNotes: []QuickNote{},
		Tags:       []string{},
		Docs:       []Doc{},
		Blueprint:  nil,
		CreatedAt:  time.Now(),
	}
}

// Clone returns a deep copy of the project so callers can never reach the
// store's canonical records through a returned snapshot
func (p *Project) Clone() *Project {
	c := *p
	c.QuickNotes = append([]QuickNote{}, p.QuickNotes...)
	c.Tags = append([]string{}, p.Tags...)
	c.Docs = append([]Doc{}, p.Docs...)
	if p.Blueprint != nil {
		c.Blueprint = p.Blueprint.Clone()
	}
	return &c
}
