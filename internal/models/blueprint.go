package models

import "github.com/google/uuid"

// Blueprint is the generated hierarchical backlog for a project
type Blueprint struct {
	Sections []BlueprintSection `json:"sections"`
}

// BlueprintSection is one feature area of a blueprint
type BlueprintSection struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Backlog []BacklogItem `json:"backlog"`
}

// BacklogItem is a concrete task or story inside a section. Details stay
// empty until the detail generation stage fills them in.
type BacklogItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

// NewBlueprintSection creates an empty section stub for a generated title
func NewBlueprintSection(title string) BlueprintSection {
	return BlueprintSection{
		ID:      uuid.New().String(),
		Title:   title,
		Backlog: []BacklogItem{},
	}
}

// NewBacklogItem creates a backlog item with empty details
func NewBacklogItem(title string) BacklogItem {
	return BacklogItem{
		ID:      uuid.New().String(),
		Title:   title,
		Details: "",
	}
}

// Clone returns a deep copy of the blueprint
func (b *Blueprint) Clone() *Blueprint {
	c := &Blueprint{Sections: make([]BlueprintSection, len(b.Sections))}
	for i, s := range b.Sections {
		s.Backlog = append([]BacklogItem{}, s.Backlog...)
		c.Sections[i] = s
	}
	return c
}
