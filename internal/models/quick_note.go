package models

import "github.com/google/uuid"

// QuickNote represents a short scratch note attached to a project
type QuickNote struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// NewQuickNote creates a new quick note with a generated id
func NewQuickNote(content string) QuickNote {
	return QuickNote{
		ID:      uuid.New().String(),
		Content: content,
	}
}
