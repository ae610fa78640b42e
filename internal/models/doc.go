package models

import "github.com/google/uuid"

// Doc represents a context document attached to a project
type Doc struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// NewDoc creates a new doc with a generated id
func NewDoc(name, content string) Doc {
	return Doc{
		ID:      uuid.New().String(),
		Name:    name,
		Content: content,
	}
}
