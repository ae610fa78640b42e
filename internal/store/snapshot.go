package store

import "github.com/priya/ideacraft/internal/models"

// Snapshot is the persisted shape of the store: the full project collection
// and the active selection, nothing else. Generation phase, spotlight state
// and in-flight pipeline progress are deliberately excluded and reset on load.
type Snapshot struct {
	Projects        []*models.Project `json:"projects"`
	ActiveProjectID string            `json:"activeProjectId"`
}

// Snapshot returns a deep copy of the persistable state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{ActiveProjectID: s.activeProjectID}
	for _, p := range s.projects {
		snap.Projects = append(snap.Projects, p.Clone())
	}
	return snap
}
