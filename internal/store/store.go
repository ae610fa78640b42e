package store

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/priya/ideacraft/internal/models"
)

// Persister durably saves the project collection between sessions. The store
// treats it as best-effort: a failed save is logged and never surfaced.
type Persister interface {
	Save(ctx context.Context, snap Snapshot) error
}

// Store is the single source of truth for application state. All state is
// mutated exclusively through the named operations below; every operation is
// total and atomic, and references to unknown project/section/doc ids degrade
// to silent no-ops so that a late pipeline write can never corrupt state.
type Store struct {
	mu                   sync.Mutex
	projects             []*models.Project
	activeProjectID      string
	phase                models.GenerationPhase
	spotlightedProjectID string
	spotlightSuggestions []models.SpotlightSuggestion

	persister Persister
	listeners []func()
}

// NewStore creates an empty store. The persister may be nil.
func NewStore(persister Persister) *Store {
	return &Store{
		phase:     models.PhaseIdle,
		persister: persister,
	}
}

// NewStoreFromSnapshot seeds a store from a previously persisted snapshot.
// Generation phase and spotlight state are not part of snapshots and reset
// to idle/empty.
func NewStoreFromSnapshot(persister Persister, snap Snapshot) *Store {
	s := NewStore(persister)
	for _, p := range snap.Projects {
		s.projects = append(s.projects, p.Clone())
	}
	s.activeProjectID = snap.ActiveProjectID
	return s
}

// Subscribe registers an observer invoked after every completed mutation
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// CreateProject appends a new empty project and returns its id
func (s *Store) CreateProject(name string) string {
	p := models.NewProject(name)
	s.mu.Lock()
	s.projects = append(s.projects, p)
	s.mu.Unlock()
	s.changed()
	return p.ID
}

// DeleteProject removes a project and everything it owns. If it was the
// active project the active selection is cleared. Unknown ids are a no-op.
func (s *Store) DeleteProject(id string) {
	s.mu.Lock()
	removed := false
	for i, p := range s.projects {
		if p.ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			removed = true
			break
		}
	}
	if removed && s.activeProjectID == id {
		s.activeProjectID = ""
	}
	s.mu.Unlock()
	if removed {
		s.changed()
	}
}

// SetActiveProject changes which project is considered open. The id is not
// validated; an unknown id simply resolves to no active project. Pass the
// empty string to clear the selection.
func (s *Store) SetActiveProject(id string) {
	s.mu.Lock()
	s.activeProjectID = id
	s.mu.Unlock()
	s.changed()
}

// UpdateBrainDump replaces a project's brain dump text
func (s *Store) UpdateBrainDump(projectID, text string) {
	s.mutateProject(projectID, func(p *models.Project) {
		p.BrainDump = text
	})
}

// AddDoc attaches a new context document to a project
func (s *Store) AddDoc(projectID, name, content string) {
	s.mutateProject(projectID, func(p *models.Project) {
		p.Docs = append(p.Docs, models.NewDoc(name, content))
	})
}

// UpdateDoc replaces the content of one of a project's docs
func (s *Store) UpdateDoc(projectID, docID, content string) {
	s.mutateProject(projectID, func(p *models.Project) {
		for i := range p.Docs {
			if p.Docs[i].ID == docID {
				p.Docs[i].Content = content
				return
			}
		}
	})
}

// DeleteDoc removes one of a project's docs
func (s *Store) DeleteDoc(projectID, docID string) {
	s.mutateProject(projectID, func(p *models.Project) {
		for i := range p.Docs {
			if p.Docs[i].ID == docID {
				p.Docs = append(p.Docs[:i], p.Docs[i+1:]...)
				return
			}
		}
	})
}

// AddQuickNote attaches a scratch note to a project
func (s *Store) AddQuickNote(projectID, content string) {
	s.mutateProject(projectID, func(p *models.Project) {
		p.QuickNotes = append(p.QuickNotes, models.NewQuickNote(content))
	})
}

// DeleteQuickNote removes a scratch note from a project
func (s *Store) DeleteQuickNote(projectID, noteID string) {
	s.mutateProject(projectID, func(p *models.Project) {
		for i := range p.QuickNotes {
			if p.QuickNotes[i].ID == noteID {
				p.QuickNotes = append(p.QuickNotes[:i], p.QuickNotes[i+1:]...)
				return
			}
		}
	})
}

// AddTag adds a trimmed tag to a project, ignoring duplicates
func (s *Store) AddTag(projectID, tag string) {
	tag = strings.TrimSpace(tag)
	s.mutateProject(projectID, func(p *models.Project) {
		for _, t := range p.Tags {
			if t == tag {
				return
			}
		}
		p.Tags = append(p.Tags, tag)
	})
}

// RemoveTag removes a tag from a project
func (s *Store) RemoveTag(projectID, tag string) {
	s.mutateProject(projectID, func(p *models.Project) {
		for i, t := range p.Tags {
			if t == tag {
				p.Tags = append(p.Tags[:i], p.Tags[i+1:]...)
				return
			}
		}
	})
}

// SetGenerationPhase sets the global pipeline phase
func (s *Store) SetGenerationPhase(phase models.GenerationPhase) {
	s.mu.Lock()
	s.phase = phase
	s.mu.Unlock()
	s.notify()
}

// GenerationPhase returns the global pipeline phase
func (s *Store) GenerationPhase() models.GenerationPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// ReplaceBlueprintSections installs a brand-new blueprint with the given
// section stubs, discarding any previous blueprint for that project
func (s *Store) ReplaceBlueprintSections(projectID string, sections []models.BlueprintSection) {
	s.mutateProject(projectID, func(p *models.Project) {
		bp := &models.Blueprint{Sections: make([]models.BlueprintSection, len(sections))}
		for i, sec := range sections {
			sec.Backlog = append([]models.BacklogItem{}, sec.Backlog...)
			bp.Sections[i] = sec
		}
		p.Blueprint = bp
	})
}

// SetSectionBacklog replaces one section's backlog. The section must already
// exist or the call is a no-op.
func (s *Store) SetSectionBacklog(projectID, sectionID string, items []models.BacklogItem) {
	s.mutateProject(projectID, func(p *models.Project) {
		if p.Blueprint == nil {
			return
		}
		for i := range p.Blueprint.Sections {
			if p.Blueprint.Sections[i].ID == sectionID {
				p.Blueprint.Sections[i].Backlog = append([]models.BacklogItem{}, items...)
				return
			}
		}
	})
}

// ApplyBacklogDetails sets the details field of every backlog item in the
// section whose id appears in detailsByID. Items without an entry are left
// unchanged, never cleared.
func (s *Store) ApplyBacklogDetails(projectID, sectionID string, detailsByID map[string]string) {
	s.mutateProject(projectID, func(p *models.Project) {
		if p.Blueprint == nil {
			return
		}
		for i := range p.Blueprint.Sections {
			if p.Blueprint.Sections[i].ID != sectionID {
				continue
			}
			backlog := p.Blueprint.Sections[i].Backlog
			for j := range backlog {
				if details, ok := detailsByID[backlog[j].ID]; ok {
					backlog[j].Details = details
				}
			}
			return
		}
	})
}

// SetSpotlightedProject marks a project as spotlighted and discards any
// previous suggestions. Pass the empty string to end spotlighting.
func (s *Store) SetSpotlightedProject(id string) {
	s.mu.Lock()
	s.spotlightedProjectID = id
	s.spotlightSuggestions = nil
	s.mu.Unlock()
	s.notify()
}

// SetSpotlightSuggestions replaces the current spotlight suggestions
func (s *Store) SetSpotlightSuggestions(suggestions []models.SpotlightSuggestion) {
	s.mu.Lock()
	s.spotlightSuggestions = append([]models.SpotlightSuggestion{}, suggestions...)
	s.mu.Unlock()
	s.notify()
}

// SpotlightedProjectID returns the id of the spotlighted project, if any
func (s *Store) SpotlightedProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spotlightedProjectID
}

// SpotlightSuggestions returns the current spotlight suggestions
func (s *Store) SpotlightSuggestions() []models.SpotlightSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SpotlightSuggestion{}, s.spotlightSuggestions...)
}

// GetProject returns a deep copy of the project with the given id
func (s *Store) GetProject(id string) (*models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := s.find(id); p != nil {
		return p.Clone(), true
	}
	return nil, false
}

// GetActiveProject returns a deep copy of the currently active project
func (s *Store) GetActiveProject() (*models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeProjectID == "" {
		return nil, false
	}
	if p := s.find(s.activeProjectID); p != nil {
		return p.Clone(), true
	}
	return nil, false
}

// ActiveProjectID returns the id of the active project, or empty
func (s *Store) ActiveProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeProjectID
}

// Projects returns deep copies of all projects in creation order
func (s *Store) Projects() []*models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

// find returns the canonical project record; the caller must hold the lock
func (s *Store) find(id string) *models.Project {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// mutateProject applies fn to the named project under the lock. Unknown
// project ids are a silent no-op and neither notify nor persist.
func (s *Store) mutateProject(projectID string, fn func(p *models.Project)) {
	s.mu.Lock()
	p := s.find(projectID)
	if p != nil {
		fn(p)
	}
	s.mu.Unlock()
	if p != nil {
		s.changed()
	}
}

// notify invokes observers outside the lock
func (s *Store) notify() {
	s.mu.Lock()
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// changed broadcasts the mutation and saves a snapshot. Persist failures are
// logged only: store operations are total and never fail.
func (s *Store) changed() {
	s.notify()
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(context.Background(), s.Snapshot()); err != nil {
		log.Printf("Warning: failed to persist state: %v", err)
	}
}
