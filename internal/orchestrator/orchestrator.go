// Package orchestrator drives the three-stage blueprint generation pipeline:
// sections, then backlog titles, then per-section details. The orchestrator
// never holds its own copy of truth; it re-reads the store between stages and
// writes every stage result back through the store's no-op-safe operations.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/priya/ideacraft/internal/models"
	"github.com/priya/ideacraft/internal/store"
)

// detailsPlaceholder fills in backlog items whose title received no entry in
// the detail response. Items are never left blank after stage 3.
const detailsPlaceholder = "Could not generate details for this item."

// Precondition errors returned by Run without touching the phase
var (
	ErrNoActiveProject = errors.New("no project is selected")
	ErrEmptyBrainDump  = errors.New("project has no brain dump")
)

// Capability is the slice of the generation service the pipeline depends on.
// Title and detail results are keyed by title string, not id; correlating
// them back to ids is the orchestrator's job.
type Capability interface {
	GenerateSections(ctx context.Context, brainDump string, docs []models.Doc) ([]string, error)
	GenerateBacklogTitles(ctx context.Context, brainDump string, docs []models.Doc, sectionTitles []string) (map[string][]string, error)
	GenerateBacklogDetails(ctx context.Context, brainDump string, docs []models.Doc, sectionTitle string, itemTitles []string) (map[string]string, error)
}

// Orchestrator runs the pipeline for the active project. It is not designed
// for concurrent runs: callers must not start a run while the phase is
// sections, titles or details.
type Orchestrator struct {
	store      *store.Store
	capability Capability
}

// New creates an orchestrator over the given store and generation capability
func New(s *store.Store, capability Capability) *Orchestrator {
	return &Orchestrator{store: s, capability: capability}
}

// Run executes all three stages for the currently active project. Stage
// results are written to the store as soon as each stage resolves, so a
// failure partway through leaves earlier stages' output in place. On any
// stage failure the global phase becomes error and the stage error is
// returned; remaining stages are skipped.
func (o *Orchestrator) Run(ctx context.Context) error {
	project, ok := o.store.GetActiveProject()
	if !ok {
		return ErrNoActiveProject
	}
	if project.BrainDump == "" {
		return ErrEmptyBrainDump
	}

	// Stage 1: break the idea into section stubs
	o.store.SetGenerationPhase(models.PhaseSections)
	sectionTitles, err := o.capability.GenerateSections(ctx, project.BrainDump, project.Docs)
	if err != nil {
		return o.fail(err)
	}
	warnDuplicateTitles("section", sectionTitles)

	sections := make([]models.BlueprintSection, len(sectionTitles))
	for i, title := range sectionTitles {
		sections[i] = models.NewBlueprintSection(title)
	}
	o.store.ReplaceBlueprintSections(project.ID, sections)

	// Stage 2: fill each section's backlog with titled items. The capability
	// keys its response by section title; a section with no entry gets an
	// empty backlog.
	o.store.SetGenerationPhase(models.PhaseTitles)
	titlesBySection, err := o.capability.GenerateBacklogTitles(ctx, project.BrainDump, project.Docs, sectionTitles)
	if err != nil {
		return o.fail(err)
	}
	for _, section := range sections {
		items := make([]models.BacklogItem, 0, len(titlesBySection[section.Title]))
		for _, title := range titlesBySection[section.Title] {
			items = append(items, models.NewBacklogItem(title))
		}
		o.store.SetSectionBacklog(project.ID, section.ID, items)
	}

	// Stage 3: one detail call per section, sequentially, against the
	// blueprint as it stands now rather than the stage-2 values.
	o.store.SetGenerationPhase(models.PhaseDetails)
	current, ok := o.store.GetProject(project.ID)
	if ok && current.Blueprint != nil {
		for _, section := range current.Blueprint.Sections {
			if err := o.detailSection(ctx, project, section); err != nil {
				return o.fail(err)
			}
		}
	}

	o.store.SetGenerationPhase(models.PhaseDone)
	return nil
}

// detailSection runs the detail call for one section and applies the result
// to the store by item id
func (o *Orchestrator) detailSection(ctx context.Context, project *models.Project, section models.BlueprintSection) error {
	itemTitles := make([]string, len(section.Backlog))
	for i, item := range section.Backlog {
		itemTitles[i] = item.Title
	}
	warnDuplicateTitles("backlog item", itemTitles)

	detailsByTitle, err := o.capability.GenerateBacklogDetails(ctx, project.BrainDump, project.Docs, section.Title, itemTitles)
	if err != nil {
		return err
	}

	detailsByID := make(map[string]string, len(section.Backlog))
	for _, item := range section.Backlog {
		details := detailsByTitle[item.Title]
		if details == "" {
			details = detailsPlaceholder
		}
		detailsByID[item.ID] = details
	}
	o.store.ApplyBacklogDetails(project.ID, section.ID, detailsByID)
	return nil
}

// fail records the error phase and wraps the stage error
func (o *Orchestrator) fail(err error) error {
	o.store.SetGenerationPhase(models.PhaseError)
	return fmt.Errorf("blueprint generation failed: %w", err)
}

// warnDuplicateTitles flags title collisions. Stage results are joined on
// title strings, so duplicates silently collapse onto one entry; the
// assignment behavior is kept but the collision is worth surfacing.
func warnDuplicateTitles(kind string, titles []string) {
	seen := make(map[string]bool, len(titles))
	for _, title := range titles {
		if seen[title] {
			log.Printf("Warning: duplicate %s title %q; title-keyed results will collapse", kind, title)
		}
		seen[title] = true
	}
}
