package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/priya/ideacraft/config"
	"github.com/priya/ideacraft/internal/agents"
	"github.com/priya/ideacraft/internal/database"
	"github.com/priya/ideacraft/internal/orchestrator"
	"github.com/priya/ideacraft/internal/store"
)

func main() {
	projectName := flag.String("project", "", "create a project with this name and generate its blueprint")
	brainDump := flag.String("dump", "", "brain dump text for the new project")
	spotlight := flag.Bool("spotlight", false, "also fetch spotlight suggestions for the project")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("🚀 IdeaCraft starting...")

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx := context.Background()

	db, err := database.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.CreateTables(ctx); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	snapshots := database.NewSnapshotRepository(db)
	snap, err := snapshots.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load persisted state: %v", err)
	}
	st := store.NewStoreFromSnapshot(snapshots, snap)
	log.Printf("✅ State loaded: %d project(s)", len(st.Projects()))

	agent, err := agents.NewBlueprintAgent(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create generation agent: %v", err)
	}
	defer agent.Close()

	if *projectName == "" {
		for _, p := range st.Projects() {
			marker := " "
			if p.ID == st.ActiveProjectID() {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, p.ID, p.Name)
		}
		return
	}

	id := st.CreateProject(*projectName)
	st.SetActiveProject(id)
	st.UpdateBrainDump(id, *brainDump)

	if *spotlight {
		fetcher := orchestrator.NewSpotlightFetcher(st, agent)
		fetcher.Spotlight(ctx, id)
		for _, s := range st.SpotlightSuggestions() {
			fmt.Printf("💡 %s — %s\n", s.FeatureName, s.Description)
		}
	}

	pipeline := orchestrator.New(st, agent)
	log.Printf("🤖 Generating blueprint for %q...", *projectName)
	if err := pipeline.Run(ctx); err != nil {
		log.Fatalf("Generation failed (phase=%s): %v", st.GenerationPhase(), err)
	}

	project, ok := st.GetActiveProject()
	if !ok || project.Blueprint == nil {
		log.Fatal("No blueprint was produced")
	}

	fmt.Printf("\n%s\n", project.Name)
	for _, section := range project.Blueprint.Sections {
		fmt.Printf("\n## %s\n", section.Title)
		for _, item := range section.Backlog {
			fmt.Printf("- %s\n    %s\n", item.Title, item.Details)
		}
	}
	log.Printf("✅ Blueprint generated: %d section(s), phase=%s", len(project.Blueprint.Sections), st.GenerationPhase())
}
