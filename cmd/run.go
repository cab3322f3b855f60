package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devika/pmquest/internal/app"
	"github.com/devika/pmquest/internal/catalog"
	"github.com/devika/pmquest/internal/progress"
	"github.com/devika/pmquest/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// Extra deck files extend the built-in catalog. A bad deck file is
	// reported but does not block the app.
	deckPaths, _ := cmd.Flags().GetStringArray("deck")
	for _, p := range deckPaths {
		if _, err := catalog.LoadDeckFile(p, version); err != nil {
			fmt.Fprintf(os.Stderr, "skipping deck %s: %v\n", p, err)
		}
	}

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("init event log: %w", err)
	}
	snapRepo := st.SnapshotRepo()

	snap, err := snapRepo.Latest(context.Background())
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	return app.Run(app.Options{
		Service:   progress.NewService(snap, snapRepo, eventRepo),
		EventRepo: eventRepo,
		Version:   version,
		FirstRun:  snap == nil,
	})
}
