package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devika/pmquest/internal/catalog"
	"github.com/devika/pmquest/internal/journey"
	"github.com/devika/pmquest/internal/srs"
	"github.com/devika/pmquest/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap == nil {
			fmt.Println("No learner data yet. Run pmquest to get started.")
			return nil
		}

		js := journey.FromSnapshot(snap.Data.Journey)
		sched := srs.NewScheduler(&snap.Data)

		total := catalog.TotalDays()
		completed := js.HighestDayUnlocked - 1
		if completed > total {
			completed = total
		}

		fmt.Printf("Total XP:        %d\n", js.TotalXP)
		fmt.Printf("Days completed:  %d of %d\n", completed, total)
		fmt.Printf("Current streak:  %d day(s)\n", js.CurrentStreak)
		fmt.Printf("Hearts:          %d of %d\n", js.Hearts, journey.MaxHearts)
		fmt.Printf("Topics studied:  %d\n", len(js.EarnHeart.TopicsStudied))
		fmt.Printf("Cards in review: %d\n", sched.ReviewedCount())

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("init event log: %w", err)
		}
		totalReviews, byQuality, err := eventRepo.ReviewCounts(ctx)
		if err == nil && totalReviews > 0 {
			fmt.Printf("Reviews logged:  %d", totalReviews)
			fmt.Print("  (")
			for q := 1; q <= 5; q++ {
				if q > 1 {
					fmt.Print(" ")
				}
				fmt.Printf("q%d:%d", q, byQuality[q])
			}
			fmt.Println(")")
		}

		lessons, err := eventRepo.QueryLessonSummaries(ctx, store.QueryOpts{Limit: 10})
		if err == nil && len(lessons) > 0 {
			fmt.Println("\nRecent lessons:")
			for _, l := range lessons {
				fmt.Printf("  %s  day %d  %d/%d correct  +%d XP\n",
					l.Timestamp.Format("2006-01-02"), l.Day,
					l.CorrectCount, l.QuestionCount, l.XPEarned)
			}
		}

		return nil
	},
}
