package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/innerlens/innerlens/internal/config"
	"github.com/innerlens/innerlens/internal/results"
	"github.com/innerlens/innerlens/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results <respondentID>",
	Short: "Show a respondent's result history and retake eligibility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		respondentID := args[0]

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		db, err := store.Open(ctx, store.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := store.NewSQLRepo(db)
		list, err := repo.ListResults(ctx, respondentID)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Printf("no results for %s (eligible to take the assessment)\n", respondentID)
			return nil
		}

		for _, res := range list {
			line := fmt.Sprintf("v%d  %s  %s", res.Version, res.ID, res.CompletedAt.Format(time.RFC3339))
			if res.OriginalResultID != "" {
				line += "  (retake of " + res.OriginalResultID + ")"
			}
			fmt.Println(line)
		}

		elig := results.RetakeEligibility(&list[0].CompletedAt, time.Now())
		if elig.CanRetake {
			fmt.Println("retake: eligible now")
		} else {
			fmt.Printf("retake: eligible from %s\n", elig.NextRetakeDate.Format(time.RFC3339))
		}
		return nil
	},
}
