package cmd

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	api "github.com/innerlens/innerlens/internal/api/http"
	"github.com/innerlens/innerlens/internal/config"
	"github.com/innerlens/innerlens/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assessment HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		db, err := store.Open(ctx, store.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := store.WithCache(store.WithRetry(store.NewSQLRepo(db), store.RetryConfig{
			MaxRetries: 3,
			BaseWait:   cfg.RetryBaseWait,
		}))

		r := api.NewRouter(api.NewRegistry(), repo, cfg.CORSOrigins)
		log.Printf("innerlens listening on %s (db: %s)", cfg.HTTPAddr, cfg.DBDriver)
		return http.ListenAndServe(cfg.HTTPAddr, r)
	},
}
