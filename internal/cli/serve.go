package cli

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordscramble/internal/httpserver"
	"github.com/robalobadob/wordscramble/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	mem := store.NewMemoryStore(cfg.SessionTTL)
	go mem.Janitor(ctx, time.Minute)

	srv := httpserver.New(httpserver.Options{
		Controller:    a.ctrl,
		Store:         mem,
		Source:        a.source,
		SessionSecret: cfg.SessionSecret,
		SessionTTL:    cfg.SessionTTL,
		DailySalt:     cfg.DailySalt,
		ClientOrigin:  cfg.ClientOrigin,
	})
	log.Info().Str("port", cfg.Port).Msg("starting wordscramble server")
	return srv.Start(":" + cfg.Port)
}
