package cmd

import (
	"log/slog"
	"net/http"

	"github.com/mfinn/pulse/internal/logger"
	"github.com/mfinn/pulse/internal/server"
	"github.com/mfinn/pulse/internal/storage/bolt"
	"github.com/mfinn/pulse/internal/tracker"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if cfg.LogLevel == "debug" {
			level = slog.LevelDebug
		}
		if cfg.LogFormat == "json" {
			logger.InitJSON(level)
		} else {
			logger.Init(level)
		}

		store, err := bolt.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		tr, err := tracker.Load(store)
		if err != nil {
			return err
		}

		s := server.New(tr)
		logger.Info("Starting server", "addr", cfg.ListenAddr, "db", cfg.DBPath)
		return http.ListenAndServe(cfg.ListenAddr, s.Router())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
