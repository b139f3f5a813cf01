package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mfinn/pulse/internal/apiclient"
	"github.com/mfinn/pulse/internal/config"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var nowFunc = time.Now

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Track daily habits and the statistics they earn you",
	Long: `
	Pulse is a habit tracker: create habits with daily targets, log completions,
	and watch streaks, category rates, achievements, and insight reports build up.
	Data commands talk to a running "pulse server".`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		cfg = config.LoadOrDefault()
	})
}

func newClient() *apiclient.Client {
	return apiclient.New(cfg.APIBaseURL)
}

// findHabitID resolves a habit by exact name or id.
func findHabitID(ctx context.Context, c *apiclient.Client, nameOrID string) (string, error) {
	habits, err := c.ListHabits(ctx)
	if err != nil {
		return "", err
	}
	for _, h := range habits {
		if h.ID == nameOrID || h.Name == nameOrID {
			return h.ID, nil
		}
	}
	return "", fmt.Errorf("no habit named %q", nameOrID)
}
