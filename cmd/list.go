package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with today's progress and streaks",
	Run: func(cmd *cobra.Command, args []string) {
		habits, err := newClient().ListHabits(cmd.Context())
		if err != nil {
			cmd.Println("Error fetching habits:", err)
			return
		}
		if len(habits) == 0 {
			cmd.Println("No habits yet. Create one with \"pulse add\".")
			return
		}
		for _, h := range habits {
			mark := " "
			if h.Completed {
				mark = "x"
			}
			cmd.Printf("[%s] %-20s %s  %g/%d today  %d-day streak\n",
				mark, h.Name, h.Category, h.TodayProgress, h.Target, h.Streak)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
