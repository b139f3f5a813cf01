package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show overall statistics and the 7-day trend",
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()

		overall, err := c.OverallStats(cmd.Context())
		if err != nil {
			cmd.Println("Error fetching stats:", err)
			return
		}
		cmd.Printf("Habits:          %d\n", overall.TotalHabits)
		cmd.Printf("Completed today: %d (%d%%)\n", overall.CompletedToday, overall.CompletionRate)
		cmd.Printf("Average streak:  %d days\n", overall.AverageStreak)
		cmd.Printf("Longest streak:  %d days\n", overall.LongestStreak)

		series, err := c.WeeklySeries(cmd.Context())
		if err != nil {
			cmd.Println("Error fetching weekly series:", err)
			return
		}
		cmd.Println()
		for _, p := range series {
			bar := strings.Repeat("#", p.Percent/5)
			cmd.Printf("%s %3d%% %s\n", p.Label, p.Percent, bar)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
