package cmd

import (
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show today's insight report",
	Run: func(cmd *cobra.Command, args []string) {
		report, err := newClient().Insights(cmd.Context())
		if err != nil {
			cmd.Println("Error fetching insights:", err)
			return
		}
		if len(report.Insights) == 0 {
			cmd.Println("No insights yet. Start tracking habits first.")
			return
		}

		for _, in := range report.Insights {
			cmd.Printf("* %s\n  %s\n", in.Title, in.Description)
		}
		for _, p := range report.Patterns {
			cmd.Printf("* %s\n  %s\n", p.Title, p.Description)
		}
		cmd.Println()
		for _, r := range report.Recommendations {
			cmd.Printf("[%s] %s\n  %s\n", r.Priority, r.Title, r.Action)
		}
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
