package cmd

import (
	"github.com/spf13/cobra"
)

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "Show unlocked and upcoming achievements",
	Run: func(cmd *cobra.Command, args []string) {
		set, err := newClient().Achievements(cmd.Context())
		if err != nil {
			cmd.Println("Error fetching achievements:", err)
			return
		}

		if len(set.Unlocked) == 0 {
			cmd.Println("Nothing unlocked yet. Start completing habits!")
		}
		for _, a := range set.Unlocked {
			cmd.Printf("[unlocked] %s - %s\n", a.Name, a.Description)
		}
		for _, a := range set.Upcoming {
			if a.Target > 0 {
				cmd.Printf("[upcoming] %s - %s (%g/%g)\n", a.Name, a.Description, a.Progress, a.Target)
			} else {
				cmd.Printf("[upcoming] %s - %s\n", a.Name, a.Description)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(rewardsCmd)
}
