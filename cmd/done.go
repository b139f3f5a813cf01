package cmd

import (
	"github.com/spf13/cobra"
)

var doneValue float64

var doneCmd = &cobra.Command{
	Use:   "done NAME",
	Short: "Record progress against a habit for today",
	Long: `The "done" command logs progress for today. Repeating it on the same
day adds to today's record rather than creating a second one.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := newClient()
		id, err := findHabitID(cmd.Context(), c, args[0])
		if err != nil {
			cmd.Println("Error:", err)
			return
		}
		h, err := c.Complete(cmd.Context(), id, doneValue)
		if err != nil {
			cmd.Println("Error recording completion:", err)
			return
		}
		cmd.Printf("Logged %g against %q\n", doneValue, h.Name)
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)

	doneCmd.Flags().Float64VarP(&doneValue, "value", "v", 1, "amount to log")
}
