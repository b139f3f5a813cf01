package cmd

import (
	"github.com/mfinn/pulse/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	addDescription string
	addCategory    string
	addTarget      int
	addFrequency   string
	addColor       string
)

var addCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a new habit",
	Long:  `The "add" command creates a new habit with a daily target.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		h, err := newClient().CreateHabit(cmd.Context(), tracker.HabitInput{
			Name:        args[0],
			Description: addDescription,
			Category:    addCategory,
			Target:      addTarget,
			Frequency:   addFrequency,
			Color:       addColor,
		})
		if err != nil {
			cmd.Println("Error creating habit:", err)
			return
		}
		cmd.Printf("Created %q (%s)\n", h.Name, h.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "free-text description")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "category label (required)")
	addCmd.Flags().IntVarP(&addTarget, "target", "t", 1, "daily target")
	addCmd.Flags().StringVarP(&addFrequency, "frequency", "f", "daily", "daily or weekly")
	addCmd.Flags().StringVar(&addColor, "color", "#3B82F6", "display color")
	_ = addCmd.MarkFlagRequired("category")
}
