package cmd

import (
	"github.com/spf13/cobra"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Show the quote of the day",
	Run: func(cmd *cobra.Command, args []string) {
		q, err := newClient().Quote(cmd.Context())
		if err != nil {
			cmd.Println("Error fetching quote:", err)
			return
		}
		cmd.Printf("%q - %s\n", q.Text, q.Author)
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}
