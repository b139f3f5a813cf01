package cmd

import (
	"fmt"
	"os"

	"github.com/mfinn/pulse/internal/nudge"
	"github.com/mfinn/pulse/internal/nudge/resend"

	"github.com/spf13/cobra"
)

var (
	resendApiKey string
	notifyEmail  string
	fromEmail    string
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Email a nudge for habits with a reminder due today that are still unmet",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if resendApiKey = os.Getenv("PULSE_RESEND_API_KEY"); resendApiKey == "" {
			return fmt.Errorf("PULSE_RESEND_API_KEY environment variable is not set")
		}
		if notifyEmail = os.Getenv("PULSE_NOTIFY_EMAIL"); notifyEmail == "" {
			return fmt.Errorf("PULSE_NOTIFY_EMAIL environment variable is not set")
		}
		if fromEmail = os.Getenv("PULSE_FROM_EMAIL"); fromEmail == "" {
			fromEmail = "onboarding@resend.dev"
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		n := &resend.ResendNotifier{
			ApiKey: resendApiKey,
			From:   fromEmail,
			Email:  notifyEmail,
		}
		return nudge.Nudge(cmd.Context(), newClient(), n, nowFunc())
	},
}

func init() {
	rootCmd.AddCommand(remindCmd)
}
