package resend

import (
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

type ResendNotifier struct {
	ApiKey string
	From   string
	Email  string
}

func (n *ResendNotifier) SendNudge(habits []string) error {
	client := resend.NewClient(n.ApiKey)

	var b strings.Builder
	b.WriteString("<p>These habits are still waiting on you today:</p><ul>")
	for _, h := range habits {
		fmt.Fprintf(&b, "<li>%s</li>", h)
	}
	b.WriteString("</ul><p>A small step now keeps the streak alive.</p>")

	params := &resend.SendEmailRequest{
		From:    n.From,
		To:      []string{n.Email},
		Subject: fmt.Sprintf("Pulse: %d habit(s) still due today", len(habits)),
		Html:    b.String(),
	}
	_, err := client.Emails.Send(params)
	return err
}
