package auth

import (
	"context"
	"fmt"

	"publisher-app/config"
	"publisher-app/internal/infra/resend"
)

// SendVerificationEmail delivers the account verification link through the
// same email API the contact relay uses.
func SendVerificationEmail(ctx context.Context, to string, token string) error {
	link := fmt.Sprintf("%s/auth/verify?token=%s", config.PUBLIC_BASE_URL, token)
	body := fmt.Sprintf("Click the following link to verify your account:\n\n%s", link)

	client := resend.NewClient(config.RESEND_BASE_URL, config.RESEND_API_KEY)
	return client.Send(ctx, resend.Message{
		From:    config.CONTACT_FROM,
		To:      []string{to},
		Subject: "Verify Your Account",
		Text:    body,
	})
}
