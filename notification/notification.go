package notification

import (
	"fmt"
	"os"
	"time"

	"note-go/config"
	"note-go/pkg/logger"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// SendEmail sends an email using Resend with retry logic
func SendEmail(to []string, subject, htmlContent string) error {
	apiKey := config.GlobalConfig.Notification.ResendAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("RESEND_API_KEY")
	}

	if apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY is not set")
	}

	client := resend.NewClient(apiKey)

	fromEmail := config.GlobalConfig.Notification.FromEmail
	if fromEmail == "" {
		fromEmail = "onboarding@resend.dev"
	}
	fromName := config.GlobalConfig.Notification.FromName
	if fromName == "" {
		fromName = "NoteGo"
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", fromName, fromEmail),
		To:      to,
		Subject: subject,
		Html:    htmlContent,
	}

	// Retry logic: 3 attempts with exponential backoff
	var err error
	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		var resp *resend.SendEmailResponse
		resp, err = client.Emails.Send(params)
		if err == nil {
			logger.Debug("Email sent", zap.Strings("to", to), zap.String("id", resp.Id))
			return nil
		}

		logger.Warn("Failed to send email",
			zap.Int("attempt", i+1),
			zap.Int("maxRetries", maxRetries),
			zap.Error(err))
		if i < maxRetries-1 {
			time.Sleep(time.Duration(2*(i+1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, err)
}

// SendWelcomeEmail mails a new account holder. Best effort: callers run it in
// a goroutine and registration never fails because of it. A missing API key
// disables mailing entirely.
func SendWelcomeEmail(to, firstName string) {
	if config.GlobalConfig.Notification.ResendAPIKey == "" && os.Getenv("RESEND_API_KEY") == "" {
		return
	}

	html, err := RenderWelcomeEmail(WelcomeData{FirstName: firstName})
	if err != nil {
		logger.Error("Failed to render welcome email", zap.Error(err))
		return
	}
	if err := SendEmail([]string{to}, "Welcome to NoteGo", html); err != nil {
		logger.Error("Failed to send welcome email", zap.Error(err))
	}
}
