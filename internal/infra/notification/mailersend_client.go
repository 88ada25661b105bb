package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
)

const _mailerSendAttempts = 3

type MailerSendClient struct {
	client    *mailersend.Mailersend
	fromEmail string
	fromName  string
}

type MailerSendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

func NewMailerSendClient(config MailerSendConfig) *MailerSendClient {
	return &MailerSendClient{
		client:    mailersend.NewMailersend(config.APIKey),
		fromEmail: config.FromEmail,
		fromName:  config.FromName,
	}
}

func (c *MailerSendClient) SendEmail(ctx context.Context, request EmailRequest) error {
	message := c.client.Email.NewMessage()
	message.SetFrom(mailersend.From{
		Email: c.fromEmail,
		Name:  c.fromName,
	})
	message.SetRecipients([]mailersend.Recipient{{Email: request.To}})
	message.SetSubject(request.Subject)
	message.SetText(request.Body)

	return c.sendWithRetry(ctx, message)
}

// sendWithRetry backs off linearly between attempts and gives up early
// when ctx is done.
func (c *MailerSendClient) sendWithRetry(ctx context.Context, message *mailersend.Message) error {
	var lastErr error

	for attempt := 1; attempt <= _mailerSendAttempts; attempt++ {
		_, err := c.client.Email.Send(ctx, message)
		if err == nil {
			return nil
		}

		lastErr = &NotificationError{
			Message: fmt.Sprintf("MailerSend API error (attempt %d/%d)", attempt, _mailerSendAttempts),
			Err:     err,
		}

		if attempt < _mailerSendAttempts {
			select {
			case <-time.After(time.Duration(attempt) * time.Second):
			case <-ctx.Done():
				return lastErr
			}
		}
	}

	return lastErr
}

func (c *MailerSendClient) SendSMS(context.Context, SMSRequest) error {
	return &NotificationError{Message: "MailerSend cannot deliver SMS", Err: ErrChannelNotSupported}
}
