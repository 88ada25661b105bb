package notification

import (
	"context"
	"log/slog"
)

// LogNotificationClient writes messages to the log instead of sending
// them. Used when ENV is local.
type LogNotificationClient struct{}

func NewLogNotificationClient() *LogNotificationClient {
	return &LogNotificationClient{}
}

func (LogNotificationClient) SendEmail(ctx context.Context, request EmailRequest) error {
	slog.InfoContext(ctx, "email not sent (local)",
		slog.String("to", request.To),
		slog.String("subject", request.Subject),
		slog.String("body", request.Body))
	return nil
}

func (LogNotificationClient) SendSMS(ctx context.Context, request SMSRequest) error {
	slog.InfoContext(ctx, "sms not sent (local)",
		slog.String("to", request.To),
		slog.String("message", request.Message))
	return nil
}
