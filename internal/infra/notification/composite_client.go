package notification

import "context"

// CompositeNotificationClient routes each channel to its own provider.
type CompositeNotificationClient struct {
	emailClient NotificationClient
	smsClient   NotificationClient
}

var _ NotificationClient = (*CompositeNotificationClient)(nil)

func NewCompositeNotificationClient(emailClient, smsClient NotificationClient) *CompositeNotificationClient {
	return &CompositeNotificationClient{
		emailClient: emailClient,
		smsClient:   smsClient,
	}
}

func (c *CompositeNotificationClient) SendEmail(ctx context.Context, request EmailRequest) error {
	return c.emailClient.SendEmail(ctx, request)
}

func (c *CompositeNotificationClient) SendSMS(ctx context.Context, request SMSRequest) error {
	return c.smsClient.SendSMS(ctx, request)
}
