package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// SMSGatewayClient posts messages to an HTTP SMS gateway that accepts
// apikey, number, message and sendername form fields.
type SMSGatewayClient struct {
	client     *resty.Client
	apiKey     string
	senderName string
}

type SMSGatewayConfig struct {
	BaseURL    string
	APIKey     string
	SenderName string
	Timeout    time.Duration
	Retries    int
}

type smsGatewayError struct {
	Message string `json:"message"`
}

func NewSMSGatewayClient(config SMSGatewayConfig) *SMSGatewayClient {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetRetryCount(config.Retries).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	return &SMSGatewayClient{
		client:     client,
		apiKey:     config.APIKey,
		senderName: config.SenderName,
	}
}

func (c *SMSGatewayClient) SendSMS(ctx context.Context, request SMSRequest) error {
	var failure smsGatewayError
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"apikey":     c.apiKey,
			"number":     request.To,
			"message":    request.Message,
			"sendername": c.senderName,
		}).
		SetError(&failure).
		Post("/messages")
	if err != nil {
		return &NotificationError{Message: "SMS gateway unreachable", Err: err}
	}

	if resp.IsError() {
		return &NotificationError{
			Message: fmt.Sprintf("SMS gateway rejected message (status %d)", resp.StatusCode()),
			Err:     fmt.Errorf("%s", failure.Message),
		}
	}

	return nil
}

func (c *SMSGatewayClient) SendEmail(context.Context, EmailRequest) error {
	return &NotificationError{Message: "SMS gateway cannot deliver email", Err: ErrChannelNotSupported}
}
