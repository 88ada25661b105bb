package notification

import (
	"context"
	"errors"
)

//go:generate mockgen -source=notification_client.go -destination=../../../test/unit/doubles/infra/notification/notification_client_mock.go -package=notification -mock_names=NotificationClient=MockNotificationClient

// NotificationClient delivers one-off messages to a person.
type NotificationClient interface {
	SendEmail(ctx context.Context, request EmailRequest) error
	SendSMS(ctx context.Context, request SMSRequest) error
}

type EmailRequest struct {
	To      string
	Subject string
	Body    string
}

// SMSRequest.To is an E.164 number.
type SMSRequest struct {
	To      string
	Message string
}

var ErrChannelNotSupported = errors.New("channel not supported")

type NotificationError struct {
	Message string
	Err     error
}

func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
