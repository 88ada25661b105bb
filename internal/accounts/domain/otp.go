package domain

import (
	"errors"
	"strings"
	"time"

	"profiling-server/internal/shared_kernel/validation"
)

type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	ChannelSMS   Channel = "SMS"
)

func (c Channel) IsValid() bool {
	return c == ChannelEmail || c == ChannelSMS
}

var ErrInvalidDestination = errors.New("invalid destination")

// NormalizeDestination lowercases emails and formats phone numbers to E.164
// so the same person always maps to the same challenge key.
func NormalizeDestination(channel Channel, destination string) (string, error) {
	destination = strings.TrimSpace(destination)
	switch channel {
	case ChannelEmail:
		if err := validation.Var("email", destination, "required,email"); err != nil {
			return "", ErrInvalidDestination
		}
		return strings.ToLower(destination), nil
	case ChannelSMS:
		formatted, err := validation.FormatPhoneNumber(destination, validation.DefaultRegion)
		if err != nil {
			return "", ErrInvalidDestination
		}
		return formatted, nil
	}
	return "", ErrInvalidDestination
}

// ChannelFor guesses the channel of a login identifier.
func ChannelFor(identifier string) Channel {
	if strings.Contains(identifier, "@") {
		return ChannelEmail
	}
	return ChannelSMS
}

// Challenge is a pending one-time code. Only the hash of the code is kept.
type Challenge struct {
	Channel     Channel   `json:"channel"`
	Destination string    `json:"destination"`
	CodeHash    []byte    `json:"code_hash"`
	Attempts    int       `json:"attempts"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (c Challenge) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

func (c Challenge) TTL(now time.Time) time.Duration {
	return c.ExpiresAt.Sub(now)
}
