package internal

import (
	"strings"

	"profiling-server/internal/accounts/domain"
	"profiling-server/internal/accounts/usecases"
	"profiling-server/internal/infra/utils"
)

type RegisterRequest struct {
	Email       string `json:"email" validate:"required_without=Phone,omitempty,email"`
	Phone       string `json:"phone" validate:"required_without=Email,omitempty,phone"`
	DisplayName string `json:"display_name" validate:"required,max=120"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
}

func (r RegisterRequest) ToRegistration() usecases.Registration {
	return usecases.Registration{
		Email:       r.Email,
		Phone:       r.Phone,
		DisplayName: r.DisplayName,
		Password:    r.Password,
	}
}

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type SendOTPRequest struct {
	Channel     string `json:"channel" validate:"required,oneof=EMAIL SMS"`
	Destination string `json:"destination" validate:"required"`
}

// Normalize accepts the channel in any letter case.
func (r *SendOTPRequest) Normalize() {
	r.Channel = strings.ToUpper(strings.TrimSpace(r.Channel))
}

type VerifyOTPRequest struct {
	Destination string `json:"destination" validate:"required"`
	Code        string `json:"code" validate:"required,numeric"`
}

func (r VerifyOTPRequest) Channel() domain.Channel {
	return domain.ChannelFor(r.Destination)
}

type AccountResponse struct {
	ID              string      `json:"id"`
	Version         int         `json:"version"`
	Email           string      `json:"email,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	DisplayName     string      `json:"display_name"`
	Status          string      `json:"status"`
	VerifiedChannel string      `json:"verified_channel,omitempty"`
	VerifiedAt      *utils.Time `json:"verified_at,omitempty"`
	CreatedAt       utils.Time  `json:"created_at"`
}

func ToAccountResponse(a domain.Account) AccountResponse {
	response := AccountResponse{
		ID:              a.ID.String(),
		Version:         int(a.Version),
		Email:           a.Email,
		Phone:           a.Phone,
		DisplayName:     a.DisplayName,
		Status:          string(a.Status),
		VerifiedChannel: string(a.VerifiedChannel),
		CreatedAt:       utils.Time{Time: a.CreatedAt},
	}
	if a.VerifiedAt != nil {
		response.VerifiedAt = &utils.Time{Time: *a.VerifiedAt}
	}
	return response
}

type DispatchResponse struct {
	Channel     string     `json:"channel"`
	Destination string     `json:"destination"`
	ExpiresAt   utils.Time `json:"expires_at"`
	ResendAt    utils.Time `json:"resend_at"`
}

func ToDispatchResponse(d usecases.Dispatch) DispatchResponse {
	return DispatchResponse{
		Channel:     string(d.Channel),
		Destination: d.Destination,
		ExpiresAt:   utils.Time{Time: d.ExpiresAt},
		ResendAt:    utils.Time{Time: d.ResendAt},
	}
}

type VerifyResponse struct {
	Verified bool             `json:"verified"`
	Account  *AccountResponse `json:"account,omitempty"`
}

type SessionResponse struct {
	Token     string     `json:"token"`
	AccountID string     `json:"account_id"`
	ExpiresAt utils.Time `json:"expires_at"`
}

func ToSessionResponse(s usecases.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		AccountID: s.AccountID.String(),
		ExpiresAt: utils.Time{Time: s.ExpiresAt},
	}
}
