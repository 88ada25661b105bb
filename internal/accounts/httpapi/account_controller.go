package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"profiling-server/internal/accounts/domain"
	"profiling-server/internal/accounts/httpapi/internal"
	"profiling-server/internal/accounts/usecases"
	"profiling-server/internal/infra/httpserver"
	"profiling-server/internal/shared_kernel/validation"
)

const (
	registerErrMessage      = "failed to register account"
	loginErrMessage         = "failed to log in"
	logoutErrMessage        = "failed to log out"
	meErrMessage            = "failed to load account"
	sendOTPErrMessage       = "failed to send code"
	verifyOTPErrMessage     = "failed to verify code"
	invalidBodyErrMessage   = "invalid account payload"
	unauthorizedErrMessage  = "missing or expired session"
	credentialsErrMessage   = "invalid credentials"
	inactiveErrMessage      = "account is not verified"
	destinationErrMessage   = "invalid destination"
	accountTakenErrMessage  = "an account already uses this email or phone"
	challengeBusyErrMessage = "another request for this destination is in progress"
)

func NewAccountController(accounts usecases.AccountService, otp usecases.OTPService) *AccountController {
	return &AccountController{accounts: accounts, otp: otp}
}

var _ httpserver.Controller = &AccountController{}

type AccountController struct {
	accounts usecases.AccountService
	otp      usecases.OTPService
}

func (c *AccountController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/accounts", c.register())
	router.Handle("POST /v1/accounts/login", c.login())
	router.Handle("POST /v1/accounts/logout", c.logout())
	router.Handle("GET /v1/accounts/me", c.me())
	router.Handle("POST /v1/otp/send", c.sendOTP())
	router.Handle("POST /v1/otp/verify", c.verifyOTP())
}

func decode(w http.ResponseWriter, r *http.Request, body any) bool {
	if err := httpserver.DecodeJSONBody(r, body); err != nil {
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
		return false
	}

	if normalizer, ok := body.(interface{ Normalize() }); ok {
		normalizer.Normalize()
	}

	if err := validation.Struct(body); err != nil {
		httpserver.ReplyWithValidationError(w, err, invalidBodyErrMessage)
		return false
	}

	return true
}

func (c *AccountController) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.RegisterRequest
		if !decode(w, r, &body) {
			return
		}

		account, err := c.accounts.Register(r.Context(), body.ToRegistration())
		if err != nil {
			replyError(w, err, registerErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToAccountResponse(account))
	}
}

func (c *AccountController) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.LoginRequest
		if !decode(w, r, &body) {
			return
		}

		session, err := c.accounts.Login(r.Context(), body.Identifier, body.Password)
		if err != nil {
			replyError(w, err, loginErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(session))
	}
}

func (c *AccountController) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.accounts.Logout(r.Context(), httpserver.SessionToken(r)); err != nil {
			replyError(w, err, logoutErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *AccountController) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		account, err := c.accounts.Authenticate(r.Context(), httpserver.SessionToken(r))
		if err != nil {
			replyError(w, err, meErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToAccountResponse(account))
	}
}

func (c *AccountController) sendOTP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SendOTPRequest
		if !decode(w, r, &body) {
			return
		}

		dispatch, err := c.otp.Send(r.Context(), domain.Channel(body.Channel), body.Destination)
		if err != nil {
			replyError(w, err, sendOTPErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusAccepted, internal.ToDispatchResponse(dispatch))
	}
}

func (c *AccountController) verifyOTP() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.VerifyOTPRequest
		if !decode(w, r, &body) {
			return
		}

		result, err := c.otp.Verify(r.Context(), body.Channel(), body.Destination, body.Code)
		if err != nil {
			replyError(w, err, verifyOTPErrMessage)
			return
		}

		response := internal.VerifyResponse{Verified: true}
		if result.Account != nil {
			account := internal.ToAccountResponse(*result.Account)
			response.Account = &account
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func replyError(w http.ResponseWriter, err error, errMsg string) {
	if _, ok := validation.IsValidationError(err); ok {
		httpserver.ReplyWithValidationError(w, err, errMsg)
		return
	}

	var tooSoon *usecases.ResendTooSoonError
	switch {
	case errors.As(err, &tooSoon):
		w.Header().Set("Retry-After", strconv.Itoa(tooSoon.RetryAfterSeconds()))
		httpserver.ReplyWithError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, usecases.ErrTooManyAttempts):
		httpserver.ReplyWithError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, usecases.ErrInvalidCode), errors.Is(err, usecases.ErrCodeExpired):
		httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidDestination):
		httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, destinationErrMessage)
	case errors.Is(err, usecases.ErrAccountDuplicated):
		httpserver.ReplyWithError(w, http.StatusConflict, accountTakenErrMessage)
	case errors.Is(err, usecases.ErrChallengeBusy):
		httpserver.ReplyWithError(w, http.StatusConflict, challengeBusyErrMessage)
	case errors.Is(err, usecases.ErrInvalidCredentials):
		httpserver.ReplyWithError(w, http.StatusUnauthorized, credentialsErrMessage)
	case errors.Is(err, usecases.ErrSessionNotFound):
		httpserver.ReplyWithError(w, http.StatusUnauthorized, unauthorizedErrMessage)
	case errors.Is(err, usecases.ErrAccountInactive):
		httpserver.ReplyWithError(w, http.StatusForbidden, inactiveErrMessage)
	default:
		slog.Error(errMsg, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, errMsg)
	}
}
