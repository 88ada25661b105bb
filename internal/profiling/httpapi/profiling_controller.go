package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	accounts "profiling-server/internal/accounts/usecases"
	"profiling-server/internal/infra/cache"
	"profiling-server/internal/infra/httpserver"
	"profiling-server/internal/profiling/domain"
	"profiling-server/internal/profiling/httpapi/internal"
	"profiling-server/internal/profiling/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
)

const (
	startErrMessage        = "failed to start profiling"
	getErrMessage          = "failed to load profiling session"
	deleteErrMessage       = "failed to delete profiling session"
	saveStepErrMessage     = "failed to save step"
	moveErrMessage         = "failed to change step"
	submitErrMessage       = "failed to submit profiling"
	invalidBodyErrMessage  = "invalid step payload"
	unknownStepErrMessage  = "unknown step"
	notFoundErrMessage     = "profiling session not found"
	unauthorizedErrMessage = "missing or expired session"
	conflictErrMessage     = "profiling session was changed by another request"
	busyErrMessage         = "profiling session is being submitted"
)

func NewProfilingController(wizard usecases.WizardService, accountService accounts.AccountService) *ProfilingController {
	return &ProfilingController{wizard: wizard, accounts: accountService}
}

var _ httpserver.Controller = &ProfilingController{}

type ProfilingController struct {
	wizard   usecases.WizardService
	accounts accounts.AccountService
}

func (c *ProfilingController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/profiling/sessions", c.start())
	router.Handle("GET /v1/profiling/sessions/{id}", c.get())
	router.Handle("DELETE /v1/profiling/sessions/{id}", c.delete())
	router.Handle("PUT /v1/profiling/sessions/{id}/steps/{step}", c.saveStep())
	router.Handle("POST /v1/profiling/sessions/{id}/next", c.next())
	router.Handle("POST /v1/profiling/sessions/{id}/back", c.back())
	router.Handle("POST /v1/profiling/sessions/{id}/submit", c.submit())
}

// start links the session to the caller's account when a session token is
// sent. Anonymous sessions are allowed.
func (c *ProfilingController) start() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var accountID shared.ID
		if token := httpserver.SessionToken(r); token != "" {
			account, err := c.accounts.Authenticate(r.Context(), token)
			if err != nil {
				replyError(w, err, startErrMessage)
				return
			}
			accountID = account.ID
		}

		session, err := c.wizard.StartSession(r.Context(), accountID)
		if err != nil {
			replyError(w, err, startErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToSessionResponse(session))
	}
}

func (c *ProfilingController) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := c.wizard.GetSession(r.Context(), shared.ID(r.PathValue("id")))
		if err != nil {
			replyError(w, err, getErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(session))
	}
}

func (c *ProfilingController) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.wizard.DeleteSession(r.Context(), shared.ID(r.PathValue("id"))); err != nil {
			replyError(w, err, deleteErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *ProfilingController) saveStep() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		step, err := domain.ParseStep(r.PathValue("step"))
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusNotFound, unknownStepErrMessage)
			return
		}

		payload, ok := internal.NewStepPayload(step)
		if !ok {
			replyError(w, domain.ErrStepHasNoPayload, saveStepErrMessage)
			return
		}
		if err := httpserver.DecodeJSONBody(r, payload); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		session, err := c.wizard.SaveStep(r.Context(), shared.ID(r.PathValue("id")), step, internal.Deref(payload))
		if err != nil {
			replyError(w, err, saveStepErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(session))
	}
}

func (c *ProfilingController) next() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := c.wizard.Next(r.Context(), shared.ID(r.PathValue("id")))
		if err != nil {
			replyError(w, err, moveErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(session))
	}
}

func (c *ProfilingController) back() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := c.wizard.Back(r.Context(), shared.ID(r.PathValue("id")))
		if err != nil {
			replyError(w, err, moveErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(session))
	}
}

func (c *ProfilingController) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := c.wizard.Submit(r.Context(), shared.ID(r.PathValue("id")))
		if errors.Is(err, usecases.ErrSubmissionFailed) {
			httpserver.ReplyJSONResponse(w, http.StatusUnprocessableEntity, internal.SubmissionFailedResponse{
				Error:   session.LastError,
				Session: internal.ToSessionResponse(session),
			})
			return
		}
		if err != nil {
			replyError(w, err, submitErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(session))
	}
}

func replyError(w http.ResponseWriter, err error, errMsg string) {
	if _, ok := validation.IsValidationError(err); ok {
		httpserver.ReplyWithValidationError(w, err, errMsg)
		return
	}

	switch {
	case errors.Is(err, usecases.ErrSessionNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, notFoundErrMessage)
	case errors.Is(err, accounts.ErrSessionNotFound):
		httpserver.ReplyWithError(w, http.StatusUnauthorized, unauthorizedErrMessage)
	case errors.Is(err, usecases.ErrVersionConflict):
		httpserver.ReplyWithError(w, http.StatusConflict, conflictErrMessage)
	case errors.Is(err, cache.ErrLockNotObtained):
		httpserver.ReplyWithError(w, http.StatusConflict, busyErrMessage)
	case errors.Is(err, domain.ErrSessionClosed),
		errors.Is(err, domain.ErrStepNotReached),
		errors.Is(err, domain.ErrStepSkipped),
		errors.Is(err, domain.ErrNotAtReview),
		errors.Is(err, domain.ErrNoNextStep),
		errors.Is(err, domain.ErrNoPreviousStep):
		httpserver.ReplyWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrStepHasNoPayload),
		errors.Is(err, domain.ErrPayloadMismatch):
		httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error(errMsg, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, errMsg)
	}
}
