package httpapi

import (
	"errors"
	"net/http"
	"time"

	"profiling-server/internal/infra/httpserver"
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/registry/httpapi/internal"
	"profiling-server/internal/registry/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
)

const (
	createResidentErrMessage      = "failed to create resident"
	getResidentErrMessage         = "failed to get resident"
	listResidentsErrMessage       = "failed to list residents"
	updateResidentErrMessage      = "failed to update resident"
	deleteResidentErrMessage      = "failed to delete resident"
	findDuplicatesErrMessage      = "failed to look for duplicate residents"
	invalidResidentBodyErrMessage = "invalid resident payload"
)

func NewResidentController(service usecases.ResidentService) *ResidentController {
	return &ResidentController{
		service: service,
		now:     time.Now,
	}
}

var _ httpserver.Controller = &ResidentController{}

type ResidentController struct {
	service usecases.ResidentService
	now     func() time.Time
}

func (c *ResidentController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/residents", c.createResident())
	router.Handle("GET /v1/residents", c.listResidents())
	router.Handle("POST /v1/residents/duplicates", c.findDuplicates())
	router.Handle("GET /v1/residents/{id}", c.getResident())
	router.Handle("PUT /v1/residents/{id}", c.updateResident())
	router.Handle("DELETE /v1/residents/{id}", c.deleteResident())
}

func (c *ResidentController) decode(w http.ResponseWriter, r *http.Request) (internal.ResidentRequest, bool) {
	var body internal.ResidentRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidResidentBodyErrMessage)
		return body, false
	}

	if err := validation.Struct(body); err != nil {
		httpserver.ReplyWithValidationError(w, err, invalidResidentBodyErrMessage)
		return body, false
	}

	return body, true
}

func (c *ResidentController) createResident() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := c.decode(w, r)
		if !ok {
			return
		}

		resident, err := body.ToDomain(shared.ID(utils.GenerateUUID()))
		if err != nil {
			replyServiceError(w, err, createResidentErrMessage)
			return
		}
		now := c.now().UTC()
		resident.Version = 1
		resident.CreatedAt = now
		resident.UpdatedAt = now

		if err := c.service.CreateResident(r.Context(), resident); err != nil {
			replyServiceError(w, err, createResidentErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToResidentResponse(resident, now))
	}
}

func (c *ResidentController) listResidents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		filter := usecases.ResidentFilter{
			HouseholdID: shared.ID(httpserver.GetQueryParam(r, "household_id")),
			Query:       httpserver.GetQueryParam(r, "q"),
		}

		residents, total, err := c.service.ListResidents(r.Context(), filter, toPagination(params))
		if err != nil {
			replyServiceError(w, err, listResidentsErrMessage)
			return
		}

		now := c.now()
		response := make([]internal.ResidentResponse, len(residents))
		for i, resident := range residents {
			response[i] = internal.ToResidentResponse(resident, now)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, response, total, params)
	}
}

func (c *ResidentController) getResident() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resident, err := c.service.GetResident(r.Context(), shared.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, getResidentErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToResidentResponse(resident, c.now()))
	}
}

func (c *ResidentController) updateResident() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := c.decode(w, r)
		if !ok {
			return
		}

		resident, err := body.ToDomain(shared.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, updateResidentErrMessage)
			return
		}

		updated, err := c.service.UpdateResident(r.Context(), resident)
		if err != nil {
			replyServiceError(w, err, updateResidentErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToResidentResponse(updated, c.now()))
	}
}

func (c *ResidentController) deleteResident() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.DeleteResident(r.Context(), shared.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, deleteResidentErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// findDuplicates takes a resident payload that has not been saved yet and
// returns registered residents whose names look alike.
func (c *ResidentController) findDuplicates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := c.decode(w, r)
		if !ok {
			return
		}

		subject, err := body.ToDomain("")
		if err != nil {
			replyServiceError(w, err, findDuplicatesErrMessage)
			return
		}

		matches, err := c.service.FindDuplicates(r.Context(), subject)
		if err != nil {
			if errors.Is(err, usecases.ErrLastNameRequired) {
				httpserver.ReplyWithValidationError(w, validation.NewError("last_name", "required"), findDuplicatesErrMessage)
				return
			}
			replyServiceError(w, err, findDuplicatesErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDuplicateResponses(matches, c.now()))
	}
}
