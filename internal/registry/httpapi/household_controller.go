package httpapi

import (
	"bytes"
	"fmt"
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
	createHouseholdErrMessage      = "failed to create household"
	getHouseholdErrMessage         = "failed to get household"
	listHouseholdsErrMessage       = "failed to list households"
	updateHouseholdErrMessage      = "failed to update household"
	deleteHouseholdErrMessage      = "failed to delete household"
	exportHouseholdsErrMessage     = "failed to export households"
	invalidHouseholdBodyErrMessage = "invalid household payload"

	_xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func NewHouseholdController(service usecases.HouseholdService) *HouseholdController {
	return &HouseholdController{service: service}
}

var _ httpserver.Controller = &HouseholdController{}

type HouseholdController struct {
	service usecases.HouseholdService
}

func (c *HouseholdController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/households", c.createHousehold())
	router.Handle("GET /v1/households", c.listHouseholds())
	router.Handle("GET /v1/households/export", c.exportHouseholds())
	router.Handle("GET /v1/households/{id}", c.getHousehold())
	router.Handle("PUT /v1/households/{id}", c.updateHousehold())
	router.Handle("DELETE /v1/households/{id}", c.deleteHousehold())
}

func (c *HouseholdController) decode(w http.ResponseWriter, r *http.Request) (internal.HouseholdRequest, bool) {
	var body internal.HouseholdRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidHouseholdBodyErrMessage)
		return body, false
	}

	if err := validation.Struct(body); err != nil {
		httpserver.ReplyWithValidationError(w, err, invalidHouseholdBodyErrMessage)
		return body, false
	}

	return body, true
}

func (c *HouseholdController) createHousehold() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := c.decode(w, r)
		if !ok {
			return
		}

		household := body.ToDomain(shared.ID(utils.GenerateUUID()))
		household.Version = 1

		created, err := c.service.CreateHousehold(r.Context(), household)
		if err != nil {
			replyServiceError(w, err, createHouseholdErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToHouseholdResponse(created))
	}
}

func (c *HouseholdController) listHouseholds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		filter := usecases.HouseholdFilter{
			Query: httpserver.GetQueryParam(r, "q"),
			Purok: httpserver.GetQueryParam(r, "purok"),
		}

		households, total, err := c.service.ListHouseholds(r.Context(), filter, toPagination(params))
		if err != nil {
			replyServiceError(w, err, listHouseholdsErrMessage)
			return
		}

		response := make([]internal.HouseholdResponse, len(households))
		for i, household := range households {
			response[i] = internal.ToHouseholdResponse(household)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, response, total, params)
	}
}

func (c *HouseholdController) getHousehold() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		household, err := c.service.GetHousehold(r.Context(), shared.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, getHouseholdErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToHouseholdResponse(household))
	}
}

func (c *HouseholdController) updateHousehold() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := c.decode(w, r)
		if !ok {
			return
		}

		updated, err := c.service.UpdateHousehold(r.Context(), body.ToDomain(shared.ID(r.PathValue("id"))))
		if err != nil {
			replyServiceError(w, err, updateHouseholdErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToHouseholdResponse(updated))
	}
}

func (c *HouseholdController) deleteHousehold() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.DeleteHousehold(r.Context(), shared.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, deleteHouseholdErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// exportHouseholds buffers the workbook so a failure halfway still gets a
// proper error status.
func (c *HouseholdController) exportHouseholds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buffer bytes.Buffer
		if err := c.service.ExportHouseholds(r.Context(), &buffer); err != nil {
			replyServiceError(w, err, exportHouseholdsErrMessage)
			return
		}

		filename := fmt.Sprintf("households-%s.xlsx", time.Now().Format("20060102"))
		w.Header().Set("Content-Type", _xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = buffer.WriteTo(w)
	}
}
