package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"profiling-server/internal/health/httpapi/internal"
	"profiling-server/internal/health/usecases"
	"profiling-server/internal/infra/httpserver"
	"profiling-server/internal/infra/utils"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
)

const (
	createNCDErrMessage   = "failed to create ncd record"
	getNCDErrMessage      = "failed to get ncd record"
	listNCDErrMessage     = "failed to list ncd records"
	updateNCDErrMessage   = "failed to update ncd record"
	deleteNCDErrMessage   = "failed to delete ncd record"
	createTBErrMessage    = "failed to create tb record"
	getTBErrMessage       = "failed to get tb record"
	listTBErrMessage      = "failed to list tb records"
	updateTBErrMessage    = "failed to update tb record"
	deleteTBErrMessage    = "failed to delete tb record"
	invalidBodyErrMessage = "invalid health record payload"
	subjectRequiredErrMsg = "resident_id or family_id is required"
)

func NewHealthRecordController(ncd usecases.NCDService, tb usecases.TBService) *HealthRecordController {
	return &HealthRecordController{ncd: ncd, tb: tb}
}

var _ httpserver.Controller = &HealthRecordController{}

type HealthRecordController struct {
	ncd usecases.NCDService
	tb  usecases.TBService
}

func (c *HealthRecordController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/health/ncd", c.createNCD())
	router.Handle("GET /v1/health/ncd", c.listNCD())
	router.Handle("GET /v1/health/ncd/{id}", c.getNCD())
	router.Handle("PUT /v1/health/ncd/{id}", c.updateNCD())
	router.Handle("DELETE /v1/health/ncd/{id}", c.deleteNCD())

	router.Handle("POST /v1/health/tb", c.createTB())
	router.Handle("GET /v1/health/tb", c.listTB())
	router.Handle("GET /v1/health/tb/{id}", c.getTB())
	router.Handle("PUT /v1/health/tb/{id}", c.updateTB())
	router.Handle("DELETE /v1/health/tb/{id}", c.deleteTB())
}

func decodeRecord(w http.ResponseWriter, r *http.Request, body any) bool {
	if err := httpserver.DecodeJSONBody(r, body); err != nil {
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
		return false
	}

	if err := validation.Struct(body); err != nil {
		httpserver.ReplyWithValidationError(w, err, invalidBodyErrMessage)
		return false
	}

	return true
}

// recordFilter needs at least one subject so listings stay scoped to a
// household visit.
func recordFilter(w http.ResponseWriter, r *http.Request) (usecases.RecordFilter, bool) {
	filter := usecases.RecordFilter{
		ResidentID: shared.ID(httpserver.GetQueryParam(r, "resident_id")),
		FamilyID:   shared.ID(httpserver.GetQueryParam(r, "family_id")),
	}
	if filter.ResidentID.IsEmpty() && filter.FamilyID.IsEmpty() {
		httpserver.ReplyWithError(w, http.StatusBadRequest, subjectRequiredErrMsg)
		return filter, false
	}
	return filter, true
}

func replyServiceError(w http.ResponseWriter, err error, errMsg string) {
	switch {
	case errors.Is(err, usecases.ErrNCDRecordNotFound), errors.Is(err, usecases.ErrTBRecordNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, usecases.ErrVersionConflict):
		httpserver.ReplyWithError(w, http.StatusConflict, err.Error())
	default:
		if _, ok := validation.IsValidationError(err); ok {
			httpserver.ReplyWithValidationError(w, err, errMsg)
			return
		}
		slog.Error(errMsg, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, errMsg)
	}
}

func pagination(params httpserver.PaginationParams) usecases.Pagination {
	return usecases.Pagination{Limit: params.Limit, Offset: params.Offset()}
}

func (c *HealthRecordController) createNCD() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.NCDRecordRequest
		if !decodeRecord(w, r, &body) {
			return
		}

		created, err := c.ncd.CreateNCDRecord(r.Context(), body.ToDomain(shared.ID(utils.GenerateUUID())))
		if err != nil {
			replyServiceError(w, err, createNCDErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToNCDRecordResponse(created))
	}
}

func (c *HealthRecordController) listNCD() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := recordFilter(w, r)
		if !ok {
			return
		}
		params := httpserver.ExtractPaginationParams(r)

		records, total, err := c.ncd.ListNCDRecords(r.Context(), filter, pagination(params))
		if err != nil {
			replyServiceError(w, err, listNCDErrMessage)
			return
		}

		response := make([]internal.NCDRecordResponse, len(records))
		for i, record := range records {
			response[i] = internal.ToNCDRecordResponse(record)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, response, total, params)
	}
}

func (c *HealthRecordController) getNCD() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := c.ncd.GetNCDRecord(r.Context(), shared.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, getNCDErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToNCDRecordResponse(record))
	}
}

func (c *HealthRecordController) updateNCD() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.NCDRecordRequest
		if !decodeRecord(w, r, &body) {
			return
		}

		updated, err := c.ncd.UpdateNCDRecord(r.Context(), body.ToDomain(shared.ID(r.PathValue("id"))))
		if err != nil {
			replyServiceError(w, err, updateNCDErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToNCDRecordResponse(updated))
	}
}

func (c *HealthRecordController) deleteNCD() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.ncd.DeleteNCDRecord(r.Context(), shared.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, deleteNCDErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *HealthRecordController) createTB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TBRecordRequest
		if !decodeRecord(w, r, &body) {
			return
		}

		created, err := c.tb.CreateTBRecord(r.Context(), body.ToDomain(shared.ID(utils.GenerateUUID())))
		if err != nil {
			replyServiceError(w, err, createTBErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToTBRecordResponse(created))
	}
}

func (c *HealthRecordController) listTB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := recordFilter(w, r)
		if !ok {
			return
		}
		params := httpserver.ExtractPaginationParams(r)

		records, total, err := c.tb.ListTBRecords(r.Context(), filter, pagination(params))
		if err != nil {
			replyServiceError(w, err, listTBErrMessage)
			return
		}

		response := make([]internal.TBRecordResponse, len(records))
		for i, record := range records {
			response[i] = internal.ToTBRecordResponse(record)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, response, total, params)
	}
}

func (c *HealthRecordController) getTB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := c.tb.GetTBRecord(r.Context(), shared.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, getTBErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTBRecordResponse(record))
	}
}

func (c *HealthRecordController) updateTB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.TBRecordRequest
		if !decodeRecord(w, r, &body) {
			return
		}

		updated, err := c.tb.UpdateTBRecord(r.Context(), body.ToDomain(shared.ID(r.PathValue("id"))))
		if err != nil {
			replyServiceError(w, err, updateTBErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToTBRecordResponse(updated))
	}
}

func (c *HealthRecordController) deleteTB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.tb.DeleteTBRecord(r.Context(), shared.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, deleteTBErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
