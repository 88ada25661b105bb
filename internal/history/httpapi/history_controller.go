package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"profiling-server/internal/history/httpapi/internal"
	"profiling-server/internal/history/usecases"
	"profiling-server/internal/infra/httpserver"
	shared "profiling-server/internal/shared_kernel/domain"
)

const listHistoryErrMessage = "failed to list record history"

func NewHistoryController(service usecases.HistoryService) *HistoryController {
	return &HistoryController{service: service}
}

var _ httpserver.Controller = &HistoryController{}

type HistoryController struct {
	service usecases.HistoryService
}

func (c *HistoryController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/records/{entity}/{id}/history", c.list())
}

func (c *HistoryController) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: params.Offset()}

		entries, total, err := c.service.ListHistory(r.Context(), r.PathValue("entity"), shared.ID(r.PathValue("id")), pagination)
		switch {
		case errors.Is(err, usecases.ErrUnknownEntity):
			httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
			return
		case errors.Is(err, usecases.ErrRecordIDRequired):
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			slog.Error(listHistoryErrMessage, slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, listHistoryErrMessage)
			return
		}

		response := make([]internal.EntryResponse, len(entries))
		for i, entry := range entries {
			response[i] = internal.ToEntryResponse(entry)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, response, total, params)
	}
}
