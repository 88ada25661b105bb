package httpapi

import (
	"errors"
	"net/http"

	"profiling-server/internal/infra/httpserver"
	"profiling-server/internal/lookups/usecases"
)

const searchLookupErrMessage = "failed to search lookup"

func NewLookupController(service usecases.LookupService) *LookupController {
	return &LookupController{service: service}
}

var _ httpserver.Controller = &LookupController{}

type LookupController struct {
	service usecases.LookupService
}

func (c *LookupController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/lookups", c.listCategories())
	router.Handle("GET /v1/lookups/{category}", c.search())
}

func (c *LookupController) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpserver.ReplyJSONResponse(w, http.StatusOK, map[string]any{
			"data": c.service.ListCategories(r.Context()),
		})
	}
}

func (c *LookupController) search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.PathValue("category")
		items, err := c.service.Search(r.Context(), category, httpserver.GetQueryParam(r, "q"))
		if errors.Is(err, usecases.ErrCategoryNotFound) {
			httpserver.ReplyWithError(w, http.StatusNotFound, err.Error())
			return
		}
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusInternalServerError, searchLookupErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, map[string]any{
			"category": category,
			"data":     items,
		})
	}
}
