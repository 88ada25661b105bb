package httpapi

import (
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
	createBusinessErrMessage      = "failed to create business"
	getBusinessErrMessage         = "failed to get business"
	listBusinessesErrMessage      = "failed to list businesses"
	updateBusinessErrMessage      = "failed to update business"
	deleteBusinessErrMessage      = "failed to delete business"
	invalidBusinessBodyErrMessage = "invalid business payload"
)

func NewBusinessController(service usecases.BusinessService) *BusinessController {
	return &BusinessController{service: service}
}

var _ httpserver.Controller = &BusinessController{}

type BusinessController struct {
	service usecases.BusinessService
}

func (c *BusinessController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/businesses", c.createBusiness())
	router.Handle("GET /v1/businesses", c.listBusinesses())
	router.Handle("GET /v1/businesses/{id}", c.getBusiness())
	router.Handle("PUT /v1/businesses/{id}", c.updateBusiness())
	router.Handle("DELETE /v1/businesses/{id}", c.deleteBusiness())
}

func (c *BusinessController) decode(w http.ResponseWriter, r *http.Request) (internal.BusinessRequest, bool) {
	var body internal.BusinessRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBusinessBodyErrMessage)
		return body, false
	}

	if err := validation.Struct(body); err != nil {
		httpserver.ReplyWithValidationError(w, err, invalidBusinessBodyErrMessage)
		return body, false
	}

	return body, true
}

func (c *BusinessController) createBusiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := c.decode(w, r)
		if !ok {
			return
		}

		business := body.ToDomain(shared.ID(utils.GenerateUUID()))
		now := time.Now().UTC()
		business.Version = 1
		business.CreatedAt = now
		business.UpdatedAt = now

		if err := c.service.CreateBusiness(r.Context(), business); err != nil {
			replyServiceError(w, err, createBusinessErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToBusinessResponse(business))
	}
}

func (c *BusinessController) listBusinesses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		filter := usecases.BusinessFilter{
			OwnerResidentID: shared.ID(httpserver.GetQueryParam(r, "owner_resident_id")),
			Query:           httpserver.GetQueryParam(r, "q"),
		}

		businesses, total, err := c.service.ListBusinesses(r.Context(), filter, toPagination(params))
		if err != nil {
			replyServiceError(w, err, listBusinessesErrMessage)
			return
		}

		response := make([]internal.BusinessResponse, len(businesses))
		for i, business := range businesses {
			response[i] = internal.ToBusinessResponse(business)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, response, total, params)
	}
}

func (c *BusinessController) getBusiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, err := c.service.GetBusiness(r.Context(), shared.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, getBusinessErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToBusinessResponse(business))
	}
}

func (c *BusinessController) updateBusiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := c.decode(w, r)
		if !ok {
			return
		}

		updated, err := c.service.UpdateBusiness(r.Context(), body.ToDomain(shared.ID(r.PathValue("id"))))
		if err != nil {
			replyServiceError(w, err, updateBusinessErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToBusinessResponse(updated))
	}
}

func (c *BusinessController) deleteBusiness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.DeleteBusiness(r.Context(), shared.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, deleteBusinessErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
