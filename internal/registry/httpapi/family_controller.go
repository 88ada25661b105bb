package httpapi

import (
	"net/http"

	"profiling-server/internal/infra/httpserver"
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/registry/httpapi/internal"
	"profiling-server/internal/registry/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
)

const (
	createFamilyErrMessage      = "failed to create family"
	getFamilyErrMessage         = "failed to get family"
	listFamiliesErrMessage      = "failed to list families"
	updateFamilyErrMessage      = "failed to update family"
	deleteFamilyErrMessage      = "failed to delete family"
	listMembersErrMessage       = "failed to list family members"
	addMemberErrMessage         = "failed to add family member"
	removeMemberErrMessage      = "failed to remove family member"
	invalidFamilyBodyErrMessage = "invalid family payload"
	invalidMemberBodyErrMessage = "invalid family member payload"
)

func NewFamilyController(service usecases.FamilyService) *FamilyController {
	return &FamilyController{service: service}
}

var _ httpserver.Controller = &FamilyController{}

type FamilyController struct {
	service usecases.FamilyService
}

func (c *FamilyController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/families", c.createFamily())
	router.Handle("GET /v1/families", c.listFamilies())
	router.Handle("GET /v1/families/{id}", c.getFamily())
	router.Handle("PUT /v1/families/{id}", c.updateFamily())
	router.Handle("DELETE /v1/families/{id}", c.deleteFamily())
	router.Handle("GET /v1/families/{id}/members", c.listMembers())
	router.Handle("POST /v1/families/{id}/members", c.addMember())
	router.Handle("DELETE /v1/families/{id}/members/{resident_id}", c.removeMember())
}

func (c *FamilyController) decode(w http.ResponseWriter, r *http.Request) (internal.FamilyRequest, bool) {
	var body internal.FamilyRequest
	if err := httpserver.DecodeJSONBody(r, &body); err != nil {
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidFamilyBodyErrMessage)
		return body, false
	}

	if err := validation.Struct(body); err != nil {
		httpserver.ReplyWithValidationError(w, err, invalidFamilyBodyErrMessage)
		return body, false
	}

	return body, true
}

func (c *FamilyController) createFamily() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := c.decode(w, r)
		if !ok {
			return
		}

		family := body.ToDomain(shared.ID(utils.GenerateUUID()))
		family.Version = 1

		if err := c.service.CreateFamily(r.Context(), family); err != nil {
			replyServiceError(w, err, createFamilyErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToFamilyResponse(family))
	}
}

func (c *FamilyController) listFamilies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		filter := usecases.FamilyFilter{
			HouseholdID: shared.ID(httpserver.GetQueryParam(r, "household_id")),
			Query:       httpserver.GetQueryParam(r, "q"),
		}

		families, total, err := c.service.ListFamilies(r.Context(), filter, toPagination(params))
		if err != nil {
			replyServiceError(w, err, listFamiliesErrMessage)
			return
		}

		response := make([]internal.FamilyResponse, len(families))
		for i, family := range families {
			response[i] = internal.ToFamilyResponse(family)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, response, total, params)
	}
}

func (c *FamilyController) getFamily() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		family, err := c.service.GetFamily(r.Context(), shared.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, getFamilyErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFamilyResponse(family))
	}
}

// updateFamily ignores members in the payload; composition changes go
// through the members endpoints.
func (c *FamilyController) updateFamily() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := c.decode(w, r)
		if !ok {
			return
		}

		family := body.ToDomain(shared.ID(r.PathValue("id")))
		family.Members = nil

		updated, err := c.service.UpdateFamily(r.Context(), family)
		if err != nil {
			replyServiceError(w, err, updateFamilyErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFamilyResponse(updated))
	}
}

func (c *FamilyController) deleteFamily() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.service.DeleteFamily(r.Context(), shared.ID(r.PathValue("id"))); err != nil {
			replyServiceError(w, err, deleteFamilyErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *FamilyController) listMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := c.service.ListMembers(r.Context(), shared.ID(r.PathValue("id")))
		if err != nil {
			replyServiceError(w, err, listMembersErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFamilyMemberResponses(members))
	}
}

func (c *FamilyController) addMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FamilyMemberRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidMemberBodyErrMessage)
			return
		}

		if err := validation.Struct(body); err != nil {
			httpserver.ReplyWithValidationError(w, err, invalidMemberBodyErrMessage)
			return
		}

		member := body.ToDomain(shared.ID(r.PathValue("id")))
		if err := c.service.AddMember(r.Context(), member); err != nil {
			replyServiceError(w, err, addMemberErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToFamilyMemberResponse(member))
	}
}

func (c *FamilyController) removeMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		familyID := shared.ID(r.PathValue("id"))
		residentID := shared.ID(r.PathValue("resident_id"))

		if err := c.service.RemoveMember(r.Context(), familyID, residentID); err != nil {
			replyServiceError(w, err, removeMemberErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
