package internal

import (
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

type FamilyMemberRequest struct {
	ResidentID string `json:"resident_id" validate:"required"`
	Role       string `json:"role" validate:"required"`
}

func (r FamilyMemberRequest) ToDomain(familyID shared.ID) domain.FamilyMember {
	return domain.FamilyMember{
		FamilyID:   familyID,
		ResidentID: shared.ID(r.ResidentID),
		Role:       domain.Role(r.Role),
	}
}

type FamilyRequest struct {
	HouseholdID    string                `json:"household_id" validate:"required"`
	Name           string                `json:"family_name" validate:"required"`
	HeadResidentID string                `json:"head_resident_id"`
	LivingSolo     bool                  `json:"living_solo"`
	Members        []FamilyMemberRequest `json:"members" validate:"dive"`
	Version        int                   `json:"version"`
}

func (r FamilyRequest) ToDomain(id shared.ID) domain.Family {
	members := make([]domain.FamilyMember, len(r.Members))
	for i, member := range r.Members {
		members[i] = member.ToDomain(id)
	}

	return domain.Family{
		ID:             id,
		Version:        shared.Version(r.Version),
		HouseholdID:    shared.ID(r.HouseholdID),
		Name:           r.Name,
		HeadResidentID: shared.ID(r.HeadResidentID),
		LivingSolo:     r.LivingSolo,
		Members:        members,
	}
}

type FamilyMemberResponse struct {
	ResidentID string     `json:"resident_id"`
	Role       string     `json:"role"`
	CreatedAt  utils.Time `json:"created_at"`
}

type FamilyResponse struct {
	ID             string                 `json:"id"`
	Version        int                    `json:"version"`
	HouseholdID    string                 `json:"household_id"`
	Name           string                 `json:"family_name"`
	HeadResidentID string                 `json:"head_resident_id,omitempty"`
	LivingSolo     bool                   `json:"living_solo"`
	Members        []FamilyMemberResponse `json:"members"`
	CreatedAt      utils.Time             `json:"created_at"`
	UpdatedAt      utils.Time             `json:"updated_at"`
}

func ToFamilyMemberResponse(member domain.FamilyMember) FamilyMemberResponse {
	return FamilyMemberResponse{
		ResidentID: member.ResidentID.String(),
		Role:       string(member.Role),
		CreatedAt:  utils.Time{Time: member.CreatedAt},
	}
}

func ToFamilyMemberResponses(members []domain.FamilyMember) []FamilyMemberResponse {
	result := make([]FamilyMemberResponse, len(members))
	for i, member := range members {
		result[i] = ToFamilyMemberResponse(member)
	}
	return result
}

func ToFamilyResponse(value domain.Family) FamilyResponse {
	return FamilyResponse{
		ID:             value.ID.String(),
		Version:        int(value.Version),
		HouseholdID:    value.HouseholdID.String(),
		Name:           value.Name,
		HeadResidentID: value.HeadResidentID.String(),
		LivingSolo:     value.LivingSolo,
		Members:        ToFamilyMemberResponses(value.Members),
		CreatedAt:      utils.Time{Time: value.CreatedAt},
		UpdatedAt:      utils.Time{Time: value.UpdatedAt},
	}
}
