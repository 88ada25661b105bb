package internal

import (
	"time"

	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"
)

type Family struct {
	ID             string         `json:"id" gorm:"primaryKey"`
	Version        int            `json:"version"`
	HouseholdID    string         `json:"household_id" gorm:"index;not null"`
	Name           string         `json:"name" gorm:"index;not null"`
	HeadResidentID *string        `json:"head_resident_id,omitempty"`
	LivingSolo     bool           `json:"living_solo"`
	Members        []FamilyMember `json:"members" gorm:"foreignKey:FamilyID;references:ID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      *time.Time     `json:"deleted_at,omitempty" gorm:"index"`
}

func (Family) TableName() string {
	return "families"
}

type FamilyMember struct {
	FamilyID   string    `json:"family_id" gorm:"primaryKey"`
	ResidentID string    `json:"resident_id" gorm:"primaryKey"`
	Role       string    `json:"role" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (FamilyMember) TableName() string {
	return "family_members"
}

func (f Family) ToDomain() domain.Family {
	members := make([]domain.FamilyMember, len(f.Members))
	for i, member := range f.Members {
		members[i] = member.ToDomain()
	}

	return domain.Family{
		ID:             shared.ID(f.ID),
		Version:        shared.Version(f.Version),
		HouseholdID:    shared.ID(f.HouseholdID),
		Name:           f.Name,
		HeadResidentID: idValue(f.HeadResidentID),
		LivingSolo:     f.LivingSolo,
		Members:        members,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
		DeletedAt:      f.DeletedAt,
	}
}

func (m FamilyMember) ToDomain() domain.FamilyMember {
	return domain.FamilyMember{
		FamilyID:   shared.ID(m.FamilyID),
		ResidentID: shared.ID(m.ResidentID),
		Role:       domain.Role(m.Role),
		CreatedAt:  m.CreatedAt,
	}
}

func FromFamily(value domain.Family) Family {
	members := make([]FamilyMember, len(value.Members))
	for i, member := range value.Members {
		members[i] = FromFamilyMember(member)
	}

	return Family{
		ID:             value.ID.String(),
		Version:        int(value.Version),
		HouseholdID:    value.HouseholdID.String(),
		Name:           value.Name,
		HeadResidentID: nullableID(value.HeadResidentID),
		LivingSolo:     value.LivingSolo,
		Members:        members,
		CreatedAt:      value.CreatedAt,
		UpdatedAt:      value.UpdatedAt,
		DeletedAt:      value.DeletedAt,
	}
}

func FromFamilyMember(value domain.FamilyMember) FamilyMember {
	return FamilyMember{
		FamilyID:   value.FamilyID.String(),
		ResidentID: value.ResidentID.String(),
		Role:       string(value.Role),
		CreatedAt:  value.CreatedAt,
	}
}
