package domain

import (
	"fmt"
	"strings"
	"time"

	"profiling-server/internal/infra/utils"
	"profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
)

type Role string

const (
	RoleFather      Role = "FATHER"
	RoleMother      Role = "MOTHER"
	RoleSon         Role = "SON"
	RoleDaughter    Role = "DAUGHTER"
	RoleDependent   Role = "DEPENDENT"
	RoleGrandparent Role = "GRANDPARENT"
	RoleGuardian    Role = "GUARDIAN"
	RoleOther       Role = "OTHER"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleFather, RoleMother, RoleSon, RoleDaughter,
		RoleDependent, RoleGrandparent, RoleGuardian, RoleOther:
		return true
	}
	return false
}

func (r Role) IsParent() bool {
	return r == RoleFather || r == RoleMother
}

type Family struct {
	ID             domain.ID
	Version        domain.Version
	HouseholdID    domain.ID
	Name           string
	HeadResidentID domain.ID
	LivingSolo     bool
	Members        []FamilyMember
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

type FamilyMember struct {
	FamilyID   domain.ID
	ResidentID domain.ID
	Role       Role
	CreatedAt  time.Time
}

func (f Family) IsDeleted() bool {
	return f.DeletedAt != nil
}

func (f Family) Validate() error {
	result := &validation.Error{}
	if f.HouseholdID.IsEmpty() {
		result.Add("household_id", "required")
	}
	if strings.TrimSpace(f.Name) == "" {
		result.Add("family_name", "required")
	}
	return result.OrNil()
}

// ValidateComposition checks a family's member list. Unless the family is
// living solo it needs a FATHER or a MOTHER; each role appears at most once
// among parents and each resident at most once overall.
func ValidateComposition(livingSolo bool, members []FamilyMember) error {
	result := &validation.Error{}

	seen := make(map[domain.ID]struct{}, len(members))
	parents := make(map[Role]int, 2)
	for i, member := range members {
		field := fmt.Sprintf("members[%d]", i)
		if member.ResidentID.IsEmpty() {
			result.Add(field+".resident_id", "required")
		} else if _, dup := seen[member.ResidentID]; dup {
			result.Add(field+".resident_id", "unique")
		}
		seen[member.ResidentID] = struct{}{}

		if !member.Role.IsValid() {
			result.Add(field+".role", "oneof")
			continue
		}
		if member.Role.IsParent() {
			parents[member.Role]++
			if parents[member.Role] > 1 {
				result.Add(field+".role", "single_"+strings.ToLower(string(member.Role)))
			}
		}
	}

	switch {
	case livingSolo && len(members) > 1:
		result.Add("members", "living_solo_single_member")
	case !livingSolo && len(parents) == 0:
		result.Add("members", "parent_required")
	}

	return result.OrNil()
}

func NewFamilyBuilder() *familyBuilder {
	return &familyBuilder{}
}

type familyBuilder struct {
	actions []familyHandler
}

type familyHandler func(v *Family) error

func (b *familyBuilder) WithHouseholdID(value domain.ID) *familyBuilder {
	b.actions = append(b.actions, func(f *Family) error {
		f.HouseholdID = value
		return nil
	})
	return b
}

func (b *familyBuilder) WithName(value string) *familyBuilder {
	b.actions = append(b.actions, func(f *Family) error {
		f.Name = strings.ToUpper(strings.TrimSpace(value))
		return nil
	})
	return b
}

func (b *familyBuilder) WithHeadResidentID(value domain.ID) *familyBuilder {
	b.actions = append(b.actions, func(f *Family) error {
		f.HeadResidentID = value
		return nil
	})
	return b
}

func (b *familyBuilder) WithLivingSolo(value bool) *familyBuilder {
	b.actions = append(b.actions, func(f *Family) error {
		f.LivingSolo = value
		return nil
	})
	return b
}

func (b *familyBuilder) Build() (Family, error) {
	now := time.Now().UTC()
	result := Family{
		ID:        domain.ID(utils.GenerateUUID()),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Family{}, err
		}
	}
	if err := result.Validate(); err != nil {
		return Family{}, err
	}
	return result, nil
}
