package domain_test

import (
	"profiling-server/internal/registry/domain"
	shared "profiling-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func member(id string, role domain.Role) domain.FamilyMember {
	return domain.FamilyMember{ResidentID: shared.ID(id), Role: role}
}

var _ = Describe("ValidateComposition", func() {
	It("accepts a family with a mother only", func() {
		err := domain.ValidateComposition(false, []domain.FamilyMember{
			member("r1", domain.RoleMother),
			member("r2", domain.RoleDaughter),
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("requires at least one parent", func() {
		err := domain.ValidateComposition(false, []domain.FamilyMember{
			member("r1", domain.RoleSon),
			member("r2", domain.RoleGuardian),
		})
		Expect(fieldErrors(err)).To(HaveKeyWithValue("members", "parent_required"))
	})

	It("does not require a parent for a living solo family", func() {
		err := domain.ValidateComposition(true, []domain.FamilyMember{member("r1", domain.RoleOther)})
		Expect(err).NotTo(HaveOccurred())
	})

	It("limits a living solo family to one member", func() {
		err := domain.ValidateComposition(true, []domain.FamilyMember{
			member("r1", domain.RoleOther),
			member("r2", domain.RoleOther),
		})
		Expect(fieldErrors(err)).To(HaveKeyWithValue("members", "living_solo_single_member"))
	})

	It("rejects the same resident twice", func() {
		err := domain.ValidateComposition(false, []domain.FamilyMember{
			member("r1", domain.RoleFather),
			member("r1", domain.RoleSon),
		})
		Expect(fieldErrors(err)).To(HaveKeyWithValue("members[1].resident_id", "unique"))
	})

	It("rejects two fathers", func() {
		err := domain.ValidateComposition(false, []domain.FamilyMember{
			member("r1", domain.RoleFather),
			member("r2", domain.RoleFather),
		})
		Expect(fieldErrors(err)).To(HaveKeyWithValue("members[1].role", "single_father"))
	})

	It("rejects unknown roles", func() {
		err := domain.ValidateComposition(false, []domain.FamilyMember{
			member("r1", domain.RoleMother),
			member("r2", domain.Role("COUSIN")),
		})
		Expect(fieldErrors(err)).To(HaveKeyWithValue("members[1].role", "oneof"))
	})
})

var _ = Describe("Family builder", func() {
	It("uppercases the family name", func() {
		family, err := domain.NewFamilyBuilder().
			WithHouseholdID("hh-1").
			WithName("  dela cruz ").
			Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(family.Name).To(Equal("DELA CRUZ"))
	})

	It("requires a household", func() {
		_, err := domain.NewFamilyBuilder().WithName("Santos").Build()
		Expect(fieldErrors(err)).To(HaveKeyWithValue("household_id", "required"))
	})
})
