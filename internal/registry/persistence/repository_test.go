package persistence_test

import (
	"context"
	"time"

	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/infra/sql"
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/registry/domain"
	"profiling-server/internal/registry/persistence"
	"profiling-server/internal/registry/usecases"
	shared "profiling-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("Registry repositories", func() {
	var (
		ctx        context.Context
		residents  *persistence.SimpleResidentRepository
		households *persistence.SimpleHouseholdRepository
		families   *persistence.SimpleFamilyRepository
		businesses *persistence.SimpleBusinessRepository
	)

	newResident := func(display string, householdID shared.ID) domain.Resident {
		resident, err := domain.NewResidentBuilder().
			WithDisplayName(display).
			WithSex(domain.SexFemale).
			WithBirthdate(time.Date(1988, time.January, 2, 0, 0, 0, 0, time.UTC)).
			WithHouseholdID(householdID).
			Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(residents.Create(ctx, resident)).To(Succeed())
		return resident
	}

	BeforeEach(func() {
		ctx = context.Background()
		orm, err := sql.NewMemoryORM("registry-" + utils.GenerateUUID())
		Expect(err).NotTo(HaveOccurred())

		factory := pubsub.NewMemoryPublisherFactory()
		residents, err = persistence.NewResidentRepository(factory, orm)
		Expect(err).NotTo(HaveOccurred())
		households, err = persistence.NewHouseholdRepository(factory, orm)
		Expect(err).NotTo(HaveOccurred())
		families, err = persistence.NewFamilyRepository(factory, orm)
		Expect(err).NotTo(HaveOccurred())
		businesses, err = persistence.NewBusinessRepository(factory, orm)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("households", func() {
		It("round trips income and counts living members", func() {
			household, err := domain.NewHouseholdBuilder().
				WithToiletFacility(domain.ToiletSanitary, domain.SanitaryFlushSeptic).
				WithMonthlyIncome(decimal.RequireFromString("18500.50")).
				WithAddress(shared.Address{Purok: "Purok 3", Barangay: "San Isidro"}).
				Build()
			Expect(err).NotTo(HaveOccurred())
			household.Number = domain.FormatHouseholdNumber(2024, 7)
			Expect(households.Create(ctx, household)).To(Succeed())

			newResident("Santos, Ana", household.ID)
			gone := newResident("Santos, Bea", household.ID)
			Expect(residents.Delete(ctx, gone.ID)).To(Succeed())

			stored, err := households.GetByID(ctx, household.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.MonthlyIncome.Equal(decimal.RequireFromString("18500.50"))).To(BeTrue())
			Expect(stored.SanitarySubtype).To(Equal(domain.SanitaryFlushSeptic))
			Expect(stored.Address.Barangay).To(Equal("San Isidro"))
			Expect(stored.MemberCount).To(Equal(1))
		})

		It("tracks the last sequence per year", func() {
			last, err := households.LastSequence(ctx, 2024)
			Expect(err).NotTo(HaveOccurred())
			Expect(last).To(Equal(0))

			for _, seq := range []int{3, 12} {
				household, err := domain.NewHouseholdBuilder().Build()
				Expect(err).NotTo(HaveOccurred())
				household.Number = domain.FormatHouseholdNumber(2024, seq)
				Expect(households.Create(ctx, household)).To(Succeed())
			}
			other, err := domain.NewHouseholdBuilder().Build()
			Expect(err).NotTo(HaveOccurred())
			other.Number = domain.FormatHouseholdNumber(2025, 99)
			Expect(households.Create(ctx, other)).To(Succeed())

			last, err = households.LastSequence(ctx, 2024)
			Expect(err).NotTo(HaveOccurred())
			Expect(last).To(Equal(12))
		})

		It("hides soft deleted households", func() {
			household, err := domain.NewHouseholdBuilder().Build()
			Expect(err).NotTo(HaveOccurred())
			household.Number = domain.FormatHouseholdNumber(2024, 1)
			Expect(households.Create(ctx, household)).To(Succeed())
			Expect(households.Delete(ctx, household.ID)).To(Succeed())

			_, err = households.GetByID(ctx, household.ID)
			Expect(err).To(MatchError(usecases.ErrHouseholdNotFound))

			list, total, err := households.FindAll(ctx, usecases.HouseholdFilter{}, usecases.Pagination{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
			Expect(list).To(BeEmpty())
		})
	})

	Context("residents", func() {
		It("filters by name and household with pagination", func() {
			newResident("Dela Cruz, Juan", "")
			newResident("Dela Rosa, Maria", "")
			newResident("Reyes, Jose", "")

			list, total, err := residents.FindAll(ctx, usecases.ResidentFilter{Query: "dela"}, usecases.Pagination{Limit: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(2))
			Expect(list).To(HaveLen(1))
			Expect(list[0].Name.LastName).To(Equal("DELA CRUZ"))

		})

		It("pages through live residents in id order", func() {
			newResident("Dela Cruz, Juan", "")
			newResident("Tela Cruz, Juan", "")
			gone := newResident("Reyes, Jose", "")
			Expect(residents.Delete(ctx, gone.ID)).To(Succeed())

			first, err := residents.FindAfter(ctx, "", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(first).To(HaveLen(1))

			rest, err := residents.FindAfter(ctx, first[0].ID, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(rest).To(HaveLen(1))
			Expect(rest[0].ID > first[0].ID).To(BeTrue())
			Expect([]string{first[0].Name.LastName, rest[0].Name.LastName}).To(ConsistOf("DELA CRUZ", "TELA CRUZ"))
		})

		It("reports missing residents", func() {
			_, err := residents.GetByID(ctx, "missing")
			Expect(err).To(MatchError(usecases.ErrResidentNotFound))
		})
	})

	Context("families", func() {
		It("stores members and manages them", func() {
			mother := newResident("Garcia, Liza", "")
			son := newResident("Garcia, Paolo", "")

			family, err := domain.NewFamilyBuilder().WithHouseholdID("hh-1").WithName("Garcia").Build()
			Expect(err).NotTo(HaveOccurred())
			family.Members = []domain.FamilyMember{{FamilyID: family.ID, ResidentID: mother.ID, Role: domain.RoleMother, CreatedAt: time.Now()}}
			Expect(families.Create(ctx, family)).To(Succeed())

			Expect(families.AddMember(ctx, domain.FamilyMember{FamilyID: family.ID, ResidentID: son.ID, Role: domain.RoleSon, CreatedAt: time.Now()})).To(Succeed())

			stored, err := families.GetByID(ctx, family.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Members).To(HaveLen(2))

			Expect(families.RemoveMember(ctx, family.ID, son.ID)).To(Succeed())
			stored, err = families.GetByID(ctx, family.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Members).To(HaveLen(1))
			Expect(stored.Members[0].Role).To(Equal(domain.RoleMother))

			stored.LivingSolo = true
			stored.Version = 2
			Expect(families.Update(ctx, stored)).To(Succeed())
			updated, err := families.GetByID(ctx, family.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.LivingSolo).To(BeTrue())
			Expect(updated.Members).To(HaveLen(1))
		})
	})

	Context("businesses", func() {
		It("filters by owner", func() {
			owner := newResident("Lim, Henry", "")
			business, err := domain.NewBusinessBuilder().
				WithName("Lim Sari-Sari Store").
				WithOwnerResidentID(owner.ID).
				WithCapital(decimal.NewFromInt(25000)).
				Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(businesses.Create(ctx, business)).To(Succeed())

			list, total, err := businesses.FindAll(ctx, usecases.BusinessFilter{OwnerResidentID: owner.ID}, usecases.Pagination{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(1))
			Expect(list[0].Capital.Equal(decimal.NewFromInt(25000))).To(BeTrue())

			_, total, err = businesses.FindAll(ctx, usecases.BusinessFilter{Query: "hardware"}, usecases.Pagination{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
		})
	})
})
