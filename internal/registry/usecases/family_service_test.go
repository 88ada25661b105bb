package usecases_test

import (
	"context"

	"profiling-server/internal/infra/cache"
	"profiling-server/internal/registry/domain"
	"profiling-server/internal/registry/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
	"profiling-server/internal/shared_kernel/validation"
	mockusecases "profiling-server/test/unit/doubles/registry/usecases"
	mockevents "profiling-server/test/unit/doubles/shared_kernel/events"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("FamilyService", func() {
	var (
		ctx        context.Context
		ctrl       *gomock.Controller
		families   *mockusecases.MockFamilyRepository
		households *mockusecases.MockHouseholdRepository
		residents  *mockusecases.MockResidentRepository
		notifier   *mockevents.MockNotifier
		queryCache *cache.RistrettoCache
		service    *usecases.SimpleFamilyService
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		families = mockusecases.NewMockFamilyRepository(ctrl)
		households = mockusecases.NewMockHouseholdRepository(ctrl)
		residents = mockusecases.NewMockResidentRepository(ctrl)
		notifier = mockevents.NewMockNotifier(ctrl)
		queryCache = newTestCache()
		service = usecases.NewFamilyService(families, households, residents, queryCache, notifier, usecases.DefaultOptions())
	})

	ginkgo.AfterEach(func() {
		queryCache.Close()
		ctrl.Finish()
	})

	withParents := domain.Family{
		ID:          "fam-1",
		Version:     1,
		HouseholdID: "hh-1",
		Name:        "SANTOS",
		Members: []domain.FamilyMember{
			{FamilyID: "fam-1", ResidentID: "r-mother", Role: domain.RoleMother},
			{FamilyID: "fam-1", ResidentID: "r-son", Role: domain.RoleSon},
		},
	}

	ginkgo.Context("CreateFamily", func() {
		ginkgo.It("stores the family with its members", func() {
			households.EXPECT().GetByID(gomock.Any(), shared.ID("hh-1")).Return(domain.Household{ID: "hh-1"}, nil)
			residents.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(domain.Resident{}, nil).Times(2)
			families.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f domain.Family) error {
				gomega.Expect(f.Members).To(gomega.HaveLen(2))
				gomega.Expect(f.Members[1].CreatedAt).NotTo(gomega.BeZero())
				return nil
			})
			notifier.EXPECT().RecordChanged(gomock.Any(), usecases.EntityFamily, shared.ID("fam-1"), events.ActionCreated)

			gomega.Expect(service.CreateFamily(ctx, withParents)).To(gomega.Succeed())
		})

		ginkgo.It("requires a parent unless living solo", func() {
			family := withParents
			family.Members = []domain.FamilyMember{{ResidentID: "r-son", Role: domain.RoleSon}}

			err := service.CreateFamily(ctx, family)
			verr, ok := validation.IsValidationError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(verr.Fields).To(gomega.HaveKeyWithValue("members", "parent_required"))
		})

		ginkgo.It("fails for an unknown household", func() {
			households.EXPECT().GetByID(gomock.Any(), shared.ID("hh-1")).Return(domain.Household{}, usecases.ErrHouseholdNotFound)

			err := service.CreateFamily(ctx, withParents)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrHouseholdNotFound))
		})
	})

	ginkgo.Context("members", func() {
		ginkgo.It("adds a member and invalidates the cached family", func() {
			families.EXPECT().GetByID(gomock.Any(), shared.ID("fam-1")).Return(withParents, nil).Times(2)
			residents.EXPECT().GetByID(gomock.Any(), shared.ID("r-father")).Return(domain.Resident{ID: "r-father"}, nil)
			families.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(nil)
			notifier.EXPECT().RecordChanged(gomock.Any(), usecases.EntityFamilyMember, shared.ID("fam-1"), events.ActionCreated)

			_, err := service.GetFamily(ctx, "fam-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			err = service.AddMember(ctx, domain.FamilyMember{FamilyID: "fam-1", ResidentID: "r-father", Role: domain.RoleFather})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			_, found := queryCache.Get(ctx, "family:fam-1")
			gomega.Expect(found).To(gomega.BeFalse())
		})

		ginkgo.It("rejects a resident that is already a member", func() {
			families.EXPECT().GetByID(gomock.Any(), shared.ID("fam-1")).Return(withParents, nil)

			err := service.AddMember(ctx, domain.FamilyMember{FamilyID: "fam-1", ResidentID: "r-son", Role: domain.RoleSon})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrMemberDuplicated))
		})

		ginkgo.It("rejects a second mother", func() {
			families.EXPECT().GetByID(gomock.Any(), shared.ID("fam-1")).Return(withParents, nil)

			err := service.AddMember(ctx, domain.FamilyMember{FamilyID: "fam-1", ResidentID: "r-other", Role: domain.RoleMother})
			_, ok := validation.IsValidationError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
		})

		ginkgo.It("keeps the last parent", func() {
			families.EXPECT().GetByID(gomock.Any(), shared.ID("fam-1")).Return(withParents, nil)

			err := service.RemoveMember(ctx, "fam-1", "r-mother")
			verr, ok := validation.IsValidationError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(verr.Fields).To(gomega.HaveKeyWithValue("members", "parent_required"))
		})

		ginkgo.It("removes a child", func() {
			families.EXPECT().GetByID(gomock.Any(), shared.ID("fam-1")).Return(withParents, nil)
			families.EXPECT().RemoveMember(gomock.Any(), shared.ID("fam-1"), shared.ID("r-son")).Return(nil)
			notifier.EXPECT().RecordChanged(gomock.Any(), usecases.EntityFamilyMember, shared.ID("fam-1"), events.ActionDeleted)

			gomega.Expect(service.RemoveMember(ctx, "fam-1", "r-son")).To(gomega.Succeed())
		})

		ginkgo.It("reports unknown members", func() {
			families.EXPECT().GetByID(gomock.Any(), shared.ID("fam-1")).Return(withParents, nil)

			err := service.RemoveMember(ctx, "fam-1", "r-stranger")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrMemberNotFound))
		})
	})
})
