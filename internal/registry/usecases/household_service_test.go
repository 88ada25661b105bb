package usecases_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"profiling-server/internal/infra/cache"
	"profiling-server/internal/registry/domain"
	"profiling-server/internal/registry/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
	"profiling-server/internal/shared_kernel/validation"
	mockcache "profiling-server/test/unit/doubles/infra/cache"
	mockusecases "profiling-server/test/unit/doubles/registry/usecases"
	mockevents "profiling-server/test/unit/doubles/shared_kernel/events"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func newTestCache() *cache.RistrettoCache {
	c, err := cache.New(&cache.CacheConfig{MaxCost: 1 << 20, NumCounters: 1e4, BufferItems: 64})
	gomega.Expect(err).NotTo(gomega.HaveOccurred())
	return c
}

var _ = ginkgo.Describe("HouseholdService", func() {
	var (
		ctx        context.Context
		ctrl       *gomock.Controller
		households *mockusecases.MockHouseholdRepository
		residents  *mockusecases.MockResidentRepository
		notifier   *mockevents.MockNotifier
		queryCache *cache.RistrettoCache
		service    *usecases.SimpleHouseholdService
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		households = mockusecases.NewMockHouseholdRepository(ctrl)
		residents = mockusecases.NewMockResidentRepository(ctrl)
		notifier = mockevents.NewMockNotifier(ctrl)
		queryCache = newTestCache()
		service = usecases.NewHouseholdService(households, residents, queryCache, cache.NewLocalLocker(), notifier, usecases.DefaultOptions())
	})

	ginkgo.AfterEach(func() {
		queryCache.Close()
		ctrl.Finish()
	})

	ginkgo.Context("CreateHousehold", func() {
		ginkgo.It("allocates the next number for the current year", func() {
			household, err := domain.NewHouseholdBuilder().
				WithToiletFacility(domain.ToiletSanitary, domain.SanitaryPourFlush).
				Build()
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			year := time.Now().Year()
			households.EXPECT().LastSequence(gomock.Any(), year).Return(41, nil)
			households.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h domain.Household) error {
				gomega.Expect(h.Number).To(gomega.Equal(fmt.Sprintf("HH-%d-000042", year)))
				return nil
			})
			notifier.EXPECT().RecordChanged(gomock.Any(), usecases.EntityHousehold, household.ID, events.ActionCreated)

			created, err := service.CreateHousehold(ctx, household)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(created.Number).To(gomega.HaveSuffix("-000042"))
		})

		ginkgo.It("rejects a sanitary toilet without subtype before touching storage", func() {
			household := domain.Household{ID: "hh-1", ToiletFacility: domain.ToiletSanitary}

			_, err := service.CreateHousehold(ctx, household)
			verr, ok := validation.IsValidationError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(verr.Fields).To(gomega.HaveKeyWithValue("sanitary_subtype", "required_if_sanitary"))
		})

		ginkgo.It("fails when the head resident does not exist", func() {
			household := domain.Household{ID: "hh-1", ToiletFacility: domain.ToiletNone, HeadResidentID: "r-404"}
			residents.EXPECT().GetByID(gomock.Any(), shared.ID("r-404")).Return(domain.Resident{}, usecases.ErrResidentNotFound)

			_, err := service.CreateHousehold(ctx, household)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrResidentNotFound))
		})

		ginkgo.It("fails when the number lock cannot be obtained", func() {
			locker := mockcache.NewMockLocker(ctrl)
			service = usecases.NewHouseholdService(households, residents, queryCache, locker, notifier, usecases.DefaultOptions())
			locker.EXPECT().Obtain(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, cache.ErrLockNotObtained)

			_, err := service.CreateHousehold(ctx, domain.Household{ID: "hh-1", ToiletFacility: domain.ToiletNone})
			gomega.Expect(err).To(gomega.MatchError(cache.ErrLockNotObtained))
		})

		ginkgo.It("releases the lock when storing fails", func() {
			locker := mockcache.NewMockLocker(ctrl)
			lock := mockcache.NewMockLock(ctrl)
			service = usecases.NewHouseholdService(households, residents, queryCache, locker, notifier, usecases.DefaultOptions())

			locker.EXPECT().Obtain(gomock.Any(), gomock.Any(), gomock.Any()).Return(lock, nil)
			households.EXPECT().LastSequence(gomock.Any(), gomock.Any()).Return(0, nil)
			households.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			lock.EXPECT().Release(gomock.Any()).Return(nil)

			_, err := service.CreateHousehold(ctx, domain.Household{ID: "hh-1", ToiletFacility: domain.ToiletNone})
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Context("GetHousehold", func() {
		ginkgo.It("reads through the cache", func() {
			stored := domain.Household{ID: "hh-1", Number: "HH-2024-000001", MonthlyIncome: decimal.NewFromInt(15000)}
			households.EXPECT().GetByID(gomock.Any(), shared.ID("hh-1")).Return(stored, nil).Times(1)

			first, err := service.GetHousehold(ctx, "hh-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			second, err := service.GetHousehold(ctx, "hh-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(second.Number).To(gomega.Equal(first.Number))
			gomega.Expect(second.MonthlyIncome.Equal(decimal.NewFromInt(15000))).To(gomega.BeTrue())
		})

		ginkgo.It("maps missing households", func() {
			households.EXPECT().GetByID(gomock.Any(), shared.ID("hh-404")).Return(domain.Household{}, usecases.ErrHouseholdNotFound)

			_, err := service.GetHousehold(ctx, "hh-404")
			gomega.Expect(err).To(gomega.Equal(usecases.ErrHouseholdNotFound))
		})
	})

	ginkgo.Context("UpdateHousehold", func() {
		existing := domain.Household{ID: "hh-1", Version: 3, Number: "HH-2024-000007", ToiletFacility: domain.ToiletNone, MemberCount: 4}

		ginkgo.It("bumps the version, keeps the number and invalidates the cache", func() {
			households.EXPECT().GetByID(gomock.Any(), shared.ID("hh-1")).Return(existing, nil).Times(2)
			households.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			notifier.EXPECT().RecordChanged(gomock.Any(), usecases.EntityHousehold, shared.ID("hh-1"), events.ActionUpdated)

			_, err := service.GetHousehold(ctx, "hh-1")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			updated, err := service.UpdateHousehold(ctx, domain.Household{ID: "hh-1", Version: 3, Number: "HH-1999-999999", ToiletFacility: domain.ToiletUnsanitary})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.Version).To(gomega.BeEquivalentTo(4))
			gomega.Expect(updated.Number).To(gomega.Equal("HH-2024-000007"))
			gomega.Expect(updated.MemberCount).To(gomega.Equal(4))

			_, found := queryCache.Get(ctx, "household:hh-1")
			gomega.Expect(found).To(gomega.BeFalse())
		})

		ginkgo.It("detects stale versions", func() {
			households.EXPECT().GetByID(gomock.Any(), shared.ID("hh-1")).Return(existing, nil)

			_, err := service.UpdateHousehold(ctx, domain.Household{ID: "hh-1", Version: 2, ToiletFacility: domain.ToiletNone})
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrVersionConflict))
		})
	})

	ginkgo.Context("ExportHouseholds", func() {
		ginkgo.It("writes one row per household with the head's name", func() {
			list := []domain.Household{
				{ID: "hh-1", Number: "HH-2024-000001", HeadResidentID: "r-1", MemberCount: 3, ToiletFacility: domain.ToiletSanitary, SanitarySubtype: domain.SanitaryPourFlush},
				{ID: "hh-2", Number: "HH-2024-000002", ToiletFacility: domain.ToiletNone},
			}
			households.EXPECT().FindAll(gomock.Any(), usecases.HouseholdFilter{}, usecases.Pagination{Limit: 200, Offset: 0}).Return(list, 2, nil)
			residents.EXPECT().GetByID(gomock.Any(), shared.ID("r-1")).Return(domain.Resident{
				ID:   "r-1",
				Name: shared.PersonName{LastName: "DELA CRUZ", FirstName: "JUAN"},
			}, nil)

			var buf bytes.Buffer
			gomega.Expect(service.ExportHouseholds(ctx, &buf)).To(gomega.Succeed())

			book, err := excelize.OpenReader(&buf)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			defer book.Close()

			rows, err := book.GetRows("Households")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(rows).To(gomega.HaveLen(3))
			gomega.Expect(rows[0][0]).To(gomega.Equal("Household No."))
			gomega.Expect(rows[1][1]).To(gomega.Equal("DELA CRUZ, JUAN"))
			gomega.Expect(rows[1][4]).To(gomega.Equal("SANITARY (POUR_FLUSH)"))
			gomega.Expect(rows[2][0]).To(gomega.Equal("HH-2024-000002"))
		})
	})
})
