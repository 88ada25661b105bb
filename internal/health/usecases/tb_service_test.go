package usecases_test

import (
	"context"
	"time"

	"profiling-server/internal/health/domain"
	"profiling-server/internal/health/usecases"
	"profiling-server/internal/infra/cache"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
	"profiling-server/internal/shared_kernel/validation"
	mockusecases "profiling-server/test/unit/doubles/health/usecases"
	mockevents "profiling-server/test/unit/doubles/shared_kernel/events"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("TBService", func() {
	var (
		ctx        context.Context
		ctrl       *gomock.Controller
		repository *mockusecases.MockTBRepository
		directory  *mockusecases.MockSubjectDirectory
		notifier   *mockevents.MockNotifier
		queryCache *cache.RistrettoCache
		service    *usecases.SimpleTBService
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		repository = mockusecases.NewMockTBRepository(ctrl)
		directory = mockusecases.NewMockSubjectDirectory(ctrl)
		notifier = mockevents.NewMockNotifier(ctrl)
		queryCache = newTestCache()
		service = usecases.NewTBService(repository, directory, queryCache, notifier, usecases.DefaultOptions())
	})

	ginkgo.AfterEach(func() {
		queryCache.Close()
		ctrl.Finish()
	})

	ginkgo.It("flags a screening with symptoms as presumptive", func() {
		record := domain.TBRecord{
			ID:         "tb-1",
			ResidentID: "r-1",
			ScreenedOn: time.Now().Add(-time.Hour),
			Symptoms:   []domain.Symptom{domain.SymptomCoughTwoWeeks, domain.SymptomWeightLoss},
		}
		directory.EXPECT().ResidentExists(gomock.Any(), shared.ID("r-1")).Return(true, nil)
		repository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().RecordChanged(gomock.Any(), usecases.EntityTBRecord, shared.ID("tb-1"), events.ActionCreated)

		created, err := service.CreateTBRecord(ctx, record)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(created.Presumptive).To(gomega.BeTrue())
		gomega.Expect(created.XpertResult).To(gomega.Equal(domain.XpertPending))
	})

	ginkgo.It("does not reach storage for an invalid symptom", func() {
		record := domain.TBRecord{
			ID:         "tb-1",
			ResidentID: "r-1",
			ScreenedOn: time.Now().Add(-time.Hour),
			Symptoms:   []domain.Symptom{"HEADACHE"},
		}

		_, err := service.CreateTBRecord(ctx, record)
		verr, ok := validation.IsValidationError(err)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(verr.Fields).To(gomega.HaveKeyWithValue("symptoms[0]", "oneof"))
	})

	ginkgo.It("lists by resident", func() {
		filter := usecases.RecordFilter{ResidentID: "r-1"}
		pagination := usecases.Pagination{Limit: 10}
		repository.EXPECT().FindAll(gomock.Any(), filter, pagination).Return([]domain.TBRecord{{ID: "tb-1"}}, 1, nil)

		records, total, err := service.ListTBRecords(ctx, filter, pagination)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(records).To(gomega.HaveLen(1))
		gomega.Expect(total).To(gomega.Equal(1))
	})
})
