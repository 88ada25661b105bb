package persistence_test

import (
	"context"
	"time"

	"profiling-server/internal/health/domain"
	"profiling-server/internal/health/persistence"
	"profiling-server/internal/health/usecases"
	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/infra/sql"
	"profiling-server/internal/infra/utils"
	shared "profiling-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Health repositories", func() {
	var (
		ctx  context.Context
		ncds *persistence.SimpleNCDRepository
		tbs  *persistence.SimpleTBRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		orm, err := sql.NewMemoryORM("health-" + utils.GenerateUUID())
		Expect(err).NotTo(HaveOccurred())

		factory := pubsub.NewMemoryPublisherFactory()
		ncds, err = persistence.NewNCDRepository(factory, orm)
		Expect(err).NotTo(HaveOccurred())
		tbs, err = persistence.NewTBRepository(factory, orm)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("ncd records", func() {
		It("stores derived values and filters by family", func() {
			first, err := domain.NewNCDRecordBuilder().
				WithResidentID("r-1").
				WithFamilyID("f-1").
				WithMeasurements(165, 80).
				Build()
			Expect(err).NotTo(HaveOccurred())
			second, err := domain.NewNCDRecordBuilder().
				WithResidentID("r-2").
				WithAssessedOn(time.Now().AddDate(0, -1, 0)).
				Build()
			Expect(err).NotTo(HaveOccurred())

			Expect(ncds.Create(ctx, first)).To(Succeed())
			Expect(ncds.Create(ctx, second)).To(Succeed())

			stored, err := ncds.GetByID(ctx, first.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.BMICategory).To(Equal(domain.BMIObese))
			Expect(stored.FamilyID).To(Equal(shared.ID("f-1")))

			records, total, err := ncds.FindAll(ctx, usecases.RecordFilter{FamilyID: "f-1"}, usecases.Pagination{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(1))
			Expect(records[0].ID).To(Equal(first.ID))

			loaded, err := ncds.GetByID(ctx, second.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.FamilyID).To(BeEmpty())
		})

		It("hides soft deleted records", func() {
			record, err := domain.NewNCDRecordBuilder().WithResidentID("r-1").Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(ncds.Create(ctx, record)).To(Succeed())

			Expect(ncds.Delete(ctx, record.ID)).To(Succeed())

			_, err = ncds.GetByID(ctx, record.ID)
			Expect(err).To(MatchError(usecases.ErrNCDRecordNotFound))
			_, total, err := ncds.FindAll(ctx, usecases.RecordFilter{ResidentID: "r-1"}, usecases.Pagination{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
		})
	})

	Context("tb records", func() {
		It("round trips the symptom list", func() {
			record, err := domain.NewTBRecordBuilder().
				WithResidentID("r-1").
				WithSymptoms(domain.SymptomCoughTwoWeeks, domain.SymptomFever).
				Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(tbs.Create(ctx, record)).To(Succeed())

			stored, err := tbs.GetByID(ctx, record.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Symptoms).To(Equal([]domain.Symptom{domain.SymptomCoughTwoWeeks, domain.SymptomFever}))
			Expect(stored.Presumptive).To(BeTrue())

			stored.XpertResult = domain.XpertPositive
			stored.TreatmentStatus = domain.TreatmentOngoing
			stored.Version++
			Expect(tbs.Update(ctx, stored)).To(Succeed())

			records, total, err := tbs.FindAll(ctx, usecases.RecordFilter{ResidentID: "r-1"}, usecases.Pagination{Limit: 10})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(1))
			Expect(records[0].TreatmentStatus).To(Equal(domain.TreatmentOngoing))
		})
	})
})
