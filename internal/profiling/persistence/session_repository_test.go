package persistence_test

import (
	"context"
	"time"

	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/infra/sql"
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/profiling/domain"
	"profiling-server/internal/profiling/persistence"
	"profiling-server/internal/profiling/usecases"
	shared "profiling-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("SessionRepository", func() {
	var (
		ctx        context.Context
		repository *persistence.SimpleSessionRepository
		now        time.Time
	)

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		orm, err := sql.NewMemoryORM("profiling-" + utils.GenerateUUID())
		Expect(err).NotTo(HaveOccurred())

		repository, err = persistence.NewSessionRepository(pubsub.NewMemoryPublisherFactory(), orm)
		Expect(err).NotTo(HaveOccurred())
	})

	filled := func() domain.Session {
		session := domain.NewSession("acc-1", now)
		Expect(session.SaveStep(domain.StepPersonalInfo, domain.PersonalInfo{
			DisplayName: "DELA CRUZ, JUAN SANTOS",
			Sex:         "MALE",
			Birthdate:   utils.NewDate(1990, time.May, 4),
		}, now)).To(Succeed())
		Expect(session.Next(now)).To(Succeed())
		Expect(session.SaveStep(domain.StepAddress, domain.Address{Barangay: "San Isidro", Municipality: "Tanay", Province: "Rizal"}, now)).To(Succeed())
		Expect(session.Next(now)).To(Succeed())
		Expect(session.SaveStep(domain.StepHousehold, domain.HouseholdInfo{
			ToiletFacility:  "SANITARY",
			SanitarySubtype: "POUR_FLUSH",
			MonthlyIncome:   decimal.RequireFromString("15250.50"),
		}, now)).To(Succeed())
		return session
	}

	It("round trips the draft", func() {
		session := filled()
		Expect(repository.Create(ctx, session)).To(Succeed())

		stored, err := repository.GetByID(ctx, session.ID)

		Expect(err).NotTo(HaveOccurred())
		Expect(stored.AccountID).To(Equal(shared.ID("acc-1")))
		Expect(stored.CurrentStep).To(Equal(domain.StepHousehold))
		Expect(stored.Draft.PersonalInfo.DisplayName).To(Equal("DELA CRUZ, JUAN SANTOS"))
		Expect(stored.Draft.PersonalInfo.Birthdate.Equal(utils.NewDate(1990, time.May, 4).Time)).To(BeTrue())
		Expect(stored.Draft.Address.Municipality).To(Equal("Tanay"))
		Expect(stored.Draft.Household.MonthlyIncome.String()).To(Equal("15250.5"))
		Expect(stored.Draft.FamilyPath).To(BeNil())
	})

	It("reports unknown sessions", func() {
		_, err := repository.GetByID(ctx, "missing")
		Expect(err).To(MatchError(usecases.ErrSessionNotFound))
	})

	It("updates only from the expected version", func() {
		session := filled()
		Expect(repository.Create(ctx, session)).To(Succeed())
		expected := session.Version

		session.MarkSubmitted(domain.Resources{ResidentID: "res-1", MemberIDs: []shared.ID{"res-2"}}, now.Add(time.Hour))
		Expect(repository.Update(ctx, session, expected)).To(Succeed())

		stored, err := repository.GetByID(ctx, session.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Status).To(Equal(domain.StatusSubmitted))
		Expect(stored.Version).To(Equal(session.Version))
		Expect(stored.Resources.MemberIDs).To(Equal([]shared.ID{"res-2"}))
		Expect(stored.UpdatedAt.Equal(now.Add(time.Hour))).To(BeTrue())

		Expect(repository.Update(ctx, session, expected)).To(MatchError(usecases.ErrVersionConflict))
	})

	It("reports updates to missing sessions as not found", func() {
		session := filled()
		Expect(repository.Update(ctx, session, session.Version)).To(MatchError(usecases.ErrSessionNotFound))
	})

	It("purges stale drafts but keeps submitted sessions", func() {
		stale := domain.NewSession("acc-1", now.Add(-40*24*time.Hour))
		fresh := domain.NewSession("acc-1", now)
		submitted := domain.NewSession("acc-2", now.Add(-40*24*time.Hour))
		submitted.Status = domain.StatusSubmitted
		for _, s := range []domain.Session{stale, fresh, submitted} {
			Expect(repository.Create(ctx, s)).To(Succeed())
		}

		deleted, err := repository.DeleteStale(ctx, now.Add(-30*24*time.Hour))

		Expect(err).NotTo(HaveOccurred())
		Expect(deleted).To(Equal(1))
		_, err = repository.GetByID(ctx, stale.ID)
		Expect(err).To(MatchError(usecases.ErrSessionNotFound))
		_, err = repository.GetByID(ctx, submitted.ID)
		Expect(err).NotTo(HaveOccurred())
	})
})
