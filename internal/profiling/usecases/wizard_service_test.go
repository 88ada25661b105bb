package usecases_test

import (
	"context"
	"errors"
	"time"

	"profiling-server/internal/infra/cache"
	"profiling-server/internal/infra/utils"
	"profiling-server/internal/profiling/domain"
	"profiling-server/internal/profiling/usecases"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
	"profiling-server/internal/shared_kernel/validation"
	mockcache "profiling-server/test/unit/doubles/infra/cache"
	mockusecases "profiling-server/test/unit/doubles/profiling/usecases"
	mockevents "profiling-server/test/unit/doubles/shared_kernel/events"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = ginkgo.Describe("WizardService", func() {
	var (
		ctx        context.Context
		ctrl       *gomock.Controller
		repository *mockusecases.MockSessionRepository
		submitter  *mockusecases.MockSubmitter
		notifier   *mockevents.MockNotifier
		service    *usecases.SimpleWizardService
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		repository = mockusecases.NewMockSessionRepository(ctrl)
		submitter = mockusecases.NewMockSubmitter(ctrl)
		notifier = mockevents.NewMockNotifier(ctrl)
		service = usecases.NewWizardService(repository, submitter, cache.NewLocalLocker(), notifier, usecases.DefaultOptions())
		service.SetClock(func() time.Time { return testNow })
	})

	ginkgo.AfterEach(func() {
		ctrl.Finish()
	})

	ginkgo.Context("StartSession", func() {
		ginkgo.It("stores a draft on the first step", func() {
			repository.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s domain.Session) error {
				gomega.Expect(s.AccountID).To(gomega.Equal(shared.ID("acc-1")))
				gomega.Expect(s.Status).To(gomega.Equal(domain.StatusDraft))
				gomega.Expect(s.CurrentStep).To(gomega.Equal(domain.StepPersonalInfo))
				return nil
			})
			notifier.EXPECT().RecordChanged(ctx, usecases.EntitySession, gomock.Any(), events.ActionCreated)

			session, err := service.StartSession(ctx, "acc-1")

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(session.ID).NotTo(gomega.BeEmpty())
			gomega.Expect(session.CreatedAt).To(gomega.Equal(testNow))
		})

		ginkgo.It("wraps storage failures", func() {
			repository.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("disk full"))

			_, err := service.StartSession(ctx, "acc-1")

			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("creating profiling session")))
		})
	})

	ginkgo.Context("SaveStep", func() {
		ginkgo.It("updates against the version it read", func() {
			session := domain.NewSession("acc-1", testNow)
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)
			repository.EXPECT().Update(ctx, gomock.Any(), shared.Version(1)).DoAndReturn(func(_ context.Context, s domain.Session, _ shared.Version) error {
				gomega.Expect(s.Version).To(gomega.Equal(shared.Version(2)))
				gomega.Expect(s.Draft.PersonalInfo).NotTo(gomega.BeNil())
				return nil
			})
			notifier.EXPECT().RecordChanged(ctx, usecases.EntitySession, session.ID, events.ActionUpdated)

			updated, err := service.SaveStep(ctx, session.ID, domain.StepPersonalInfo, domain.PersonalInfo{
				DisplayName: "DELA CRUZ, JUAN",
				Sex:         "MALE",
				Birthdate:   utils.NewDate(1990, time.May, 4),
			})

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.Draft.PersonalInfo.DisplayName).To(gomega.Equal("DELA CRUZ, JUAN"))
		})

		ginkgo.It("returns validation errors without storing", func() {
			session := domain.NewSession("acc-1", testNow)
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)

			_, err := service.SaveStep(ctx, session.ID, domain.StepPersonalInfo, domain.PersonalInfo{})

			_, ok := validation.IsValidationError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
		})

		ginkgo.It("rejects steps that were not reached", func() {
			session := domain.NewSession("acc-1", testNow)
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)

			_, err := service.SaveStep(ctx, session.ID, domain.StepAddress, domain.Address{})

			gomega.Expect(err).To(gomega.MatchError(domain.ErrStepNotReached))
		})

		ginkgo.It("passes version conflicts through", func() {
			session := domain.NewSession("acc-1", testNow)
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)
			repository.EXPECT().Update(ctx, gomock.Any(), shared.Version(1)).Return(usecases.ErrVersionConflict)

			_, err := service.SaveStep(ctx, session.ID, domain.StepPersonalInfo, domain.PersonalInfo{
				DisplayName: "DELA CRUZ, JUAN",
				Sex:         "MALE",
				Birthdate:   utils.NewDate(1990, time.May, 4),
			})

			gomega.Expect(err).To(gomega.Equal(usecases.ErrVersionConflict))
		})
	})

	ginkgo.Context("Next and Back", func() {
		ginkgo.It("refuses to leave an empty step", func() {
			session := domain.NewSession("acc-1", testNow)
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)

			_, err := service.Next(ctx, session.ID)

			verr, ok := validation.IsValidationError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(verr.Fields).To(gomega.HaveKeyWithValue("personal_info", "required"))
		})

		ginkgo.It("steps back from review to health", func() {
			session := reviewedSession(domain.FamilyPath{Path: domain.PathLivingSolo}, nil, nil)
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)
			repository.EXPECT().Update(ctx, gomock.Any(), session.Version).Return(nil)
			notifier.EXPECT().RecordChanged(ctx, usecases.EntitySession, session.ID, events.ActionUpdated)

			updated, err := service.Back(ctx, session.ID)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(updated.CurrentStep).To(gomega.Equal(domain.StepHealth))
		})
	})

	ginkgo.Context("Submit", func() {
		ginkgo.It("marks the session submitted with the created resources", func() {
			session := reviewedSession(domain.FamilyPath{Path: domain.PathLivingSolo}, nil, nil)
			resources := domain.Resources{ResidentID: "res-1", HouseholdID: "hh-1", FamilyID: "fam-1"}
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)
			submitter.EXPECT().Submit(ctx, gomock.Any()).Return(resources, nil)
			repository.EXPECT().Update(ctx, gomock.Any(), session.Version).Return(nil)
			notifier.EXPECT().RecordChanged(ctx, usecases.EntitySession, session.ID, events.ActionUpdated)

			submitted, err := service.Submit(ctx, session.ID)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(submitted.Status).To(gomega.Equal(domain.StatusSubmitted))
			gomega.Expect(submitted.Resources).To(gomega.Equal(resources))
			gomega.Expect(*submitted.SubmittedAt).To(gomega.Equal(testNow))
		})

		ginkgo.It("records the failure and keeps the session editable", func() {
			session := reviewedSession(domain.FamilyPath{Path: domain.PathLivingSolo}, nil, nil)
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)
			submitter.EXPECT().Submit(ctx, gomock.Any()).Return(domain.Resources{}, errors.New("household number exhausted"))
			repository.EXPECT().Update(ctx, gomock.Any(), session.Version).Return(nil)
			notifier.EXPECT().RecordChanged(ctx, usecases.EntitySession, session.ID, events.ActionUpdated)

			failed, err := service.Submit(ctx, session.ID)

			gomega.Expect(err).To(gomega.MatchError(usecases.ErrSubmissionFailed))
			gomega.Expect(failed.Status).To(gomega.Equal(domain.StatusFailed))
			gomega.Expect(failed.LastError).To(gomega.Equal("household number exhausted"))
			gomega.Expect(failed.IsOpen()).To(gomega.BeTrue())
		})

		ginkgo.It("reverts the created records when the outcome cannot be stored", func() {
			session := reviewedSession(domain.FamilyPath{Path: domain.PathLivingSolo}, nil, nil)
			resources := domain.Resources{ResidentID: "res-1", HouseholdID: "hh-1", FamilyID: "fam-1", CreatedHousehold: true, CreatedFamily: true}
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil).Times(2)
			submitter.EXPECT().Submit(ctx, gomock.Any()).Return(resources, nil).Times(2)
			gomock.InOrder(
				repository.EXPECT().Update(ctx, gomock.Any(), session.Version).Return(usecases.ErrVersionConflict),
				submitter.EXPECT().Revert(gomock.Any(), gomock.Any(), resources),
				repository.EXPECT().Update(ctx, gomock.Any(), session.Version).Return(nil),
			)
			notifier.EXPECT().RecordChanged(ctx, usecases.EntitySession, session.ID, events.ActionUpdated)

			_, err := service.Submit(ctx, session.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrVersionConflict))

			retried, err := service.Submit(ctx, session.ID)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(retried.Status).To(gomega.Equal(domain.StatusSubmitted))
		})

		ginkgo.It("leaves compensation of a failed submission to the submitter", func() {
			session := reviewedSession(domain.FamilyPath{Path: domain.PathLivingSolo}, nil, nil)
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)
			submitter.EXPECT().Submit(ctx, gomock.Any()).Return(domain.Resources{}, errors.New("household number exhausted"))
			repository.EXPECT().Update(ctx, gomock.Any(), session.Version).Return(errors.New("connection reset"))

			_, err := service.Submit(ctx, session.ID)

			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("storing submission outcome")))
		})

		ginkgo.It("does not submit before review", func() {
			session := domain.NewSession("acc-1", testNow)
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)

			_, err := service.Submit(ctx, session.ID)

			gomega.Expect(err).To(gomega.MatchError(domain.ErrNotAtReview))
		})

		ginkgo.It("rejects an already submitted session", func() {
			session := reviewedSession(domain.FamilyPath{Path: domain.PathLivingSolo}, nil, nil)
			session.MarkSubmitted(domain.Resources{ResidentID: "res-1"}, testNow)
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)

			_, err := service.Submit(ctx, session.ID)

			gomega.Expect(err).To(gomega.MatchError(domain.ErrSessionClosed))
		})

		ginkgo.It("refuses a concurrent submission of the same session", func() {
			locker := mockcache.NewMockLocker(ctrl)
			service = usecases.NewWizardService(repository, submitter, locker, notifier, usecases.DefaultOptions())
			locker.EXPECT().Obtain(ctx, "profiling:submit:s-1", gomock.Any()).Return(nil, cache.ErrLockNotObtained)

			_, err := service.Submit(ctx, "s-1")

			gomega.Expect(err).To(gomega.MatchError(cache.ErrLockNotObtained))
		})

		ginkgo.It("refuses step edits while a submission holds the session", func() {
			locker := mockcache.NewMockLocker(ctrl)
			service = usecases.NewWizardService(repository, submitter, locker, notifier, usecases.DefaultOptions())
			locker.EXPECT().Obtain(ctx, "profiling:submit:s-1", gomock.Any()).Return(nil, cache.ErrLockNotObtained).Times(3)

			_, err := service.SaveStep(ctx, "s-1", domain.StepAddress, nil)
			gomega.Expect(err).To(gomega.MatchError(cache.ErrLockNotObtained))

			_, err = service.Next(ctx, "s-1")
			gomega.Expect(err).To(gomega.MatchError(cache.ErrLockNotObtained))

			_, err = service.Back(ctx, "s-1")
			gomega.Expect(err).To(gomega.MatchError(cache.ErrLockNotObtained))
		})
	})

	ginkgo.Context("DeleteSession", func() {
		ginkgo.It("reports missing sessions", func() {
			repository.EXPECT().GetByID(ctx, shared.ID("nope")).Return(domain.Session{}, usecases.ErrSessionNotFound)

			err := service.DeleteSession(ctx, "nope")

			gomega.Expect(err).To(gomega.MatchError(usecases.ErrSessionNotFound))
		})

		ginkgo.It("deletes and notifies", func() {
			session := domain.NewSession("acc-1", testNow)
			repository.EXPECT().GetByID(ctx, session.ID).Return(session, nil)
			repository.EXPECT().Delete(ctx, session.ID).Return(nil)
			notifier.EXPECT().RecordChanged(ctx, usecases.EntitySession, session.ID, events.ActionDeleted)

			gomega.Expect(service.DeleteSession(ctx, session.ID)).To(gomega.Succeed())
		})
	})

	ginkgo.Context("PurgeStale", func() {
		ginkgo.It("deletes drafts older than the retention", func() {
			repository.EXPECT().DeleteStale(ctx, testNow.Add(-30*24*time.Hour)).Return(3, nil)

			deleted, err := service.PurgeStale(ctx)

			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(deleted).To(gomega.Equal(3))
		})
	})
})
