package usecases_test

import (
	"context"
	"errors"
	"time"

	"profiling-server/internal/accounts/domain"
	"profiling-server/internal/accounts/usecases"
	"profiling-server/internal/infra/cache"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/validation"
	mockusecases "profiling-server/test/unit/doubles/accounts/usecases"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var _ = ginkgo.Describe("AccountService", func() {
	var (
		ctx        context.Context
		ctrl       *gomock.Controller
		repository *mockusecases.MockAccountRepository
		otp        *mockusecases.MockOTPService
		store      *cache.RistrettoCache
		service    *usecases.SimpleAccountService
		now        time.Time
		active     domain.Account
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(ginkgo.GinkgoT())
		repository = mockusecases.NewMockAccountRepository(ctrl)
		otp = mockusecases.NewMockOTPService(ctrl)
		store = newTestCache()
		now = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		service = usecases.NewAccountService(repository, otp, store, testOptions())
		service.SetClock(func() time.Time { return now })

		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		active = domain.Account{
			ID:           "acc-1",
			Version:      2,
			Email:        "maria@example.com",
			DisplayName:  "Maria",
			PasswordHash: hash,
			Status:       domain.StatusActive,
		}
	})

	ginkgo.AfterEach(func() {
		store.Close()
		ctrl.Finish()
	})

	ginkgo.Context("Register", func() {
		registration := usecases.Registration{
			Email:       "Maria@Example.com",
			Phone:       "09171234567",
			DisplayName: "Maria",
			Password:    "s3cret-pass",
		}

		ginkgo.It("stores a pending account and emails a code", func() {
			repository.EXPECT().FindByIdentifier(gomock.Any(), "maria@example.com").Return(domain.Account{}, usecases.ErrAccountNotFound)
			repository.EXPECT().FindByIdentifier(gomock.Any(), "+639171234567").Return(domain.Account{}, usecases.ErrAccountNotFound)
			repository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			otp.EXPECT().Send(gomock.Any(), domain.ChannelEmail, "maria@example.com").Return(usecases.Dispatch{}, nil)

			account, err := service.Register(ctx, registration)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(account.Status).To(gomega.Equal(domain.StatusPending))
			gomega.Expect(account.CheckPassword("s3cret-pass")).To(gomega.BeTrue())
		})

		ginkgo.It("texts the code when only a phone is given", func() {
			repository.EXPECT().FindByIdentifier(gomock.Any(), "+639171234567").Return(domain.Account{}, usecases.ErrAccountNotFound)
			repository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			otp.EXPECT().Send(gomock.Any(), domain.ChannelSMS, "+639171234567").Return(usecases.Dispatch{}, nil)

			_, err := service.Register(ctx, usecases.Registration{Phone: "09171234567", DisplayName: "Maria", Password: "s3cret-pass"})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("keeps the account when the code cannot be delivered", func() {
			repository.EXPECT().FindByIdentifier(gomock.Any(), gomock.Any()).Return(domain.Account{}, usecases.ErrAccountNotFound).Times(2)
			repository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			otp.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecases.Dispatch{}, errors.New("gateway down"))

			_, err := service.Register(ctx, registration)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
		})

		ginkgo.It("rejects an email already in use", func() {
			repository.EXPECT().FindByIdentifier(gomock.Any(), "maria@example.com").Return(active, nil)

			_, err := service.Register(ctx, registration)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrAccountDuplicated))
		})

		ginkgo.It("reports invalid input as field errors", func() {
			_, err := service.Register(ctx, usecases.Registration{Email: "maria@example.com", Password: "s3cret-pass"})
			verr, ok := validation.IsValidationError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(verr.Fields).To(gomega.HaveKeyWithValue("display_name", "required"))
		})
	})

	ginkgo.Context("Login", func() {
		ginkgo.It("issues a session that authenticates for a day", func() {
			repository.EXPECT().FindByIdentifier(gomock.Any(), "maria@example.com").Return(active, nil)
			repository.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a domain.Account) error {
				gomega.Expect(*a.LastLoginAt).To(gomega.Equal(now))
				return nil
			})

			session, err := service.Login(ctx, "MARIA@example.com", "s3cret-pass")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(session.Token).To(gomega.HaveLen(64))
			gomega.Expect(session.ExpiresAt).To(gomega.Equal(now.Add(24 * time.Hour)))

			repository.EXPECT().GetByID(gomock.Any(), shared.ID("acc-1")).Return(active, nil)
			account, err := service.Authenticate(ctx, session.Token)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(account.ID).To(gomega.Equal(shared.ID("acc-1")))

			now = now.Add(24 * time.Hour)
			_, err = service.Authenticate(ctx, session.Token)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrSessionNotFound))
		})

		ginkgo.It("rejects a wrong password", func() {
			repository.EXPECT().FindByIdentifier(gomock.Any(), gomock.Any()).Return(active, nil)

			_, err := service.Login(ctx, "maria@example.com", "guess")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrInvalidCredentials))
		})

		ginkgo.It("hides unknown identifiers behind invalid credentials", func() {
			repository.EXPECT().FindByIdentifier(gomock.Any(), "+639170000000").Return(domain.Account{}, usecases.ErrAccountNotFound)

			_, err := service.Login(ctx, "09170000000", "s3cret-pass")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrInvalidCredentials))
		})

		ginkgo.It("refuses accounts that were never verified", func() {
			pending := active
			pending.Status = domain.StatusPending
			repository.EXPECT().FindByIdentifier(gomock.Any(), gomock.Any()).Return(pending, nil)

			_, err := service.Login(ctx, "maria@example.com", "s3cret-pass")
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrAccountInactive))
		})
	})

	ginkgo.Context("Logout", func() {
		ginkgo.It("drops the session", func() {
			repository.EXPECT().FindByIdentifier(gomock.Any(), gomock.Any()).Return(active, nil)
			repository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			session, err := service.Login(ctx, "maria@example.com", "s3cret-pass")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(service.Logout(ctx, session.Token)).To(gomega.Succeed())
			_, err = service.Authenticate(ctx, session.Token)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrSessionNotFound))
			gomega.Expect(service.Logout(ctx, session.Token)).To(gomega.MatchError(usecases.ErrSessionNotFound))
		})
	})
})
