package persistence_test

import (
	"context"
	"time"

	"profiling-server/internal/accounts/domain"
	"profiling-server/internal/accounts/persistence"
	"profiling-server/internal/accounts/usecases"
	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/infra/sql"
	"profiling-server/internal/infra/utils"
	shared "profiling-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("AccountRepository", func() {
	var (
		ctx        context.Context
		repository *persistence.SimpleAccountRepository
	)

	build := func(email, phone string) domain.Account {
		account, err := domain.NewAccountBuilder().
			WithHashCost(bcrypt.MinCost).
			WithEmail(email).
			WithPhone(phone).
			WithDisplayName("Maria Santos").
			WithPassword("s3cret-pass").
			Build()
		Expect(err).NotTo(HaveOccurred())
		return account
	}

	BeforeEach(func() {
		ctx = context.Background()
		orm, err := sql.NewMemoryORM("accounts-" + utils.GenerateUUID())
		Expect(err).NotTo(HaveOccurred())

		repository, err = persistence.NewAccountRepository(pubsub.NewMemoryPublisherFactory(), orm)
		Expect(err).NotTo(HaveOccurred())
	})

	It("finds an account by email or phone", func() {
		account := build("maria@example.com", "09171234567")
		Expect(repository.Create(ctx, account)).To(Succeed())

		byEmail, err := repository.FindByIdentifier(ctx, "maria@example.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(byEmail.ID).To(Equal(account.ID))
		Expect(byEmail.CheckPassword("s3cret-pass")).To(BeTrue())

		byPhone, err := repository.FindByIdentifier(ctx, "+639171234567")
		Expect(err).NotTo(HaveOccurred())
		Expect(byPhone.ID).To(Equal(account.ID))
	})

	It("allows several accounts without a phone", func() {
		Expect(repository.Create(ctx, build("a@example.com", ""))).To(Succeed())
		Expect(repository.Create(ctx, build("b@example.com", ""))).To(Succeed())
	})

	It("rejects a second account with the same email", func() {
		Expect(repository.Create(ctx, build("maria@example.com", ""))).To(Succeed())

		err := repository.Create(ctx, build("maria@example.com", ""))
		Expect(err).To(MatchError(usecases.ErrAccountDuplicated))
	})

	It("persists activation", func() {
		account := build("maria@example.com", "")
		Expect(repository.Create(ctx, account)).To(Succeed())

		now := time.Now().UTC().Truncate(time.Second)
		Expect(account.Activate(domain.ChannelEmail, now)).To(BeTrue())
		account.Version++
		Expect(repository.Update(ctx, account)).To(Succeed())

		stored, err := repository.GetByID(ctx, account.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Status).To(Equal(domain.StatusActive))
		Expect(stored.VerifiedChannel).To(Equal(domain.ChannelEmail))
		Expect(stored.Version).To(Equal(shared.Version(2)))
	})

	It("reports unknown accounts", func() {
		_, err := repository.GetByID(ctx, "missing")
		Expect(err).To(MatchError(usecases.ErrAccountNotFound))

		_, err = repository.FindByIdentifier(ctx, "nobody@example.com")
		Expect(err).To(MatchError(usecases.ErrAccountNotFound))
	})
})
