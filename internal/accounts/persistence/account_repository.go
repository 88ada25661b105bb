package persistence

import (
	"context"
	"errors"
	"fmt"

	"profiling-server/internal/accounts/domain"
	"profiling-server/internal/accounts/persistence/internal"
	"profiling-server/internal/accounts/usecases"
	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/infra/sql"
	shared "profiling-server/internal/shared_kernel/domain"
	"profiling-server/internal/shared_kernel/events"
	"profiling-server/internal/shared_kernel/persistence"
)

const (
	_accountsTopic = events.TopicAccounts
	_entityAccount = "account"
)

func NewAccountRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleAccountRepository, error) {
	publisher, err := persistence.NewRecordPublisher(publisherFactory, _accountsTopic, _entityAccount)
	if err != nil {
		return nil, err
	}

	err = orm.AutoMigrate(&internal.Account{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleAccountRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.AccountRepository = (*SimpleAccountRepository)(nil)

type SimpleAccountRepository struct {
	publisher *persistence.RecordPublisher
	orm       sql.ORM
}

func (r *SimpleAccountRepository) Create(ctx context.Context, account domain.Account) error {
	entity := internal.FromAccount(account)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrAccountDuplicated
	}
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionCreated, entity.Version, entity.Snapshot())
}

func (r *SimpleAccountRepository) GetByID(ctx context.Context, id shared.ID) (domain.Account, error) {
	var entity internal.Account
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Account{}, usecases.ErrAccountNotFound
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleAccountRepository) FindByIdentifier(ctx context.Context, identifier string) (domain.Account, error) {
	var entity internal.Account
	err := r.orm.
		WithContext(ctx).
		Where("email = ? OR phone = ?", identifier, identifier).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Account{}, usecases.ErrAccountNotFound
	}
	if err != nil {
		return domain.Account{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleAccountRepository) Update(ctx context.Context, account domain.Account) error {
	entity := internal.FromAccount(account)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if errors.Is(err, sql.ErrDuplicatedKey) {
		return usecases.ErrAccountDuplicated
	}
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return r.publisher.Publish(ctx, entity.ID, events.ActionUpdated, entity.Version, entity.Snapshot())
}
