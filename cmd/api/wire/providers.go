package wire

import (
	"sync"

	"profiling-server/cmd/config"
	accountsPersistence "profiling-server/internal/accounts/persistence"
	accounts "profiling-server/internal/accounts/usecases"
	healthPersistence "profiling-server/internal/health/persistence"
	health "profiling-server/internal/health/usecases"
	historyPersistence "profiling-server/internal/history/persistence"
	history "profiling-server/internal/history/usecases"
	"profiling-server/internal/infra/cache"
	"profiling-server/internal/infra/notification"
	"profiling-server/internal/infra/pubsub"
	"profiling-server/internal/infra/replication"
	"profiling-server/internal/infra/sql"
	lookupsPersistence "profiling-server/internal/lookups/persistence"
	lookups "profiling-server/internal/lookups/usecases"
	profilingPersistence "profiling-server/internal/profiling/persistence"
	profiling "profiling-server/internal/profiling/usecases"
	registryPersistence "profiling-server/internal/registry/persistence"
	registry "profiling-server/internal/registry/usecases"
	"profiling-server/internal/shared_kernel/events"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
)

const _memoryDatabase = "profiling"

var (
	AccountServiceSet = wire.NewSet(
		accountsPersistence.NewAccountRepository,
		wire.Bind(new(accounts.AccountRepository), new(*accountsPersistence.SimpleAccountRepository)),
		provideNotificationClient,
		provideAccountOptions,
		accounts.NewOTPService,
		wire.Bind(new(accounts.OTPService), new(*accounts.SimpleOTPService)),
		accounts.NewAccountService,
		wire.Bind(new(accounts.AccountService), new(*accounts.SimpleAccountService)),
	)

	RegistryRepositorySet = wire.NewSet(
		registryPersistence.NewResidentRepository,
		wire.Bind(new(registry.ResidentRepository), new(*registryPersistence.SimpleResidentRepository)),
		registryPersistence.NewHouseholdRepository,
		wire.Bind(new(registry.HouseholdRepository), new(*registryPersistence.SimpleHouseholdRepository)),
		registryPersistence.NewFamilyRepository,
		wire.Bind(new(registry.FamilyRepository), new(*registryPersistence.SimpleFamilyRepository)),
	)

	RegistryServiceSet = wire.NewSet(
		RegistryRepositorySet,
		provideRegistryOptions,
		registry.NewResidentService,
		wire.Bind(new(registry.ResidentService), new(*registry.SimpleResidentService)),
		registry.NewHouseholdService,
		wire.Bind(new(registry.HouseholdService), new(*registry.SimpleHouseholdService)),
		registry.NewFamilyService,
		wire.Bind(new(registry.FamilyService), new(*registry.SimpleFamilyService)),
	)

	HealthServiceSet = wire.NewSet(
		healthPersistence.NewRegistryDirectory,
		wire.Bind(new(health.SubjectDirectory), new(*healthPersistence.RegistryDirectory)),
		healthPersistence.NewNCDRepository,
		wire.Bind(new(health.NCDRepository), new(*healthPersistence.SimpleNCDRepository)),
		healthPersistence.NewTBRepository,
		wire.Bind(new(health.TBRepository), new(*healthPersistence.SimpleTBRepository)),
		provideHealthOptions,
		health.NewNCDService,
		wire.Bind(new(health.NCDService), new(*health.SimpleNCDService)),
		health.NewTBService,
		wire.Bind(new(health.TBService), new(*health.SimpleTBService)),
	)

	WizardServiceSet = wire.NewSet(
		RegistryServiceSet,
		HealthServiceSet,
		profilingPersistence.NewSessionRepository,
		wire.Bind(new(profiling.SessionRepository), new(*profilingPersistence.SimpleSessionRepository)),
		profiling.NewRegistrySubmitter,
		wire.Bind(new(profiling.Submitter), new(*profiling.RegistrySubmitter)),
		provideProfilingOptions,
		profiling.NewWizardService,
		wire.Bind(new(profiling.WizardService), new(*profiling.SimpleWizardService)),
	)

	InfraSet = wire.NewSet(
		provideAppConfig,
		provideDatabase,
		providePubSubFactory,
		providePublisherFactory,
		provideQueryCache,
		provideLocker,
	)

	NotifierSet = wire.NewSet(
		events.NewBrokerNotifier,
		wire.Bind(new(events.Notifier), new(*events.BrokerNotifier)),
	)

	HistoryServiceSet = wire.NewSet(
		historyPersistence.NewHistoryRepository,
		wire.Bind(new(history.HistoryRepository), new(*historyPersistence.SimpleHistoryRepository)),
		provideHistoryEntities,
		history.NewHistoryService,
		wire.Bind(new(history.HistoryService), new(*history.SimpleHistoryService)),
	)

	LookupServiceSet = wire.NewSet(
		provideCatalog,
		lookups.NewLookupService,
		wire.Bind(new(lookups.LookupService), new(*lookups.SimpleLookupService)),
	)
)

var (
	databaseOnce     sync.Once
	databaseInstance sql.ORM

	redisOnce     sync.Once
	redisInstance *redis.Client

	cacheOnce     sync.Once
	cacheInstance cache.Cache

	lockerOnce     sync.Once
	lockerInstance cache.Locker

	pubSubOnce     sync.Once
	pubSubInstance *pubsub.Factory
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

// provideDatabase opens one ORM per process. The memory engine backs local
// runs and functional tests; postgres runs the migrations before gorm
// connects.
func provideDatabase(cfg config.AppConfig) sql.ORM {
	databaseOnce.Do(func() {
		if cfg.Database.Engine != "postgres" {
			orm, err := sql.NewMemoryORM(_memoryDatabase)
			if err != nil {
				panic(err)
			}
			databaseInstance = orm
			return
		}

		db := sql.NewPosgreDatabase(cfg.Database.URL)
		if err := db.Open(); err != nil {
			panic(err)
		}
		if err := db.Up(cfg.Database.MigrationsPath); err != nil {
			panic(err)
		}

		orm, err := sql.NewPosgreORM(cfg.Database.DSN, cfg.Database.AutoMigrate)
		if err != nil {
			panic(err)
		}
		databaseInstance = orm
	})

	return databaseInstance
}

func providePubSubFactory(cfg config.AppConfig) *pubsub.Factory {
	pubSubOnce.Do(func() {
		pubSubInstance = pubsub.NewFactory(pubsub.FactoryOptions{
			Environment:       cfg.General.Environment,
			KafkaBrokers:      cfg.Kafka.Brokers,
			ConsumerGroup:     cfg.Kafka.Group,
			SchemaRegistryURL: cfg.Kafka.SchemaRegistry,
		})
	})

	return pubSubInstance
}

func providePublisherFactory(factory *pubsub.Factory) pubsub.PublisherFactory {
	return factory.GetPublisherFactory()
}

func provideRedisClient(cfg config.AppConfig) *redis.Client {
	redisOnce.Do(func() {
		redisConfig := cache.DefaultRedisConfig()
		redisConfig.Addr = cfg.Redis.Addr
		redisConfig.Password = cfg.Redis.Password
		redisConfig.DB = cfg.Redis.DB

		client, err := cache.NewRedisClient(redisConfig)
		if err != nil {
			panic(err)
		}
		redisInstance = client
	})

	return redisInstance
}

// provideQueryCache is shared by every service so invalidations made by
// one are seen by the others.
func provideQueryCache(cfg config.AppConfig) (cache.Cache, error) {
	var err error
	cacheOnce.Do(func() {
		if cfg.Cache.Backend == "redis" {
			redisConfig := cache.DefaultRedisConfig()
			redisConfig.Addr = cfg.Redis.Addr
			cacheInstance = cache.NewRedisCacheWithClient(provideRedisClient(cfg), redisConfig)
			return
		}

		var local *cache.RistrettoCache
		local, err = cache.New(cache.DefaultConfig())
		cacheInstance = local
	})
	if err != nil {
		return nil, err
	}

	return cacheInstance, nil
}

func provideLocker(cfg config.AppConfig) cache.Locker {
	lockerOnce.Do(func() {
		if cfg.Cache.Backend == "redis" {
			lockerInstance = cache.NewRedisLocker(provideRedisClient(cfg))
			return
		}
		lockerInstance = cache.NewLocalLocker()
	})

	return lockerInstance
}

func provideNotificationClient(cfg config.AppConfig) notification.NotificationClient {
	if cfg.General.IsLocal() {
		return notification.NewLogNotificationClient()
	}

	emailClient := notification.NewMailerSendClient(notification.MailerSendConfig{
		APIKey:    cfg.MailerSend.APIKey,
		FromEmail: cfg.MailerSend.FromEmail,
		FromName:  cfg.MailerSend.FromName,
	})
	smsClient := notification.NewSMSGatewayClient(notification.SMSGatewayConfig{
		BaseURL:    cfg.SMSGateway.BaseURL,
		APIKey:     cfg.SMSGateway.APIKey,
		SenderName: cfg.SMSGateway.SenderName,
		Retries:    cfg.SMSGateway.Retries,
	})

	return notification.NewCompositeNotificationClient(emailClient, smsClient)
}

func provideAccountOptions(cfg config.AppConfig) accounts.Options {
	opts := accounts.DefaultOptions()
	if cfg.OTP.TTL > 0 {
		opts.CodeTTL = cfg.OTP.TTL
	}
	if cfg.OTP.ResendCooldown > 0 {
		opts.ResendCooldown = cfg.OTP.ResendCooldown
	}
	if cfg.OTP.MaxAttempts > 0 {
		opts.MaxAttempts = cfg.OTP.MaxAttempts
	}
	if cfg.Accounts.SessionTTL > 0 {
		opts.SessionTTL = cfg.Accounts.SessionTTL
	}
	return opts
}

func provideRegistryOptions(cfg config.AppConfig) registry.Options {
	opts := registry.DefaultOptions()
	if cfg.Registry.CacheTTL > 0 {
		opts.CacheTTL = cfg.Registry.CacheTTL
	}
	if cfg.Registry.DuplicateThreshold > 0 {
		opts.DuplicateThreshold = cfg.Registry.DuplicateThreshold
	}
	return opts
}

func provideHealthOptions(cfg config.AppConfig) health.Options {
	opts := health.DefaultOptions()
	if cfg.Registry.CacheTTL > 0 {
		opts.CacheTTL = cfg.Registry.CacheTTL
	}
	return opts
}

func provideProfilingOptions(cfg config.AppConfig) profiling.Options {
	opts := profiling.DefaultOptions()
	if cfg.Profiling.DraftRetention > 0 {
		opts.Retention = cfg.Profiling.DraftRetention
	}
	return opts
}

func provideCatalog(cfg config.AppConfig) (lookups.Catalog, error) {
	if cfg.Lookups.Path != "" {
		return lookupsPersistence.NewFileCatalog(cfg.Lookups.Path)
	}
	return lookupsPersistence.NewEmbeddedCatalog()
}

func provideSessionJanitor(cfg config.AppConfig, wizard profiling.WizardService) (*profiling.SessionJanitor, error) {
	schedule := cfg.Profiling.JanitorSchedule
	if schedule == "" {
		schedule = profiling.DefaultJanitorSchedule
	}
	return profiling.NewSessionJanitor(schedule, wizard)
}

// provideRecordReplicator registers one history handler per record topic.
func provideRecordReplicator(factory *pubsub.Factory, repository history.HistoryRepository) (*replication.Replicator, error) {
	replicator := replication.NewReplicator(factory.GetConsumerFactory())
	for _, topic := range events.HistoryTopics() {
		err := replicator.RegisterHandler(historyPersistence.NewRecordTopicHandler(pubsub.Topic(topic), repository))
		if err != nil {
			return nil, err
		}
	}

	return replicator, nil
}

func provideHistoryEntities() history.Entities {
	return history.Entities{
		registry.EntityResident,
		registry.EntityHousehold,
		registry.EntityFamily,
		registry.EntityBusiness,
		health.EntityNCDRecord,
		health.EntityTBRecord,
		profiling.EntitySession,
	}
}

// FeedEntities lists what the record feed accepts in its entity filter.
func FeedEntities() []string {
	return []string{
		registry.EntityResident,
		registry.EntityHousehold,
		registry.EntityFamily,
		registry.EntityFamilyMember,
		registry.EntityBusiness,
		health.EntityNCDRecord,
		health.EntityTBRecord,
		profiling.EntitySession,
	}
}
