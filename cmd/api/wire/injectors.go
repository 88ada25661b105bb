//go:build wireinject
// +build wireinject

package wire

import (
	accountsHTTPAPI "profiling-server/internal/accounts/httpapi"
	feedHTTPAPI "profiling-server/internal/feed/httpapi"
	healthHTTPAPI "profiling-server/internal/health/httpapi"
	historyHTTPAPI "profiling-server/internal/history/httpapi"
	historyPersistence "profiling-server/internal/history/persistence"
	history "profiling-server/internal/history/usecases"
	"profiling-server/internal/infra/async"
	"profiling-server/internal/infra/replication"
	lookupsHTTPAPI "profiling-server/internal/lookups/httpapi"
	profilingHTTPAPI "profiling-server/internal/profiling/httpapi"
	profiling "profiling-server/internal/profiling/usecases"
	registryHTTPAPI "profiling-server/internal/registry/httpapi"
	registryPersistence "profiling-server/internal/registry/persistence"
	registry "profiling-server/internal/registry/usecases"

	"github.com/google/wire"
)

func InitializeAccountController() (*accountsHTTPAPI.AccountController, error) {
	wire.Build(
		InfraSet,
		AccountServiceSet,
		accountsHTTPAPI.NewAccountController,
	)
	return nil, nil
}

func InitializeLookupController() (*lookupsHTTPAPI.LookupController, error) {
	wire.Build(
		provideAppConfig,
		LookupServiceSet,
		lookupsHTTPAPI.NewLookupController,
	)
	return nil, nil
}

func InitializeResidentController(broker async.InternalBroker) (*registryHTTPAPI.ResidentController, error) {
	wire.Build(
		InfraSet,
		NotifierSet,
		RegistryServiceSet,
		registryHTTPAPI.NewResidentController,
	)
	return nil, nil
}

func InitializeHouseholdController(broker async.InternalBroker) (*registryHTTPAPI.HouseholdController, error) {
	wire.Build(
		InfraSet,
		NotifierSet,
		RegistryServiceSet,
		registryHTTPAPI.NewHouseholdController,
	)
	return nil, nil
}

func InitializeFamilyController(broker async.InternalBroker) (*registryHTTPAPI.FamilyController, error) {
	wire.Build(
		InfraSet,
		NotifierSet,
		RegistryServiceSet,
		registryHTTPAPI.NewFamilyController,
	)
	return nil, nil
}

func InitializeBusinessController(broker async.InternalBroker) (*registryHTTPAPI.BusinessController, error) {
	wire.Build(
		InfraSet,
		NotifierSet,
		RegistryRepositorySet,
		provideRegistryOptions,
		registryPersistence.NewBusinessRepository,
		wire.Bind(new(registry.BusinessRepository), new(*registryPersistence.SimpleBusinessRepository)),
		registry.NewBusinessService,
		wire.Bind(new(registry.BusinessService), new(*registry.SimpleBusinessService)),
		registryHTTPAPI.NewBusinessController,
	)
	return nil, nil
}

func InitializeHealthRecordController(broker async.InternalBroker) (*healthHTTPAPI.HealthRecordController, error) {
	wire.Build(
		InfraSet,
		NotifierSet,
		RegistryServiceSet,
		HealthServiceSet,
		healthHTTPAPI.NewHealthRecordController,
	)
	return nil, nil
}

func InitializeProfilingController(broker async.InternalBroker) (*profilingHTTPAPI.ProfilingController, error) {
	wire.Build(
		InfraSet,
		NotifierSet,
		AccountServiceSet,
		WizardServiceSet,
		profilingHTTPAPI.NewProfilingController,
	)
	return nil, nil
}

func InitializeSessionJanitor(broker async.InternalBroker) (*profiling.SessionJanitor, error) {
	wire.Build(
		InfraSet,
		NotifierSet,
		WizardServiceSet,
		provideSessionJanitor,
	)
	return nil, nil
}

func InitializeRecordFeedController(broker async.InternalBroker) (*feedHTTPAPI.RecordFeedController, error) {
	wire.Build(
		FeedEntities,
		feedHTTPAPI.NewRecordFeedController,
	)
	return nil, nil
}

func InitializeHistoryController() (*historyHTTPAPI.HistoryController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		HistoryServiceSet,
		historyHTTPAPI.NewHistoryController,
	)
	return nil, nil
}

func InitializeRecordReplicator() (*replication.Replicator, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		providePubSubFactory,
		historyPersistence.NewHistoryRepository,
		wire.Bind(new(history.HistoryRepository), new(*historyPersistence.SimpleHistoryRepository)),
		provideRecordReplicator,
	)
	return nil, nil
}
