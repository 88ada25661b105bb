package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"profiling-server/cmd/api/wire"
	"profiling-server/cmd/config"
	feedHTTPAPI "profiling-server/internal/feed/httpapi"
	"profiling-server/internal/infra/async"
	"profiling-server/internal/infra/httpserver"
	"profiling-server/internal/infra/node"
	"profiling-server/internal/infra/utils"
)

var (
	logLevelMapping = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
)

func main() {
	config := config.LoadConfig()

	level := logLevelMapping[config.General.LogLevel]
	baseHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{AddSource: true, Level: level, ReplaceAttr: slogReplaceAttr})
	handler := baseHandler.WithAttrs([]slog.Attr{slog.String("version", node.Version)})
	slog.SetDefault(slog.New(handler))
	slog.Info("profiling server is initializing", slog.String("environment", config.General.Environment))
	slog.Debug("config loaded", "data", config)

	time.Local = utils.LoadLocationOrUTC(config.General.Timezone)

	shutdownOtel := startOTel()

	internalBroker := async.NewLocalBroker()
	feedController := handleWireInjector(wire.InitializeRecordFeedController(internalBroker)).(*feedHTTPAPI.RecordFeedController)

	serverOpts := httpserver.DefaultOptions()
	if config.General.Addr != "" {
		serverOpts.Addr = config.General.Addr
	}
	if len(config.General.AllowedOrigins) > 0 {
		serverOpts.AllowedOrigins = config.General.AllowedOrigins
	}

	httpServer := httpserver.NewServer(
		serverOpts,
		handleWireInjector(wire.InitializeAccountController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeLookupController()).(httpserver.Controller),
		handleWireInjector(wire.InitializeResidentController(internalBroker)).(httpserver.Controller),
		handleWireInjector(wire.InitializeHouseholdController(internalBroker)).(httpserver.Controller),
		handleWireInjector(wire.InitializeFamilyController(internalBroker)).(httpserver.Controller),
		handleWireInjector(wire.InitializeBusinessController(internalBroker)).(httpserver.Controller),
		handleWireInjector(wire.InitializeHealthRecordController(internalBroker)).(httpserver.Controller),
		handleWireInjector(wire.InitializeProfilingController(internalBroker)).(httpserver.Controller),
		handleWireInjector(wire.InitializeHistoryController()).(httpserver.Controller),
		feedController,
	)

	appCtx, cancelFn := context.WithCancel(context.Background())
	go httpServer.Run()

	var wg sync.WaitGroup
	workers := []async.Worker{
		handleWireInjector(wire.InitializeSessionJanitor(internalBroker)).(async.Worker),
		handleWireInjector(wire.InitializeRecordReplicator()).(async.Worker),
	}
	for _, worker := range workers {
		wg.Add(1)
		go worker.Run(appCtx, wg.Done)
	}

	signalChannel := make(chan os.Signal, 2)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel
	slog.Info("shutting down")

	feedController.Shutdown()
	httpServer.Shutdown()
	cancelFn()
	wg.Wait()

	if err := shutdownOtel(); err != nil {
		slog.Error("stopping OTel providers", slog.String("error", err.Error()))
	}
	slog.Info("good bye!!!")
	os.Exit(0)
}

func slogReplaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.SourceKey {
		source := a.Value.Any().(*slog.Source)
		source.File = filepath.Base(source.File)
		return slog.Any(a.Key, source)
	}
	return a
}

func handleWireInjector(value any, err error) any {
	if err != nil {
		panic(err)
	}

	return value
}
