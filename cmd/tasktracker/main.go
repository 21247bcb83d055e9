package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-task-keeper/internal/client"
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/tui"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bootLog := logger.NewLogger("tasktracker")

	cfg, err := config.GetAppConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, logFile, err := logger.NewFileLogger("tasktracker", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error opening log file")
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Strs("build", buildInfo.Lines()).Str("driver", cfg.DB.Driver).Msg("starting")

	if err = run(ctx, cfg, buildInfo, log); err != nil {
		stop()
		logFile.Close()
		bootLog.Fatal().Err(err).Msg("task tracker stopped with error")
	}
}

func run(ctx context.Context, cfg *config.AppConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return err
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg.Auth, buildInfo, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Err(err).Msg("error creating ui")
		return err
	}

	app, err := client.NewApp(ui, utils.NewUUIDGenerator(), os.Stdout, log)
	if err != nil {
		log.Err(err).Msg("init app error")
		return err
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("app run error")
		return err
	}

	log.Info().Msg("exited normally")
	return nil
}
