package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"time"

	"log/slog"

	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/alerts"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/auditlog"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/ingest"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/lockdown"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/notifications"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/realtime"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/application/rollcall"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/opmode"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/router"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/infrastructure/storage"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/presentation/api"
	"github.com/SafeSchoolOS/safeschool-os-sub002/internal/pkg/presentation/api/auth"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "incident-mgmt"

var ingestConfigFilePath string
var notificationConfigFilePath string

func main() {
	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	flag.StringVar(&ingestConfigFilePath, "vendors", "/opt/safeschool/config/vendors.yaml", "vendor adapter configuration file")
	flag.StringVar(&notificationConfigFilePath, "notifications", "/opt/safeschool/config/notifications.yaml", "notification subscriber configuration file")
	flag.Parse()

	ingestCfg, err := loadIngestConfig(ingestConfigFilePath)
	exitIf(err, logger, "unable to load vendor configuration")

	notificationCfg, err := loadNotificationConfig(notificationConfigFilePath)
	exitIf(err, logger, "unable to load notification configuration")

	s, err := newStorage(ctx)
	exitIf(err, logger, "could not create or connect to database")
	defer s.Close()

	err = s.Initialize(ctx)
	exitIf(err, logger, "failed to initialize database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	messenger.Start()
	defer messenger.Close()

	hub := realtime.NewHub()
	audit := auditlog.New(s)

	alertSvc := alerts.New(s, messenger, hub, audit)
	lockdownSvc := lockdown.New(s, lockdown.NewDoorController(messenger), messenger, hub, audit, opmode.NewEnvProvider())
	rollCallSvc := rollcall.New(s, messenger, hub, audit)
	ingestSvc := ingest.NewService(messenger, alertSvc)

	notifications.New(messenger, &notifications.LogNotifier{}, notifications.NewEventForwarder(notificationCfg))

	poller, err := ingest.NewPoller(ingestSvc, ingestCfg)
	exitIf(err, logger, "failed to create vendor poller")
	poller.Start(ctx)

	jwtSecret := env.GetVariableOrDefault(ctx, "JWT_SECRET", "")
	if jwtSecret == "" {
		exitIf(errors.New("no secret configured"), logger, "JWT_SECRET must be set")
	}
	tokenAuth := auth.NewTokenAuth([]byte(jwtSecret))

	r, err := api.RegisterHandlers(ctx, router.New(serviceName), tokenAuth,
		alertSvc, lockdownSvc, rollCallSvc, ingestSvc, ingestCfg, hub, s)
	exitIf(err, logger, "failed to register handlers")

	port := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")
	logger.Info("starting to listen for incoming connections", "port", port)

	err = http.ListenAndServe(":"+port, r)
	exitIf(err, logger, "failed to start request router")
}

func newStorage(ctx context.Context) (*storage.Storage, error) {
	return storage.New(ctx, storage.NewConfig(
		env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "safeschool"),
		env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	))
}

func loadIngestConfig(filePath string) (ingest.Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		// The service can run on webhooks alone; a missing vendor file
		// just means no secrets and no polling sources.
		if os.IsNotExist(err) {
			return ingest.Config{}, nil
		}
		return ingest.Config{}, err
	}
	defer f.Close()

	return ingest.LoadConfig(f)
}

func loadNotificationConfig(filePath string) (*notifications.Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &notifications.Config{}, nil
		}
		return nil, err
	}
	defer f.Close()

	return notifications.LoadConfiguration(f)
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
