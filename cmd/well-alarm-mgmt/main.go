package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/application/alarms"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/logging"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/router"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/tracing"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/presentation/api"
)

const serviceName string = "well-alarm-mgmt"

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	configurationFile
	seedFile
	devmode
)

func defaultFlags() flagMap {
	return flagMap{
		listenAddress:     "0.0.0.0",
		servicePort:       "8080",
		configurationFile: "/opt/wellwatch/config/alarms.yaml",
		seedFile:          "",
		devmode:           "false",
	}
}

func main() {
	serviceVersion := version()

	ctx, logger := logging.NewLogger(context.Background(), serviceName, serviceVersion)
	logger.Info().Msg("starting up ...")

	cleanup, err := tracing.Init(ctx, logger, serviceName, serviceVersion)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init tracing")
	}
	defer cleanup()

	flags := parseExternalConfig(defaultFlags())

	cfg, err := loadAlarmConfig(flags[configurationFile])
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load alarm configuration")
	}

	store, err := newStore(ctx, flags)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not create or connect to database")
	}

	if flags[seedFile] != "" {
		err = seed(ctx, store, flags[seedFile])
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	r := setupRouter(ctx, store, cfg)

	addr := fmt.Sprintf("%s:%s", flags[listenAddress], flags[servicePort])
	logger.Info().Str("addr", addr).Msg("listening for connections")

	err = http.ListenAndServe(addr, r)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start router")
	}
}

func setupRouter(ctx context.Context, store *database.Store, cfg *alarms.Config) *chi.Mux {
	resolver := alarms.New(alarms.Collaborators{
		Assets:        store,
		AlarmConfig:   store,
		Parameters:    store,
		References:    store,
		Telemetry:     store,
		Notifications: store,
		Events:        store,
		Cameras:       store,
	}, cfg)

	return api.RegisterHandlers(ctx, router.New(serviceName), resolver)
}

func newStore(ctx context.Context, flags flagMap) (*database.Store, error) {
	if flags[devmode] == "true" {
		return database.NewStore(database.NewSQLiteConnector(ctx))
	}

	return database.NewStore(database.NewPostgreSQLConnector(ctx, database.LoadConfigFromEnv(ctx)))
}

func loadAlarmConfig(path string) (*alarms.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return alarms.LoadConfiguration(strings.NewReader(""))
		}
		return nil, err
	}
	defer f.Close()

	return alarms.LoadConfiguration(f)
}

func seed(ctx context.Context, store *database.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return store.Seed(ctx, f)
}

func parseExternalConfig(flags flagMap) flagMap {
	// Allow environment variables to override certain defaults
	flags[listenAddress] = envOrDef("LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef("SERVICE_PORT", flags[servicePort])
	flags[configurationFile] = envOrDef("ALARMS_CONFIG_FILE", flags[configurationFile])
	flags[seedFile] = envOrDef("SEED_FILE", flags[seedFile])
	flags[devmode] = envOrDef("DEV_MODE", flags[devmode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "alarm resolution configuration file", apply(configurationFile))
	flag.Func("seed", "yaml file with reference and telemetry data to load at startup", apply(seedFile))
	flag.Func("devmode", "use an in-memory database", apply(devmode))
	flag.Parse()

	return flags
}

func envOrDef(key, def string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return def
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	buildSettings := buildInfo.Settings
	infoMap := map[string]string{}
	for _, s := range buildSettings {
		infoMap[s.Key] = s.Value
	}

	sha := infoMap["vcs.revision"]
	if infoMap["vcs.modified"] == "true" {
		sha += "+"
	}

	return sha
}
