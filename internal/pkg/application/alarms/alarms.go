package alarms

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/logging"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v2"
)

var tracer = otel.Tracer("well-alarm-mgmt/alarms")

const DefaultCollaboratorTimeout = 5 * time.Second

// AlarmResolver answers "which alarms are active on this well" per alarm family.
// Each operation is independent. An unknown asset yields an empty result and no
// error, while a failing collaborator yields an empty result and an error
// matching ErrLookupFailure.
//
//go:generate moq -rm -out alarmresolver_mock.go . AlarmResolver
type AlarmResolver interface {
	GetRtuAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error)
	GetHostAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error)
	GetFacilityTagAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error)
	GetCameraAlarms(ctx context.Context, assetID, customerID string) ([]types.AlarmData, error)
	GetFacilityHeaderAndDetails(ctx context.Context, assetID string) (types.FacilityHeaderSummary, error)
}

type Config struct {
	CollaboratorTimeout time.Duration `yaml:"collaboratorTimeout"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, err
	}

	if cfg.CollaboratorTimeout <= 0 {
		cfg.CollaboratorTimeout = DefaultCollaboratorTimeout
	}

	return cfg, nil
}

type resolver struct {
	assets        assetResolver
	config        configurationLoader
	telemetry     telemetryJoiner
	references    referenceLoader
	notifications NotificationPreferenceLookup
	events        EventHistoryLookup
	cameras       CameraLookup
	timeout       time.Duration
}

func New(c Collaborators, cfg *Config) AlarmResolver {
	timeout := DefaultCollaboratorTimeout
	if cfg != nil && cfg.CollaboratorTimeout > 0 {
		timeout = cfg.CollaboratorTimeout
	}

	return &resolver{
		assets:        assetResolver{lookup: c.Assets, timeout: timeout},
		config:        configurationLoader{configs: c.AlarmConfig, params: c.Parameters, timeout: timeout},
		telemetry:     telemetryJoiner{source: c.Telemetry, timeout: timeout},
		references:    referenceLoader{lookups: c.References, timeout: timeout},
		notifications: c.Notifications,
		events:        c.Events,
		cameras:       c.Cameras,
		timeout:       timeout,
	}
}

func (r *resolver) begin(ctx context.Context, spanName, assetID string, family types.AlarmFamily) (context.Context, trace.Span, zerolog.Logger) {
	ctx, span := tracer.Start(ctx, spanName)

	ctxLogger := logging.GetLoggerFromContext(ctx).With().Str("asset_id", assetID)
	if family != "" {
		ctxLogger = ctxLogger.Str("family", string(family))
	}

	_, ctx, log := logging.AddTraceIDToLoggerAndStoreInContext(span, ctxLogger.Logger(), ctx)
	return ctx, span, log
}

// resolveAsset returns nil, nil for an unknown asset after logging it.
func (r *resolver) resolveAsset(ctx context.Context, log zerolog.Logger, assetID string) (*types.AssetRecord, error) {
	asset, err := r.assets.Resolve(ctx, assetID)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve asset")
		return nil, err
	}
	if asset == nil {
		log.Info().Msg("asset not found")
		return nil, nil
	}
	return asset, nil
}

func noAlarms() []types.AlarmData {
	return []types.AlarmData{}
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	if *i < 0 {
		return 0
	}
	return *i
}
