package alarms

import (
	"context"
	"time"

	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
)

//go:generate moq -rm -out collaborators_mock.go . AssetLookup AlarmConfigLookup ParameterLookup ReferenceLookup TelemetrySource NotificationPreferenceLookup EventHistoryLookup CameraLookup

// AssetLookup returns nil and no error when the asset does not exist.
type AssetLookup interface {
	AssetByGUID(ctx context.Context, assetGUID string) (*types.AssetRecord, error)
}

type AlarmConfigLookup interface {
	AlarmConfigByFamily(ctx context.Context, family types.AlarmFamily, scope types.ConfigScope) ([]types.AlarmConfigurationEntry, error)
}

type ParameterLookup interface {
	ParametersByAddresses(ctx context.Context, addresses []int, pocType int) ([]types.ParameterMetadata, error)
}

type ReferenceLookup interface {
	LookupsByFamily(ctx context.Context, family types.LookupFamily, keys []string) ([]types.LookupEntry, error)
}

type TelemetrySource interface {
	LatestTelemetry(ctx context.Context, assetGUID, customerID string, pocType int, channelIDs []string) ([]types.TelemetryRow, error)
}

type NotificationPreferenceLookup interface {
	PreferencesByAlarmIDs(ctx context.Context, alarmIDs []int) ([]types.NotificationPreference, error)
}

type EventHistoryLookup interface {
	LatestUnacknowledgedByAlarmID(ctx context.Context, alarmIDs []int) ([]types.AlarmEvent, error)
}

type CameraLookup interface {
	CamerasByNode(ctx context.Context, nodeID string) ([]types.Camera, error)
	CameraAlarmsByCameraIDs(ctx context.Context, cameraIDs []int) ([]types.CameraAlarmConfig, error)
}

type Collaborators struct {
	Assets        AssetLookup
	AlarmConfig   AlarmConfigLookup
	Parameters    ParameterLookup
	References    ReferenceLookup
	Telemetry     TelemetrySource
	Notifications NotificationPreferenceLookup
	Events        EventHistoryLookup
	Cameras       CameraLookup
}

// fetch runs a single collaborator call under its own deadline and wraps any
// failure in a LookupError.
func fetch[T any](ctx context.Context, timeout time.Duration, collaborator string, fn func(context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, &LookupError{Collaborator: collaborator, Err: err}
	}

	return result, nil
}
