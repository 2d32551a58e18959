package alarms

import (
	"context"
	"sort"

	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/tracing"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
)

func (r *resolver) GetFacilityTagAlarms(ctx context.Context, assetID, customerID string) (result []types.AlarmData, err error) {
	ctx, span, log := r.begin(ctx, "get-facility-tag-alarms", assetID, types.AlarmFamilyFacilityTag)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	asset, err := r.resolveAsset(ctx, log, assetID)
	if err != nil || asset == nil {
		return noAlarms(), err
	}

	entries, err := r.config.LoadAlarmConfig(ctx, types.AlarmFamilyFacilityTag, *asset)
	if err != nil {
		log.Error().Err(err).Msg("failed to load facility tag configuration")
		return noAlarms(), err
	}

	result = assembleFacilityTagAlarms(entries)
	log.Debug().Int("count", len(result)).Msg("resolved facility tag alarms")

	return result, nil
}

func assembleFacilityTagAlarms(entries []types.AlarmConfigurationEntry) []types.AlarmData {
	result := []types.AlarmData{}

	for _, e := range entries {
		if e.FacilityTag == nil || e.FacilityTag.AlarmState == types.FacilityAlarmStateNone {
			continue
		}

		result = append(result, types.AlarmData{
			ID:          e.ID,
			Family:      types.AlarmFamilyFacilityTag,
			Register:    e.Address,
			Bit:         intOrZero(e.Bit),
			Description: e.Description + facilityStateSuffix(e.FacilityTag.AlarmState),
			Priority:    intOrZero(e.Priority),
			State:       e.FacilityTag.AlarmState,
			Value:       e.FacilityTag.Value,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Description != result[j].Description {
			return result[i].Description < result[j].Description
		}
		return result[i].ID < result[j].ID
	})

	return result
}

func facilityStateSuffix(state int) string {
	switch state {
	case types.FacilityAlarmStateHi:
		return "-Hi"
	case types.FacilityAlarmStateLo:
		return "-Lo"
	default:
		return ""
	}
}
