package alarms

import (
	"context"
	"sort"

	"github.com/samber/lo"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/tracing"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
	"golang.org/x/sync/errgroup"
)

func (r *resolver) GetRtuAlarms(ctx context.Context, assetID, customerID string) (result []types.AlarmData, err error) {
	ctx, span, log := r.begin(ctx, "get-rtu-alarms", assetID, types.AlarmFamilyRTU)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	asset, err := r.resolveAsset(ctx, log, assetID)
	if err != nil || asset == nil {
		return noAlarms(), err
	}

	entries, err := r.config.LoadAlarmConfig(ctx, types.AlarmFamilyRTU, *asset)
	if err != nil {
		log.Error().Err(err).Msg("failed to load rtu alarm configuration")
		return noAlarms(), err
	}
	if len(entries) == 0 {
		return noAlarms(), nil
	}

	addresses := lo.Uniq(lo.FilterMap(entries, func(e types.AlarmConfigurationEntry, _ int) (int, bool) {
		if e.Address == nil {
			return 0, false
		}
		return *e.Address, true
	}))

	params, err := r.config.LoadParameters(ctx, addresses, asset.POCType)
	if err != nil {
		log.Error().Err(err).Msg("failed to load parameters")
		return noAlarms(), err
	}
	if len(params) == 0 {
		return noAlarms(), nil
	}

	channelIDs := lo.Map(params, func(p types.ParameterMetadata, _ int) string { return p.ChannelID })
	stateIDs := lo.Uniq(lo.FilterMap(params, func(p types.ParameterMetadata, _ int) (int, bool) {
		if p.StateID == nil {
			return 0, false
		}
		return *p.StateID, true
	}))

	var samples []types.TelemetrySample
	var states StateTextResolver

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var e error
		samples, e = r.telemetry.Latest(gctx, asset.AssetGUID, customerID, asset.POCType, channelIDs)
		return e
	})
	g.Go(func() error {
		var e error
		states, e = loadStateText(gctx, r.references, stateIDs)
		return e
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to join rtu alarms with telemetry")
		return noAlarms(), err
	}

	result = assembleRTUAlarms(entries, params, samples, states)
	log.Debug().Int("count", len(result)).Msg("resolved rtu alarms")

	return result, nil
}

type rtuRow struct {
	register    int
	bit         int
	description string
	priority    int
	normalState bool
	channelID   string
	value       float64
	stateText   string
}

// assembleRTUAlarms joins entries to parameters on address and parameters to
// the latest sample on channel id. Identical rows are emitted once.
func assembleRTUAlarms(entries []types.AlarmConfigurationEntry, params []types.ParameterMetadata, samples []types.TelemetrySample, states StateTextResolver) []types.AlarmData {
	paramsByAddress := lo.GroupBy(params, func(p types.ParameterMetadata) int { return p.Address })
	sampleByChannel := lo.KeyBy(LatestPerChannel(samples), func(s types.TelemetrySample) string { return s.ChannelID })

	rows := []rtuRow{}
	for _, e := range entries {
		if e.Address == nil {
			continue
		}

		normalState := false
		if e.RTU != nil {
			normalState = e.RTU.NormalState
		}

		for _, p := range paramsByAddress[*e.Address] {
			sample, ok := sampleByChannel[p.ChannelID]
			if !ok {
				continue
			}

			rows = append(rows, rtuRow{
				register:    *e.Address,
				bit:         intOrZero(e.Bit),
				description: e.Description,
				priority:    intOrZero(e.Priority),
				normalState: normalState,
				channelID:   p.ChannelID,
				value:       sample.Y,
				stateText:   states.Resolve(p.StateID, sample.Y),
			})
		}
	}

	rows = lo.Uniq(rows)

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.register != b.register {
			return a.register < b.register
		}
		if a.bit != b.bit {
			return a.bit < b.bit
		}
		if a.description != b.description {
			return a.description < b.description
		}
		return a.channelID < b.channelID
	})

	result := make([]types.AlarmData, 0, len(rows))
	for _, row := range rows {
		register := row.register
		value := row.value
		normalState := row.normalState

		result = append(result, types.AlarmData{
			Family:      types.AlarmFamilyRTU,
			Register:    &register,
			Bit:         row.bit,
			Description: row.description,
			Priority:    row.priority,
			StateText:   row.stateText,
			ChannelID:   row.channelID,
			Value:       &value,
			NormalState: &normalState,
		})
	}

	return result
}
