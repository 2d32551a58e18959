package alarms

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/tracing"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
	"golang.org/x/sync/errgroup"
)

func (r *resolver) GetHostAlarms(ctx context.Context, assetID, customerID string) (result []types.AlarmData, err error) {
	ctx, span, log := r.begin(ctx, "get-host-alarms", assetID, types.AlarmFamilyHost)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	asset, err := r.resolveAsset(ctx, log, assetID)
	if err != nil || asset == nil {
		return noAlarms(), err
	}

	entries, err := r.config.LoadAlarmConfig(ctx, types.AlarmFamilyHost, *asset)
	if err != nil {
		log.Error().Err(err).Msg("failed to load host alarm configuration")
		return noAlarms(), err
	}
	if len(entries) == 0 {
		return noAlarms(), nil
	}

	paramBacked, xdiagBacked := partitionHostEntries(log, entries)

	addresses := lo.Uniq(lo.Map(paramBacked, func(e types.AlarmConfigurationEntry, _ int) int { return *e.Address }))
	xdiagIDs := lo.Uniq(lo.Map(xdiagBacked, func(e types.AlarmConfigurationEntry, _ int) int { return *e.Host.XDiagOutputID }))
	alarmIDs := lo.Map(entries, func(e types.AlarmConfigurationEntry, _ int) int { return e.ID })

	var (
		params    []types.ParameterMetadata
		overrides []types.AlarmConfigurationEntry
		xdiag     lookupIndex
		prefs     []types.NotificationPreference
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var e error
		params, e = r.config.LoadParametersByAddress(gctx, addresses, asset.POCType)
		return e
	})
	g.Go(func() error {
		if len(addresses) == 0 {
			return nil
		}
		var e error
		overrides, e = r.config.LoadAlarmConfig(gctx, types.AlarmFamilyFacilityTag, *asset)
		return e
	})
	g.Go(func() error {
		var e error
		xdiag, e = r.references.Load(gctx, types.LookupXDiagOutput, xdiagIDs)
		return e
	})
	g.Go(func() error {
		var e error
		prefs, e = fetch(gctx, r.timeout, "notification-preferences", func(ctx context.Context) ([]types.NotificationPreference, error) {
			return r.notifications.PreferencesByAlarmIDs(ctx, alarmIDs)
		})
		return e
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to load host alarm dependencies")
		return noAlarms(), err
	}

	phraseIDs := lo.Uniq(lo.FilterMap(params, func(p types.ParameterMetadata, _ int) (int, bool) {
		if p.PhraseID == nil {
			return 0, false
		}
		return *p.PhraseID, true
	}))
	sort.Ints(phraseIDs)

	phrases, err := r.references.Load(ctx, types.LookupLocalePhrase, phraseIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to load locale phrases")
		return noAlarms(), err
	}

	result = assembleHostAlarms(log, asset.NodeID, paramBacked, xdiagBacked, params, overrides, xdiag.merge(phrases), prefs)
	log.Debug().Int("count", len(result)).Msg("resolved host alarms")

	return result, nil
}

// partitionHostEntries splits entries into parameter backed and xdiag backed
// rows. Entries with neither reference are skipped.
func partitionHostEntries(log zerolog.Logger, entries []types.AlarmConfigurationEntry) ([]types.AlarmConfigurationEntry, []types.AlarmConfigurationEntry) {
	paramBacked := []types.AlarmConfigurationEntry{}
	xdiagBacked := []types.AlarmConfigurationEntry{}

	for _, e := range entries {
		switch {
		case e.Address != nil:
			paramBacked = append(paramBacked, e)
		case e.Host != nil && e.Host.XDiagOutputID != nil:
			xdiagBacked = append(xdiagBacked, e)
		default:
			logSkipped(log, &DataIntegrityError{Entity: "host alarm", ID: e.ID, Field: "address", Value: ""})
		}
	}

	return paramBacked, xdiagBacked
}

type hostRow struct {
	sourceID int
	alarm    types.AlarmData
}

func assembleHostAlarms(log zerolog.Logger, nodeID string, paramBacked, xdiagBacked []types.AlarmConfigurationEntry, params []types.ParameterMetadata, facilityTags []types.AlarmConfigurationEntry, lookups lookupIndex, prefs []types.NotificationPreference) []types.AlarmData {
	paramsByAddress := lo.KeyBy(params, func(p types.ParameterMetadata) int { return p.Address })
	pushByAlarm := lo.SliceToMap(prefs, func(p types.NotificationPreference) (int, bool) { return p.AlarmID, p.PushEnabled })

	overrideByAddress := map[int]string{}
	for _, ft := range facilityTags {
		if ft.Address == nil || ft.Description == "" || !strings.EqualFold(ft.NodeID, nodeID) {
			continue
		}
		if _, exists := overrideByAddress[*ft.Address]; !exists {
			overrideByAddress[*ft.Address] = ft.Description
		}
	}

	rows := make([]hostRow, 0, len(paramBacked)+len(xdiagBacked))

	for _, e := range paramBacked {
		p, ok := paramsByAddress[*e.Address]
		if !ok {
			log.Info().Int("id", e.ID).Int("address", *e.Address).Msg("no parameter for host alarm address")
			continue
		}

		description, ok := overrideByAddress[*e.Address]
		if !ok {
			if text, found := lookups.phrase(p.PhraseID); found {
				description = text
			} else {
				description = p.Description
			}
		}

		rows = append(rows, hostRow{
			sourceID: *e.Address,
			alarm:    newHostAlarm(e, description, p.ChannelID, pushByAlarm),
		})
	}

	for _, e := range xdiagBacked {
		xdiagID := *e.Host.XDiagOutputID

		description := e.Description
		if output, ok := lookups.xdiagOutputs[xdiagID]; ok && output.Description != "" {
			description = output.Description
		} else {
			log.Info().Int("id", e.ID).Int("xdiag_output", xdiagID).Msg("xdiag output not found, using configured description")
		}

		rows = append(rows, hostRow{
			sourceID: xdiagID,
			alarm:    newHostAlarm(e, description, "", pushByAlarm),
		})
	}

	sortHostRows(rows)

	return lo.Map(rows, func(row hostRow, _ int) types.AlarmData { return row.alarm })
}

// sortHostRows orders by description descending, then source id descending.
// The order is relied upon by existing consumers.
func sortHostRows(rows []hostRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.alarm.Description != b.alarm.Description {
			return a.alarm.Description > b.alarm.Description
		}
		if a.sourceID != b.sourceID {
			return a.sourceID > b.sourceID
		}
		return a.alarm.ID > b.alarm.ID
	})
}

func newHostAlarm(e types.AlarmConfigurationEntry, description, channelID string, pushByAlarm map[int]bool) types.AlarmData {
	alarm := types.AlarmData{
		ID:          e.ID,
		Family:      types.AlarmFamilyHost,
		Register:    e.Address,
		Bit:         intOrZero(e.Bit),
		Description: description,
		Priority:    intOrZero(e.Priority),
		ChannelID:   channelID,
	}

	if e.Host != nil {
		limits := e.Host.Limits
		alarm.Limits = &limits
		alarm.AlarmType = e.Host.AlarmType
		alarm.State = e.Host.AlarmState
	}

	if push, ok := pushByAlarm[e.ID]; ok {
		alarm.PushEnabled = &push
	}

	return alarm
}
