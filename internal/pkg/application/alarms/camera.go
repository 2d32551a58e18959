package alarms

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/tracing"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
	"golang.org/x/sync/errgroup"
)

func (r *resolver) GetCameraAlarms(ctx context.Context, assetID, customerID string) (result []types.AlarmData, err error) {
	ctx, span, log := r.begin(ctx, "get-camera-alarms", assetID, types.AlarmFamilyCamera)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	asset, err := r.resolveAsset(ctx, log, assetID)
	if err != nil || asset == nil {
		return noAlarms(), err
	}

	cameras, err := fetch(ctx, r.timeout, "cameras", func(ctx context.Context) ([]types.Camera, error) {
		return r.cameras.CamerasByNode(ctx, asset.NodeID)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to load cameras")
		return noAlarms(), err
	}
	if len(cameras) == 0 {
		log.Info().Msg("no cameras found")
		return noAlarms(), nil
	}

	cameraIDs := lo.Uniq(lo.Map(cameras, func(c types.Camera, _ int) int { return c.ID }))
	cameraTypeIDs := lo.Uniq(lo.Map(cameras, func(c types.Camera, _ int) int { return c.CameraTypeID }))

	var (
		cameraTypes lookupIndex
		configs     []types.CameraAlarmConfig
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var e error
		cameraTypes, e = r.references.Load(gctx, types.LookupCameraType, cameraTypeIDs)
		return e
	})
	g.Go(func() error {
		var e error
		configs, e = fetch(gctx, r.timeout, "camera-alarms", func(ctx context.Context) ([]types.CameraAlarmConfig, error) {
			return r.cameras.CameraAlarmsByCameraIDs(ctx, cameraIDs)
		})
		return e
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to load camera alarm configuration")
		return noAlarms(), err
	}

	cameras = lo.Filter(cameras, func(c types.Camera, _ int) bool {
		_, ok := cameraTypes.cameraTypes[c.CameraTypeID]
		return ok
	})
	camerasByID := lo.KeyBy(cameras, func(c types.Camera) int { return c.ID })

	configs = lo.Filter(configs, func(c types.CameraAlarmConfig, _ int) bool {
		_, ok := camerasByID[c.CameraID]
		return ok && c.Enabled
	})
	if len(configs) == 0 {
		log.Info().Msg("no enabled camera alarms found")
		return noAlarms(), nil
	}

	alarmIDs := lo.Uniq(lo.Map(configs, func(c types.CameraAlarmConfig, _ int) int { return c.ID }))
	alarmTypeIDs := lo.Uniq(lo.Map(configs, func(c types.CameraAlarmConfig, _ int) int { return c.AlarmTypeID }))

	var (
		events     []types.AlarmEvent
		alarmTypes lookupIndex
	)

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var e error
		events, e = fetch(gctx, r.timeout, "event-history", func(ctx context.Context) ([]types.AlarmEvent, error) {
			return r.events.LatestUnacknowledgedByAlarmID(ctx, alarmIDs)
		})
		return e
	})
	g.Go(func() error {
		var e error
		alarmTypes, e = r.references.Load(gctx, types.LookupCameraAlarmType, alarmTypeIDs)
		return e
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to load camera alarm events")
		return noAlarms(), err
	}

	phraseIDs := []int{}
	for _, t := range alarmTypes.cameraAlarmTypes {
		if t.PhraseID != nil {
			phraseIDs = append(phraseIDs, *t.PhraseID)
		}
	}
	sort.Ints(phraseIDs)

	phrases, err := r.references.Load(ctx, types.LookupLocalePhrase, lo.Uniq(phraseIDs))
	if err != nil {
		log.Error().Err(err).Msg("failed to load locale phrases")
		return noAlarms(), err
	}

	result = assembleCameraAlarms(log, camerasByID, configs, events, alarmTypes.merge(phrases))
	log.Debug().Int("count", len(result)).Msg("resolved camera alarms")

	return result, nil
}

// ActiveAlarmIDs returns the alarm ids whose most recent event is unacknowledged.
func ActiveAlarmIDs(events []types.AlarmEvent) map[int]struct{} {
	latest := map[int]types.AlarmEvent{}
	for _, e := range events {
		current, ok := latest[e.AlarmID]
		if !ok || e.EventTime.After(current.EventTime) || (e.EventTime.Equal(current.EventTime) && e.ID > current.ID) {
			latest[e.AlarmID] = e
		}
	}

	active := map[int]struct{}{}
	for id, e := range latest {
		if e.AcknowledgedAt == nil {
			active[id] = struct{}{}
		}
	}

	return active
}

func assembleCameraAlarms(log zerolog.Logger, cameras map[int]types.Camera, configs []types.CameraAlarmConfig, events []types.AlarmEvent, lookups lookupIndex) []types.AlarmData {
	active := ActiveAlarmIDs(events)
	result := []types.AlarmData{}

	for _, c := range configs {
		if _, ok := active[c.ID]; !ok {
			continue
		}

		camera := cameras[c.CameraID]

		typeText := ""
		if t, ok := lookups.cameraAlarmTypes[c.AlarmTypeID]; ok {
			if text, found := lookups.phrase(t.PhraseID); found {
				typeText = text
			} else {
				typeText = t.Name
			}
		} else {
			log.Info().Int("alarm_type", c.AlarmTypeID).Msg("camera alarm type not found")
		}

		description := camera.Name
		if typeText != "" {
			description = fmt.Sprintf("%s - %s", camera.Name, typeText)
		}

		result = append(result, types.AlarmData{
			ID:          c.ID,
			Family:      types.AlarmFamilyCamera,
			Description: description,
			Priority:    intOrZero(c.Priority),
			State:       1,
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
