package alarms

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/logging"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
)

type telemetryJoiner struct {
	source  TelemetrySource
	timeout time.Duration
}

// Snapshot returns every sample for the requested channels, ordered by timestamp.
func (j telemetryJoiner) Snapshot(ctx context.Context, assetGUID, customerID string, pocType int, channelIDs []string) ([]types.TelemetrySample, error) {
	if len(channelIDs) == 0 {
		return []types.TelemetrySample{}, nil
	}

	rows, err := fetch(ctx, j.timeout, "telemetry", func(ctx context.Context) ([]types.TelemetryRow, error) {
		return j.source.LatestTelemetry(ctx, assetGUID, customerID, pocType, channelIDs)
	})
	if err != nil {
		return nil, err
	}

	samples, skipped := NormalizeTelemetry(rows, channelIDs)
	if skipped > 0 {
		log := logging.GetLoggerFromContext(ctx)
		log.Debug().Int("skipped", skipped).Msg("ignored non numeric telemetry values")
	}

	return samples, nil
}

// Latest returns the most recent sample per channel.
func (j telemetryJoiner) Latest(ctx context.Context, assetGUID, customerID string, pocType int, channelIDs []string) ([]types.TelemetrySample, error) {
	samples, err := j.Snapshot(ctx, assetGUID, customerID, pocType, channelIDs)
	if err != nil {
		return nil, err
	}
	return LatestPerChannel(samples), nil
}

// NormalizeTelemetry flattens columnar and scalar rows into samples for the
// requested channels. A channel that appears in any columnar row ignores its
// scalar rows. Values that are not numeric are skipped and counted.
func NormalizeTelemetry(rows []types.TelemetryRow, channelIDs []string) ([]types.TelemetrySample, int) {
	wanted := make(map[string]struct{}, len(channelIDs))
	for _, ch := range channelIDs {
		wanted[ch] = struct{}{}
	}

	columnar := map[string]struct{}{}
	for _, row := range rows {
		if !row.IsColumnar() {
			continue
		}
		for ch := range row.Columns {
			if _, ok := wanted[ch]; ok {
				columnar[ch] = struct{}{}
			}
		}
	}

	samples := make([]types.TelemetrySample, 0, len(rows))
	skipped := 0

	add := func(ch string, at time.Time, raw string) {
		v, ok := parseNumeric(raw)
		if !ok {
			skipped++
			return
		}
		samples = append(samples, types.TelemetrySample{ChannelID: ch, X: at, Y: v})
	}

	for _, row := range rows {
		if row.IsColumnar() {
			for ch, raw := range row.Columns {
				if _, ok := wanted[ch]; ok {
					add(ch, row.Timestamp, raw)
				}
			}
			continue
		}

		if _, ok := wanted[row.ChannelID]; !ok {
			continue
		}
		if _, ok := columnar[row.ChannelID]; ok {
			continue
		}
		if row.Value == nil {
			skipped++
			continue
		}
		add(row.ChannelID, row.Timestamp, *row.Value)
	}

	sortSamples(samples)

	return samples, skipped
}

// LatestPerChannel keeps the sample with the largest timestamp for every channel.
func LatestPerChannel(samples []types.TelemetrySample) []types.TelemetrySample {
	latest := map[string]types.TelemetrySample{}
	for _, s := range samples {
		if current, ok := latest[s.ChannelID]; !ok || s.X.After(current.X) {
			latest[s.ChannelID] = s
		}
	}

	result := make([]types.TelemetrySample, 0, len(latest))
	for _, s := range latest {
		result = append(result, s)
	}

	sortSamples(result)

	return result
}

func sortSamples(samples []types.TelemetrySample) {
	sort.SliceStable(samples, func(i, j int) bool {
		if !samples[i].X.Equal(samples[j].X) {
			return samples[i].X.Before(samples[j].X)
		}
		return samples[i].ChannelID < samples[j].ChannelID
	})
}

func parseNumeric(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
