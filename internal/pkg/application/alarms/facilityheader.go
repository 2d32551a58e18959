package alarms

import (
	"context"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/tracing"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
	"golang.org/x/sync/errgroup"
)

func (r *resolver) GetFacilityHeaderAndDetails(ctx context.Context, assetID string) (summary types.FacilityHeaderSummary, err error) {
	ctx, span, log := r.begin(ctx, "get-facility-header", assetID, "")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	asset, err := r.resolveAsset(ctx, log, assetID)
	if err != nil || asset == nil {
		return emptySummary(""), err
	}

	var (
		tags      []types.AlarmConfigurationEntry
		hostAlarm []types.AlarmConfigurationEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var e error
		tags, e = r.config.LoadAlarmConfig(gctx, types.AlarmFamilyFacilityTag, *asset)
		return e
	})
	g.Go(func() error {
		var e error
		hostAlarm, e = r.config.LoadAlarmConfig(gctx, types.AlarmFamilyHost, *asset)
		return e
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to load facility header configuration")
		return emptySummary(asset.NodeID), err
	}

	if len(tags) == 0 {
		log.Info().Msg("no facility tags found")
		return emptySummary(asset.NodeID), nil
	}

	groupIDs := lo.Uniq(lo.FilterMap(tags, func(e types.AlarmConfigurationEntry, _ int) (int, bool) {
		if e.FacilityTag == nil || e.FacilityTag.TagGroupID == nil {
			return 0, false
		}
		return *e.FacilityTag.TagGroupID, true
	}))
	sort.Ints(groupIDs)

	groupNames, err := r.references.Load(ctx, types.LookupFacilityTagGroup, groupIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to load facility tag groups")
		return emptySummary(asset.NodeID), err
	}

	activeHost := lo.CountBy(hostAlarm, func(e types.AlarmConfigurationEntry) bool {
		return e.Host != nil && e.Host.AlarmState != 0
	})

	summary = AggregateFacilityHeader(asset.NodeID, tags, groupNames.tagGroups, activeHost)
	log.Debug().Int("groups", len(summary.Groups)).Int("alarms", summary.AlarmCount).Msg("built facility header")

	return summary, nil
}

func emptySummary(nodeID string) types.FacilityHeaderSummary {
	return types.FacilityHeaderSummary{
		NodeID: nodeID,
		Groups: []types.FacilityTagGroup{},
	}
}

func isFacilityAlarm(state int) bool {
	return state == types.FacilityAlarmStateHi || state == types.FacilityAlarmStateLo
}

type groupKey struct {
	groupID int
	named   bool
	nodeID  string
}

// AggregateFacilityHeader groups facility tags by (group, node). Tags without a
// group identity land in an unnamed default group of their node. Group alarm
// counts only include the Hi and Lo states, while the summary total counts
// every tag with a nonzero state.
func AggregateFacilityHeader(nodeID string, tags []types.AlarmConfigurationEntry, groupNames map[int]types.FacilityTagGroupEntry, activeHostAlarms int) types.FacilityHeaderSummary {
	summary := emptySummary(nodeID)
	groups := map[groupKey]*types.FacilityTagGroup{}

	for _, e := range tags {
		payload := types.FacilityTagPayload{}
		if e.FacilityTag != nil {
			payload = *e.FacilityTag
		}

		tagNode := e.NodeID
		if payload.GroupNodeID != "" {
			tagNode = payload.GroupNodeID
		}

		key := groupKey{nodeID: strings.ToUpper(tagNode)}
		if payload.TagGroupID != nil {
			key.groupID = *payload.TagGroupID
			key.named = true
		}

		group, ok := groups[key]
		if !ok {
			group = &types.FacilityTagGroup{NodeID: tagNode, Tags: []types.FacilityTag{}}
			if key.named {
				id := key.groupID
				group.GroupID = &id
				group.Name = groupNames[id].Name
			}
			groups[key] = group
		}

		group.TagCount++
		summary.TagCount++
		if isFacilityAlarm(payload.AlarmState) {
			group.AlarmCount++
		}
		if payload.AlarmState != types.FacilityAlarmStateNone {
			summary.AlarmCount++
		}

		group.Tags = append(group.Tags, types.FacilityTag{
			ID:          e.ID,
			Address:     e.Address,
			Description: e.Description,
			AlarmState:  payload.AlarmState,
			Value:       payload.Value,
			Units:       payload.Units,
		})
	}

	summary.AlarmCount += activeHostAlarms

	for _, group := range groups {
		sort.SliceStable(group.Tags, func(i, j int) bool {
			if group.Tags[i].Description != group.Tags[j].Description {
				return group.Tags[i].Description < group.Tags[j].Description
			}
			return group.Tags[i].ID < group.Tags[j].ID
		})
		summary.Groups = append(summary.Groups, *group)
	}

	sort.SliceStable(summary.Groups, func(i, j int) bool {
		a, b := summary.Groups[i], summary.Groups[j]
		if (a.GroupID == nil) != (b.GroupID == nil) {
			return a.GroupID != nil
		}
		if a.GroupID != nil {
			if a.Name != b.Name {
				return a.Name < b.Name
			}
			if *a.GroupID != *b.GroupID {
				return *a.GroupID < *b.GroupID
			}
		}
		return a.NodeID < b.NodeID
	})

	return summary
}
