package alarms

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/logging"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
)

type configurationLoader struct {
	configs AlarmConfigLookup
	params  ParameterLookup
	timeout time.Duration
}

// LoadAlarmConfig returns the enabled entries of a family that apply to the asset.
func (l configurationLoader) LoadAlarmConfig(ctx context.Context, family types.AlarmFamily, asset types.AssetRecord) ([]types.AlarmConfigurationEntry, error) {
	log := logging.GetLoggerFromContext(ctx)

	scope := types.ConfigScope{NodeID: asset.NodeID, POCType: asset.POCType}
	entries, err := fetch(ctx, l.timeout, "alarm-config", func(ctx context.Context) ([]types.AlarmConfigurationEntry, error) {
		return l.configs.AlarmConfigByFamily(ctx, family, scope)
	})
	if err != nil {
		return nil, err
	}

	eligible := lo.Filter(entries, func(e types.AlarmConfigurationEntry, _ int) bool {
		return e.Enabled && e.Family == family && appliesTo(e, asset)
	})

	if len(eligible) == 0 {
		log.Info().Str("config_family", string(family)).Msg("no alarm configuration found")
	}

	return eligible, nil
}

// LoadParameters returns at most one parameter per channel id, chosen by bit priority.
func (l configurationLoader) LoadParameters(ctx context.Context, addresses []int, pocType int) ([]types.ParameterMetadata, error) {
	params, err := l.loadCandidates(ctx, addresses, pocType)
	if err != nil {
		return nil, err
	}
	return DeduplicateByChannel(params, pocType), nil
}

// LoadParametersByAddress returns at most one parameter per address, chosen by
// bit priority. Rows are never merged across addresses.
func (l configurationLoader) LoadParametersByAddress(ctx context.Context, addresses []int, pocType int) ([]types.ParameterMetadata, error) {
	params, err := l.loadCandidates(ctx, addresses, pocType)
	if err != nil {
		return nil, err
	}
	return SelectByAddress(params, pocType), nil
}

func (l configurationLoader) loadCandidates(ctx context.Context, addresses []int, pocType int) ([]types.ParameterMetadata, error) {
	log := logging.GetLoggerFromContext(ctx)

	if len(addresses) == 0 {
		return []types.ParameterMetadata{}, nil
	}

	params, err := fetch(ctx, l.timeout, "parameters", func(ctx context.Context) ([]types.ParameterMetadata, error) {
		return l.params.ParametersByAddresses(ctx, addresses, pocType)
	})
	if err != nil {
		return nil, err
	}

	wanted := lo.SliceToMap(addresses, func(a int) (int, struct{}) { return a, struct{}{} })
	params = lo.Filter(params, func(p types.ParameterMetadata, _ int) bool {
		_, ok := wanted[p.Address]
		return ok && MatchesPOCType(p.POCType, pocType)
	})

	if len(params) == 0 {
		log.Info().Ints("addresses", addresses).Msg("no matching parameters found")
	}

	return params, nil
}

func appliesTo(e types.AlarmConfigurationEntry, asset types.AssetRecord) bool {
	switch e.Family {
	case types.AlarmFamilyFacilityTag:
		return FacilityTagMatchesNode(e, asset.NodeID)
	case types.AlarmFamilyHost:
		return MatchesPOCType(e.POCType, asset.POCType) && (e.NodeID == "" || strings.EqualFold(e.NodeID, asset.NodeID))
	default:
		return MatchesPOCType(e.POCType, asset.POCType)
	}
}

// MatchesPOCType reports if a row classified as code applies to an asset of pocType.
func MatchesPOCType(code, pocType int) bool {
	return code == pocType || code == types.WildcardPOCType
}

// FacilityTagMatchesNode applies the node-or-group scoping used by facility tags.
func FacilityTagMatchesNode(e types.AlarmConfigurationEntry, nodeID string) bool {
	group := ""
	if e.FacilityTag != nil {
		group = e.FacilityTag.GroupNodeID
	}

	if group == "" {
		return strings.EqualFold(e.NodeID, nodeID)
	}

	return strings.EqualFold(group, nodeID)
}

func bitRank(bit string) int {
	switch strings.TrimSpace(bit) {
	case "1":
		return 2
	case "0":
		return 1
	default:
		return 0
	}
}

// DeduplicateByChannel keeps one parameter per channel id. Rows with bit "1"
// win over bit "0", which win over anything else. Remaining ties prefer the
// asset's own classification over the wildcard, then the lowest address.
func DeduplicateByChannel(params []types.ParameterMetadata, pocType int) []types.ParameterMetadata {
	return selectFirst(params, pocType, func(p types.ParameterMetadata) string {
		return p.ChannelID
	})
}

// SelectByAddress keeps one parameter per address using the same priority as
// DeduplicateByChannel.
func SelectByAddress(params []types.ParameterMetadata, pocType int) []types.ParameterMetadata {
	return selectFirst(params, pocType, func(p types.ParameterMetadata) int {
		return p.Address
	})
}

func selectFirst[K comparable](params []types.ParameterMetadata, pocType int, key func(types.ParameterMetadata) K) []types.ParameterMetadata {
	candidates := make([]types.ParameterMetadata, len(params))
	copy(candidates, params)

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if ra, rb := bitRank(a.Bit), bitRank(b.Bit); ra != rb {
			return ra > rb
		}
		if sa, sb := a.POCType == pocType, b.POCType == pocType; sa != sb {
			return sa
		}
		if a.Address != b.Address {
			return a.Address < b.Address
		}
		return a.Description < b.Description
	})

	selected := lo.UniqBy(candidates, key)

	sort.SliceStable(selected, func(i, j int) bool {
		if selected[i].Address != selected[j].Address {
			return selected[i].Address < selected[j].Address
		}
		return selected[i].ChannelID < selected[j].ChannelID
	})

	return selected
}

func logSkipped(log zerolog.Logger, err *DataIntegrityError) {
	log.Warn().Str("entity", err.Entity).Int("id", err.ID).Str("field", err.Field).Msg(err.Error())
}
