package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/logging"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
	"gorm.io/gorm"
)

var ErrUnknownLookupFamily = fmt.Errorf("unknown lookup family")

// Store serves every read-only collaborator of the alarm engine from one database.
type Store struct {
	db *gorm.DB
}

func NewStore(connect ConnectorFunc) (*Store, error) {
	impl, log, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(allModels()...)
	if err != nil {
		return nil, err
	}

	log.Debug().Msg("database schema migrated")

	return &Store{
		db: impl,
	}, nil
}

func (s *Store) AssetByGUID(ctx context.Context, assetGUID string) (*types.AssetRecord, error) {
	log := logging.GetLoggerFromContext(ctx)

	assets := []Asset{}
	err := s.db.WithContext(ctx).
		Where("LOWER(asset_guid) = ?", strings.ToLower(assetGUID)).
		Order("id").
		Limit(1).
		Find(&assets).Error
	if err != nil {
		return nil, err
	}

	if len(assets) == 0 {
		return nil, nil
	}

	a := assets[0]

	pocType, ok := legacyID(log, "asset", a.ID, "pocType", a.POCType)
	if !ok {
		return nil, nil
	}

	return &types.AssetRecord{
		ID:         int(a.ID),
		AssetGUID:  a.AssetGUID,
		NodeID:     a.NodeID,
		POCType:    pocType,
		CustomerID: a.CustomerID,
		Enabled:    a.Enabled,
	}, nil
}

func (s *Store) AlarmConfigByFamily(ctx context.Context, family types.AlarmFamily, scope types.ConfigScope) ([]types.AlarmConfigurationEntry, error) {
	log := logging.GetLoggerFromContext(ctx)

	query := s.db.WithContext(ctx).Where("family = ?", string(family))

	if family == types.AlarmFamilyFacilityTag {
		node := strings.ToLower(scope.NodeID)
		query = query.Where("(LOWER(node_id) = ? OR LOWER(group_node_id) = ?)", node, node)
	} else {
		query = query.Where("poc_type IN ?", pocTypeKeys(scope.POCType))
	}

	rows := []AlarmConfiguration{}
	if err := query.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]types.AlarmConfigurationEntry, 0, len(rows))
	for _, row := range rows {
		if entry, ok := row.toEntry(log); ok {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func (row AlarmConfiguration) toEntry(log zerolog.Logger) (types.AlarmConfigurationEntry, bool) {
	pocType := 0
	if strings.TrimSpace(row.POCType) != "" {
		var ok bool
		if pocType, ok = legacyID(log, "alarm configuration", row.ID, "pocType", row.POCType); !ok {
			return types.AlarmConfigurationEntry{}, false
		}
	}

	entry := types.AlarmConfigurationEntry{
		ID:          int(row.ID),
		Family:      types.AlarmFamily(row.Family),
		NodeID:      row.NodeID,
		POCType:     pocType,
		Address:     row.Address,
		Bit:         row.Bit,
		Description: row.Description,
		Priority:    row.Priority,
		Enabled:     row.Enabled,
	}

	switch entry.Family {
	case types.AlarmFamilyRTU:
		entry.RTU = &types.RTUPayload{NormalState: row.NormalState}
	case types.AlarmFamilyHost:
		entry.Host = &types.HostPayload{
			AlarmType:     row.AlarmType,
			AlarmState:    row.AlarmState,
			XDiagOutputID: row.XDiagOutputID,
			Limits: types.Limits{
				LoLimit:           row.Limits.Lo,
				LoLoLimit:         row.Limits.LoLo,
				HiLimit:           row.Limits.Hi,
				HiHiLimit:         row.Limits.HiHi,
				ExactValue:        row.Limits.ExactValue,
				ValueChange:       row.Limits.ValueChange,
				PercentChange:     row.Limits.PercentChange,
				SpanLimit:         row.Limits.SpanLimit,
				IgnoreValue:       row.Limits.IgnoreValue,
				IgnoreZeroAddress: row.Limits.IgnoreZeroAddress,
			},
		}
	case types.AlarmFamilyFacilityTag:
		entry.FacilityTag = &types.FacilityTagPayload{
			GroupNodeID: row.GroupNodeID,
			TagGroupID:  row.TagGroupID,
			AlarmState:  row.AlarmState,
			Value:       row.Value,
			Units:       row.Units,
		}
	}

	return entry, true
}

func (s *Store) ParametersByAddresses(ctx context.Context, addresses []int, pocType int) ([]types.ParameterMetadata, error) {
	log := logging.GetLoggerFromContext(ctx)

	if len(addresses) == 0 {
		return []types.ParameterMetadata{}, nil
	}

	rows := []Parameter{}
	err := s.db.WithContext(ctx).
		Where("address IN ?", addresses).
		Where("poc_type IN ?", pocTypeKeys(pocType)).
		Order("address").Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	params := make([]types.ParameterMetadata, 0, len(rows))
	for _, row := range rows {
		code, ok := legacyID(log, "parameter", row.ID, "pocType", row.POCType)
		if !ok {
			continue
		}
		phraseID, ok := optionalLegacyID(log, "parameter", row.ID, "phraseID", row.PhraseID)
		if !ok {
			continue
		}
		stateID, ok := optionalLegacyID(log, "parameter", row.ID, "stateID", row.StateID)
		if !ok {
			continue
		}

		params = append(params, types.ParameterMetadata{
			Address:     row.Address,
			ChannelID:   row.ChannelID,
			POCType:     code,
			Description: row.Description,
			UnitType:    row.UnitType,
			PhraseID:    phraseID,
			StateID:     stateID,
			Bit:         row.Bit,
		})
	}

	return params, nil
}

func (s *Store) LookupsByFamily(ctx context.Context, family types.LookupFamily, keys []string) ([]types.LookupEntry, error) {
	log := logging.GetLoggerFromContext(ctx)

	if len(keys) == 0 {
		return []types.LookupEntry{}, nil
	}

	rows := []Lookup{}
	err := s.db.WithContext(ctx).
		Where("family = ? AND lookup_key IN ?", string(family), keys).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]types.LookupEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := decodeLookup(family, []byte(row.Document))
		if err != nil {
			log.Warn().Err(err).Uint("id", row.ID).Str("family", row.Family).Msg("skipping malformed lookup document")
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SaveLookups replaces the stored documents of every (family, key) pair present in entries.
func (s *Store) SaveLookups(ctx context.Context, entries ...types.LookupEntry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveLookups(tx, entries)
	})
}

func saveLookups(tx *gorm.DB, entries []types.LookupEntry) error {
	if len(entries) == 0 {
		return nil
	}

	keysByFamily := map[types.LookupFamily][]string{}
	rows := make([]Lookup, 0, len(entries))

	for _, e := range entries {
		doc, err := json.Marshal(e)
		if err != nil {
			return err
		}

		keysByFamily[e.Family()] = append(keysByFamily[e.Family()], e.Key())
		rows = append(rows, Lookup{
			Family:    string(e.Family()),
			LookupKey: e.Key(),
			Document:  string(doc),
		})
	}

	for family, keys := range keysByFamily {
		err := tx.Where("family = ? AND lookup_key IN ?", string(family), lo.Uniq(keys)).Delete(&Lookup{}).Error
		if err != nil {
			return err
		}
	}

	return tx.Create(&rows).Error
}

func decodeLookup(family types.LookupFamily, doc []byte) (types.LookupEntry, error) {
	switch family {
	case types.LookupStates:
		return decodeAs[types.StateEntry](doc)
	case types.LookupLocalePhrase:
		return decodeAs[types.LocalePhrase](doc)
	case types.LookupCameraAlarmType:
		return decodeAs[types.CameraAlarmType](doc)
	case types.LookupCameraType:
		return decodeAs[types.CameraType](doc)
	case types.LookupXDiagOutput:
		return decodeAs[types.XDiagOutput](doc)
	case types.LookupPOCType:
		return decodeAs[types.POCType](doc)
	case types.LookupFacilityTagGroup:
		return decodeAs[types.FacilityTagGroupEntry](doc)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownLookupFamily, family)
}

func decodeAs[T types.LookupEntry](doc []byte) (types.LookupEntry, error) {
	var entry T
	if err := json.Unmarshal(doc, &entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Store) LatestTelemetry(ctx context.Context, assetGUID, customerID string, pocType int, channelIDs []string) ([]types.TelemetryRow, error) {
	log := logging.GetLoggerFromContext(ctx)

	if len(channelIDs) == 0 {
		return []types.TelemetryRow{}, nil
	}

	query := s.db.WithContext(ctx).
		Where("LOWER(asset_guid) = ?", strings.ToLower(assetGUID)).
		Where("(channel_id IN ? OR columns <> '')", channelIDs)

	if customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	rows := []Telemetry{}
	if err := query.Order("observed_at").Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]types.TelemetryRow, 0, len(rows))
	for _, row := range rows {
		r := types.TelemetryRow{
			Timestamp: row.ObservedAt,
			ChannelID: row.ChannelID,
			Value:     row.Value,
		}

		if row.Columns != "" {
			columns := map[string]string{}
			if err := json.Unmarshal([]byte(row.Columns), &columns); err != nil {
				log.Warn().Err(err).Uint("id", row.ID).Msg("skipping malformed columnar telemetry")
				continue
			}
			r.Columns = columns
		}

		result = append(result, r)
	}

	return result, nil
}

func (s *Store) PreferencesByAlarmIDs(ctx context.Context, alarmIDs []int) ([]types.NotificationPreference, error) {
	if len(alarmIDs) == 0 {
		return []types.NotificationPreference{}, nil
	}

	rows := []NotificationPreference{}
	err := s.db.WithContext(ctx).Where("alarm_id IN ?", alarmIDs).Order("alarm_id").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(p NotificationPreference, _ int) types.NotificationPreference {
		return types.NotificationPreference{AlarmID: int(p.AlarmID), PushEnabled: p.PushEnabled}
	}), nil
}

// LatestUnacknowledgedByAlarmID returns the most recent event of every alarm.
// Whether that event is still unacknowledged is left to the caller.
func (s *Store) LatestUnacknowledgedByAlarmID(ctx context.Context, alarmIDs []int) ([]types.AlarmEvent, error) {
	if len(alarmIDs) == 0 {
		return []types.AlarmEvent{}, nil
	}

	rows := []AlarmEvent{}
	err := s.db.WithContext(ctx).
		Where("alarm_id IN ?", alarmIDs).
		Order("event_time DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	latest := lo.UniqBy(rows, func(e AlarmEvent) uint { return e.AlarmID })
	sort.Slice(latest, func(i, j int) bool { return latest[i].AlarmID < latest[j].AlarmID })

	return lo.Map(latest, func(e AlarmEvent, _ int) types.AlarmEvent {
		return types.AlarmEvent{
			ID:             int(e.ID),
			AlarmID:        int(e.AlarmID),
			EventTime:      e.EventTime,
			AcknowledgedAt: e.AcknowledgedAt,
		}
	}), nil
}

func (s *Store) CamerasByNode(ctx context.Context, nodeID string) ([]types.Camera, error) {
	rows := []Camera{}
	err := s.db.WithContext(ctx).Where("LOWER(node_id) = ?", strings.ToLower(nodeID)).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(c Camera, _ int) types.Camera {
		return types.Camera{ID: int(c.ID), NodeID: c.NodeID, Name: c.Name, CameraTypeID: c.CameraTypeID}
	}), nil
}

func (s *Store) CameraAlarmsByCameraIDs(ctx context.Context, cameraIDs []int) ([]types.CameraAlarmConfig, error) {
	if len(cameraIDs) == 0 {
		return []types.CameraAlarmConfig{}, nil
	}

	rows := []CameraAlarm{}
	err := s.db.WithContext(ctx).Where("camera_id IN ?", cameraIDs).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(rows, func(c CameraAlarm, _ int) types.CameraAlarmConfig {
		return types.CameraAlarmConfig{
			ID:          int(c.ID),
			CameraID:    int(c.CameraID),
			AlarmTypeID: c.AlarmTypeID,
			Priority:    c.Priority,
			Enabled:     c.Enabled,
		}
	}), nil
}

func pocTypeKeys(pocType int) []string {
	return lo.Uniq([]string{strconv.Itoa(pocType), strconv.Itoa(types.WildcardPOCType)})
}

// legacyID parses an identifier that older schemas store as text. Rows with a
// non numeric value are reported and must be skipped by the caller.
func legacyID(log zerolog.Logger, entity string, id uint, field, value string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Warn().
			Str("entity", entity).
			Uint("id", id).
			Str("field", field).
			Str("value", value).
			Msg("skipping row with non numeric identifier")
		return 0, false
	}
	return i, true
}

func optionalLegacyID(log zerolog.Logger, entity string, id uint, field, value string) (*int, bool) {
	if strings.TrimSpace(value) == "" {
		return nil, true
	}

	i, ok := legacyID(log, entity, id, field, value)
	if !ok {
		return nil, false
	}
	return &i, true
}
