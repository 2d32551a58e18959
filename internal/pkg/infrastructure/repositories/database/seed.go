package database

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/logging"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedFile struct {
	Assets                  []Asset                  `yaml:"assets"`
	AlarmConfigurations     []AlarmConfiguration     `yaml:"alarmConfigurations"`
	Parameters              []Parameter              `yaml:"parameters"`
	Lookups                 seedLookups              `yaml:"lookups"`
	Telemetry               []seedTelemetry          `yaml:"telemetry"`
	NotificationPreferences []NotificationPreference `yaml:"notificationPreferences"`
	Cameras                 []Camera                 `yaml:"cameras"`
	CameraAlarms            []CameraAlarm            `yaml:"cameraAlarms"`
	AlarmEvents             []AlarmEvent             `yaml:"alarmEvents"`
}

type seedLookups struct {
	States            []types.StateEntry            `yaml:"states"`
	LocalePhrases     []types.LocalePhrase          `yaml:"localePhrases"`
	CameraAlarmTypes  []types.CameraAlarmType       `yaml:"cameraAlarmTypes"`
	CameraTypes       []types.CameraType            `yaml:"cameraTypes"`
	XDiagOutputs      []types.XDiagOutput           `yaml:"xdiagOutputs"`
	POCTypes          []types.POCType               `yaml:"pocTypes"`
	FacilityTagGroups []types.FacilityTagGroupEntry `yaml:"facilityTagGroups"`
}

func (l seedLookups) entries() []types.LookupEntry {
	entries := []types.LookupEntry{}
	entries = append(entries, asEntries(l.States)...)
	entries = append(entries, asEntries(l.LocalePhrases)...)
	entries = append(entries, asEntries(l.CameraAlarmTypes)...)
	entries = append(entries, asEntries(l.CameraTypes)...)
	entries = append(entries, asEntries(l.XDiagOutputs)...)
	entries = append(entries, asEntries(l.POCTypes)...)
	entries = append(entries, asEntries(l.FacilityTagGroups)...)
	return entries
}

func asEntries[T types.LookupEntry](items []T) []types.LookupEntry {
	return lo.Map(items, func(item T, _ int) types.LookupEntry { return item })
}

type seedTelemetry struct {
	AssetGUID  string            `yaml:"assetID"`
	CustomerID string            `yaml:"customerID"`
	Timestamp  time.Time         `yaml:"timestamp"`
	ChannelID  string            `yaml:"channelID"`
	Value      *string           `yaml:"value"`
	Columns    map[string]string `yaml:"columns"`
}

func (t seedTelemetry) row() (Telemetry, error) {
	row := Telemetry{
		AssetGUID:  strings.ToLower(t.AssetGUID),
		CustomerID: t.CustomerID,
		ObservedAt: t.Timestamp,
		ChannelID:  t.ChannelID,
		Value:      t.Value,
	}

	if t.Columns != nil {
		b, err := json.Marshal(t.Columns)
		if err != nil {
			return Telemetry{}, err
		}
		row.Columns = string(b)
	}

	return row, nil
}

// Seed loads reference and development data from a yaml document. Rows with an
// id already present are overwritten, telemetry is replaced per asset.
func (s *Store) Seed(ctx context.Context, reader io.Reader) error {
	log := logging.GetLoggerFromContext(ctx)

	b, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	seed := seedFile{}
	if err = yaml.Unmarshal(b, &seed); err != nil {
		return err
	}

	telemetry := make([]Telemetry, 0, len(seed.Telemetry))
	for _, t := range seed.Telemetry {
		row, err := t.row()
		if err != nil {
			return err
		}
		telemetry = append(telemetry, row)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, step := range []func() error{
			func() error { return upsert(tx, seed.Assets) },
			func() error { return upsert(tx, seed.AlarmConfigurations) },
			func() error { return upsert(tx, seed.Parameters) },
			func() error { return saveLookups(tx, seed.Lookups.entries()) },
			func() error { return replaceTelemetry(tx, telemetry) },
			func() error { return upsert(tx, seed.NotificationPreferences) },
			func() error { return upsert(tx, seed.Cameras) },
			func() error { return upsert(tx, seed.CameraAlarms) },
			func() error { return upsert(tx, seed.AlarmEvents) },
		} {
			if err := step(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("assets", len(seed.Assets)).
		Int("alarm_configurations", len(seed.AlarmConfigurations)).
		Int("parameters", len(seed.Parameters)).
		Int("lookups", len(seed.Lookups.entries())).
		Int("telemetry", len(telemetry)).
		Msg("seeded database")

	return nil
}

func upsert[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error
}

func replaceTelemetry(tx *gorm.DB, rows []Telemetry) error {
	if len(rows) == 0 {
		return nil
	}

	assets := lo.Uniq(lo.Map(rows, func(t Telemetry, _ int) string { return t.AssetGUID }))
	if err := tx.Where("asset_guid IN ?", assets).Delete(&Telemetry{}).Error; err != nil {
		return err
	}

	return tx.Create(&rows).Error
}
