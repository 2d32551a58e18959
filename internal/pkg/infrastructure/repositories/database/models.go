package database

import (
	"time"
)

// Asset mirrors a well record. POCType is kept in its legacy text form and
// validated when read.
type Asset struct {
	ID         uint   `gorm:"primarykey" yaml:"id"`
	AssetGUID  string `gorm:"uniqueIndex" yaml:"assetID"`
	NodeID     string `gorm:"index" yaml:"nodeID"`
	POCType    string `yaml:"pocType"`
	CustomerID string `yaml:"customerID"`
	Enabled    bool   `yaml:"enabled"`
}

type AlarmConfiguration struct {
	ID          uint   `gorm:"primarykey" yaml:"id"`
	Family      string `gorm:"index" yaml:"family"`
	NodeID      string `gorm:"index" yaml:"nodeID"`
	POCType     string `yaml:"pocType"`
	Address     *int   `yaml:"address"`
	Bit         *int   `yaml:"bit"`
	Description string `yaml:"description"`
	Priority    *int   `yaml:"priority"`
	Enabled     bool   `yaml:"enabled"`

	NormalState bool `yaml:"normalState"`

	AlarmType     string `yaml:"alarmType"`
	AlarmState    int    `yaml:"alarmState"`
	XDiagOutputID *int   `yaml:"xdiagOutputID"`
	Limits        Limits `gorm:"embedded;embeddedPrefix:limit_" yaml:"limits"`

	GroupNodeID string   `gorm:"index" yaml:"groupNodeID"`
	TagGroupID  *int     `yaml:"tagGroupID"`
	Value       *float64 `yaml:"value"`
	Units       string   `yaml:"units"`
}

type Limits struct {
	Lo                *float64 `yaml:"lo"`
	LoLo              *float64 `yaml:"loLo"`
	Hi                *float64 `yaml:"hi"`
	HiHi              *float64 `yaml:"hiHi"`
	ExactValue        *float64 `yaml:"exactValue"`
	ValueChange       *float64 `yaml:"valueChange"`
	PercentChange     *float64 `yaml:"percentChange"`
	SpanLimit         *float64 `yaml:"spanLimit"`
	IgnoreValue       *float64 `yaml:"ignoreValue"`
	IgnoreZeroAddress *int     `yaml:"ignoreZeroAddress"`
}

// Parameter is a register definition. POCType, PhraseID and StateID carry
// legacy text identifiers.
type Parameter struct {
	ID          uint   `gorm:"primarykey" yaml:"id"`
	Address     int    `gorm:"index" yaml:"address"`
	ChannelID   string `yaml:"channelID"`
	POCType     string `gorm:"index" yaml:"pocType"`
	Description string `yaml:"description"`
	UnitType    int    `yaml:"unitType"`
	PhraseID    string `yaml:"phraseID"`
	StateID     string `yaml:"stateID"`
	Bit         string `yaml:"bit"`
}

// Lookup stores one reference data entry as a JSON document keyed by family.
type Lookup struct {
	ID        uint   `gorm:"primarykey"`
	Family    string `gorm:"index:idx_lookup_family_key"`
	LookupKey string `gorm:"index:idx_lookup_family_key"`
	Document  string
}

type Telemetry struct {
	ID         uint      `gorm:"primarykey" yaml:"-"`
	AssetGUID  string    `gorm:"index" yaml:"assetID"`
	CustomerID string    `yaml:"customerID"`
	ObservedAt time.Time `gorm:"index" yaml:"timestamp"`
	ChannelID  string    `yaml:"channelID"`
	Value      *string   `yaml:"value"`
	Columns    string    `yaml:"-"`
}

type NotificationPreference struct {
	AlarmID     uint `gorm:"primarykey;autoIncrement:false" yaml:"alarmID"`
	PushEnabled bool `yaml:"pushEnabled"`
}

type Camera struct {
	ID           uint   `gorm:"primarykey" yaml:"id"`
	NodeID       string `gorm:"index" yaml:"nodeID"`
	Name         string `yaml:"name"`
	CameraTypeID int    `yaml:"cameraTypeID"`
}

type CameraAlarm struct {
	ID          uint `gorm:"primarykey" yaml:"id"`
	CameraID    uint `gorm:"index" yaml:"cameraID"`
	AlarmTypeID int  `yaml:"alarmTypeID"`
	Priority    *int `yaml:"priority"`
	Enabled     bool `yaml:"enabled"`
}

type AlarmEvent struct {
	ID             uint       `gorm:"primarykey" yaml:"id"`
	AlarmID        uint       `gorm:"index" yaml:"alarmID"`
	EventTime      time.Time  `yaml:"eventTime"`
	AcknowledgedAt *time.Time `yaml:"acknowledgedAt"`
}

func allModels() []any {
	return []any{
		&Asset{}, &AlarmConfiguration{}, &Parameter{}, &Lookup{}, &Telemetry{},
		&NotificationPreference{}, &Camera{}, &CameraAlarm{}, &AlarmEvent{},
	}
}
