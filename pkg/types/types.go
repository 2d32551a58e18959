package types

import (
	"time"
)

// WildcardPOCType is the reserved classification code that applies to every asset.
const WildcardPOCType int = 99

type AssetRecord struct {
	ID         int    `json:"id"`
	AssetGUID  string `json:"assetID"`
	NodeID     string `json:"nodeID"`
	POCType    int    `json:"pocType"`
	CustomerID string `json:"customerID,omitempty"`
	Enabled    bool   `json:"enabled"`
}

type AlarmFamily string

const (
	AlarmFamilyRTU         AlarmFamily = "RTU"
	AlarmFamilyHost        AlarmFamily = "Host"
	AlarmFamilyFacilityTag AlarmFamily = "FacilityTag"
	AlarmFamilyCamera      AlarmFamily = "Camera"
)

// ConfigScope narrows an alarm configuration query to one asset.
type ConfigScope struct {
	NodeID  string
	POCType int
}

type AlarmConfigurationEntry struct {
	ID          int         `json:"id"`
	Family      AlarmFamily `json:"family"`
	NodeID      string      `json:"nodeID,omitempty"`
	POCType     int         `json:"pocType"`
	Address     *int        `json:"address,omitempty"`
	Bit         *int        `json:"bit,omitempty"`
	Description string      `json:"description"`
	Priority    *int        `json:"priority,omitempty"`
	Enabled     bool        `json:"enabled"`

	RTU         *RTUPayload         `json:"rtu,omitempty"`
	Host        *HostPayload        `json:"host,omitempty"`
	FacilityTag *FacilityTagPayload `json:"facilityTag,omitempty"`
}

type RTUPayload struct {
	NormalState bool `json:"normalState"`
}

type HostPayload struct {
	AlarmType     string `json:"alarmType,omitempty"`
	AlarmState    int    `json:"alarmState"`
	XDiagOutputID *int   `json:"xdiagOutputID,omitempty"`
	Limits        Limits `json:"limits"`
}

type Limits struct {
	LoLimit           *float64 `json:"loLimit,omitempty"`
	LoLoLimit         *float64 `json:"loLoLimit,omitempty"`
	HiLimit           *float64 `json:"hiLimit,omitempty"`
	HiHiLimit         *float64 `json:"hiHiLimit,omitempty"`
	ExactValue        *float64 `json:"exactValue,omitempty"`
	ValueChange       *float64 `json:"valueChange,omitempty"`
	PercentChange     *float64 `json:"percentChange,omitempty"`
	SpanLimit         *float64 `json:"spanLimit,omitempty"`
	IgnoreValue       *float64 `json:"ignoreValue,omitempty"`
	IgnoreZeroAddress *int     `json:"ignoreZeroAddress,omitempty"`
}

type FacilityTagPayload struct {
	GroupNodeID string   `json:"groupNodeID,omitempty"`
	TagGroupID  *int     `json:"tagGroupID,omitempty"`
	AlarmState  int      `json:"alarmState"`
	Value       *float64 `json:"value,omitempty"`
	Units       string   `json:"units,omitempty"`
}

type ParameterMetadata struct {
	Address     int    `json:"address"`
	ChannelID   string `json:"channelID"`
	POCType     int    `json:"pocType"`
	Description string `json:"description"`
	UnitType    int    `json:"unitType"`
	PhraseID    *int   `json:"phraseID,omitempty"`
	StateID     *int   `json:"stateID,omitempty"`
	Bit         string `json:"bit,omitempty"`
}

// TelemetryRow is one row as delivered by the telemetry store. Columnar rows
// carry a non-nil Columns map, scalar rows carry ChannelID and Value.
type TelemetryRow struct {
	Timestamp time.Time         `json:"timestamp"`
	Columns   map[string]string `json:"columns,omitempty"`
	ChannelID string            `json:"channelID,omitempty"`
	Value     *string           `json:"value,omitempty"`
}

func (r TelemetryRow) IsColumnar() bool {
	return r.Columns != nil
}

type TelemetrySample struct {
	ChannelID string    `json:"channelID"`
	X         time.Time `json:"x"`
	Y         float64   `json:"y"`
}

type NotificationPreference struct {
	AlarmID     int  `json:"alarmID"`
	PushEnabled bool `json:"pushEnabled"`
}

type Camera struct {
	ID           int    `json:"id"`
	NodeID       string `json:"nodeID"`
	Name         string `json:"name"`
	CameraTypeID int    `json:"cameraTypeID"`
}

type CameraAlarmConfig struct {
	ID          int  `json:"id"`
	CameraID    int  `json:"cameraID"`
	AlarmTypeID int  `json:"alarmTypeID"`
	Priority    *int `json:"priority,omitempty"`
	Enabled     bool `json:"enabled"`
}

type AlarmEvent struct {
	ID             int        `json:"id"`
	AlarmID        int        `json:"alarmID"`
	EventTime      time.Time  `json:"eventTime"`
	AcknowledgedAt *time.Time `json:"acknowledgedAt,omitempty"`
}
