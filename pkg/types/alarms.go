package types

const (
	FacilityAlarmStateNone = 0
	FacilityAlarmStateHi   = 1
	FacilityAlarmStateLo   = 2
)

type AlarmData struct {
	ID          int         `json:"id,omitempty"`
	Family      AlarmFamily `json:"family"`
	Register    *int        `json:"register,omitempty"`
	Bit         int         `json:"bit"`
	Description string      `json:"description"`
	Priority    int         `json:"priority"`
	State       int         `json:"state"`
	StateText   string      `json:"stateText,omitempty"`
	ChannelID   string      `json:"channelID,omitempty"`
	Value       *float64    `json:"currentValue,omitempty"`
	NormalState *bool       `json:"normalState,omitempty"`
	PushEnabled *bool       `json:"pushEnabled,omitempty"`
	AlarmType   string      `json:"alarmType,omitempty"`
	Limits      *Limits     `json:"limits,omitempty"`
}

type FacilityHeaderSummary struct {
	NodeID     string             `json:"nodeID"`
	TagCount   int                `json:"tagCount"`
	AlarmCount int                `json:"alarmCount"`
	Groups     []FacilityTagGroup `json:"groups"`
}

type FacilityTagGroup struct {
	GroupID    *int          `json:"groupID,omitempty"`
	NodeID     string        `json:"nodeID"`
	Name       string        `json:"name"`
	TagCount   int           `json:"tagCount"`
	AlarmCount int           `json:"alarmCount"`
	Tags       []FacilityTag `json:"tags"`
}

type FacilityTag struct {
	ID          int      `json:"id"`
	Address     *int     `json:"address,omitempty"`
	Description string   `json:"description"`
	AlarmState  int      `json:"alarmState"`
	Value       *float64 `json:"value,omitempty"`
	Units       string   `json:"units,omitempty"`
}
