package types

import "strconv"

type LookupFamily string

const (
	LookupStates           LookupFamily = "States"
	LookupLocalePhrase     LookupFamily = "LocalePhrase"
	LookupCameraAlarmType  LookupFamily = "CameraAlarmType"
	LookupCameraType       LookupFamily = "CameraType"
	LookupXDiagOutput      LookupFamily = "XDiagOutputs"
	LookupPOCType          LookupFamily = "POCType"
	LookupFacilityTagGroup LookupFamily = "FacilityTagGroup"
)

// LookupEntry is implemented by exactly one struct per lookup family.
type LookupEntry interface {
	Family() LookupFamily
	Key() string
	lookupEntry()
}

type StateEntry struct {
	StateID  int     `json:"stateID" yaml:"stateID"`
	Value    float64 `json:"value" yaml:"value"`
	Text     string  `json:"text" yaml:"text"`
	PhraseID *int    `json:"phraseID,omitempty" yaml:"phraseID"`
}

type LocalePhrase struct {
	PhraseID int    `json:"phraseID" yaml:"phraseID"`
	Text     string `json:"text" yaml:"text"`
}

type CameraAlarmType struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	PhraseID *int   `json:"phraseID,omitempty" yaml:"phraseID"`
}

type CameraType struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type XDiagOutput struct {
	ID          int    `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
}

type POCType struct {
	ID          int    `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
}

type FacilityTagGroupEntry struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func (StateEntry) Family() LookupFamily            { return LookupStates }
func (LocalePhrase) Family() LookupFamily          { return LookupLocalePhrase }
func (CameraAlarmType) Family() LookupFamily       { return LookupCameraAlarmType }
func (CameraType) Family() LookupFamily            { return LookupCameraType }
func (XDiagOutput) Family() LookupFamily           { return LookupXDiagOutput }
func (POCType) Family() LookupFamily               { return LookupPOCType }
func (FacilityTagGroupEntry) Family() LookupFamily { return LookupFacilityTagGroup }

func (e StateEntry) Key() string            { return strconv.Itoa(e.StateID) }
func (e LocalePhrase) Key() string          { return strconv.Itoa(e.PhraseID) }
func (e CameraAlarmType) Key() string       { return strconv.Itoa(e.ID) }
func (e CameraType) Key() string            { return strconv.Itoa(e.ID) }
func (e XDiagOutput) Key() string           { return strconv.Itoa(e.ID) }
func (e POCType) Key() string               { return strconv.Itoa(e.ID) }
func (e FacilityTagGroupEntry) Key() string { return strconv.Itoa(e.ID) }

func (StateEntry) lookupEntry()            {}
func (LocalePhrase) lookupEntry()          {}
func (CameraAlarmType) lookupEntry()       {}
func (CameraType) lookupEntry()            {}
func (XDiagOutput) lookupEntry()           {}
func (POCType) lookupEntry()               {}
func (FacilityTagGroupEntry) lookupEntry() {}

// Keys formats integer identifiers as lookup keys.
func Keys(ids []int) []string {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, strconv.Itoa(id))
	}
	return keys
}
