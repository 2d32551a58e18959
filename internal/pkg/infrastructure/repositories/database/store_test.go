package database

import (
	"context"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
)

const wellGUID = "6f1d2c9e-1b7a-4c52-9d1e-0a3f5b7c8d90"

func TestAssetByGUIDIsCaseInsensitive(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	asset, err := s.AssetByGUID(ctx, strings.ToUpper(wellGUID))
	is.NoErr(err)
	is.True(asset != nil)
	is.Equal("N1", asset.NodeID)
	is.Equal(5, asset.POCType)
}

func TestAssetByGUIDNotFound(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	asset, err := s.AssetByGUID(ctx, "00000000-0000-0000-0000-000000000000")
	is.NoErr(err)
	is.True(asset == nil)
}

func TestAssetWithNonNumericPOCTypeIsSkipped(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	asset, err := s.AssetByGUID(ctx, "1a2b3c4d-0000-0000-0000-000000000002")
	is.NoErr(err)
	is.True(asset == nil)
}

func TestAlarmConfigByFamily(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	host, err := s.AlarmConfigByFamily(ctx, types.AlarmFamilyHost, types.ConfigScope{NodeID: "N1", POCType: 5})
	is.NoErr(err)
	is.Equal(2, len(host))
	is.Equal(150.0, *host[0].Host.Limits.HiHiLimit)
	is.Equal(7, *host[1].Host.XDiagOutputID)

	rtu, err := s.AlarmConfigByFamily(ctx, types.AlarmFamilyRTU, types.ConfigScope{NodeID: "N1", POCType: 5})
	is.NoErr(err)
	is.Equal(2, len(rtu))
	is.True(rtu[0].RTU.NormalState)

	tags, err := s.AlarmConfigByFamily(ctx, types.AlarmFamilyFacilityTag, types.ConfigScope{NodeID: "n1"})
	is.NoErr(err)
	is.Equal(2, len(tags))
	is.Equal("N1", tags[1].FacilityTag.GroupNodeID)
}

func TestParametersByAddresses(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	params, err := s.ParametersByAddresses(ctx, []int{11, 42}, 3)
	is.NoErr(err)
	is.Equal(1, len(params))
	is.Equal("C42", params[0].ChannelID)
	is.Equal(types.WildcardPOCType, params[0].POCType)

	params, err = s.ParametersByAddresses(ctx, []int{10}, 5)
	is.NoErr(err)
	is.Equal(2, len(params)) // the row with a broken state id is skipped
	is.Equal(3, *params[0].StateID)
}

func TestLookupsByFamily(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	entries, err := s.LookupsByFamily(ctx, types.LookupStates, []string{"3"})
	is.NoErr(err)
	is.Equal(2, len(entries))

	state, ok := entries[1].(types.StateEntry)
	is.True(ok)
	is.Equal("Open", state.Text)
	is.Equal(70, *state.PhraseID)

	entries, err = s.LookupsByFamily(ctx, types.LookupXDiagOutput, []string{"7", "8"})
	is.NoErr(err)
	is.Equal(1, len(entries))
	is.Equal(types.XDiagOutput{ID: 7, Description: "Ventilation fault"}, entries[0])
}

func TestSaveLookupsReplacesExistingKeys(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	err := s.SaveLookups(ctx, types.XDiagOutput{ID: 7, Description: "Fan fault"})
	is.NoErr(err)

	entries, err := s.LookupsByFamily(ctx, types.LookupXDiagOutput, []string{"7"})
	is.NoErr(err)
	is.Equal(1, len(entries))
	is.Equal("Fan fault", entries[0].(types.XDiagOutput).Description)
}

func TestLatestTelemetry(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	rows, err := s.LatestTelemetry(ctx, strings.ToUpper(wellGUID), "cust", 5, []string{"C10", "C11"})
	is.NoErr(err)
	is.Equal(3, len(rows))
	is.True(!rows[0].IsColumnar())
	is.Equal("0", *rows[0].Value)
	is.True(rows[2].IsColumnar())
	is.Equal("42.5", rows[2].Columns["C11"])

	rows, err = s.LatestTelemetry(ctx, wellGUID, "other", 5, []string{"C10"})
	is.NoErr(err)
	is.Equal(0, len(rows))
}

func TestLatestUnacknowledgedByAlarmID(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	events, err := s.LatestUnacknowledgedByAlarmID(ctx, []int{50, 51})
	is.NoErr(err)
	is.Equal(2, len(events))
	is.Equal(1, events[0].ID)
	is.True(events[0].AcknowledgedAt == nil)
	is.Equal(3, events[1].ID)
	is.True(events[1].AcknowledgedAt != nil)
}

func TestCameras(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	cameras, err := s.CamerasByNode(ctx, "n1")
	is.NoErr(err)
	is.Equal(1, len(cameras))
	is.Equal("Gate", cameras[0].Name)

	alarms, err := s.CameraAlarmsByCameraIDs(ctx, []int{cameras[0].ID})
	is.NoErr(err)
	is.Equal(2, len(alarms))
	is.Equal(3, *alarms[0].Priority)
}

func TestPreferencesByAlarmIDs(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	prefs, err := s.PreferencesByAlarmIDs(ctx, []int{20, 21})
	is.NoErr(err)
	is.Equal(1, len(prefs))
	is.True(prefs[0].PushEnabled)
}

func TestSeedIsRepeatable(t *testing.T) {
	is, ctx, s := testSetupSeededStore(t)

	is.NoErr(s.Seed(ctx, strings.NewReader(seedYAML)))

	rows, err := s.LatestTelemetry(ctx, wellGUID, "", 5, []string{"C10", "C11"})
	is.NoErr(err)
	is.Equal(3, len(rows))

	entries, err := s.LookupsByFamily(ctx, types.LookupStates, []string{"3"})
	is.NoErr(err)
	is.Equal(2, len(entries))
}

func testSetupSeededStore(t *testing.T) (*is.I, context.Context, *Store) {
	is, ctx, conn := setup(t)

	s, err := NewStore(conn)
	is.NoErr(err)

	err = s.Seed(ctx, strings.NewReader(seedYAML))
	is.NoErr(err)

	return is, ctx, s
}

func setup(t *testing.T) (*is.I, context.Context, ConnectorFunc) {
	is := is.New(t)
	ctx := context.Background()
	conn := NewSQLiteConnector(ctx)

	return is, ctx, conn
}

const seedYAML string = `
assets:
  - id: 1
    assetID: 6F1D2C9E-1B7A-4C52-9D1E-0A3F5B7C8D90
    nodeID: N1
    pocType: "5"
    customerID: cust
    enabled: true
  - id: 2
    assetID: 1a2b3c4d-0000-0000-0000-000000000002
    nodeID: N2
    pocType: five
    enabled: true
alarmConfigurations:
  - id: 1
    family: RTU
    pocType: "5"
    address: 10
    bit: 0
    description: Valve position
    enabled: true
    normalState: true
  - id: 2
    family: RTU
    pocType: "99"
    address: 11
    description: Tubing pressure
    enabled: true
  - id: 3
    family: RTU
    pocType: five
    address: 12
    description: Broken
    enabled: true
  - id: 20
    family: Host
    pocType: "5"
    address: 100
    description: Host 100
    enabled: true
    alarmType: HiHi
    alarmState: 1
    limits:
      hiHi: 150
  - id: 21
    family: Host
    pocType: "5"
    description: Diagnostic
    enabled: true
    xdiagOutputID: 7
  - id: 30
    family: FacilityTag
    nodeID: N1
    address: 200
    description: Tank level
    enabled: true
    tagGroupID: 1
    alarmState: 1
  - id: 32
    family: FacilityTag
    nodeID: N2
    groupNodeID: N1
    address: 202
    description: Compressor temp
    enabled: true
    tagGroupID: 2
    alarmState: 2
  - id: 35
    family: FacilityTag
    nodeID: N3
    address: 205
    description: Other node
    enabled: true
parameters:
  - id: 1
    address: 10
    channelID: C10
    pocType: "5"
    description: Valve
    stateID: "3"
    bit: "1"
  - id: 2
    address: 10
    channelID: C10
    pocType: "99"
    description: Valve (generic)
    bit: "0"
  - id: 3
    address: 10
    channelID: C10b
    pocType: "5"
    description: Broken state
    stateID: three
  - id: 4
    address: 42
    channelID: C42
    pocType: "99"
    description: Generic
lookups:
  states:
    - stateID: 3
      value: 0
      text: Closed
    - stateID: 3
      value: 1
      text: Open
      phraseID: 70
  localePhrases:
    - phraseID: 70
      text: Öppen
  xdiagOutputs:
    - id: 7
      description: Ventilation fault
  cameraTypes:
    - id: 1
      name: PTZ
  cameraAlarmTypes:
    - id: 100
      name: Motion
  facilityTagGroups:
    - id: 1
      name: Tanks
telemetry:
  - assetID: 6f1d2c9e-1b7a-4c52-9d1e-0a3f5b7c8d90
    customerID: cust
    timestamp: 2024-03-01T12:00:00Z
    channelID: C10
    value: "0"
  - assetID: 6f1d2c9e-1b7a-4c52-9d1e-0a3f5b7c8d90
    customerID: cust
    timestamp: 2024-03-01T12:01:00Z
    channelID: C10
    value: "1"
  - assetID: 6f1d2c9e-1b7a-4c52-9d1e-0a3f5b7c8d90
    customerID: cust
    timestamp: 2024-03-01T12:02:00Z
    columns:
      C11: "42.5"
notificationPreferences:
  - alarmID: 20
    pushEnabled: true
cameras:
  - id: 1
    nodeID: N1
    name: Gate
    cameraTypeID: 1
  - id: 2
    nodeID: N2
    name: Elsewhere
    cameraTypeID: 1
cameraAlarms:
  - id: 50
    cameraID: 1
    alarmTypeID: 100
    priority: 3
    enabled: true
  - id: 51
    cameraID: 1
    alarmTypeID: 100
    enabled: false
alarmEvents:
  - id: 1
    alarmID: 50
    eventTime: 2024-03-01T12:00:00Z
  - id: 2
    alarmID: 51
    eventTime: 2024-03-01T12:00:00Z
  - id: 3
    alarmID: 51
    eventTime: 2024-03-01T12:05:00Z
    acknowledgedAt: 2024-03-01T13:00:00Z
`
