package alarms

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/wellwatch/well-alarm-mgmt/internal/pkg/infrastructure/logging"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
)

const wellGUID = "6f1d2c9e-1b7a-4c52-9d1e-0a3f5b7c8d90"

func TestUnknownAssetYieldsEmptyResults(t *testing.T) {
	is, ctx, r := testSetup(t, &fixture{})

	for _, get := range familyOperations(r) {
		result, err := get(ctx, wellGUID, "cust")
		is.NoErr(err)
		is.True(result != nil)
		is.Equal(0, len(result))
	}

	summary, err := r.GetFacilityHeaderAndDetails(ctx, wellGUID)
	is.NoErr(err)
	is.True(summary.Groups != nil)
	is.Equal(0, len(summary.Groups))
	is.Equal(0, summary.TagCount)
}

func TestInvalidAssetIDIsRejected(t *testing.T) {
	is, ctx, r := testSetup(t, defaultFixture())

	result, err := r.GetRtuAlarms(ctx, "not-a-guid", "cust")
	is.True(errors.Is(err, ErrInvalidAssetID))
	is.Equal(0, len(result))

	_, err = r.GetFacilityHeaderAndDetails(ctx, "")
	is.True(errors.Is(err, ErrInvalidAssetID))
}

func TestAssetIsMatchedCaseInsensitively(t *testing.T) {
	is, ctx, r := testSetup(t, defaultFixture())

	result, err := r.GetFacilityTagAlarms(ctx, strings.ToUpper(wellGUID), "cust")
	is.NoErr(err)
	is.Equal(2, len(result))
}

func TestFailingCollaboratorIsReportedAsDegraded(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	f := defaultFixture()
	c := f.collaborators()
	c.Parameters = &ParameterLookupMock{
		ParametersByAddressesFunc: func(ctx context.Context, addresses []int, pocType int) ([]types.ParameterMetadata, error) {
			return nil, errors.New("connection refused")
		},
	}

	r := New(c, nil)

	result, err := r.GetRtuAlarms(ctx, wellGUID, "cust")
	is.True(errors.Is(err, ErrLookupFailure))
	is.True(result != nil)
	is.Equal(0, len(result))

	var lookupErr *LookupError
	is.True(errors.As(err, &lookupErr))
	is.Equal("parameters", lookupErr.Collaborator)

	result, err = r.GetHostAlarms(ctx, wellGUID, "cust")
	is.True(errors.Is(err, ErrLookupFailure))
	is.Equal(0, len(result))
}

func TestSlowCollaboratorTimesOut(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	f := defaultFixture()
	c := f.collaborators()
	c.Telemetry = &TelemetrySourceMock{
		LatestTelemetryFunc: func(ctx context.Context, assetGUID, customerID string, pocType int, channelIDs []string) ([]types.TelemetryRow, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	r := New(c, &Config{CollaboratorTimeout: 20 * time.Millisecond})

	result, err := r.GetRtuAlarms(ctx, wellGUID, "cust")
	is.True(errors.Is(err, ErrLookupFailure))
	is.True(errors.Is(err, context.DeadlineExceeded))
	is.Equal(0, len(result))
}

func TestGetRtuAlarms(t *testing.T) {
	is, ctx, r := testSetup(t, defaultFixture())

	result, err := r.GetRtuAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)
	is.Equal(2, len(result))

	first := result[0]
	is.Equal(types.AlarmFamilyRTU, first.Family)
	is.Equal(10, *first.Register)
	is.Equal("Valve position", first.Description)
	is.Equal("C10", first.ChannelID)
	is.Equal(1.0, *first.Value)
	is.Equal("Öppen", first.StateText)
	is.True(*first.NormalState)

	second := result[1]
	is.Equal(11, *second.Register)
	is.Equal("42.5", second.StateText)
}

func TestGetRtuAlarmsIsDeterministic(t *testing.T) {
	is, ctx, r := testSetup(t, defaultFixture())

	first, err := r.GetRtuAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)

	f := defaultFixture()
	f.configs = lo.Reverse(f.configs)
	f.params = lo.Reverse(f.params)
	f.telemetry = lo.Reverse(f.telemetry)
	_, _, reversed := testSetup(t, f)

	second, err := reversed.GetRtuAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)
	is.Equal(first, second)
}

func TestGetHostAlarms(t *testing.T) {
	is, ctx, r := testSetup(t, defaultFixture())

	result, err := r.GetHostAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)
	is.Equal(2, len(result))

	is.Equal("Ventilation fault", result[0].Description)
	is.Equal(21, result[0].ID)
	is.True(result[0].Register == nil)

	is.Equal("Casing pressure", result[1].Description)
	is.Equal(20, result[1].ID)
	is.Equal("C100", result[1].ChannelID)
	is.Equal("HiHi", result[1].AlarmType)
	is.Equal(150.0, *result[1].Limits.HiHiLimit)
	is.True(*result[1].PushEnabled)
}

func TestGetHostAlarmsPrefersFacilityTagDescription(t *testing.T) {
	f := defaultFixture()
	f.configs = append(f.configs, types.AlarmConfigurationEntry{
		ID: 40, Family: types.AlarmFamilyFacilityTag, NodeID: "N1", Address: intp(100),
		Description: "Annulus pressure", Enabled: true,
		FacilityTag: &types.FacilityTagPayload{},
	})

	is, ctx, r := testSetup(t, f)

	result, err := r.GetHostAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)
	is.Equal(2, len(result))
	is.Equal("Ventilation fault", result[0].Description)
	is.Equal("Annulus pressure", result[1].Description)
}

func TestGetHostAlarmsSkipsEntriesWithoutSource(t *testing.T) {
	f := defaultFixture()
	f.configs = append(f.configs, types.AlarmConfigurationEntry{
		ID: 22, Family: types.AlarmFamilyHost, POCType: 5, Description: "Orphan", Enabled: true,
		Host: &types.HostPayload{AlarmState: 1},
	})

	is, ctx, r := testSetup(t, f)

	result, err := r.GetHostAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)
	is.Equal(2, len(result))
}

func TestGetHostAlarmsKeepsParametersWithoutChannel(t *testing.T) {
	f := defaultFixture()
	f.params = []types.ParameterMetadata{
		{Address: 100, POCType: 5, Description: "Casing pressure"},
		{Address: 300, POCType: 5, Description: "Tubing pressure"},
	}
	f.configs = append(f.configs, types.AlarmConfigurationEntry{
		ID: 23, Family: types.AlarmFamilyHost, POCType: 5, Address: intp(300), Description: "Host 300", Enabled: true,
		Host: &types.HostPayload{AlarmState: 1},
	})

	is, ctx, r := testSetup(t, f)

	result, err := r.GetHostAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)
	is.Equal(3, len(result))
	is.Equal("Ventilation fault", result[0].Description)
	is.Equal("Tubing pressure", result[1].Description)
	is.Equal(23, result[1].ID)
	is.Equal("Casing pressure", result[2].Description)
	is.Equal(20, result[2].ID)
}

func TestLoadAlarmConfigLogsFamilyOnce(t *testing.T) {
	f := defaultFixture()
	f.configs = lo.Filter(f.configs, func(e types.AlarmConfigurationEntry, _ int) bool {
		return e.Family != types.AlarmFamilyHost
	})

	is, _, r := testSetup(t, f)

	buf := &bytes.Buffer{}
	ctx := logging.NewContextWithLogger(context.Background(), zerolog.New(buf))

	result, err := r.GetHostAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)
	is.Equal(0, len(result))

	line := lo.FindOrElse(strings.Split(buf.String(), "\n"), "", func(l string) bool {
		return strings.Contains(l, "no alarm configuration found")
	})
	is.True(strings.Contains(line, `"config_family":"Host"`))
	is.Equal(1, strings.Count(line, `"family":`))
}

func TestGetFacilityTagAlarms(t *testing.T) {
	is, ctx, r := testSetup(t, defaultFixture())

	result, err := r.GetFacilityTagAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)
	is.Equal(2, len(result))

	is.Equal("Compressor temp-Lo", result[0].Description)
	is.Equal(types.FacilityAlarmStateLo, result[0].State)
	is.Equal("Tank level-Hi", result[1].Description)
	is.Equal(types.AlarmFamilyFacilityTag, result[1].Family)
}

func TestGetCameraAlarms(t *testing.T) {
	is, ctx, r := testSetup(t, defaultFixture())

	result, err := r.GetCameraAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)
	is.Equal(1, len(result))
	is.Equal(50, result[0].ID)
	is.Equal("Gate - Rörelse", result[0].Description)
	is.Equal(3, result[0].Priority)
}

func TestGetCameraAlarmsWithUnknownAlarmType(t *testing.T) {
	f := defaultFixture()
	f.cameraConfigs = append(f.cameraConfigs, types.CameraAlarmConfig{ID: 54, CameraID: 1, AlarmTypeID: 102, Enabled: true})
	f.events = append(f.events, types.AlarmEvent{ID: 5, AlarmID: 54, EventTime: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)})

	is, ctx, r := testSetup(t, f)

	result, err := r.GetCameraAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)
	is.Equal(2, len(result))
	is.Equal("Gate", result[0].Description)
	is.Equal(54, result[0].ID)
	is.Equal("Gate - Rörelse", result[1].Description)
}

func TestActiveAlarmIDsUsesLatestEvent(t *testing.T) {
	is := is.New(t)

	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	acked := t0.Add(time.Hour)

	active := ActiveAlarmIDs([]types.AlarmEvent{
		{ID: 1, AlarmID: 7, EventTime: t0},
		{ID: 2, AlarmID: 7, EventTime: t0.Add(time.Minute), AcknowledgedAt: &acked},
		{ID: 3, AlarmID: 8, EventTime: t0, AcknowledgedAt: &acked},
		{ID: 4, AlarmID: 8, EventTime: t0.Add(time.Minute)},
	})

	is.Equal(1, len(active))
	_, ok := active[8]
	is.True(ok)
}

func TestGetFacilityHeaderAndDetails(t *testing.T) {
	is, ctx, r := testSetup(t, defaultFixture())

	summary, err := r.GetFacilityHeaderAndDetails(ctx, wellGUID)
	is.NoErr(err)

	is.Equal("N1", summary.NodeID)
	is.Equal(4, summary.TagCount)
	is.Equal(3, summary.AlarmCount) // two facility tags and one host alarm
	is.Equal(3, len(summary.Groups))

	is.Equal("Compressors", summary.Groups[0].Name)
	is.Equal(1, summary.Groups[0].AlarmCount)

	tanks := summary.Groups[1]
	is.Equal("Tanks", tanks.Name)
	is.Equal(2, tanks.TagCount)
	is.Equal(1, tanks.AlarmCount)
	is.Equal("Tank level", tanks.Tags[0].Description)
	is.Equal("Tank temperature", tanks.Tags[1].Description)

	is.True(summary.Groups[2].GroupID == nil)
	is.Equal("", summary.Groups[2].Name)
	is.Equal(0, summary.Groups[2].AlarmCount)
}

func TestFacilityHeaderTotalCountsEveryActiveState(t *testing.T) {
	f := defaultFixture()
	f.configs = append(f.configs, types.AlarmConfigurationEntry{
		ID: 36, Family: types.AlarmFamilyFacilityTag, NodeID: "N1", Address: intp(206), Description: "Pump", Enabled: true,
		FacilityTag: &types.FacilityTagPayload{AlarmState: 3},
	})

	is, ctx, r := testSetup(t, f)

	tags, err := r.GetFacilityTagAlarms(ctx, wellGUID, "cust")
	is.NoErr(err)
	is.Equal(3, len(tags))

	summary, err := r.GetFacilityHeaderAndDetails(ctx, wellGUID)
	is.NoErr(err)
	is.Equal(5, summary.TagCount)
	is.Equal(4, summary.AlarmCount) // three facility tags and one host alarm

	ungrouped := summary.Groups[2]
	is.True(ungrouped.GroupID == nil)
	is.Equal(2, ungrouped.TagCount)
	is.Equal(0, ungrouped.AlarmCount)
}

func TestLoadConfiguration(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(strings.NewReader("collaboratorTimeout: 2s\n"))
	is.NoErr(err)
	is.Equal(2*time.Second, cfg.CollaboratorTimeout)

	cfg, err = LoadConfiguration(strings.NewReader(""))
	is.NoErr(err)
	is.Equal(DefaultCollaboratorTimeout, cfg.CollaboratorTimeout)
}

func testSetup(t *testing.T, f *fixture) (*is.I, context.Context, AlarmResolver) {
	is := is.New(t)
	return is, context.Background(), New(f.collaborators(), nil)
}

func familyOperations(r AlarmResolver) []func(context.Context, string, string) ([]types.AlarmData, error) {
	return []func(context.Context, string, string) ([]types.AlarmData, error){
		r.GetRtuAlarms, r.GetHostAlarms, r.GetFacilityTagAlarms, r.GetCameraAlarms,
	}
}

type fixture struct {
	asset         *types.AssetRecord
	configs       []types.AlarmConfigurationEntry
	params        []types.ParameterMetadata
	lookups       []types.LookupEntry
	telemetry     []types.TelemetryRow
	prefs         []types.NotificationPreference
	events        []types.AlarmEvent
	cameras       []types.Camera
	cameraConfigs []types.CameraAlarmConfig
}

func (f *fixture) collaborators() Collaborators {
	return Collaborators{
		Assets: &AssetLookupMock{
			AssetByGUIDFunc: func(ctx context.Context, assetGUID string) (*types.AssetRecord, error) {
				if f.asset == nil || !strings.EqualFold(f.asset.AssetGUID, assetGUID) {
					return nil, nil
				}
				a := *f.asset
				return &a, nil
			},
		},
		AlarmConfig: &AlarmConfigLookupMock{
			AlarmConfigByFamilyFunc: func(ctx context.Context, family types.AlarmFamily, scope types.ConfigScope) ([]types.AlarmConfigurationEntry, error) {
				return lo.Filter(f.configs, func(e types.AlarmConfigurationEntry, _ int) bool { return e.Family == family }), nil
			},
		},
		Parameters: &ParameterLookupMock{
			ParametersByAddressesFunc: func(ctx context.Context, addresses []int, pocType int) ([]types.ParameterMetadata, error) {
				return f.params, nil
			},
		},
		References: &ReferenceLookupMock{
			LookupsByFamilyFunc: func(ctx context.Context, family types.LookupFamily, keys []string) ([]types.LookupEntry, error) {
				return lo.Filter(f.lookups, func(e types.LookupEntry, _ int) bool {
					return e.Family() == family && lo.Contains(keys, e.Key())
				}), nil
			},
		},
		Telemetry: &TelemetrySourceMock{
			LatestTelemetryFunc: func(ctx context.Context, assetGUID, customerID string, pocType int, channelIDs []string) ([]types.TelemetryRow, error) {
				return f.telemetry, nil
			},
		},
		Notifications: &NotificationPreferenceLookupMock{
			PreferencesByAlarmIDsFunc: func(ctx context.Context, alarmIDs []int) ([]types.NotificationPreference, error) {
				return f.prefs, nil
			},
		},
		Events: &EventHistoryLookupMock{
			LatestUnacknowledgedByAlarmIDFunc: func(ctx context.Context, alarmIDs []int) ([]types.AlarmEvent, error) {
				return f.events, nil
			},
		},
		Cameras: &CameraLookupMock{
			CamerasByNodeFunc: func(ctx context.Context, nodeID string) ([]types.Camera, error) {
				return f.cameras, nil
			},
			CameraAlarmsByCameraIDsFunc: func(ctx context.Context, cameraIDs []int) ([]types.CameraAlarmConfig, error) {
				return f.cameraConfigs, nil
			},
		},
	}
}

func defaultFixture() *fixture {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	acked := t0.Add(time.Hour)
	hihi := 150.0

	return &fixture{
		asset: &types.AssetRecord{ID: 1, AssetGUID: wellGUID, NodeID: "N1", POCType: 5, Enabled: true},
		configs: []types.AlarmConfigurationEntry{
			// rtu, the second entry at address 10 produces an identical row
			{ID: 1, Family: types.AlarmFamilyRTU, POCType: 5, Address: intp(10), Bit: intp(0), Description: "Valve position", Enabled: true, RTU: &types.RTUPayload{NormalState: true}},
			{ID: 2, Family: types.AlarmFamilyRTU, POCType: 99, Address: intp(10), Bit: intp(0), Description: "Valve position", Enabled: true, RTU: &types.RTUPayload{NormalState: true}},
			{ID: 3, Family: types.AlarmFamilyRTU, POCType: 5, Address: intp(11), Description: "Tubing pressure", Enabled: true},
			{ID: 4, Family: types.AlarmFamilyRTU, POCType: 5, Address: intp(12), Description: "Disabled", Enabled: false},
			{ID: 5, Family: types.AlarmFamilyRTU, POCType: 7, Address: intp(11), Description: "Other well type", Enabled: true},

			// host
			{ID: 20, Family: types.AlarmFamilyHost, POCType: 5, Address: intp(100), Description: "Host 100", Enabled: true,
				Host: &types.HostPayload{AlarmType: "HiHi", AlarmState: 1, Limits: types.Limits{HiHiLimit: &hihi}}},
			{ID: 21, Family: types.AlarmFamilyHost, POCType: 5, Description: "Diagnostic", Enabled: true,
				Host: &types.HostPayload{XDiagOutputID: intp(7)}},

			// facility tags
			{ID: 30, Family: types.AlarmFamilyFacilityTag, NodeID: "N1", Address: intp(200), Description: "Tank level", Enabled: true,
				FacilityTag: &types.FacilityTagPayload{TagGroupID: intp(1), AlarmState: 1}},
			{ID: 31, Family: types.AlarmFamilyFacilityTag, NodeID: "n1", Address: intp(201), Description: "Tank temperature", Enabled: true,
				FacilityTag: &types.FacilityTagPayload{TagGroupID: intp(1)}},
			{ID: 32, Family: types.AlarmFamilyFacilityTag, NodeID: "N2", Address: intp(202), Description: "Compressor temp", Enabled: true,
				FacilityTag: &types.FacilityTagPayload{GroupNodeID: "N1", TagGroupID: intp(2), AlarmState: 2}},
			{ID: 33, Family: types.AlarmFamilyFacilityTag, NodeID: "N1", Address: intp(203), Description: "Flare", Enabled: true,
				FacilityTag: &types.FacilityTagPayload{}},
			{ID: 34, Family: types.AlarmFamilyFacilityTag, NodeID: "N1", Address: intp(204), Description: "Disabled tag", Enabled: false,
				FacilityTag: &types.FacilityTagPayload{AlarmState: 1}},
			{ID: 35, Family: types.AlarmFamilyFacilityTag, NodeID: "N3", Address: intp(205), Description: "Other node", Enabled: true,
				FacilityTag: &types.FacilityTagPayload{AlarmState: 1}},
		},
		params: []types.ParameterMetadata{
			{Address: 10, ChannelID: "C10", POCType: 5, Description: "Valve", StateID: intp(3), Bit: "1"},
			{Address: 10, ChannelID: "C10", POCType: 99, Description: "Valve (generic)", Bit: "0"},
			{Address: 11, ChannelID: "C11", POCType: 99, Description: "Tubing"},
			{Address: 100, ChannelID: "C100", POCType: 5, Description: "Casing pressure"},
		},
		lookups: []types.LookupEntry{
			types.StateEntry{StateID: 3, Value: 0, Text: "Closed"},
			types.StateEntry{StateID: 3, Value: 1, Text: "Open", PhraseID: intp(70)},
			types.LocalePhrase{PhraseID: 70, Text: "Öppen"},
			types.LocalePhrase{PhraseID: 71, Text: "Rörelse"},
			types.XDiagOutput{ID: 7, Description: "Ventilation fault"},
			types.CameraType{ID: 1, Name: "PTZ"},
			types.CameraAlarmType{ID: 100, Name: "Motion", PhraseID: intp(71)},
			types.CameraAlarmType{ID: 101, Name: "Tamper"},
			types.FacilityTagGroupEntry{ID: 1, Name: "Tanks"},
			types.FacilityTagGroupEntry{ID: 2, Name: "Compressors"},
		},
		telemetry: []types.TelemetryRow{
			{Timestamp: t0, ChannelID: "C10", Value: strp("0")},
			{Timestamp: t0.Add(time.Minute), ChannelID: "C10", Value: strp("1")},
			{Timestamp: t0, Columns: map[string]string{"C11": "42.5"}},
		},
		prefs: []types.NotificationPreference{
			{AlarmID: 20, PushEnabled: true},
		},
		events: []types.AlarmEvent{
			{ID: 1, AlarmID: 50, EventTime: t0},
			{ID: 2, AlarmID: 51, EventTime: t0},
			{ID: 3, AlarmID: 51, EventTime: t0.Add(time.Minute), AcknowledgedAt: &acked},
			{ID: 4, AlarmID: 53, EventTime: t0},
		},
		cameras: []types.Camera{
			{ID: 1, NodeID: "N1", Name: "Gate", CameraTypeID: 1},
			{ID: 2, NodeID: "N1", Name: "Unknown type", CameraTypeID: 9},
		},
		cameraConfigs: []types.CameraAlarmConfig{
			{ID: 50, CameraID: 1, AlarmTypeID: 100, Priority: intp(3), Enabled: true},
			{ID: 51, CameraID: 1, AlarmTypeID: 101, Enabled: true},
			{ID: 52, CameraID: 1, AlarmTypeID: 101, Enabled: false},
			{ID: 53, CameraID: 2, AlarmTypeID: 100, Enabled: true},
		},
	}
}

func intp(i int) *int {
	return &i
}

func strp(s string) *string {
	return &s
}
