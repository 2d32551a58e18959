package alarms

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
)

type referenceLoader struct {
	lookups ReferenceLookup
	timeout time.Duration
}

func (l referenceLoader) Load(ctx context.Context, family types.LookupFamily, ids []int) (lookupIndex, error) {
	idx := newLookupIndex()
	if len(ids) == 0 {
		return idx, nil
	}

	entries, err := fetch(ctx, l.timeout, "lookup:"+string(family), func(ctx context.Context) ([]types.LookupEntry, error) {
		return l.lookups.LookupsByFamily(ctx, family, types.Keys(lo.Uniq(ids)))
	})
	if err != nil {
		return idx, err
	}

	idx.add(family, entries...)
	return idx, nil
}

// lookupIndex holds the resolved reference data of one resolution call.
type lookupIndex struct {
	states           map[int][]types.StateEntry
	phrases          map[int]string
	cameraAlarmTypes map[int]types.CameraAlarmType
	cameraTypes      map[int]types.CameraType
	xdiagOutputs     map[int]types.XDiagOutput
	tagGroups        map[int]types.FacilityTagGroupEntry
}

func newLookupIndex() lookupIndex {
	return lookupIndex{
		states:           map[int][]types.StateEntry{},
		phrases:          map[int]string{},
		cameraAlarmTypes: map[int]types.CameraAlarmType{},
		cameraTypes:      map[int]types.CameraType{},
		xdiagOutputs:     map[int]types.XDiagOutput{},
		tagGroups:        map[int]types.FacilityTagGroupEntry{},
	}
}

// add indexes entries of the requested family. Entries of any other family,
// and families no resolver reads, are ignored.
func (idx lookupIndex) add(family types.LookupFamily, entries ...types.LookupEntry) {
	for _, entry := range entries {
		if entry == nil || entry.Family() != family {
			continue
		}

		switch e := entry.(type) {
		case types.StateEntry:
			idx.states[e.StateID] = append(idx.states[e.StateID], e)
		case types.LocalePhrase:
			idx.phrases[e.PhraseID] = e.Text
		case types.CameraAlarmType:
			idx.cameraAlarmTypes[e.ID] = e
		case types.CameraType:
			idx.cameraTypes[e.ID] = e
		case types.XDiagOutput:
			idx.xdiagOutputs[e.ID] = e
		case types.FacilityTagGroupEntry:
			idx.tagGroups[e.ID] = e
		}
	}
}

func (idx lookupIndex) merge(other lookupIndex) lookupIndex {
	for k, v := range other.states {
		idx.states[k] = append(idx.states[k], v...)
	}
	for k, v := range other.phrases {
		idx.phrases[k] = v
	}
	for k, v := range other.cameraAlarmTypes {
		idx.cameraAlarmTypes[k] = v
	}
	for k, v := range other.cameraTypes {
		idx.cameraTypes[k] = v
	}
	for k, v := range other.xdiagOutputs {
		idx.xdiagOutputs[k] = v
	}
	for k, v := range other.tagGroups {
		idx.tagGroups[k] = v
	}
	return idx
}

func (idx lookupIndex) phrase(phraseID *int) (string, bool) {
	if phraseID == nil {
		return "", false
	}
	text, ok := idx.phrases[*phraseID]
	return text, ok && text != ""
}
