package alarms

import (
	"testing"

	"github.com/matryer/is"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
)

func TestStateTextResolver(t *testing.T) {
	is := is.New(t)

	phrase := 11
	missingPhrase := 12
	stateID := 4
	unknownState := 5

	r := NewStateTextResolver(
		[]types.StateEntry{
			{StateID: 4, Value: 1, Text: "Running", PhraseID: &phrase},
			{StateID: 4, Value: 0, Text: "Stopped", PhraseID: &missingPhrase},
			{StateID: 4, Value: 2, Text: "Fault"},
		},
		[]types.LocalePhrase{
			{PhraseID: 11, Text: "I drift"},
		},
	)

	is.Equal("I drift", r.Resolve(&stateID, 1))
	is.Equal("Stopped", r.Resolve(&stateID, 0))
	is.Equal("Fault", r.Resolve(&stateID, 2))
	is.Equal("3", r.Resolve(&stateID, 3))
	is.Equal("12.5", r.Resolve(&unknownState, 12.5))
	is.Equal("7", r.Resolve(nil, 7))
}

func TestLookupIndexIgnoresOtherFamilies(t *testing.T) {
	is := is.New(t)

	idx := newLookupIndex()
	idx.add(types.LookupLocalePhrase,
		types.LocalePhrase{PhraseID: 1, Text: "one"},
		types.XDiagOutput{ID: 1, Description: "diag"},
		types.POCType{ID: 5, Description: "Rod pump"},
		nil,
	)

	is.Equal(1, len(idx.phrases))
	is.Equal(0, len(idx.xdiagOutputs))
}
