package alarms

import (
	"context"
	"sort"
	"strconv"

	"github.com/samber/lo"
	"github.com/wellwatch/well-alarm-mgmt/pkg/types"
)

type StateTextResolver struct {
	lookups lookupIndex
}

func NewStateTextResolver(states []types.StateEntry, phrases []types.LocalePhrase) StateTextResolver {
	idx := newLookupIndex()
	for _, s := range states {
		idx.add(types.LookupStates, s)
	}
	for _, p := range phrases {
		idx.add(types.LookupLocalePhrase, p)
	}
	return StateTextResolver{lookups: idx}
}

// Resolve maps a raw value to the display text of the state table. A missing
// state row yields the raw value, a missing phrase yields the state row text.
func (r StateTextResolver) Resolve(stateID *int, value float64) string {
	raw := strconv.FormatFloat(value, 'f', -1, 64)
	if stateID == nil {
		return raw
	}

	for _, state := range r.lookups.states[*stateID] {
		if state.Value != value {
			continue
		}
		if text, ok := r.lookups.phrase(state.PhraseID); ok {
			return text
		}
		return state.Text
	}

	return raw
}

// loadStateText fetches the state tables and, in a second step, the locale
// phrases that the matched state rows refer to.
func loadStateText(ctx context.Context, refs referenceLoader, stateIDs []int) (StateTextResolver, error) {
	states, err := refs.Load(ctx, types.LookupStates, stateIDs)
	if err != nil {
		return StateTextResolver{}, err
	}

	phraseIDs := []int{}
	for _, rows := range states.states {
		for _, s := range rows {
			if s.PhraseID != nil {
				phraseIDs = append(phraseIDs, *s.PhraseID)
			}
		}
	}

	phraseIDs = lo.Uniq(phraseIDs)
	sort.Ints(phraseIDs)

	phrases, err := refs.Load(ctx, types.LookupLocalePhrase, phraseIDs)
	if err != nil {
		return StateTextResolver{}, err
	}

	return StateTextResolver{lookups: states.merge(phrases)}, nil
}
