package semantic

import "github.com/arrlang/arrlang/internal/types"

// checkBroadcast implements spec.md §4.2's rank-polymorphic broadcasting
// rule for a call of fn with the given argument types. For each parameter
// i, δᵢ = argDim(i) - paramDim(i) must be non-negative (an argument can
// never be supplied at a rank lower than its declared parameter rank), and
// every pair of non-zero δs must agree (equal, or one of them zero) so
// there's a single unambiguous extra rank Δ = max(δᵢ) to apply to the
// result. This is the formulation spec.md adopts; it deliberately rejects
// the simpler "just take the max of all argument dimensions" rule, which
// cannot distinguish a genuine broadcast from two incompatible extra ranks.
func (a *Analyzer) checkBroadcast(fn types.Function, argTypes []types.Type) (types.Type, string) {
	if len(argTypes) != len(fn.Params) {
		return types.Type{}, "wrong number of arguments"
	}

	deltas := make([]int, len(argTypes))
	for i, at := range argTypes {
		pt := fn.Params[i]
		if !at.Base.Equals(pt.Base) {
			return types.Type{}, "argument " + ordinal(i) + " has the wrong base type: got " + at.String() + ", want " + pt.String()
		}
		delta := at.Dimension - pt.Dimension
		if delta < 0 {
			return types.Type{}, "argument " + ordinal(i) + " has lower rank than its declared parameter"
		}
		deltas[i] = delta
	}

	maxDelta := 0
	for i := range deltas {
		for j := i + 1; j < len(deltas); j++ {
			di, dj := deltas[i], deltas[j]
			if di != dj && di != 0 && dj != 0 {
				return types.Type{}, "incompatible extra ranks across arguments"
			}
		}
		if deltas[i] > maxDelta {
			maxDelta = deltas[i]
		}
	}

	return types.NewArray(fn.Return.Base, fn.Return.Dimension+maxDelta), ""
}

func ordinal(i int) string {
	switch i {
	case 0:
		return "1st"
	case 1:
		return "2nd"
	case 2:
		return "3rd"
	default:
		return "nth"
	}
}
