package dfax

// Match reports whether the automaton accepts input when the walk begins
// at the start state.
//
// Matching is pure: it allocates nothing, mutates nothing, and performs
// at most one Step per input byte. A byte with no matching edge ends the
// walk with a false verdict; it is not an error.
func (a *Automaton) Match(input string) bool {
	return a.MatchFrom(a.start, input)
}

// MatchFrom reports whether the automaton accepts input when the walk
// begins at from. An out-of-range from yields false. The empty input is
// accepted exactly when the starting state is accepting.
func (a *Automaton) MatchFrom(from StateID, input string) bool {
	if from < 0 || int(from) >= len(a.states) {
		return false
	}
	cur := from
	for i := 0; i < len(input); i++ {
		next, ok := a.Step(cur, input[i])
		if !ok {
			return false
		}
		cur = next
	}
	return a.states[cur].accepting
}

// Verdict is a match result computed ahead of use, for inputs that are
// fully known before the point of use. Precomputing runs the same walk
// Match runs; only when it runs changes, never what it computes.
type Verdict struct {
	Input  string
	Accept bool
}

// Match returns the precomputed result. The walk over Input already
// happened when the Verdict was built; this is a plain field read.
func (v Verdict) Match() bool { return v.Accept }

// Precompute evaluates Match(input) now and captures the result, so it
// can be consulted any number of times later without re-walking the
// input.
func (a *Automaton) Precompute(input string) Verdict {
	return Verdict{Input: input, Accept: a.Match(input)}
}

// PrecomputeFrom is Precompute with the walk beginning at from.
func (a *Automaton) PrecomputeFrom(from StateID, input string) Verdict {
	return Verdict{Input: input, Accept: a.MatchFrom(from, input)}
}
