package dfax

import "fmt"

// Automaton is an immutable deterministic finite automaton: a set of
// states connected by single-byte-guarded edges, with one designated
// start state. Automata are produced by a Builder or compiled from a
// Config, and are safe for concurrent use by any number of goroutines
// once built.
type Automaton struct {
	states []state
	start  StateID
}

// Start returns the ID of the designated start state.
func (a *Automaton) Start() StateID { return a.start }

// NumStates returns the number of states in the automaton. Valid state
// IDs are exactly [0, NumStates()).
func (a *Automaton) NumStates() int { return len(a.states) }

// State returns a read-only view of the state with the given ID. It
// panics when id is out of range, mirroring slice indexing; IDs obtained
// from the automaton's own Builder are always in range.
func (a *Automaton) State(id StateID) State {
	if id < 0 || int(id) >= len(a.states) {
		panic(fmt.Sprintf("dfax: state %d out of range [0,%d)", id, len(a.states)))
	}
	return State{a: a, id: id}
}

// Step resolves a single transition: it scans the edges of from in
// declaration order and returns the target of the first edge whose guard
// equals c. The boolean is false when no edge is guarded by c, or when
// from is out of range. A miss is a definitive "no transition here", not
// an error.
//
// Step is the only transition resolver in the package; every matching
// path, precomputed or not, runs through it.
func (a *Automaton) Step(from StateID, c byte) (StateID, bool) {
	if from < 0 || int(from) >= len(a.states) {
		return from, false
	}
	for _, e := range a.states[from].edges {
		if e.Guard == c {
			return e.Target, true
		}
	}
	return from, false
}
