package dfax

import (
	"errors"
	"fmt"
)

// Construction-time failures. Matching never fails at run time; a
// malformed graph is rejected here, before an Automaton exists.
var (
	// ErrNoStates is returned by Build when no state was allocated.
	ErrNoStates = errors.New("automaton has no states")

	// ErrUnknownState is returned, wrapped with the offending
	// coordinates, when an edge endpoint or the start state was never
	// allocated.
	ErrUnknownState = errors.New("unknown state")
)

// pendingEdge is an edge recorded before validation. Edges stay in
// declaration order; order is significant because the first matching
// edge wins during resolution.
type pendingEdge struct {
	from  StateID
	guard byte
	to    StateID
}

// Builder assembles an Automaton in two phases: allocate state
// identities first, then connect them. Because edges name states by ID
// rather than by reference, an edge may target a state allocated later,
// the originating state itself, or any state on a cycle. Nothing is
// checked until Build.
//
// The zero Builder is ready to use. A Builder is not safe for
// concurrent use; the Automaton it produces is.
type Builder struct {
	accepting []bool
	edges     []pendingEdge
	names     map[string]StateID
	start     StateID
	startSet  bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddState allocates a new state and returns its ID. IDs are assigned
// sequentially in allocation order, so a given construction sequence
// always yields the same IDs.
func (b *Builder) AddState(accepting bool) StateID {
	id := StateID(len(b.accepting))
	b.accepting = append(b.accepting, accepting)
	return id
}

// State returns the ID registered for name, allocating a fresh
// non-accepting state on first use. Naming a state before its edges or
// acceptance are known is the supported way to write forward references
// and cycles; fill in the details later with Accept and Edge.
func (b *Builder) State(name string) StateID {
	if id, ok := b.names[name]; ok {
		return id
	}
	if b.names == nil {
		b.names = make(map[string]StateID)
	}
	id := b.AddState(false)
	b.names[name] = id
	return id
}

// Accept marks the state as accepting. It panics when id was not issued
// by this builder.
func (b *Builder) Accept(id StateID) {
	if id < 0 || int(id) >= len(b.accepting) {
		panic(fmt.Sprintf("dfax: state %d out of range [0,%d)", id, len(b.accepting)))
	}
	b.accepting[id] = true
}

// Edge records a transition from one state to another, guarded by a
// single byte. Edges are kept in declaration order per source state.
// Endpoints are not checked until Build, so either end may be a state
// that does not exist yet.
func (b *Builder) Edge(from StateID, guard byte, to StateID) {
	b.edges = append(b.edges, pendingEdge{from: from, guard: guard, to: to})
}

// Start designates the start state. When Start is never called, the
// first allocated state is the start state.
func (b *Builder) Start(id StateID) {
	b.start = id
	b.startSet = true
}

// Build validates the recorded graph and returns the finished
// Automaton. It rejects an empty graph with ErrNoStates, and any edge
// endpoint or start state that was never allocated with a wrapped
// ErrUnknownState naming the offending coordinates. The returned
// Automaton is an independent snapshot; further builder calls do not
// affect it.
func (b *Builder) Build() (*Automaton, error) {
	n := len(b.accepting)
	if n == 0 {
		return nil, ErrNoStates
	}

	start := StateID(0)
	if b.startSet {
		start = b.start
	}
	if start < 0 || int(start) >= n {
		return nil, fmt.Errorf("start state %d: %w", start, ErrUnknownState)
	}

	states := make([]state, n)
	for i := range states {
		states[i].accepting = b.accepting[i]
	}
	for i, e := range b.edges {
		if e.from < 0 || int(e.from) >= n {
			return nil, fmt.Errorf("edge %d on %q: source state %d: %w", i, e.guard, e.from, ErrUnknownState)
		}
		if e.to < 0 || int(e.to) >= n {
			return nil, fmt.Errorf("edge %d from state %d on %q: target state %d: %w", i, e.from, e.guard, e.to, ErrUnknownState)
		}
		states[e.from].edges = append(states[e.from].edges, Edge{Guard: e.guard, Target: e.to})
	}

	return &Automaton{states: states, start: start}, nil
}
