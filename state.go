package dfax

// StateID identifies a state within a single Automaton. IDs are dense
// indices assigned in allocation order, starting at 0, and are meaningful
// only for the automaton (or Builder) that issued them.
type StateID int

// Edge is one guarded transition: when the current input byte equals
// Guard, the automaton moves to Target. An edge belongs to exactly one
// state's ordered edge list and is immutable once the automaton is built.
type Edge struct {
	Guard  byte
	Target StateID
}

// state is the arena record behind a StateID. States reference each other
// by index, never by pointer, so cycles and self-loops cost nothing.
type state struct {
	accepting bool
	edges     []Edge
}

// State is a read-only view of one state of a built automaton. Obtain
// views via Automaton.State; they are plain values and may be copied
// freely. The zero State is not valid.
type State struct {
	a  *Automaton
	id StateID
}

// ID returns the state's identity within its automaton.
func (s State) ID() StateID { return s.id }

// IsAccepting reports whether ending input on this state is a successful
// match.
func (s State) IsAccepting() bool { return s.a.states[s.id].accepting }

// Terminal reports whether the state has no outgoing edges. Once a walk
// reaches a terminal state, no remaining input can move it again.
func (s State) Terminal() bool { return len(s.a.states[s.id].edges) == 0 }

// Edges returns the state's outgoing edges in declaration order. The
// slice is shared with the automaton and must not be modified.
func (s State) Edges() []Edge { return s.a.states[s.id].edges }

// MatchesAny reports whether at least one outgoing edge is guarded by c.
func (s State) MatchesAny(c byte) bool {
	for _, e := range s.a.states[s.id].edges {
		if e.Guard == c {
			return true
		}
	}
	return false
}

// Transition returns the target of the first edge, in declaration order,
// whose guard equals c. When no edge matches, it returns the receiver
// unchanged. Callers that need to tell a self-loop from a miss check
// MatchesAny first, or use Automaton.Step, which reports the miss
// explicitly.
func (s State) Transition(c byte) State {
	if next, ok := s.a.Step(s.id, c); ok {
		return State{a: s.a, id: next}
	}
	return s
}
