// Package dfax implements a deterministic finite automaton engine for
// byte strings.
//
// An automaton is a fixed graph of states connected by single-byte
// guarded edges. Matching walks the graph one input byte at a time; at
// each state the first edge, in declaration order, whose guard equals
// the current byte decides the move. A byte with no matching edge
// rejects the input, and an input that ends on an accepting state is
// accepted.
//
// The same automaton answers in two ways. Match evaluates at call time.
// Precompute evaluates immediately and captures the result in a
// Verdict, for inputs already known when the program is wired up; the
// companion dfagen tool goes one step further and emits Go source with
// the verdicts baked in as constants. All three run the identical walk,
// so a given automaton and input always produce the same answer no
// matter when it is computed.
//
// # Example Usage
//
//	b := dfax.NewBuilder()
//	even := b.AddState(true) // even number of a's seen
//	odd := b.AddState(false)
//	b.Edge(even, 'a', odd)
//	b.Edge(odd, 'a', even)
//	a, err := b.Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	a.Match("aa") // true
//	a.Match("a")  // false
//
// Automata can also be compiled from YAML definitions via Config, and
// rendered to Graphviz with DOT.
//
// # Concurrency
//
// A built Automaton is immutable and safe for concurrent use. Builders
// are not; confine each Builder to one goroutine.
package dfax
