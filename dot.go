package dfax

import (
	"bytes"
	"fmt"
)

// DOT renders the automaton as Graphviz DOT source. Every state is
// declared, edges or not; accepting states are drawn with a double
// circle, the start state is marked with an incoming arrow from an
// unlabeled point, and edges are labeled with their guard byte. Pipe
// the output through `dot -Tsvg` to render it.
func (a *Automaton) DOT(name string) string {
	if name == "" {
		name = "dfa"
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=11];\n")
	buf.WriteString("  __start [shape=point];\n")
	fmt.Fprintf(&buf, "  __start -> q%d;\n", a.start)
	for id, st := range a.states {
		if st.accepting {
			fmt.Fprintf(&buf, "  q%d [shape=doublecircle];\n", id)
		} else {
			fmt.Fprintf(&buf, "  q%d;\n", id)
		}
	}
	for id, st := range a.states {
		for _, e := range st.edges {
			fmt.Fprintf(&buf, "  q%d -> q%d [label=%q];\n", id, e.Target, guardLabel(e.Guard))
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// guardLabel renders a guard byte for display: printable ASCII as
// itself, everything else as a hex escape.
func guardLabel(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return string(c)
	}
	return fmt.Sprintf(`\x%02x`, c)
}
