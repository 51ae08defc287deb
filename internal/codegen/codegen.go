// Package codegen emits standalone Go source for automata whose shape,
// and optionally whose inputs, are fixed before the using program is
// built. The generated matcher runs the same first-edge-wins walk the
// dfax package runs at call time; only the evaluation moment moves.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"unicode"

	"github.com/dave/jennifer/jen"

	"github.com/comalice/dfax"
)

// MaxStates bounds the automata the generator accepts. The emitted
// transition table stores states as int16, with -1 reserved for "no
// edge".
const MaxStates = math.MaxInt16

// ErrTooManyStates is returned when an automaton exceeds MaxStates.
var ErrTooManyStates = errors.New("too many states for generated table")

// Options controls the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Name is the identifier stem: an automaton named Binary yields
	// MatchBinary plus binaryTransitions, binaryAccepting, binaryStart.
	Name string
	// Inputs are evaluated at generation time; input i becomes the
	// constant Match<Name><i>.
	Inputs []string
	// Source, when set, is emitted as an extra header line recording
	// where the automaton came from.
	Source string
}

// Generate renders Go source implementing a. The file carries a dense
// transition table, an accepting-state table, a Match<Name> function,
// and one constant per fixed input holding the verdict computed while
// generating.
func Generate(a *dfax.Automaton, opts Options) ([]byte, error) {
	if opts.Package == "" {
		return nil, errors.New("codegen: package name is required")
	}
	if !validIdent(opts.Name) {
		return nil, fmt.Errorf("codegen: %q is not a valid identifier stem", opts.Name)
	}
	tab, err := newTable(a)
	if err != nil {
		return nil, err
	}
	n := len(tab.rows)

	stem := lowerFirst(opts.Name)
	transitions := stem + "Transitions"
	accepting := stem + "Accepting"
	start := stem + "Start"

	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by dfagen. DO NOT EDIT.")
	if opts.Source != "" {
		f.HeaderComment("Source: " + opts.Source)
	}

	// Transition table as [n][256]int16, rendered straight from the
	// dense rows.
	rows := make([]jen.Code, n)
	for id := 0; id < n; id++ {
		entries := make([]jen.Code, 256)
		for c, next := range tab.rows[id] {
			entries[c] = jen.Lit(int(next))
		}
		rows[id] = jen.Index(jen.Lit(256)).Int16().Values(entries...)
	}
	f.Comment(fmt.Sprintf("%s[state][c] is the next state, or -1 when no edge matches c.", transitions))
	f.Var().Id(transitions).Op("=").Index(jen.Lit(n)).Index(jen.Lit(256)).Int16().Values(rows...)

	acceptVals := make([]jen.Code, n)
	for id := 0; id < n; id++ {
		if tab.accept[id] {
			acceptVals[id] = jen.True()
		} else {
			acceptVals[id] = jen.False()
		}
	}
	f.Comment(fmt.Sprintf("%s marks the accepting states.", accepting))
	f.Var().Id(accepting).Op("=").Index(jen.Lit(n)).Bool().Values(acceptVals...)

	f.Const().Id(start).Op("=").Lit(int(tab.start))

	f.Comment(fmt.Sprintf("Match%s reports whether input is accepted by the %s automaton.", opts.Name, stem))
	f.Func().Id("Match"+opts.Name).Params(jen.Id("input").String()).Bool().Block(
		jen.Id("state").Op(":=").Int16().Call(jen.Id(start)),
		jen.For(
			jen.Id("i").Op(":=").Lit(0),
			jen.Id("i").Op("<").Len(jen.Id("input")),
			jen.Id("i").Op("++"),
		).Block(
			jen.Id("next").Op(":=").Id(transitions).Index(jen.Id("state")).Index(jen.Id("input").Index(jen.Id("i"))),
			jen.If(jen.Id("next").Op("<").Lit(0)).Block(
				jen.Return(jen.False()),
			),
			jen.Id("state").Op("=").Id("next"),
		),
		jen.Return(jen.Id(accepting).Index(jen.Id("state"))),
	)

	if len(opts.Inputs) > 0 {
		defs := make([]jen.Code, len(opts.Inputs))
		for i, input := range opts.Inputs {
			verdict := jen.False()
			if a.Match(input) {
				verdict = jen.True()
			}
			defs[i] = jen.Id(fmt.Sprintf("Match%s%d", opts.Name, i)).
				Op("=").
				Add(verdict).
				Comment(fmt.Sprintf("input %q", input))
		}
		f.Comment("Verdicts for inputs fixed at generation time, evaluated while generating.")
		f.Const().Defs(defs...)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("codegen: render: %w", err)
	}
	return buf.Bytes(), nil
}

// table is the dense form a generated file carries: one 256-wide row
// per state, -1 marking the absence of an edge.
type table struct {
	rows   [][256]int16
	accept []bool
	start  int16
}

// newTable flattens a into dense rows. When several edges share a
// guard the first declared edge wins, same as the call-time resolver.
func newTable(a *dfax.Automaton) (*table, error) {
	n := a.NumStates()
	if n > MaxStates {
		return nil, fmt.Errorf("codegen: %d states: %w", n, ErrTooManyStates)
	}
	t := &table{
		rows:   make([][256]int16, n),
		accept: make([]bool, n),
		start:  int16(a.Start()),
	}
	for id := 0; id < n; id++ {
		for c := range t.rows[id] {
			t.rows[id][c] = -1
		}
		st := a.State(dfax.StateID(id))
		t.accept[id] = st.IsAccepting()
		for _, e := range st.Edges() {
			if t.rows[id][e.Guard] != -1 {
				continue
			}
			t.rows[id][e.Guard] = int16(e.Target)
		}
	}
	return t, nil
}

// Identifier derives an identifier stem from a free-form name such as a
// config ID: invalid runes are dropped, the first letter is upper-cased
// and a leading digit loses its place to the first letter. Returns ""
// when nothing usable remains.
func Identifier(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			out = append(out, r)
		case (unicode.IsDigit(r) || r == '_') && len(out) > 0:
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return ""
	}
	out[0] = unicode.ToUpper(out[0])
	return string(out)
}

// validIdent reports whether s can follow "Match" in an exported
// identifier and, lower-cased, start an unexported one.
func validIdent(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return s != ""
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
