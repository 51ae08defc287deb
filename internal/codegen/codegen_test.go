package codegen

import (
	"errors"
	"strings"
	"testing"

	"github.com/comalice/dfax"
)

func buildBranch(t *testing.T) *dfax.Automaton {
	t.Helper()
	b := dfax.NewBuilder()
	q0 := b.AddState(false)
	q1 := b.AddState(true)
	q2 := b.AddState(true)
	b.Edge(q0, '0', q1)
	b.Edge(q0, '1', q2)
	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return a
}

// Two edges from q0 share the 'a' guard; the edge to accepting q1 is
// declared first.
func buildDup(t *testing.T) *dfax.Automaton {
	t.Helper()
	b := dfax.NewBuilder()
	q0 := b.AddState(false)
	q1 := b.AddState(true)
	q2 := b.AddState(false)
	b.Edge(q0, 'a', q1)
	b.Edge(q0, 'a', q2)
	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return a
}

func buildRepeating01(t *testing.T) *dfax.Automaton {
	t.Helper()
	b := dfax.NewBuilder()
	q0 := b.AddState(true)
	q1 := b.AddState(false)
	b.Edge(q0, '0', q1)
	b.Edge(q1, '1', q0)
	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return a
}

// A shadowed duplicate guard, a self loop and a return edge in one
// machine.
func buildLoops(t *testing.T) *dfax.Automaton {
	t.Helper()
	b := dfax.NewBuilder()
	q0 := b.AddState(false)
	q1 := b.AddState(true)
	q2 := b.AddState(false)
	b.Edge(q0, 'a', q1)
	b.Edge(q0, 'a', q2)
	b.Edge(q1, 'a', q1)
	b.Edge(q1, 'b', q0)
	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return a
}

// The repeating01 machine started mid-cycle at q1.
func buildShiftedStart(t *testing.T) *dfax.Automaton {
	t.Helper()
	b := dfax.NewBuilder()
	q0 := b.AddState(true)
	q1 := b.AddState(false)
	b.Edge(q0, '0', q1)
	b.Edge(q1, '1', q0)
	b.Start(q1)
	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return a
}

func TestGenerate(t *testing.T) {
	a := buildBranch(t)
	src, err := Generate(a, Options{
		Package: "demo",
		Name:    "Branch",
		Inputs:  []string{"0", "", "01"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	got := string(src)
	wantFragments := []string{
		"Code generated by dfagen. DO NOT EDIT.",
		"package demo",
		"var branchTransitions = [3][256]int16{",
		"var branchAccepting = [3]bool{",
		"const branchStart = 0",
		"func MatchBranch(input string) bool {",
		"MatchBranch0 = true",
		"MatchBranch1 = false",
		"MatchBranch2 = false",
		`input "01"`,
	}
	for _, want := range wantFragments {
		if !strings.Contains(got, want) {
			t.Errorf("Generate() output missing %q", want)
		}
	}
}

func TestGenerate_SourceHeader(t *testing.T) {
	a := buildBranch(t)
	src, err := Generate(a, Options{Package: "demo", Name: "Branch", Source: "branch (ab12cd34)"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(string(src), "// Source: branch (ab12cd34)") {
		t.Error("Generate() output missing source header")
	}
}

func TestGenerate_NoInputs(t *testing.T) {
	a := buildBranch(t)
	src, err := Generate(a, Options{Package: "demo", Name: "Branch"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if strings.Contains(string(src), "MatchBranch0") {
		t.Error("Generate() emitted verdict constants without inputs")
	}
	if !strings.Contains(string(src), "func MatchBranch(input string) bool {") {
		t.Error("Generate() missing matcher function")
	}
}

// The generated verdicts come from the canonical matcher, so duplicate
// guards resolve to the first declared edge.
func TestGenerate_FirstEdgeWins(t *testing.T) {
	a := buildDup(t)
	src, err := Generate(a, Options{Package: "demo", Name: "Dup", Inputs: []string{"a"}})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(string(src), "MatchDup0 = true") {
		t.Error("Generate() verdict for duplicate guard did not follow the first edge")
	}
}

func TestNewTable_FirstEdgeWins(t *testing.T) {
	tab, err := newTable(buildDup(t))
	if err != nil {
		t.Fatalf("newTable() error = %v", err)
	}
	if got := tab.rows[0]['a']; got != 1 {
		t.Errorf("rows[0]['a'] = %d, want 1, the first declared target", got)
	}
	if got := tab.rows[0]['b']; got != -1 {
		t.Errorf("rows[0]['b'] = %d, want -1", got)
	}
	if tab.accept[0] || !tab.accept[1] || tab.accept[2] {
		t.Errorf("accept = %v, want only q1 accepting", tab.accept)
	}
	if tab.start != 0 {
		t.Errorf("start = %d, want 0", tab.start)
	}
}

// runTable walks tab the way the generated matchers do: one dense-row
// lookup per byte, a negative entry meaning reject.
func runTable(tab *table, input string) bool {
	state := tab.start
	for i := 0; i < len(input); i++ {
		next := tab.rows[state][input[i]]
		if next < 0 {
			return false
		}
		state = next
	}
	return tab.accept[state]
}

// allInputs enumerates every string over alphabet up to maxLen bytes.
func allInputs(alphabet []byte, maxLen int) []string {
	inputs := []string{""}
	prev := []string{""}
	for l := 0; l < maxLen; l++ {
		next := make([]string, 0, len(prev)*len(alphabet))
		for _, p := range prev {
			for _, c := range alphabet {
				next = append(next, p+string([]byte{c}))
			}
		}
		inputs = append(inputs, next...)
		prev = next
	}
	return inputs
}

// The dense rows must agree with the call-time resolver on every
// input, shadowed guards and loops included.
func TestNewTable_MatchesAutomaton(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) *dfax.Automaton
	}{
		{"branch", buildBranch},
		{"repeating01", buildRepeating01},
		{"loops", buildLoops},
		{"shifted start", buildShiftedStart},
	}
	inputs := allInputs([]byte{'0', '1', 'a', 'b', 0x00}, 3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.build(t)
			tab, err := newTable(a)
			if err != nil {
				t.Fatalf("newTable() error = %v", err)
			}
			for _, input := range inputs {
				if got, want := runTable(tab, input), a.Match(input); got != want {
					t.Errorf("table verdict for %q = %v, Match = %v", input, got, want)
				}
			}
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	a := buildBranch(t)
	tests := []struct {
		name string
		opts Options
	}{
		{"empty package", Options{Package: "", Name: "X"}},
		{"empty name", Options{Package: "demo", Name: ""}},
		{"name starts with digit", Options{Package: "demo", Name: "9bad"}},
		{"name with space", Options{Package: "demo", Name: "no good"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(a, tt.opts); err == nil {
				t.Error("Generate() error = nil, want error")
			}
		})
	}
}

func TestGenerate_TooManyStates(t *testing.T) {
	b := dfax.NewBuilder()
	for i := 0; i <= MaxStates; i++ {
		b.AddState(false)
	}
	a, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	_, err = Generate(a, Options{Package: "demo", Name: "Big"})
	if !errors.Is(err, ErrTooManyStates) {
		t.Errorf("Generate() error = %v, want ErrTooManyStates", err)
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"binary", "Binary"},
		{"repeating01", "Repeating01"},
		{"binary-tape", "Binarytape"},
		{"9lives", "Lives"},
		{"_x", "X"},
		{"(*)", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Identifier(tt.in); got != tt.want {
			t.Errorf("Identifier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
