// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/dfax"
)

// GenChainConfig creates a linear definition of n+1 states where state
// si moves to si+1 on 'a' and only the last state accepts.
func GenChainConfig(n int) *dfax.Config {
	if n < 1 {
		n = 1
	}
	cfg := &dfax.Config{
		ID:     fmt.Sprintf("chain_%d", n),
		States: make([]dfax.StateConfig, 0, n+1),
	}
	for i := 0; i < n; i++ {
		cfg.States = append(cfg.States, dfax.StateConfig{
			ID:    fmt.Sprintf("s%d", i),
			Edges: []dfax.EdgeConfig{{On: "a", To: fmt.Sprintf("s%d", i+1)}},
		})
	}
	cfg.States = append(cfg.States, dfax.StateConfig{
		ID:        fmt.Sprintf("s%d", n),
		Accepting: true,
	})
	return cfg
}

// GenRingConfig creates a ring of n states cycling on 'a' with state s0
// accepting, so inputs of a length divisible by n match.
func GenRingConfig(n int) *dfax.Config {
	if n < 1 {
		n = 1
	}
	cfg := &dfax.Config{
		ID:     fmt.Sprintf("ring_%d", n),
		States: make([]dfax.StateConfig, 0, n),
	}
	for i := 0; i < n; i++ {
		cfg.States = append(cfg.States, dfax.StateConfig{
			ID:        fmt.Sprintf("s%d", i),
			Accepting: i == 0,
			Edges:     []dfax.EdgeConfig{{On: "a", To: fmt.Sprintf("s%d", (i+1)%n)}},
		})
	}
	return cfg
}

// GenFanConfig creates a hub state with n outgoing edges on distinct
// guards, all targeting one accepting state. Guards repeat past 256.
func GenFanConfig(n int) *dfax.Config {
	if n < 1 {
		n = 1
	}
	edges := make([]dfax.EdgeConfig, n)
	for i := 0; i < n; i++ {
		edges[i] = dfax.EdgeConfig{On: string([]byte{byte(i)}), To: "sink"}
	}
	return &dfax.Config{
		ID: fmt.Sprintf("fan_%d", n),
		States: []dfax.StateConfig{
			{ID: "hub", Edges: edges},
			{ID: "sink", Accepting: true},
		},
	}
}

// GenConfigYAML marshals a chain definition of the given size, for
// parse benchmarks.
func GenConfigYAML(n int) []byte {
	data, err := yaml.Marshal(GenChainConfig(n))
	if err != nil {
		panic(err)
	}
	return data
}

// MustCompile compiles a definition or panics. Benchmark setup only.
func MustCompile(cfg *dfax.Config) *dfax.Automaton {
	a, err := cfg.Compile()
	if err != nil {
		panic(err)
	}
	return a
}
