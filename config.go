package dfax

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the serializable definition of an automaton. Unlike the
// in-memory representation, states and edges are named by string ID so
// definitions stay readable and order-stable in files. Slices, not
// maps: declaration order is meaningful for edges and fixes the IDs
// Compile assigns to states.
type Config struct {
	ID      string        `json:"id" yaml:"id"`
	Version string        `json:"version,omitempty" yaml:"version,omitempty"`
	Start   string        `json:"start,omitempty" yaml:"start,omitempty"`
	States  []StateConfig `json:"states" yaml:"states"`
}

// StateConfig defines one state of a Config.
type StateConfig struct {
	ID        string       `json:"id" yaml:"id"`
	Accepting bool         `json:"accepting,omitempty" yaml:"accepting,omitempty"`
	Edges     []EdgeConfig `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// EdgeConfig defines one guarded edge. On must be exactly one byte.
type EdgeConfig struct {
	On string `json:"on" yaml:"on"`
	To string `json:"to" yaml:"to"`
}

// Validate validates the configuration:
// - Non-empty automaton ID
// - At least one state, each with a unique non-empty ID
// - Every edge guard is exactly one byte
// - Every edge target and the start state (when set) are declared
//
// Unreachable states are permitted; a state no walk can reach is
// harmless and sometimes useful while a definition is being edited.
func (c *Config) Validate() error {
	if c.ID == "" {
		return errors.New("automaton ID is required")
	}
	if len(c.States) == 0 {
		return errors.New("at least one state is required")
	}

	declared := make(map[string]bool, len(c.States))
	for i, sc := range c.States {
		if sc.ID == "" {
			return fmt.Errorf("state %d: state ID is required", i)
		}
		if declared[sc.ID] {
			return fmt.Errorf("duplicate state %q", sc.ID)
		}
		declared[sc.ID] = true
	}

	for _, sc := range c.States {
		for i, ec := range sc.Edges {
			if len(ec.On) != 1 {
				return fmt.Errorf("state %q, edge %d: guard %q must be exactly one byte", sc.ID, i, ec.On)
			}
			if ec.To == "" {
				return fmt.Errorf("state %q, edge %d: edge target is required", sc.ID, i)
			}
			if !declared[ec.To] {
				return fmt.Errorf("invalid edge target %q (state %q, edge %d)", ec.To, sc.ID, i)
			}
		}
	}

	if c.Start != "" && !declared[c.Start] {
		return fmt.Errorf("start state %q not found in states", c.Start)
	}
	return nil
}

// Fingerprint returns a stable identifier for the definition: the
// Version field when set, otherwise a digest of the definition
// content. Artifacts derived from a definition, such as files emitted
// by dfagen, carry it so they can be traced back to the exact
// definition that produced them.
func (c *Config) Fingerprint() string {
	if c.Version != "" {
		return c.Version
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "invalid"
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}

// Compile validates the configuration and builds the automaton. States
// are allocated in declaration order, so the first declared state is
// the start state unless Start says otherwise, and StateID i belongs to
// the i-th declared state.
func (c *Config) Compile() (*Automaton, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b := NewBuilder()
	for _, sc := range c.States {
		id := b.State(sc.ID)
		if sc.Accepting {
			b.Accept(id)
		}
	}
	for _, sc := range c.States {
		from := b.State(sc.ID)
		for _, ec := range sc.Edges {
			b.Edge(from, ec.On[0], b.State(ec.To))
		}
	}
	if c.Start != "" {
		b.Start(b.State(c.Start))
	}
	return b.Build()
}

// ParseConfig unmarshals and validates a YAML definition. JSON works
// too: yaml.v3 accepts JSON input, and the structs carry both tag sets.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

// LoadConfigFile reads, parses and validates a definition file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return c, nil
}

// WriteFile marshals the configuration to YAML and writes it to path,
// creating parent directories as needed.
func (c *Config) WriteFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
