package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/agentuniverse-ai/agentuniverse-go/core"
)

// AgentConfig is the on-disk descriptor an agent is initialized from. Section
// names follow the YAML layout documented in the package comment.
type AgentConfig struct {
	Info    InfoConfig    `yaml:"info"`
	Profile ProfileConfig `yaml:"profile"`
	Plan    PlanConfig    `yaml:"plan"`
	Memory  MemoryConfig  `yaml:"memory"`
	Action  ActionConfig  `yaml:"action"`
}

// InfoConfig identifies the agent.
type InfoConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ProfileConfig carries prompt and model settings. Unmodeled keys land in
// Extra so planner specific settings survive a round trip.
type ProfileConfig struct {
	Instruction string         `yaml:"instruction"`
	LLMModel    LLMModelConfig `yaml:"llm_model"`
	Extra       map[string]any `yaml:",inline"`
}

// LLMModelConfig selects and tunes the backing language model.
type LLMModelConfig struct {
	Name        string  `yaml:"name"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// PlanConfig selects the planner.
type PlanConfig struct {
	Planner PlannerConfig `yaml:"planner"`
}

// PlannerConfig names a registered planner; additional keys become planner
// parameters.
type PlannerConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:",inline"`
}

// MemoryConfig binds the agent to a named conversation memory.
type MemoryConfig struct {
	Name string `yaml:"name"`
}

// ActionConfig lists tool and knowledge bindings.
type ActionConfig struct {
	Tool      []string `yaml:"tool"`
	Knowledge []string `yaml:"knowledge"`
}

// LoadAgentConfig reads and parses an agent descriptor from a YAML file.
func LoadAgentConfig(path string) (*AgentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read agent config %s: %w", path, err)
	}
	cfg, err := ParseAgentConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse agent config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseAgentConfig decodes and validates an agent descriptor from YAML bytes.
func ParseAgentConfig(data []byte) (*AgentConfig, error) {
	var cfg AgentConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal agent config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the descriptor carries the fields the lifecycle depends on.
func (c *AgentConfig) Validate() error {
	if c.Info.Name == "" {
		return fmt.Errorf("agent config: info.name is required")
	}
	if c.Plan.Planner.Name == "" {
		return fmt.Errorf("agent config: plan.planner.name is required")
	}
	return nil
}

// AgentModel converts the descriptor into the immutable model an agent holds.
func (c *AgentConfig) AgentModel() *core.AgentModel {
	return &core.AgentModel{
		Info: core.Info{
			Name:        c.Info.Name,
			Description: c.Info.Description,
		},
		Profile: core.Profile{
			Instruction: c.Profile.Instruction,
			LLMModel: core.LLMModel{
				Name:        c.Profile.LLMModel.Name,
				Temperature: c.Profile.LLMModel.Temperature,
				MaxTokens:   c.Profile.LLMModel.MaxTokens,
			},
			Extra: copyMap(c.Profile.Extra),
		},
		Plan: core.Plan{
			Planner: core.PlannerRef{
				Name:   c.Plan.Planner.Name,
				Params: copyMap(c.Plan.Planner.Params),
			},
		},
		Memory: core.Memory{Name: c.Memory.Name},
		Action: core.Action{
			Tools:     append([]string(nil), c.Action.Tool...),
			Knowledge: append([]string(nil), c.Action.Knowledge...),
		},
	}
}

func copyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
