package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoAgentYAML = `
info:
  name: demo_rag_agent
  description: Answers questions about the demo domain.
profile:
  instruction: |
    You are a helpful assistant. Today is {{.date}}.
  llm_model:
    name: claude-sonnet-4-0
    temperature: 0.2
    max_tokens: 1024
  prompt_version: demo.v1
plan:
  planner:
    name: rag_planner
    retrieval_top_k: 4
memory:
  name: chat_memory
action:
  tool:
    - search_tool
  knowledge:
    - demo_kb
`

func TestParseAgentConfig(t *testing.T) {
	cfg, err := ParseAgentConfig([]byte(demoAgentYAML))
	require.NoError(t, err)

	assert.Equal(t, "demo_rag_agent", cfg.Info.Name)
	assert.Equal(t, "claude-sonnet-4-0", cfg.Profile.LLMModel.Name)
	assert.Equal(t, 0.2, cfg.Profile.LLMModel.Temperature)
	assert.Equal(t, 1024, cfg.Profile.LLMModel.MaxTokens)
	assert.Equal(t, "rag_planner", cfg.Plan.Planner.Name)
	assert.Equal(t, "chat_memory", cfg.Memory.Name)
	assert.Equal(t, []string{"search_tool"}, cfg.Action.Tool)
	assert.Equal(t, []string{"demo_kb"}, cfg.Action.Knowledge)

	// Unmodeled keys land in the inline maps.
	assert.Equal(t, "demo.v1", cfg.Profile.Extra["prompt_version"])
	assert.Equal(t, 4, cfg.Plan.Planner.Params["retrieval_top_k"])
}

func TestParseAgentConfig_MissingName(t *testing.T) {
	_, err := ParseAgentConfig([]byte("profile:\n  instruction: hi\nplan:\n  planner:\n    name: rag_planner\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "info.name")
}

func TestParseAgentConfig_MissingPlanner(t *testing.T) {
	_, err := ParseAgentConfig([]byte("info:\n  name: demo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan.planner.name")
}

func TestParseAgentConfig_InvalidYAML(t *testing.T) {
	_, err := ParseAgentConfig([]byte("info: [unclosed"))
	assert.Error(t, err)
}

func TestLoadAgentConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoAgentYAML), 0o600))

	cfg, err := LoadAgentConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "demo_rag_agent", cfg.Info.Name)
}

func TestLoadAgentConfig_NotFound(t *testing.T) {
	_, err := LoadAgentConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAgentModel_Conversion(t *testing.T) {
	cfg, err := ParseAgentConfig([]byte(demoAgentYAML))
	require.NoError(t, err)

	m := cfg.AgentModel()
	assert.Equal(t, "demo_rag_agent", m.Info.Name)
	assert.Equal(t, "claude-sonnet-4-0", m.Profile.LLMModel.Name)
	assert.Equal(t, "rag_planner", m.Plan.Planner.Name)
	assert.Equal(t, 4, m.Plan.Planner.Params["retrieval_top_k"])
	assert.Equal(t, "chat_memory", m.Memory.Name)
	assert.Equal(t, []string{"search_tool"}, m.Action.Tools)

	// The model holds copies, not the config's maps and slices.
	m.Plan.Planner.Params["retrieval_top_k"] = 99
	assert.Equal(t, 4, cfg.Plan.Planner.Params["retrieval_top_k"])
	m.Action.Tools[0] = "changed"
	assert.Equal(t, "search_tool", cfg.Action.Tool[0])
}
