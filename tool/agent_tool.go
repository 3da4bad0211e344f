package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agentuniverse-ai/agentuniverse-go/agent"
	"github.com/agentuniverse-ai/agentuniverse-go/core"
	"github.com/agentuniverse-ai/agentuniverse-go/internal/util"
	"github.com/agentuniverse-ai/agentuniverse-go/logging"
)

// InvalidJSONInputResponse is returned by RunJSON verbatim when the input
// string cannot be parsed as a JSON object. Downstream tool frameworks expect
// a textual error response on this path rather than an error value.
const InvalidJSONInputResponse = "Error , Your Action Input is not a valid JSON string"

// AgentTool exposes a complete agent as a Tool so orchestration frameworks
// that speak the tool-calling protocol can invoke it. The adapter is a narrow
// translation boundary: the agent lifecycle itself has no dependency on any
// tool-framework types.
//
// Two invocation surfaces are offered:
//   - Call: structured arguments, for planners doing native function calling
//   - RunJSON: a single JSON-markdown string, for frameworks that pass tool
//     input as free text
type AgentTool struct {
	agent  *agent.Agent
	logger logging.Logger
}

// AgentToolOptions configures an AgentTool.
type AgentToolOptions struct {
	// Logger receives adapter-level events (notably JSON parse failures).
	// Defaults to NoOpLogger.
	Logger logging.Logger
}

// NewAgentTool wraps an agent as a Tool.
func NewAgentTool(a *agent.Agent, optFns ...func(o *AgentToolOptions)) *AgentTool {
	opts := AgentToolOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &AgentTool{agent: a, logger: opts.Logger}
}

// Name returns the wrapped agent's instance name.
func (t *AgentTool) Name() string { return t.agent.Name() }

// Description combines the agent description with a format hint enumerating
// the required JSON input keys, so calling models produce well-formed input.
func (t *AgentTool) Description() string {
	keys := t.agent.Handler().InputKeys()
	formatExample := make(map[string]string, len(keys))
	for _, key := range keys {
		formatExample[key] = "input val"
	}
	formatJSON, _ := json.Marshal(formatExample)

	return fmt.Sprintf(
		"%s\nTo use this tool, your input must be a JSON string containing all keys of %v, for example: ```%s```",
		t.agent.Description(), keys, formatJSON,
	)
}

// Parameters declares every agent input key as a required string field.
func (t *AgentTool) Parameters() map[string]any {
	return util.StringSchema(t.agent.Handler().InputKeys(), nil)
}

// Call runs the wrapped agent with structured arguments and returns the
// output projected down to the agent's declared output keys.
func (t *AgentTool) Call(toolCtx *core.ToolContext, args map[string]any) (any, error) {
	out, err := t.agent.Run(toolCtx.Context(), args)
	if err != nil {
		return nil, err
	}
	return t.projectOutput(out), nil
}

// RunJSON parses a JSON-markdown-fenced string into run fields, executes the
// lifecycle and returns the output map restricted to the declared output
// keys. A malformed input string is the one recovered failure in the whole
// lifecycle: it is logged and answered with InvalidJSONInputResponse instead
// of an error. Every other failure propagates.
func (t *AgentTool) RunJSON(ctx context.Context, input string) (any, error) {
	fields, err := util.ParseJSONMarkdown(input)
	if err != nil {
		t.logger.Error("agent_tool.run_json.parse_failed", "agent", t.agent.Name(), "error", err.Error())
		return InvalidJSONInputResponse, nil
	}

	out, err := t.agent.Run(ctx, fields)
	if err != nil {
		return nil, err
	}
	return t.projectOutput(out), nil
}

// projectOutput restricts the run output to exactly the declared output keys.
func (t *AgentTool) projectOutput(out *core.OutputObject) map[string]any {
	result := make(map[string]any)
	for _, key := range t.agent.Handler().OutputKeys() {
		if v, ok := out.GetData(key); ok {
			result[key] = v
		}
	}
	return result
}
