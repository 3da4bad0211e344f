package core

import (
	"context"

	"github.com/agentuniverse-ai/agentuniverse-go/logging"
)

// ToolContext provides a constrained, auditable surface for tool / function
// implementations invoked during a run. It carries the run's context, the
// invoking agent's identity and a scratch state map shared between the tool
// calls of a single run.
type ToolContext struct {
	ctx            context.Context
	runID          string
	functionCallID string
	agentInfo      AgentInfo
	state          map[string]any
	logger         logging.Logger
}

// NewToolContext constructs a tool context bound to a run and unique
// functionCallID. A nil logger is substituted with a NoOpLogger.
func NewToolContext(ctx context.Context, runID, functionCallID string, agentInfo AgentInfo, logger logging.Logger) *ToolContext {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &ToolContext{
		ctx:            ctx,
		runID:          runID,
		functionCallID: functionCallID,
		agentInfo:      agentInfo,
		state:          map[string]any{},
		logger:         logger,
	}
}

// ForCall derives a tool context for an individual function call within the
// same run: it carries the call's own context and functionCallID while
// sharing the run's scratch state map, so values set by one call remain
// visible to the next.
func (tc *ToolContext) ForCall(ctx context.Context, functionCallID string) *ToolContext {
	return &ToolContext{
		ctx:            ctx,
		runID:          tc.runID,
		functionCallID: functionCallID,
		agentInfo:      tc.agentInfo,
		state:          tc.state,
		logger:         tc.logger,
	}
}

// Context returns the context associated with the tool invocation.
func (tc *ToolContext) Context() context.Context { return tc.ctx }

// RunID returns the run ID associated with the tool invocation.
func (tc *ToolContext) RunID() string { return tc.runID }

// FunctionCallID returns the function call ID associated with the tool invocation.
func (tc *ToolContext) FunctionCallID() string { return tc.functionCallID }

// AgentName returns the agent name associated with the tool invocation.
func (tc *ToolContext) AgentName() string { return tc.agentInfo.Name }

// AgentType returns the agent type associated with the tool invocation.
func (tc *ToolContext) AgentType() string { return tc.agentInfo.Type }

// Logger returns the logger associated with the tool invocation.
func (tc *ToolContext) Logger() logging.Logger { return tc.logger }

// GetState retrieves the state value associated with the given key.
func (tc *ToolContext) GetState(k string) (any, bool) {
	v, ok := tc.state[k]
	return v, ok
}

// SetState records a state value visible to subsequent tool calls of the
// same run.
func (tc *ToolContext) SetState(k string, v any) {
	tc.state[k] = v
}
