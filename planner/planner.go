// Package planner defines the strategy interface agents delegate their
// reasoning to, plus the string-keyed registry planners are resolved from at
// run time. Concrete planners live in subpackages (rag, react); tests and
// small deployments can register a PlannerFunc directly.
package planner

import (
	"context"

	"github.com/agentuniverse-ai/agentuniverse-go/core"
)

// Planner performs the actual reasoning/execution of an agent run. The agent
// lifecycle resolves a Planner by the name recorded in the agent model's plan
// and invokes it synchronously with the pre-parsed input.
//
// Implementations must be safe for concurrent use: a single registered
// instance serves every agent that names it.
type Planner interface {
	// Name returns the identifier the planner is registered under.
	Name() string

	// Invoke executes one run. agentInput is the pre-parsed field map
	// (standard fields plus agent specific ones); in exposes the raw caller
	// supplied fields. The returned map is handed to the agent's result
	// parser unmodified.
	Invoke(ctx context.Context, agentModel *core.AgentModel, agentInput map[string]any, in *core.InputObject) (map[string]any, error)
}

// PlannerFunc adapts a plain function into a named Planner.
type PlannerFunc struct {
	name string
	fn   func(ctx context.Context, agentModel *core.AgentModel, agentInput map[string]any, in *core.InputObject) (map[string]any, error)
}

// NewPlannerFunc wraps fn as a Planner registered under name.
func NewPlannerFunc(name string, fn func(ctx context.Context, agentModel *core.AgentModel, agentInput map[string]any, in *core.InputObject) (map[string]any, error)) *PlannerFunc {
	return &PlannerFunc{name: name, fn: fn}
}

// Name returns the planner's registry identifier.
func (p *PlannerFunc) Name() string { return p.name }

// Invoke calls the wrapped function.
func (p *PlannerFunc) Invoke(ctx context.Context, agentModel *core.AgentModel, agentInput map[string]any, in *core.InputObject) (map[string]any, error) {
	return p.fn(ctx, agentModel, agentInput, in)
}
