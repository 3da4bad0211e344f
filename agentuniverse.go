// Package agentuniverse provides a high-level façade over the agent
// lifecycle, planner registry and agent manager, enabling rapid construction
// of planner-driven agent applications. Most applications interact with this
// package by:
//  1. Creating an AgentUniverse via New() (optionally overriding the planner
//     registry and logger)
//  2. Registering planners, then agents built from YAML descriptors
//  3. Running agents by instance name (RunAgent)
//
// The façade delegates to manager.Manager and the planner registry while
// keeping setup ergonomics concise. All defaults are safe for local
// development and testing; production deployments typically supply a
// structured logger and a dedicated planner registry.
package agentuniverse

import (
	"context"

	"github.com/agentuniverse-ai/agentuniverse-go/agent"
	"github.com/agentuniverse-ai/agentuniverse-go/config"
	"github.com/agentuniverse-ai/agentuniverse-go/core"
	"github.com/agentuniverse-ai/agentuniverse-go/logging"
	"github.com/agentuniverse-ai/agentuniverse-go/manager"
	"github.com/agentuniverse-ai/agentuniverse-go/planner"
	"github.com/agentuniverse-ai/agentuniverse-go/tool"
)

// Options configures the AgentUniverse instance.
type Options struct {
	// Planners resolves planner names for every registered agent. Defaults
	// to the process-wide registry.
	Planners *planner.Registry
	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// AgentUniverse is the high-level façade aggregating the planner registry and
// the agent manager.
type AgentUniverse struct {
	planners *planner.Registry
	manager  *manager.Manager
	logger   logging.Logger
}

// New creates a new AgentUniverse instance with optional overrides.
func New(optFns ...func(o *Options)) *AgentUniverse {
	opts := Options{
		Planners: planner.Default(),
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &AgentUniverse{
		planners: opts.Planners,
		manager:  manager.New(func(o *manager.Options) { o.Logger = opts.Logger }),
		logger:   opts.Logger,
	}
}

// Planners returns the planner registry agents resolve from.
func (u *AgentUniverse) Planners() *planner.Registry { return u.planners }

// RegisterPlanner adds a planner to the registry.
func (u *AgentUniverse) RegisterPlanner(p planner.Planner) error {
	return u.planners.Register(p)
}

// RegisterAgent constructs an agent from a handler and a loaded descriptor,
// then registers it under its instance name.
func (u *AgentUniverse) RegisterAgent(handler core.Handler, cfg *config.AgentConfig) (*agent.Agent, error) {
	a, err := agent.New(handler,
		agent.WithPlanners(u.planners),
		agent.WithLogger(u.logger),
	).InitFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if err := u.manager.Register(a); err != nil {
		return nil, err
	}
	return a, nil
}

// RunAgent executes one lifecycle of the named agent.
func (u *AgentUniverse) RunAgent(ctx context.Context, name string, fields map[string]any) (*core.OutputObject, error) {
	return u.manager.RunAgent(ctx, name, fields)
}

// AgentTool exposes a registered agent as a Tool for tool-calling frameworks.
func (u *AgentUniverse) AgentTool(name string) (tool.Tool, error) {
	a, err := u.manager.Get(name)
	if err != nil {
		return nil, err
	}
	return tool.NewAgentTool(a, func(o *tool.AgentToolOptions) { o.Logger = u.logger }), nil
}
