package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/agentuniverse-ai/agentuniverse-go/config"
	"github.com/agentuniverse-ai/agentuniverse-go/core"
	"github.com/agentuniverse-ai/agentuniverse-go/logging"
	"github.com/agentuniverse-ai/agentuniverse-go/planner"
)

// componentType categorizes agents in instance codes and tool contexts.
const componentType = "agent"

// Options holds dependency overrides passed to New().
type Options struct {
	// Model is the static agent descriptor. Usually supplied later via
	// InitFromConfig; set it directly when constructing agents in code.
	Model *core.AgentModel
	// Planners resolves the planner named in the model's plan. Defaults to
	// the process-wide registry.
	Planners *planner.Registry
	// Logger receives lifecycle events. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Agent owns the fixed run sequence every agent variant follows:
//
//	input check -> wrap input -> pre-parse -> planner execution ->
//	result parse -> output check -> wrap output
//
// The variable behavior (required fields, input/output shaping) comes from
// the embedded Handler; the reasoning itself from the planner the agent
// model names. An Agent is constructed once and may serve many concurrent
// runs: it holds no per-run state beyond the immutable model.
type Agent struct {
	handler  core.Handler
	model    *core.AgentModel
	planners *planner.Registry
	logger   logging.Logger
}

// New constructs an Agent around a Handler with optional overrides.
func New(handler core.Handler, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Planners: planner.Default(),
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Agent{
		handler:  handler,
		model:    opts.Model,
		planners: opts.Planners,
		logger:   opts.Logger,
	}
}

// WithModel sets the agent model at construction time.
func WithModel(m *core.AgentModel) func(o *Options) {
	return func(o *Options) { o.Model = m }
}

// WithPlanners overrides the planner registry.
func WithPlanners(r *planner.Registry) func(o *Options) {
	return func(o *Options) { o.Planners = r }
}

// WithLogger overrides the lifecycle logger.
func WithLogger(l logging.Logger) func(o *Options) {
	return func(o *Options) { o.Logger = l }
}

// InitFromConfig constructs the agent model from a loaded configuration
// descriptor and returns the agent itself, builder-style.
func (a *Agent) InitFromConfig(cfg *config.AgentConfig) (*Agent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a.model = cfg.AgentModel()
	return a, nil
}

// Model returns the agent's static descriptor.
func (a *Agent) Model() *core.AgentModel { return a.model }

// Name returns the agent instance name from the model info.
func (a *Agent) Name() string {
	if a.model == nil {
		return ""
	}
	return a.model.Info.Name
}

// Description returns the agent description from the model info.
func (a *Agent) Description() string {
	if a.model == nil {
		return ""
	}
	return a.model.Info.Description
}

// Handler returns the variable behavior surface of this agent.
func (a *Agent) Handler() core.Handler { return a.handler }

// InstanceCode derives the fully qualified identifier of this agent:
// {appname}.agent.{name}, with appname read from the process-wide
// application configuration.
func (a *Agent) InstanceCode() string {
	return fmt.Sprintf("%s.%s.%s", config.App().AppName, componentType, a.Name())
}

// Run executes one complete lifecycle. Each run is independent and terminal:
// no retries, no state carried between invocations. Validation failures are
// surfaced as typed errors; planner resolution and invocation errors
// propagate unwrapped.
func (a *Agent) Run(ctx context.Context, fields map[string]any) (*core.OutputObject, error) {
	if a.model == nil {
		return nil, fmt.Errorf("agent is not initialized with a model")
	}

	start := time.Now()
	a.logger.Debug("agent.run.start", "agent", a.Name(), "planner", a.model.Plan.Planner.Name)

	if err := a.inputCheck(fields); err != nil {
		a.logger.Warn("agent.run.input_invalid", "agent", a.Name(), "error", err.Error())
		return nil, err
	}
	in := core.NewInputObject(fields)

	agentInput, err := a.preParseInput(in)
	if err != nil {
		return nil, err
	}

	plannerResult, err := a.execute(ctx, agentInput, in)
	if err != nil {
		a.logger.Error("agent.run.planner_failed", "agent", a.Name(), "planner", a.model.Plan.Planner.Name, "error", err.Error())
		return nil, err
	}

	agentResult, err := a.handler.ParseResult(plannerResult)
	if err != nil {
		return nil, err
	}

	if err := a.outputCheck(agentResult); err != nil {
		a.logger.Warn("agent.run.output_invalid", "agent", a.Name(), "error", err.Error())
		return nil, err
	}

	a.logger.Info("agent.run.success", "agent", a.Name(), "duration_ms", time.Since(start).Milliseconds())
	return core.NewOutputObject(agentResult), nil
}

// inputCheck verifies every declared input key is present in the supplied fields.
func (a *Agent) inputCheck(fields map[string]any) error {
	for _, key := range a.handler.InputKeys() {
		if _, ok := fields[key]; !ok {
			return &InputValidationError{Agent: a.Name(), Key: key}
		}
	}
	return nil
}

// preParseInput seeds the standard fields, then merges in handler-parsed ones.
// chat_history and background keep whatever non-empty value the caller
// supplied, in any shape; image_urls is narrowed to []string (non-string
// elements are dropped); date is always today. Absent or empty values fall
// back to the documented defaults (empty strings, empty url list).
func (a *Agent) preParseInput(in *core.InputObject) (map[string]any, error) {
	agentInput := map[string]any{
		core.FieldChatHistory: fieldOrDefault(in, core.FieldChatHistory, ""),
		core.FieldBackground:  fieldOrDefault(in, core.FieldBackground, ""),
		core.FieldImageURLs:   in.GetStringSlice(core.FieldImageURLs),
		core.FieldDate:        time.Now().Format("2006-01-02"),
	}
	return a.handler.ParseInput(in, agentInput)
}

// fieldOrDefault returns the caller supplied value for key unless it is
// absent, nil or an empty string.
func fieldOrDefault(in *core.InputObject, key string, def any) any {
	v, ok := in.GetData(key)
	if !ok || v == nil || v == "" {
		return def
	}
	return v
}

// execute resolves the planner named in the model's plan and invokes it.
// Resolution failure is not recovered.
func (a *Agent) execute(ctx context.Context, agentInput map[string]any, in *core.InputObject) (map[string]any, error) {
	p, err := a.planners.Get(a.model.Plan.Planner.Name)
	if err != nil {
		return nil, err
	}
	return p.Invoke(ctx, a.model, agentInput, in)
}

// outputCheck verifies the parsed result carries every declared output key.
func (a *Agent) outputCheck(result map[string]any) error {
	if result == nil {
		return &OutputValidationError{Agent: a.Name(), Reason: "result must be a non-nil map"}
	}
	for _, key := range a.handler.OutputKeys() {
		if _, ok := result[key]; !ok {
			return &OutputValidationError{Agent: a.Name(), Key: key}
		}
	}
	return nil
}
