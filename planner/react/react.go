// Package react implements an iterative tool-using planner: the model is
// invoked with the declared tool definitions and every returned function call
// is executed and fed back until the model produces a final text answer or
// the iteration budget runs out.
package react

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agentuniverse-ai/agentuniverse-go/core"
	"github.com/agentuniverse-ai/agentuniverse-go/internal/util"
	"github.com/agentuniverse-ai/agentuniverse-go/logging"
	"github.com/agentuniverse-ai/agentuniverse-go/model"
	"github.com/agentuniverse-ai/agentuniverse-go/tool"
)

// PlannerName is the registry identifier of this planner.
const PlannerName = "react_planner"

// OutputKey carries the final answer in the planner result map.
const OutputKey = "output"

// Options holds dependency overrides passed to New().
type Options struct {
	// MaxIterations bounds the reason/act loop per run.
	MaxIterations int
	// ToolTimeout bounds each individual tool call.
	ToolTimeout time.Duration
	// Logger receives planner events. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Planner runs the reason/act loop. It is stateless across runs and safe for
// concurrent use; per-run scratch state lives in the ToolContext handed to
// tool calls.
type Planner struct {
	model         model.Model
	tools         map[string]tool.Tool
	maxIterations int
	toolTimeout   time.Duration
	logger        logging.Logger
}

// New constructs a react planner around a model and its callable tools.
// Defaults: 10 iterations, 15 second tool timeout.
func New(m model.Model, tools []tool.Tool, optFns ...func(o *Options)) *Planner {
	opts := Options{
		MaxIterations: 10,
		ToolTimeout:   15 * time.Second,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	toolMap := make(map[string]tool.Tool, len(tools))
	for _, t := range tools {
		toolMap[t.Name()] = t
	}
	return &Planner{
		model:         m,
		tools:         toolMap,
		maxIterations: opts.MaxIterations,
		toolTimeout:   opts.ToolTimeout,
		logger:        opts.Logger,
	}
}

// Name implements planner.Planner.
func (p *Planner) Name() string { return PlannerName }

// Invoke executes the reason/act loop until the model stops requesting tool
// calls. The final completion text is returned under OutputKey.
func (p *Planner) Invoke(ctx context.Context, agentModel *core.AgentModel, agentInput map[string]any, in *core.InputObject) (map[string]any, error) {
	instructions, err := util.RenderTemplate(agentModel.Profile.Instruction, agentInput)
	if err != nil {
		return nil, fmt.Errorf("render instruction for agent %s: %w", agentModel.Info.Name, err)
	}

	input, _ := agentInput["input"].(string)
	contents := []core.Content{core.NewUserText(input)}
	toolDefs := p.buildToolDefinitions(agentModel)

	// One tool context per run: tool calls of the same run share its
	// scratch state map.
	runCtx := core.NewToolContext(ctx, util.NewID(), "", core.AgentInfo{Name: agentModel.Info.Name, Type: "agent"}, p.logger)

	for iteration := 0; iteration < p.maxIterations; iteration++ {
		resp, err := p.model.Invoke(ctx, &model.Request{
			Instructions: instructions,
			Contents:     contents,
			Tools:        toolDefs,
		})
		if err != nil {
			p.logger.Error("planner.react.model_failed", "agent", agentModel.Info.Name, "iteration", iteration, "error", err.Error())
			return nil, err
		}

		calls := resp.Content.FunctionCalls()
		if len(calls) == 0 {
			p.logger.Debug("planner.react.done", "agent", agentModel.Info.Name, "iterations", iteration+1)
			return map[string]any{OutputKey: resp.Content.Text()}, nil
		}

		contents = append(contents, resp.Content)
		responseParts := make([]core.Part, 0, len(calls))
		for _, call := range calls {
			responseParts = append(responseParts, p.executeCall(ctx, runCtx, call))
		}
		contents = append(contents, core.Content{Role: "tool", Parts: responseParts})
	}

	return nil, fmt.Errorf("react planner exceeded %d iterations for agent %s", p.maxIterations, agentModel.Info.Name)
}

// executeCall runs one tool call, converting failures into function response
// errors the model can reason about instead of aborting the run.
func (p *Planner) executeCall(ctx context.Context, runCtx *core.ToolContext, call core.FunctionCall) core.Part {
	response := core.FunctionResponse{ID: call.ID, Name: call.Name}

	t, ok := p.tools[call.Name]
	if !ok {
		response.Error = fmt.Sprintf("unknown tool: %s", call.Name)
		return core.FunctionResponsePart{FunctionResponse: response}
	}

	var args map[string]any
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			response.Error = fmt.Sprintf("invalid tool arguments: %v", err)
			return core.FunctionResponsePart{FunctionResponse: response}
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, p.toolTimeout)
	defer cancel()

	toolCtx := runCtx.ForCall(callCtx, util.NewID())
	start := time.Now()
	result, err := t.Call(toolCtx, args)
	if err != nil {
		p.logger.Warn("planner.react.tool_failed", "tool", call.Name, "duration_ms", time.Since(start).Milliseconds(), "error", err.Error())
		response.Error = err.Error()
		return core.FunctionResponsePart{FunctionResponse: response}
	}

	response.Response = result
	return core.FunctionResponsePart{FunctionResponse: response}
}

// buildToolDefinitions exposes the planner's tools to the model, restricted
// to the agent's action list when one is declared.
func (p *Planner) buildToolDefinitions(agentModel *core.AgentModel) []model.ToolDefinition {
	allowed := func(string) bool { return true }
	if len(agentModel.Action.Tools) > 0 {
		names := make(map[string]bool, len(agentModel.Action.Tools))
		for _, name := range agentModel.Action.Tools {
			names[name] = true
		}
		allowed = func(name string) bool { return names[name] }
	}

	var defs []model.ToolDefinition
	for name, t := range p.tools {
		if !allowed(name) {
			continue
		}
		defs = append(defs, model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	return defs
}
