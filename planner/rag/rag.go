// Package rag implements the retrieval-augmented single-shot planner: one
// model invocation driven by the agent profile's instruction, the standard
// pre-parsed fields and optional conversation memory recall.
package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agentuniverse-ai/agentuniverse-go/core"
	"github.com/agentuniverse-ai/agentuniverse-go/internal/util"
	"github.com/agentuniverse-ai/agentuniverse-go/logging"
	"github.com/agentuniverse-ai/agentuniverse-go/memory"
	"github.com/agentuniverse-ai/agentuniverse-go/model"
)

// PlannerName is the registry identifier of this planner.
const PlannerName = "rag_planner"

// OutputKey carries the model completion in the planner result map.
const OutputKey = "output"

// Options holds dependency overrides passed to New().
type Options struct {
	// Memory resolves chat_history when the agent model binds a memory and
	// the caller supplied none. Optional.
	Memory memory.Store
	// HistoryLimit caps recalled messages per run.
	HistoryLimit int
	// Logger receives planner events. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Planner drives one synchronous model generation per run. It is stateless
// across runs and safe for concurrent use.
type Planner struct {
	model        model.Model
	memory       memory.Store
	historyLimit int
	logger       logging.Logger
}

// New constructs a rag planner around a model with optional overrides.
func New(m model.Model, optFns ...func(o *Options)) *Planner {
	opts := Options{
		HistoryLimit: 20,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Planner{
		model:        m,
		memory:       opts.Memory,
		historyLimit: opts.HistoryLimit,
		logger:       opts.Logger,
	}
}

// Name implements planner.Planner.
func (p *Planner) Name() string { return PlannerName }

// Invoke renders the profile instruction, assembles the user content and
// performs one model call; the completion text is returned under OutputKey.
func (p *Planner) Invoke(ctx context.Context, agentModel *core.AgentModel, agentInput map[string]any, in *core.InputObject) (map[string]any, error) {
	sessionID := in.GetString("session_id")
	p.resolveChatHistory(agentModel, agentInput, sessionID)

	instructions, err := util.RenderTemplate(agentModel.Profile.Instruction, agentInput)
	if err != nil {
		return nil, fmt.Errorf("render instruction for agent %s: %w", agentModel.Info.Name, err)
	}

	req := &model.Request{
		Instructions: instructions,
		Contents:     []core.Content{p.buildUserContent(agentInput)},
	}

	start := time.Now()
	resp, err := p.model.Invoke(ctx, req)
	if err != nil {
		p.logger.Error("planner.rag.model_failed", "agent", agentModel.Info.Name, "model", p.model.Info().Name, "error", err.Error())
		return nil, err
	}
	p.logger.Debug("planner.rag.model_done", "agent", agentModel.Info.Name, "model", p.model.Info().Name, "duration_ms", time.Since(start).Milliseconds())

	output := resp.Content.Text()
	p.recordExchange(agentModel, sessionID, agentInput, output)

	return map[string]any{OutputKey: output}, nil
}

// resolveChatHistory fills the chat_history field from memory when the agent
// binds one and the caller supplied no explicit history.
func (p *Planner) resolveChatHistory(agentModel *core.AgentModel, agentInput map[string]any, sessionID string) {
	if p.memory == nil || agentModel.Memory.Name == "" {
		return
	}
	// Any non-empty caller supplied history wins, whatever its shape.
	if history := agentInput[core.FieldChatHistory]; history != nil && history != "" {
		return
	}
	messages, err := p.memory.History(p.sessionKey(agentModel, sessionID), p.historyLimit)
	if err != nil || len(messages) == 0 {
		return
	}
	agentInput[core.FieldChatHistory] = memory.FormatHistory(messages)
}

// recordExchange appends the human input and model output to the bound memory.
func (p *Planner) recordExchange(agentModel *core.AgentModel, sessionID string, agentInput map[string]any, output string) {
	if p.memory == nil || agentModel.Memory.Name == "" {
		return
	}
	key := p.sessionKey(agentModel, sessionID)
	now := time.Now()
	input, _ := agentInput["input"].(string)
	_ = p.memory.Add(key, memory.Message{Role: "human", Content: input, At: now})
	_ = p.memory.Add(key, memory.Message{Role: "ai", Content: output, At: now})
}

// sessionKey scopes memory per agent and caller session.
func (p *Planner) sessionKey(agentModel *core.AgentModel, sessionID string) string {
	if sessionID == "" {
		sessionID = "default"
	}
	return agentModel.Memory.Name + "/" + agentModel.Info.Name + "/" + sessionID
}

// buildUserContent assembles the user message from the pre-parsed fields:
// background and input as text, image_urls as image parts.
func (p *Planner) buildUserContent(agentInput map[string]any) core.Content {
	var sections []string
	if background, _ := agentInput[core.FieldBackground].(string); background != "" {
		sections = append(sections, "Background:\n"+background)
	}
	if input, _ := agentInput["input"].(string); input != "" {
		sections = append(sections, input)
	}

	parts := []core.Part{core.TextPart{Text: strings.Join(sections, "\n\n")}}
	if urls, ok := agentInput[core.FieldImageURLs].([]string); ok {
		for _, url := range urls {
			parts = append(parts, core.ImagePart{URL: url})
		}
	}
	return core.Content{Role: "user", Parts: parts}
}
