package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentuniverse-ai/agentuniverse-go/config"
	"github.com/agentuniverse-ai/agentuniverse-go/core"
	"github.com/agentuniverse-ai/agentuniverse-go/planner"
)

// Interface compliance (compile-time assertion)
var _ core.Handler = (*stubHandler)(nil)

type stubHandler struct {
	inputKeys   []string
	outputKeys  []string
	parseResult func(plannerResult map[string]any) (map[string]any, error)
}

func (h *stubHandler) InputKeys() []string  { return h.inputKeys }
func (h *stubHandler) OutputKeys() []string { return h.outputKeys }

func (h *stubHandler) ParseInput(in *core.InputObject, agentInput map[string]any) (map[string]any, error) {
	for _, key := range h.inputKeys {
		if v, ok := in.GetData(key); ok {
			agentInput[key] = v
		}
	}
	return agentInput, nil
}

func (h *stubHandler) ParseResult(plannerResult map[string]any) (map[string]any, error) {
	if h.parseResult != nil {
		return h.parseResult(plannerResult)
	}
	return plannerResult, nil
}

func stubModel(plannerName string) *core.AgentModel {
	return &core.AgentModel{
		Info: core.Info{Name: "qa_agent", Description: "Answers questions"},
		Plan: core.Plan{Planner: core.PlannerRef{Name: plannerName}},
	}
}

// newTestAgent wires a handler and a planner function into an agent with its
// own registry, so tests never touch the process-wide one.
func newTestAgent(t *testing.T, handler core.Handler, fn func(ctx context.Context, agentModel *core.AgentModel, agentInput map[string]any, in *core.InputObject) (map[string]any, error)) *Agent {
	t.Helper()
	reg := planner.NewRegistry()
	require.NoError(t, reg.Register(planner.NewPlannerFunc("stub", fn)))
	return New(handler,
		WithModel(stubModel("stub")),
		WithPlanners(reg),
	)
}

func TestRun_EndToEnd(t *testing.T) {
	handler := &stubHandler{inputKeys: []string{"query"}, outputKeys: []string{"answer"}}
	a := newTestAgent(t, handler, func(_ context.Context, _ *core.AgentModel, agentInput map[string]any, _ *core.InputObject) (map[string]any, error) {
		assert.Equal(t, "hi", agentInput["query"])
		return map[string]any{"answer": "hello"}, nil
	})

	out, err := a.Run(context.Background(), map[string]any{"query": "hi"})
	require.NoError(t, err)

	v, ok := out.GetData("answer")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestRun_MissingInputKey(t *testing.T) {
	invoked := false
	handler := &stubHandler{inputKeys: []string{"query"}, outputKeys: []string{"answer"}}
	a := newTestAgent(t, handler, func(_ context.Context, _ *core.AgentModel, _ map[string]any, _ *core.InputObject) (map[string]any, error) {
		invoked = true
		return map[string]any{"answer": "hello"}, nil
	})

	_, err := a.Run(context.Background(), map[string]any{"other": "x"})
	require.Error(t, err)

	var inputErr *InputValidationError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "query", inputErr.Key)
	assert.Equal(t, "qa_agent", inputErr.Agent)
	assert.False(t, invoked, "planner must not run when input validation fails")
}

func TestRun_MissingOutputKey(t *testing.T) {
	handler := &stubHandler{inputKeys: []string{"query"}, outputKeys: []string{"answer"}}
	a := newTestAgent(t, handler, func(_ context.Context, _ *core.AgentModel, _ map[string]any, _ *core.InputObject) (map[string]any, error) {
		return map[string]any{"something_else": 1}, nil
	})

	_, err := a.Run(context.Background(), map[string]any{"query": "hi"})
	require.Error(t, err)

	var outputErr *OutputValidationError
	require.True(t, errors.As(err, &outputErr))
	assert.Equal(t, "answer", outputErr.Key)
}

func TestRun_NilResult(t *testing.T) {
	handler := &stubHandler{
		inputKeys:  []string{"query"},
		outputKeys: []string{"answer"},
		parseResult: func(map[string]any) (map[string]any, error) {
			return nil, nil
		},
	}
	a := newTestAgent(t, handler, func(_ context.Context, _ *core.AgentModel, _ map[string]any, _ *core.InputObject) (map[string]any, error) {
		return map[string]any{"answer": "hello"}, nil
	})

	_, err := a.Run(context.Background(), map[string]any{"query": "hi"})
	require.Error(t, err)

	var outputErr *OutputValidationError
	require.True(t, errors.As(err, &outputErr))
	assert.NotEmpty(t, outputErr.Reason)
}

func TestRun_PreParseDefaults(t *testing.T) {
	var captured map[string]any
	handler := &stubHandler{inputKeys: []string{"query"}, outputKeys: []string{"answer"}}
	a := newTestAgent(t, handler, func(_ context.Context, _ *core.AgentModel, agentInput map[string]any, _ *core.InputObject) (map[string]any, error) {
		captured = agentInput
		return map[string]any{"answer": "ok"}, nil
	})

	_, err := a.Run(context.Background(), map[string]any{"query": "hi"})
	require.NoError(t, err)

	assert.Equal(t, "", captured[core.FieldChatHistory])
	assert.Equal(t, "", captured[core.FieldBackground])
	assert.Equal(t, []string{}, captured[core.FieldImageURLs])
	assert.Equal(t, time.Now().Format("2006-01-02"), captured[core.FieldDate])
}

func TestRun_PreParseSuppliedValues(t *testing.T) {
	var captured map[string]any
	handler := &stubHandler{inputKeys: []string{"query"}, outputKeys: []string{"answer"}}
	a := newTestAgent(t, handler, func(_ context.Context, _ *core.AgentModel, agentInput map[string]any, _ *core.InputObject) (map[string]any, error) {
		captured = agentInput
		return map[string]any{"answer": "ok"}, nil
	})

	_, err := a.Run(context.Background(), map[string]any{
		"query":               "hi",
		core.FieldChatHistory: "human: earlier\nai: reply",
		core.FieldBackground:  "some context",
		// JSON-decoded inputs arrive as []any
		core.FieldImageURLs: []any{"https://example.com/a.png"},
	})
	require.NoError(t, err)

	assert.Equal(t, "human: earlier\nai: reply", captured[core.FieldChatHistory])
	assert.Equal(t, "some context", captured[core.FieldBackground])
	assert.Equal(t, []string{"https://example.com/a.png"}, captured[core.FieldImageURLs])
}

func TestRun_PreParseKeepsStructuredValues(t *testing.T) {
	var captured map[string]any
	handler := &stubHandler{inputKeys: []string{"query"}, outputKeys: []string{"answer"}}
	a := newTestAgent(t, handler, func(_ context.Context, _ *core.AgentModel, agentInput map[string]any, _ *core.InputObject) (map[string]any, error) {
		captured = agentInput
		return map[string]any{"answer": "ok"}, nil
	})

	history := []map[string]string{{"role": "human", "content": "earlier"}}
	_, err := a.Run(context.Background(), map[string]any{
		"query":               "hi",
		core.FieldChatHistory: history,
		core.FieldBackground:  42,
	})
	require.NoError(t, err)

	// Non-string supplied values pass through untouched instead of being
	// replaced by the defaults.
	assert.Equal(t, history, captured[core.FieldChatHistory])
	assert.Equal(t, 42, captured[core.FieldBackground])
}

func TestRun_PlannerNotFound(t *testing.T) {
	handler := &stubHandler{inputKeys: []string{"query"}, outputKeys: []string{"answer"}}
	a := New(handler,
		WithModel(stubModel("no_such_planner")),
		WithPlanners(planner.NewRegistry()),
	)

	_, err := a.Run(context.Background(), map[string]any{"query": "hi"})
	require.Error(t, err)

	var notFound *planner.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "no_such_planner", notFound.Name)
}

func TestRun_WithoutModel(t *testing.T) {
	handler := &stubHandler{inputKeys: []string{"query"}, outputKeys: []string{"answer"}}
	a := New(handler)

	_, err := a.Run(context.Background(), map[string]any{"query": "hi"})
	assert.Error(t, err)
}

func TestRun_Idempotence(t *testing.T) {
	handler := &stubHandler{inputKeys: []string{"query"}, outputKeys: []string{"answer"}}
	a := newTestAgent(t, handler, func(_ context.Context, _ *core.AgentModel, agentInput map[string]any, _ *core.InputObject) (map[string]any, error) {
		return map[string]any{"answer": "echo: " + agentInput["query"].(string)}, nil
	})

	fields := map[string]any{"query": "hi"}
	for i := 0; i < 3; i++ {
		out, err := a.Run(context.Background(), fields)
		require.NoError(t, err)
		v, _ := out.GetData("answer")
		assert.Equal(t, "echo: hi", v)
	}
	// The caller's field map stays untouched across runs.
	assert.Equal(t, map[string]any{"query": "hi"}, fields)
}

func TestInstanceCode(t *testing.T) {
	config.SetApp(config.AppConfig{AppName: "demo"})
	t.Cleanup(func() { config.SetApp(config.AppConfig{}) })

	handler := &stubHandler{inputKeys: []string{"query"}, outputKeys: []string{"answer"}}
	a := New(handler, WithModel(stubModel("stub")))

	assert.Equal(t, "demo.agent.qa_agent", a.InstanceCode())
}

func TestInstanceCode_DefaultAppName(t *testing.T) {
	config.SetApp(config.AppConfig{})

	handler := &stubHandler{inputKeys: []string{"query"}, outputKeys: []string{"answer"}}
	a := New(handler, WithModel(stubModel("stub")))

	assert.Equal(t, config.DefaultAppName+".agent.qa_agent", a.InstanceCode())
}

func TestInitFromConfig(t *testing.T) {
	cfg := &config.AgentConfig{
		Info: config.InfoConfig{Name: "demo_agent", Description: "A demo"},
		Plan: config.PlanConfig{Planner: config.PlannerConfig{Name: "rag_planner"}},
	}

	handler := &stubHandler{inputKeys: []string{"input"}, outputKeys: []string{"output"}}
	a, err := New(handler).InitFromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "demo_agent", a.Name())
	assert.Equal(t, "A demo", a.Description())
	assert.Equal(t, "rag_planner", a.Model().Plan.Planner.Name)
}

func TestInitFromConfig_Invalid(t *testing.T) {
	cfg := &config.AgentConfig{
		Plan: config.PlanConfig{Planner: config.PlannerConfig{Name: "rag_planner"}},
	}

	handler := &stubHandler{}
	_, err := New(handler).InitFromConfig(cfg)
	assert.Error(t, err)
}
