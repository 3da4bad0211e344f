package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentuniverse-ai/agentuniverse-go/core"
	"github.com/agentuniverse-ai/agentuniverse-go/internal/util"
)

// Interface compliance (compile-time assertions)
var (
	_ Tool = (*FunctionTool)(nil)
	_ Tool = (*AgentTool)(nil)
)

func testToolContext() *core.ToolContext {
	return core.NewToolContext(context.Background(), "run1", "fc1", core.AgentInfo{Name: "qa_agent", Type: "agent"}, nil)
}

type sampleSchema struct {
	A string `json:"a" description:"Field A"`
	B *int   `json:"b" description:"Optional pointer field"`
	C int    `json:"c,omitempty" description:"Omit empty field"`
}

func TestCreateSchema(t *testing.T) {
	schema := util.CreateSchema(sampleSchema{})
	props, ok := schema["properties"].(map[string]any)
	assert.True(t, ok)
	assert.Contains(t, props, "a")
	assert.Contains(t, props, "b")
	assert.Contains(t, props, "c")
	// Required only includes non-pointer, non-omitempty exported fields
	req, _ := schema["required"].([]string)
	assert.ElementsMatch(t, []string{"a"}, req)
}

func TestStringSchema(t *testing.T) {
	schema := util.StringSchema([]string{"input", "topic"}, map[string]string{"input": "The question"})

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	inputProp, ok := props["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", inputProp["type"])
	assert.Equal(t, "The question", inputProp["description"])

	req, _ := schema["required"].([]string)
	assert.ElementsMatch(t, []string{"input", "topic"}, req)
}

func TestFunctionTool_Success(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
			"b": map[string]any{"type": "number"},
		},
		"required": []string{"a", "b"},
	}

	sumTool := NewFunctionTool("sum", "Add numbers", params, func(_ *core.ToolContext, args map[string]any) (any, error) {
		return args["a"].(float64) + args["b"].(float64), nil
	})

	result, err := sumTool.Call(testToolContext(), map[string]any{"a": 2.0, "b": 3.0})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestFunctionTool_ValidationError(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
		},
		// interface slice mirrors a JSON-decoded schema shape
		"required": []any{"a"},
	}
	tl := NewFunctionTool("test", "Test", params, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return 0, nil
	})

	_, err := tl.Call(testToolContext(), map[string]any{})
	require.Error(t, err)
	toolErr, ok := err.(*ToolError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)
}

func TestFunctionTool_ExecutionError(t *testing.T) {
	tl := NewFunctionTool("fail", "Fails", map[string]any{
		"type": "object", "properties": map[string]any{},
	}, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return nil, errors.New("boom")
	})

	_, err := tl.Call(testToolContext(), map[string]any{})
	require.Error(t, err)
	toolErr, ok := err.(*ToolError)
	require.True(t, ok)
	assert.Equal(t, "EXECUTION_ERROR", toolErr.Code)
	assert.Contains(t, toolErr.Error(), "boom")
}

func TestFunctionTool_ToolErrorPassThrough(t *testing.T) {
	custom := NewToolError("custom", "quota exhausted", "RATE_LIMIT")
	tl := NewFunctionTool("custom", "Custom", map[string]any{
		"type": "object", "properties": map[string]any{},
	}, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return nil, custom
	})

	_, err := tl.Call(testToolContext(), map[string]any{})
	require.Error(t, err)
	toolErr, ok := err.(*ToolError)
	require.True(t, ok)
	assert.Equal(t, "RATE_LIMIT", toolErr.Code)
}

func TestToolContext_State(t *testing.T) {
	tc := testToolContext()
	tl := NewFunctionTool("counter", "Counts", map[string]any{
		"type": "object", "properties": map[string]any{},
	}, func(toolCtx *core.ToolContext, _ map[string]any) (any, error) {
		n := 0
		if v, ok := toolCtx.GetState("n"); ok {
			n = v.(int)
		}
		toolCtx.SetState("n", n+1)
		return n + 1, nil
	})

	first, err := tl.Call(tc, map[string]any{})
	require.NoError(t, err)
	second, err := tl.Call(tc, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}
