package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolContext_Accessors(t *testing.T) {
	ctx := context.Background()
	tc := NewToolContext(ctx, "run1", "fc1", AgentInfo{Name: "qa_agent", Type: "agent"}, nil)

	assert.Equal(t, ctx, tc.Context())
	assert.Equal(t, "run1", tc.RunID())
	assert.Equal(t, "fc1", tc.FunctionCallID())
	assert.Equal(t, "qa_agent", tc.AgentName())
	assert.Equal(t, "agent", tc.AgentType())
	assert.NotNil(t, tc.Logger())
}

func TestToolContext_ForCall(t *testing.T) {
	runCtx := NewToolContext(context.Background(), "run1", "", AgentInfo{Name: "qa_agent", Type: "agent"}, nil)
	runCtx.SetState("token", "secret")

	callCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tc := runCtx.ForCall(callCtx, "fc1")

	assert.Equal(t, callCtx, tc.Context())
	assert.Equal(t, "run1", tc.RunID())
	assert.Equal(t, "fc1", tc.FunctionCallID())
	assert.Equal(t, "qa_agent", tc.AgentName())

	// State is shared both ways between the run context and derived calls.
	v, ok := tc.GetState("token")
	assert.True(t, ok)
	assert.Equal(t, "secret", v)

	tc.SetState("seen", true)
	_, ok = runCtx.GetState("seen")
	assert.True(t, ok)
}

func TestToolContext_State(t *testing.T) {
	tc := NewToolContext(context.Background(), "run1", "fc1", AgentInfo{}, nil)

	_, ok := tc.GetState("k")
	assert.False(t, ok)

	tc.SetState("k", 42)
	v, ok := tc.GetState("k")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}
