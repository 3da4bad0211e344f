package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContent_Text(t *testing.T) {
	c := Content{Role: "assistant", Parts: []Part{
		TextPart{Text: "hello "},
		FunctionCallPart{FunctionCall: FunctionCall{Name: "tool"}},
		TextPart{Text: "world"},
	}}
	assert.Equal(t, "hello world", c.Text())
}

func TestContent_FunctionCalls(t *testing.T) {
	c := Content{Role: "assistant", Parts: []Part{
		TextPart{Text: "calling a tool"},
		FunctionCallPart{FunctionCall: FunctionCall{ID: "fc1", Name: "sum", Arguments: `{"a":1}`}},
		FunctionCallPart{FunctionCall: FunctionCall{ID: "fc2", Name: "other"}},
	}}

	calls := c.FunctionCalls()
	assert.Len(t, calls, 2)
	assert.Equal(t, "sum", calls[0].Name)
	assert.Equal(t, "fc2", calls[1].ID)
}

func TestNewUserText(t *testing.T) {
	c := NewUserText("hi")
	assert.Equal(t, "user", c.Role)
	assert.Equal(t, "hi", c.Text())
	assert.Empty(t, c.FunctionCalls())
}
