package util

import "github.com/google/uuid"

// NewID generates a unique identifier for runs and tool calls.
func NewID() string { return uuid.NewString() }
