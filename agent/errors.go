package agent

import "fmt"

// InputValidationError reports a required input field missing from the
// caller supplied run fields. It is fatal to the run: the planner is never
// invoked.
type InputValidationError struct {
	Agent string `json:"agent"` // Agent instance name
	Key   string `json:"key"`   // Missing input field
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("agent %s: input must have key %q", e.Agent, e.Key)
}

// OutputValidationError reports a run result that violates the agent's
// declared output contract: a missing declared key, or no result map at all.
type OutputValidationError struct {
	Agent  string `json:"agent"`            // Agent instance name
	Key    string `json:"key,omitempty"`    // Missing output field, if that is the violation
	Reason string `json:"reason,omitempty"` // Set when the shape itself is invalid
}

func (e *OutputValidationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("agent %s: output must have key %q", e.Agent, e.Key)
	}
	return fmt.Sprintf("agent %s: invalid output: %s", e.Agent, e.Reason)
}
