package core

// AgentModel is the static descriptor of an agent: identity, prompt profile,
// plan (which planner executes and with what parameters), memory binding and
// action configuration. It is constructed once, typically from a loaded
// configuration descriptor, and treated as immutable for the lifetime of the
// agent it configures.
type AgentModel struct {
	Info    Info
	Profile Profile
	Plan    Plan
	Memory  Memory
	Action  Action
}

// Info identifies an agent.
type Info struct {
	Name        string
	Description string
}

// Profile carries the prompt settings the planner uses to drive generation.
type Profile struct {
	// Instruction is the system prompt template. Planner input fields
	// (input, background, chat_history, date, ...) are available as
	// template variables.
	Instruction string
	// LLMModel selects and tunes the backing language model.
	LLMModel LLMModel
	// Extra holds planner specific profile settings not modeled explicitly.
	Extra map[string]any
}

// LLMModel names the backing model and its generation parameters.
type LLMModel struct {
	Name        string
	Temperature float64
	MaxTokens   int
}

// Plan selects the planner that executes the agent's reasoning.
type Plan struct {
	Planner PlannerRef
}

// PlannerRef names a registered planner and carries its parameters.
type PlannerRef struct {
	Name   string
	Params map[string]any
}

// Memory binds the agent to a named conversation memory. An empty name
// disables memory recall.
type Memory struct {
	Name string
}

// Action lists the capabilities available to the planner during a run.
type Action struct {
	Tools     []string
	Knowledge []string
}
