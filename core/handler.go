package core

// Handler supplies the variable behavior of an agent. The fixed run sequence
// (validation, pre-parsing, planner dispatch, result parsing) lives in
// agent.Agent; a Handler declares which fields a concrete agent requires and
// how its inputs and planner results are shaped.
//
// Implementations must be stateless across runs: the same Handler instance is
// shared by every invocation of the agent it configures.
type Handler interface {
	// InputKeys returns the required input field names. Run fails with an
	// input validation error when any of them is absent.
	InputKeys() []string

	// OutputKeys returns the required output field names. Run fails with an
	// output validation error when ParseResult leaves any of them unset.
	OutputKeys() []string

	// ParseInput extends the pre-parsed input map with fields extracted from
	// the raw input object. The standard fields (chat_history, background,
	// image_urls, date) are already present and must not be removed. The
	// returned map is handed to the planner.
	ParseInput(in *InputObject, agentInput map[string]any) (map[string]any, error)

	// ParseResult transforms the raw planner result into the agent's
	// declared output shape.
	ParseResult(plannerResult map[string]any) (map[string]any, error)
}

// AgentInfo carries identifying details about an agent used in tool contexts
// and logging. Name is the external identifier; Type categorizes the
// component (normally "agent").
type AgentInfo struct{ Name, Type string }

// Standard input fields seeded during pre-parsing. Every planner can rely on
// their presence regardless of what the caller supplied.
const (
	FieldChatHistory = "chat_history"
	FieldBackground  = "background"
	FieldImageURLs   = "image_urls"
	FieldDate        = "date"
)
