package memory

import "time"

// Message is one conversational exchange entry recorded for an agent session.
type Message struct {
	Role    string         // "human" or "ai"
	Content string         // Plain text of the exchange
	At      time.Time      // Recording time
	Meta    map[string]any // Optional producer-provided metadata
}

// Store records and recalls conversation history per session. Planners use
// it to resolve the chat_history field when the agent model binds a memory
// and the caller supplied none.
type Store interface {
	// Add appends a message to the session's history.
	Add(sessionID string, msg Message) error

	// History returns up to limit most recent messages in chronological
	// order. A non-positive limit returns the full history.
	History(sessionID string, limit int) ([]Message, error)

	// Clear removes all messages recorded for the session.
	Clear(sessionID string) error
}

// FormatHistory renders messages into the textual chat_history form planners
// embed in prompts.
func FormatHistory(messages []Message) string {
	var out string
	for i, msg := range messages {
		if i > 0 {
			out += "\n"
		}
		out += msg.Role + ": " + msg.Content
	}
	return out
}
