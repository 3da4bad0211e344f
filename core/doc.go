// Package core provides the foundational domain types and interfaces shared
// by the agent lifecycle, planners and tools. It defines:
//
//   - AgentModel (immutable descriptor: info, profile, plan, memory, action)
//   - InputObject / OutputObject (read-only per-run field wrappers)
//   - Handler (the variable surface concrete agents implement)
//   - Content / Part (normalized message segments for model requests)
//   - ToolContext (scoped execution surface for tool implementations)
//
// The package intentionally keeps implementation concerns (planner execution,
// model providers, configuration loading) out of scope, exposing small types
// to enable custom extensions without cyclic dependencies.
package core
