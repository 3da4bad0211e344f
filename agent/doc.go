// Package agent implements the templated execution lifecycle every agent
// variant follows. The package focuses on three concerns:
//
//  1. The fixed run sequence (Agent.Run): input validation, pre-parsing,
//     planner dispatch, result parsing, output validation
//  2. Typed validation errors surfaced to callers instead of panics
//  3. Builder-style initialization from YAML descriptors (InitFromConfig)
//
// Design principles:
//   - Variable behavior lives behind core.Handler; concrete agents implement
//     four methods and inherit the rest
//   - Runs are stateless: the immutable agent model is the only state shared
//     across invocations, so concurrent runs need no coordination
//   - Planner resolution failures propagate unwrapped; validation failures
//     are never silently defaulted
//
// The package intentionally keeps planner implementations, model specifics
// and tool adapters in their respective packages to avoid cyclic deps.
package agent
