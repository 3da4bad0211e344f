// Package memory provides conversation history recording and recall for
// agents whose model binds a named memory. The in-memory implementation
// suits tests and single-process deployments.
package memory
