// Package model defines the normalized request/response structures and the
// minimal Model interface planners use to drive language model generation.
// Provider specific adapters live in subpackages (anthropic, openai); the
// MockModel in this package supports tests and examples without network
// access.
package model
