// Package config loads and validates the YAML descriptors agents are
// constructed from, and holds the process-wide application configuration.
//
// An agent descriptor carries five sections mirroring the AgentModel shape:
//
//	info:
//	  name: demo_agent
//	  description: Answers questions about the demo domain.
//	profile:
//	  instruction: |
//	    You are a helpful assistant. Today is {{.date}}.
//	  llm_model:
//	    name: gpt-4o-mini
//	plan:
//	  planner:
//	    name: rag_planner
//	memory:
//	  name: conversation
//	action:
//	  tool: [search]
//
// Descriptors are parsed once at load time into structured types; downstream
// code never touches loosely typed maps for the modeled sections.
package config
