// Package manager keeps the process-wide registry of constructed agents and
// offers a run-by-name entry point with per-run identifiers and logging.
package manager

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/agentuniverse-ai/agentuniverse-go/agent"
	"github.com/agentuniverse-ai/agentuniverse-go/core"
	"github.com/agentuniverse-ai/agentuniverse-go/internal/util"
	"github.com/agentuniverse-ai/agentuniverse-go/logging"
)

// Options holds dependency overrides passed to New().
type Options struct {
	// Logger receives per-run events. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Manager registers agents under their instance names and coordinates runs.
// Public methods are safe for concurrent use.
type Manager struct {
	mu     sync.RWMutex
	agents map[string]*agent.Agent
	logger logging.Logger
}

// New constructs a Manager with optional overrides.
func New(optFns ...func(o *Options)) *Manager {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Manager{
		agents: make(map[string]*agent.Agent),
		logger: opts.Logger,
	}
}

// Register adds an agent under its instance name. Unnamed agents and
// duplicate names are rejected.
func (m *Manager) Register(a *agent.Agent) error {
	name := a.Name()
	if name == "" {
		return fmt.Errorf("agent must be initialized with a named model before registration")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.agents[name]; exists {
		return fmt.Errorf("agent %q is already registered", name)
	}
	m.agents[name] = a
	return nil
}

// Get resolves a registered agent by instance name.
func (m *Manager) Get(name string) (*agent.Agent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.agents[name]
	if !ok {
		return nil, fmt.Errorf("agent %q is not registered", name)
	}
	return a, nil
}

// Names returns the registered agent names in sorted order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.agents))
	for name := range m.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunAgent resolves an agent by name and executes one lifecycle, attaching a
// fresh run id to the logs.
func (m *Manager) RunAgent(ctx context.Context, name string, fields map[string]any) (*core.OutputObject, error) {
	a, err := m.Get(name)
	if err != nil {
		return nil, err
	}

	runID := util.NewID()
	start := time.Now()
	m.logger.Info("manager.run.start", "agent", name, "instance_code", a.InstanceCode(), "run_id", runID)

	out, err := a.Run(ctx, fields)
	if err != nil {
		m.logger.Error("manager.run.failed", "agent", name, "run_id", runID, "duration_ms", time.Since(start).Milliseconds(), "error", err.Error())
		return nil, err
	}

	m.logger.Info("manager.run.success", "agent", name, "run_id", runID, "duration_ms", time.Since(start).Milliseconds())
	return out, nil
}
