package linter

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// ===== Errors =====

// errLinterNotFound is returned when no linter is found for the given tool name.
type errLinterNotFound struct {
	ToolName string
}

func (e *errLinterNotFound) Error() string {
	return fmt.Sprintf("linter not found: %s", e.ToolName)
}

// errNilLinter is returned when trying to register a nil linter.
var errNilLinter = fmt.Errorf("cannot register nil linter")

// ===== Registry =====

// Registry manages linter registrations. Tool packages register themselves
// at init time via the bootstrap import.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Linter
}

var (
	globalRegistry *Registry
	once           sync.Once
)

// Global returns the singleton registry instance.
func Global() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{
			tools: make(map[string]Linter),
		}
	})
	return globalRegistry
}

// Register registers a linter under its own name.
func (r *Registry) Register(l Linter) error {
	if l == nil {
		return errNilLinter
	}

	name := l.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Warn on duplicate registration (init order issues)
	if _, exists := r.tools[name]; exists {
		log.Printf("warning: linter already registered: %s (ignoring duplicate)", name)
		return nil
	}

	r.tools[name] = l
	return nil
}

// Get finds a linter by tool name (e.g., "pyflakes", "flake8").
func (r *Registry) Get(toolName string) (Linter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if l, ok := r.tools[toolName]; ok {
		return l, nil
	}

	return nil, &errLinterNotFound{ToolName: toolName}
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
