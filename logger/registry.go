package logger

import (
	"sort"
	"sync"
)

// registry maps scope names to their loggers
type registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

func newRegistry() *registry {
	return &registry{loggers: make(map[string]*Logger)}
}

// Child returns the logger for scope, creating and caching it on first
// use. Repeated calls with the same name return the same instance, and
// calling Child on a scoped logger resolves against the root's registry.
//
// An empty scope returns the root logger. So does any scope when the
// logger was built without an ingestion token: the console output of a
// scoped logger is identical to the root's and only the remote sink tags
// records with the scope, so without a remote sink scope names are not
// distinguishable downstream.
func (l *Logger) Child(scope string) *Logger {
	sh := l.shared
	if scope == "" || !sh.remote {
		return sh.root
	}

	reg := sh.registry
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if c, ok := reg.loggers[scope]; ok {
		return c
	}
	c := &Logger{scope: scope, shared: sh}
	reg.loggers[scope] = c
	return c
}

// Scopes returns the names of all registered scopes in sorted order
func (l *Logger) Scopes() []string {
	reg := l.shared.registry
	reg.mu.Lock()
	defer reg.mu.Unlock()

	names := make([]string, 0, len(reg.loggers))
	for name := range reg.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
