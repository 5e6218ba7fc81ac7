package module

import "sync"

// process-wide registry for cross-module port lookups during bootstrap.
// Single-process composition only; guarded for concurrent readers
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores the port set a module exposes under its name
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs fetches and type-asserts the port set registered under name
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
