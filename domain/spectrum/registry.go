package spectrum

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"
)

// Registry tracks the measurement files discovered in the currently selected
// folder, keyed by base name for display in a file selector.
type Registry struct {
	files map[string]string
	mu    sync.RWMutex
}

// NewRegistry creates a new empty file registry.
func NewRegistry() *Registry {
	return &Registry{
		files: make(map[string]string),
	}
}

// Register adds a measurement file under its base name.
// An existing entry with the same name is replaced.
func (r *Registry) Register(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files[filepath.Base(path)] = path
}

// Get returns the path registered under name, or "" if not found.
func (r *Registry) Get(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.files[name]
}

// List returns all registered file names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.files))
	for name := range r.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered files.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.files)
}

// Clear removes all entries.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files = make(map[string]string)
}

// LoadDir replaces the registry contents with the measurement files found in
// dir and returns how many were registered. A folder without any measurement
// files is an error so the caller can tell the user immediately.
func (r *Registry) LoadDir(dir string) (int, error) {
	paths, err := ScanDir(dir)
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("no %s files found in %s", DataExt, dir)
	}

	r.Clear()
	for _, p := range paths {
		r.Register(p)
	}
	return len(paths), nil
}
