// Package registry provides a global registry of landmark source factories.
// Sources register themselves in init() functions, allowing the CLI to
// discover and open them by name without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/gesture"
)

// Source supplies hand landmarks, one frame per poll.
type Source interface {
	// Name returns the registered name of this source (e.g. "keyboard").
	Name() string

	// Poll blocks until the next frame is available or ctx is done.
	// io.EOF means the source has no more frames. Any other error is a
	// transient capture miss; the caller may keep polling.
	Poll(ctx context.Context) (gesture.Frame, error)

	// Close releases the capture device.
	Close() error
}

// Options carries everything a factory may need to open a source.
type Options struct {
	Path   string    // Recording path for file-backed sources
	Loop   bool      // Rewind at end of stream
	Stdin  io.Reader // Standard input for stream sources
	Config config.Config
}

// SourceInfo contains metadata about a registered source.
type SourceInfo struct {
	Name        string
	Description string
}

// Factory opens a new source. An error here is a fatal startup condition.
type Factory func(opts Options) (Source, error)

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a source factory to the registry.
// Panics if a source with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: source %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered sources, sorted by name.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(factories))
	for name := range factories {
		result = append(result, SourceInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Open creates a source by name.
func Open(name string, opts Options) (Source, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown source %q", name)
	}

	src, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: open %s: %w", name, err)
	}
	return src, nil
}

// Exists checks if a source with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
