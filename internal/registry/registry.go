// Package registry provides a global registry for title screen variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate layouts without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/okhotin/tui-splash/internal/core"
	"github.com/okhotin/tui-splash/internal/scene"
)

// Variant describes one title screen composition: a letter arrangement,
// a button column, and decorative pieces. Variants contain pure layout
// logic with no external dependencies (especially no Bubble Tea).
type Variant interface {
	// ID returns a unique identifier for this variant (e.g., "classic").
	// Used for CLI commands and streak storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Classic").
	Title() string

	// Layout builds the scene layout for the given screen dimensions.
	// Called once at start and again on terminal resize.
	Layout(cfg core.RuntimeConfig) *scene.Layout
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a variant.
type Factory func() Variant

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a variant factory to the registry.
// Typically called from a variant's init() function.
// Panics if a variant with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	v := f()
	titles[id] = v.Title()
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(factories))
	for id := range factories {
		result = append(result, VariantInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new variant by its ID.
// Returns an error if the variant ID is not registered.
func Create(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
