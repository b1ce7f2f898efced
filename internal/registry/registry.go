// Package registry provides a global registry of rule variants.
// Variants register themselves in init() functions, allowing the CLI and
// the SSH server to discover them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-robots/internal/config"
)

// DefaultVariant is used when no variant is named.
const DefaultVariant = "robots"

// Mutator adjusts a base ruleset into a variant's ruleset.
type Mutator func(cfg *config.RobotsConfig)

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID          string
	Title       string
	Description string
}

type entry struct {
	info  VariantInfo
	apply Mutator
}

var (
	variants = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(info VariantInfo, apply Mutator) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[info.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", info.ID))
	}
	variants[info.ID] = entry{info: info, apply: apply}
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(variants))
	for _, v := range variants {
		result = append(result, v.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns base adjusted by the variant id. base is not modified.
// Returns an error if the variant is not registered.
func Create(id string, base config.RobotsConfig) (config.RobotsConfig, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return config.RobotsConfig{}, fmt.Errorf("registry: unknown variant %q", id)
	}

	cfg := base
	if v.apply != nil {
		v.apply(&cfg)
	}
	return cfg, nil
}

// Lookup returns the metadata of a variant.
func Lookup(id string) (VariantInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	return v.info, ok
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
