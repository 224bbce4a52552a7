// Package registry provides a global registry for display drivers.
// Drivers register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cube-chase/internal/config"
	"github.com/vovakirdan/cube-chase/internal/game"
)

// Driver runs a game controller against a concrete display, input and
// timing backend. The game holds the logic; the driver owns the loop.
type Driver interface {
	// ID returns a unique identifier for this driver (e.g., "tui", "window").
	// Used for CLI flags.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run starts the controller and blocks until the player quits, the
	// context is canceled, or the backend fails. Quitting is not an error.
	Run(ctx context.Context, c *game.Controller, opts Options) error
}

// Options carries what a driver needs besides the controller.
type Options struct {
	Logger   *log.Logger
	Terminal config.TerminalConfig

	// Frames limits how many ticks a headless run simulates. Zero means
	// run until a quit event.
	Frames int

	// Realtime paces headless runs with the wall clock.
	Realtime bool
}

// DriverInfo contains metadata about a registered driver.
type DriverInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a driver.
type Factory func() Driver

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a driver factory to the registry.
// Typically called from a driver's init() function.
// Panics if a driver with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: driver %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered drivers, sorted by ID.
func List() []DriverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DriverInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DriverInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new driver by its ID.
// Returns an error if the driver ID is not registered.
func Create(id string) (Driver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown driver %q", id)
	}

	return f(), nil
}

// Exists checks if a driver with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
