// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/waitroom/internal/config"
	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/frame"
)

// Game is the contract every simulation implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The lifecycle owns scheduling; the platform owns input mapping and display.
type Game interface {
	// Kind returns the tag the lifecycle dispatches on.
	Kind() core.GameKind

	// Title returns a human-readable name for display (e.g., "Snake").
	Title() string

	// Icon returns a short glyph shown next to the title.
	Icon() string

	// Rules returns the one-line instructions shown on the ready screen.
	Rules() string

	// Cadence returns how often Tick wants to run.
	Cadence() frame.Cadence

	// Reset discards all state and starts over from the canonical initial
	// positions. The seed drives every random decision.
	Reset(seed int64)

	// Tick advances the simulation by one step inside the given logical
	// bounds and returns the frame to draw. After a terminal result, further
	// ticks change nothing.
	Tick(b core.Bounds) core.TickResult

	// Score returns the displayed score.
	Score() int
}

// Jumper is implemented by games with a discrete jump intent.
type Jumper interface {
	// Jump applies the impulse if allowed and reports whether it was accepted.
	Jump() bool
}

// Steerer is implemented by games with buffered direction intents.
type Steerer interface {
	// Steer buffers d for the next tick and reports whether it was accepted.
	Steer(d core.Direction) bool
}

// Pointer is implemented by games driven by the horizontal pointer position.
type Pointer interface {
	// Point applies a pointer x (logical units) immediately.
	Point(x float64, b core.Bounds)
}

// Info contains metadata about a registered game.
type Info struct {
	Kind  core.GameKind
	Title string
	Icon  string
	Rules string
}

// Factory creates a new game instance from configuration.
type Factory func(cfg config.Config) Game

var (
	factories = make(map[core.GameKind]Factory)
	infos     = make(map[core.GameKind]Info)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same kind is already registered.
func Register(kind core.GameKind, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", kind))
	}

	factories[kind] = f

	// Get metadata by creating a temporary instance
	g := f(config.Default())
	infos[kind] = Info{Kind: kind, Title: g.Title(), Icon: g.Icon(), Rules: g.Rules()}
}

// List returns all registered games in menu order; kinds outside the
// built-in catalogue follow, sorted by id.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	order := core.Kinds()
	rank := func(k core.GameKind) int {
		if i := slices.Index(order, k); i >= 0 {
			return i
		}
		return len(order)
	}
	slices.SortFunc(result, func(a, b Info) int {
		if ra, rb := rank(a.Kind), rank(b.Kind); ra != rb {
			return ra - rb
		}
		if a.Kind < b.Kind {
			return -1
		}
		if a.Kind > b.Kind {
			return 1
		}
		return 0
	})

	return result
}

// Lookup returns the metadata of a registered game.
func Lookup(kind core.GameKind) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[kind]
	return info, ok
}

// Create instantiates a new game by kind.
// Returns an error if the kind is not registered.
func Create(kind core.GameKind, cfg config.Config) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", kind)
	}

	return f(cfg), nil
}

// Exists checks if a game with the given kind is registered.
func Exists(kind core.GameKind) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[kind]
	return ok
}
