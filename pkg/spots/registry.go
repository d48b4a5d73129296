package spots

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/go-drift/spots/pkg/component"
	"github.com/go-drift/spots/pkg/errors"
	"github.com/go-drift/spots/pkg/graphics"
)

// Built-in component kinds.
const (
	KindCarousel = "carousel"
	KindList     = "list"
	KindGrid     = "grid"
	KindRow      = "row"
	KindView     = "view"
	KindSpot     = "spot"
)

// Constructor builds a spot from a descriptor. It must not return nil.
type Constructor func(component.Component) Spot

// itemSized is implemented by spots that accept per item-kind sizes.
type itemSized interface {
	setItemSizes(map[string]graphics.Size)
}

// Registry maps component kinds to spot constructors.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
	itemSizes    map[string]graphics.Size
	defaultKind  string
}

// DefaultRegistry is the process-wide registry. Only explicit calls mutate it.
var DefaultRegistry = NewRegistry()

// NewRegistry returns a registry seeded with the built-in kinds. The default
// kind is grid.
func NewRegistry() *Registry {
	return &Registry{
		constructors: map[string]Constructor{
			KindCarousel: NewCarousel,
			KindList:     NewList,
			KindGrid:     NewGrid,
			KindRow:      NewRow,
			KindView:     NewViewSpot,
			KindSpot:     NewGeneric,
		},
		itemSizes:   make(map[string]graphics.Size),
		defaultKind: KindGrid,
	}
}

// Register maps kind to ctor, replacing any previous mapping.
func (r *Registry) Register(kind string, ctor Constructor) {
	r.mu.Lock()
	r.constructors[kind] = ctor
	r.mu.Unlock()
}

// SetDefaultKind sets the kind used for descriptors whose kind is unmapped.
func (r *Registry) SetDefaultKind(kind string) {
	r.mu.Lock()
	r.defaultKind = kind
	r.mu.Unlock()
}

// DefaultKind returns the fallback kind.
func (r *Registry) DefaultKind() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultKind
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	kinds := make([]string, 0, len(r.constructors))
	for kind := range r.constructors {
		kinds = append(kinds, kind)
	}
	r.mu.RUnlock()
	slices.Sort(kinds)
	return kinds
}

// IsRegistered reports whether kind has a constructor.
func (r *Registry) IsRegistered(kind string) bool {
	r.mu.RLock()
	_, ok := r.constructors[kind]
	r.mu.RUnlock()
	return ok
}

// RegisterItemSize sets the preferred size of items of the given item kind.
// Spots resolved afterwards use it for items that declare no size.
func (r *Registry) RegisterItemSize(kind string, size graphics.Size) {
	r.mu.Lock()
	r.itemSizes[kind] = size
	r.mu.Unlock()
}

// ItemSize returns the preferred size registered for an item kind.
func (r *Registry) ItemSize(kind string) (graphics.Size, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	size, ok := r.itemSizes[kind]
	return size, ok
}

// Resolve builds a new spot for c. An unmapped kind resolves to the default
// kind, and an unmapped default kind to [Generic]. Resolve panics if the
// constructor returns nil.
func (r *Registry) Resolve(c component.Component) Spot {
	r.mu.RLock()
	kind := c.Kind
	ctor, ok := r.constructors[kind]
	if !ok {
		kind = r.defaultKind
		ctor, ok = r.constructors[kind]
	}
	sizes := maps.Clone(r.itemSizes)
	r.mu.RUnlock()

	if !ok || ctor == nil {
		errors.Report(&errors.SpotError{
			Op:   "spots.Resolve",
			Kind: errors.KindRegistry,
			Spot: c.Kind,
			Err:  fmt.Errorf("default kind %q is not registered, using generic", kind),
		})
		ctor = NewGeneric
	}

	spot := ctor(c)
	if spot == nil {
		panic(&errors.SpotError{
			Op:         "spots.Resolve",
			Kind:       errors.KindRegistry,
			Spot:       kind,
			Err:        fmt.Errorf("constructor for %q returned nil", kind),
			StackTrace: errors.CaptureStack(),
		})
	}
	if s, ok := spot.(itemSized); ok && len(sizes) > 0 {
		s.setItemSizes(sizes)
		spot.Relayout()
	}
	return spot
}

// ResolveAll resolves every descriptor in order.
func (r *Registry) ResolveAll(components []component.Component) []Spot {
	out := make([]Spot, 0, len(components))
	for _, c := range components {
		out = append(out, r.Resolve(c))
	}
	return out
}
