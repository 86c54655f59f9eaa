package provider

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/uom-labs/uomsys/internal/log"
	"github.com/uom-labs/uomsys/internal/registry"
	"github.com/uom-labs/uomsys/internal/systems"
)

// Catalog errors
var (
	ErrProviderNotFound  = errors.New("provider not found")
	ErrDuplicateProvider = errors.New("provider already registered")
	ErrInvalidProvider   = errors.New("invalid provider")
)

// Built-in provider names and priorities.
const (
	DefaultName     = "Default"
	CommonName      = "Common"
	DefaultPriority = 10
	CommonPriority  = 5
)

// Registration is a provider together with the name and priority it was
// registered under.
type Registration struct {
	Name     string
	Priority int
	Provider registry.Provider
	seq      int
}

// Catalog holds named providers. It is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	entries []Registration
	next    int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Builtin returns a catalog holding the Default (SI) and Common providers.
func Builtin() *Catalog {
	c := New()
	c.MustRegister(DefaultName, DefaultPriority, systems.Default())
	c.MustRegister(CommonName, CommonPriority, systems.Common())
	return c
}

// MustRegister is like Register but panics on error. It is meant for
// providers wired at start-up whose names are fixed.
func (c *Catalog) MustRegister(name string, priority int, p registry.Provider) {
	if err := c.Register(name, priority, p); err != nil {
		panic(fmt.Sprintf("provider: %v", err))
	}
}

// Register adds p under name. Higher priorities win in Current; equal
// priorities keep registration order.
func (c *Catalog) Register(name string, priority int, p registry.Provider) error {
	if name == "" {
		return fmt.Errorf("registering provider: empty name: %w", ErrInvalidProvider)
	}
	if p == nil {
		return fmt.Errorf("registering provider %q: nil provider: %w", name, ErrInvalidProvider)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.Name == name {
			return fmt.Errorf("registering provider %q: %w", name, ErrDuplicateProvider)
		}
	}
	c.entries = append(c.entries, Registration{Name: name, Priority: priority, Provider: p, seq: c.next})
	c.next++
	sort.SliceStable(c.entries, func(i, j int) bool {
		if c.entries[i].Priority != c.entries[j].Priority {
			return c.entries[i].Priority > c.entries[j].Priority
		}
		return c.entries[i].seq < c.entries[j].seq
	})

	log.Debug(log.CatProvider, "registered provider", "name", name, "priority", priority)
	return nil
}

// Of returns the provider registered under name.
func (c *Catalog) Of(name string) (registry.Provider, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.entries {
		if e.Name == name {
			return e.Provider, nil
		}
	}
	return nil, fmt.Errorf("provider %q: %w", name, ErrProviderNotFound)
}

// Current returns the provider with the highest priority.
func (c *Catalog) Current() (registry.Provider, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.entries) == 0 {
		return nil, fmt.Errorf("no providers registered: %w", ErrProviderNotFound)
	}
	return c.entries[0].Provider, nil
}

// CurrentName returns the name of the provider Current returns.
func (c *Catalog) CurrentName() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.entries) == 0 {
		return "", fmt.Errorf("no providers registered: %w", ErrProviderNotFound)
	}
	return c.entries[0].Name, nil
}

// Available returns every registration ordered by descending priority.
func (c *Catalog) Available() []Registration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Registration, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of registered providers.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
