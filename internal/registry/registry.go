package registry

import (
	"errors"
	"fmt"

	"github.com/uom-labs/uomsys/internal/units"
)

// Registry is an immutable name → system index with alias and default
// resolution. Create one with New.
type Registry struct {
	names       []string
	systems     map[string]units.System
	aliasNames  []string
	aliases     map[string]string
	defaultName string
}

var _ Provider = (*Registry)(nil)

// New validates cfg and builds a Registry from it. All problems found are
// reported together; each one is a *ConfigError wrapping ErrInvalidConfig.
func New(cfg Config) (*Registry, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	r := &Registry{
		names:       make([]string, 0, len(cfg.Entries)),
		systems:     make(map[string]units.System, len(cfg.Entries)),
		aliasNames:  make([]string, 0, len(cfg.Aliases)),
		aliases:     make(map[string]string, len(cfg.Aliases)),
		defaultName: cfg.Default,
	}
	for _, e := range cfg.Entries {
		r.names = append(r.names, e.Name)
		r.systems[e.Name] = e.System
	}
	for _, a := range cfg.Aliases {
		if _, seen := r.aliases[a.Name]; seen {
			continue
		}
		r.aliasNames = append(r.aliasNames, a.Name)
		r.aliases[a.Name] = a.Target
	}
	return r, nil
}

// MustNew is like New but panics on an invalid configuration. It is meant for
// configurations fixed at compile time.
func MustNew(cfg Config) *Registry {
	r, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	return r
}

// validate checks every construction invariant and joins the failures.
func validate(cfg Config) error {
	var errs []error
	add := func(field, name, reason string) {
		errs = append(errs, &ConfigError{Field: field, Name: name, Reason: reason})
	}

	canonical := make(map[string]bool, len(cfg.Entries))
	for i, e := range cfg.Entries {
		switch {
		case e.Name == "":
			add("entry", "", fmt.Sprintf("entry %d has an empty name", i))
		case canonical[e.Name]:
			add("entry", e.Name, "duplicate canonical name")
		case units.IsNil(e.System):
			add("entry", e.Name, "no system of units")
		}
		if e.Name != "" {
			canonical[e.Name] = true
		}
	}

	targets := make(map[string]string, len(cfg.Aliases))
	for i, a := range cfg.Aliases {
		if a.Name == "" {
			add("alias", "", fmt.Sprintf("alias %d has an empty name", i))
			continue
		}
		if canonical[a.Name] {
			add("alias", a.Name, "shadows a canonical name")
			continue
		}
		if prev, seen := targets[a.Name]; seen {
			if prev != a.Target {
				add("alias", a.Name, fmt.Sprintf("maps to both %q and %q", prev, a.Target))
			}
			continue
		}
		targets[a.Name] = a.Target
		switch {
		case a.Target == "":
			add("alias", a.Name, "empty target")
		case !canonical[a.Target]:
			add("alias", a.Name, fmt.Sprintf("target %q is not a registered system", a.Target))
		}
	}

	switch {
	case cfg.Default == "":
		add("default", "", "no default system named")
	case !canonical[cfg.Default]:
		add("default", cfg.Default, "not a registered system")
	}

	return errors.Join(errs...)
}

// Default returns the system registered under the default name.
func (r *Registry) Default() units.System {
	return r.systems[r.defaultName]
}

// DefaultName returns the canonical name of the default system.
func (r *Registry) DefaultName() string {
	return r.defaultName
}

// ByName returns the system registered under name or under the canonical
// name name is an alias of. Matching is exact. A miss returns (nil, false).
func (r *Registry) ByName(name string) (units.System, bool) {
	s, ok := r.systems[r.canonical(name)]
	return s, ok
}

// Resolve returns the canonical name a query for name resolves to.
func (r *Registry) Resolve(name string) (string, bool) {
	c := r.canonical(name)
	if _, ok := r.systems[c]; !ok {
		return "", false
	}
	return c, true
}

func (r *Registry) canonical(name string) string {
	if target := r.aliases[name]; target != "" {
		return target
	}
	return name
}

// Available returns every registered system in registration order. The
// returned slice is a copy.
func (r *Registry) Available() []units.System {
	out := make([]units.System, len(r.names))
	for i, n := range r.names {
		out[i] = r.systems[n]
	}
	return out
}

// Names returns the canonical names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Aliases returns the alias table in registration order.
func (r *Registry) Aliases() []Alias {
	out := make([]Alias, len(r.aliasNames))
	for i, n := range r.aliasNames {
		out[i] = Alias{Name: n, Target: r.aliases[n]}
	}
	return out
}

// AliasesOf returns the aliases that resolve to canonical.
func (r *Registry) AliasesOf(canonical string) []string {
	var out []string
	for _, n := range r.aliasNames {
		if r.aliases[n] == canonical {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of canonical entries.
func (r *Registry) Len() int {
	return len(r.names)
}
