package registry

import "github.com/uom-labs/uomsys/internal/units"

// Entry pairs a canonical name with the system registered under it.
type Entry struct {
	Name   string       // e.g., "USCustomary"
	System units.System // returned by reference on every lookup
}

// Alias maps an alternate name onto a canonical name.
type Alias struct {
	Name   string // e.g., "US"
	Target string // e.g., "USCustomary"
}

// Config is the construction input of a Registry. Entries keep their slice
// order, which is the order Available reports.
type Config struct {
	Entries []Entry
	Aliases []Alias
	Default string
}

// Provider is the contract consumed by provider catalogs and callers of the
// wider framework.
type Provider interface {
	// Default returns the default system.
	Default() units.System
	// ByName resolves name, honoring aliases. A miss returns (nil, false).
	ByName(name string) (units.System, bool)
	// Available returns every registered system in registration order.
	Available() []units.System
}
