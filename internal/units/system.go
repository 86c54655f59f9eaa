package units

import "reflect"

// Unit is a single unit definition carried by a System.
type Unit struct {
	Symbol   string `yaml:"symbol" json:"symbol" toml:"symbol"`
	Name     string `yaml:"name" json:"name" toml:"name"`
	Quantity string `yaml:"quantity,omitempty" json:"quantity,omitempty" toml:"quantity,omitempty"`
}

// System is an immutable named collection of units.
type System interface {
	Name() string
	Units() []Unit
}

// IsNil reports whether s is nil or an interface holding a nil pointer,
// map, slice, func or channel.
func IsNil(s System) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Set is the default System implementation. The zero value is an unnamed,
// empty system; use NewSet to build one.
type Set struct {
	name  string
	units []Unit
}

// NewSet returns a System named name holding a copy of units.
func NewSet(name string, units []Unit) *Set {
	cp := make([]Unit, len(units))
	copy(cp, units)
	return &Set{name: name, units: cp}
}

// Name returns the human-readable system name
// (e.g., "United States Customary Units").
func (s *Set) Name() string {
	return s.name
}

// Units returns a copy of the system's units in declaration order.
func (s *Set) Units() []Unit {
	cp := make([]Unit, len(s.units))
	copy(cp, s.units)
	return cp
}

// Unit returns the unit with the given symbol.
func (s *Set) Unit(symbol string) (Unit, bool) {
	for _, u := range s.units {
		if u.Symbol == symbol {
			return u, true
		}
	}
	return Unit{}, false
}

// Len returns the number of units in the system.
func (s *Set) Len() int {
	return len(s.units)
}

// String implements fmt.Stringer.
func (s *Set) String() string {
	return s.name
}
