// Package units defines the System value indexed by the registry: an
// immutable, named collection of unit definitions. It carries no conversion
// logic; callers treat a System as an opaque value with an identity and a name.
package units
