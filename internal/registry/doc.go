// Package registry resolves symbolic names to systems of units. A Registry is
// built once from a Config holding canonical entries, aliases and a default
// name; construction validates the configuration and the resulting tables are
// read-only, so lookups are safe from any number of goroutines.
package registry
