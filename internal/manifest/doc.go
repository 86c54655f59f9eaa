// Package manifest handles parsing and validation of catalog manifests. A
// catalog manifest describes one provider: its systems of units, the aliases
// that resolve onto them and the default system. Manifests may be written in
// YAML, JSON or TOML and are validated against an embedded JSON Schema before
// being turned into a registry.Config.
package manifest
