// Package config manages user-level settings stored at ~/.uomsys/config.yaml.
// It loads, reads and writes keys such as the default provider and the extra
// catalog manifests registered at start-up. Every key can be overridden by a
// UOMSYS_-prefixed environment variable.
package config
