// Package systems holds the catalogs compiled into the binary: "common"
// (Imperial, United States customary and CGS, default USCustomary) and
// "default" (SI base units). Each catalog is decoded once; the registries and
// the systems they index are process-wide singletons.
package systems
