// Package provider locates registry providers by name or priority. It stands
// in for process-wide service discovery: callers register providers under a
// name and priority, then ask for a specific provider or the current one.
package provider
