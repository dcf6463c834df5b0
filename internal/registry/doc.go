// Package registry provides the central "glue" between the command line and
// the artifact compilers.
//
// The Registry stores mappings between the generator names used on the
// command line (e.g., "playbook") and the factories that build the Go
// implementation of each artifact. During application startup, the registry
// is populated and then validated so that every registered generator is known
// to resolve to a well-formed schema name before any input is read.
package registry
