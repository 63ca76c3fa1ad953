// Package mocks provides hand-written mock implementations of the store
// interfaces for testing. Each mock pairs per-method function fields for
// targeted overrides with an in-memory default implementation that
// reproduces the real stores' error semantics.
package mocks
