// Package mock provides deterministic test doubles for the ai capability
// interfaces. Each mock exposes function fields for injecting behavior and
// call counters for assertions; defaults are deterministic so tests are
// reproducible without a live model.
package mock
