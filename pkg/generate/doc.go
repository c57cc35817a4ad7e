// Package generate builds the benchmark graph corpus from named random-graph models
// and synthesizes edge weights.
//
// Every generator draws only from the *rng.Source it is given and visits its
// random choices in a fixed order, so a fixed seed reproduces the exact edge list
// (edge identifiers included). Parameters are validated up front; out-of-domain
// values fail with graph.ErrInvalidParameter rather than being clamped.
package generate
