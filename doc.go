// Package pathsel is the path-selection core of a network-optimization
// framework. Given a set of applications, each carrying traffic classes
// with candidate end-to-end paths over a network topology, it chooses a
// small subset of paths per traffic class so that a downstream optimizer
// can compose a high-quality solution without considering every candidate.
//
// Subpackages:
//
//	topology/  — resource-bearing graph, diameter, total-resource accounting
//	pptc/      — Paths-Per-Traffic-Class mask container
//	score/     — length/resource/path scoring
//	pathtree/  — round-robin bucket index over candidate paths
//	solver/    — the external optimizer contract this core drives
//	expel/     — mask-shrinking policies
//	replace/   — mask-growing policies
//	selector/  — the six top-level selection strategies
//	cluster/   — traffic-volume clustering preprocessor
//	rng/       — deterministic seeded RNG plumbing
//	obslog/    — injectable structured-event observer
//	telemetry/ — Prometheus instrumentation
//	netconfig/ — network configuration data model
//
// The core is single-threaded and synchronous: selectors execute
// sequentially, solver calls are blocking, and the only nondeterminism is
// the seeded RNG threaded through every random draw.
package pathsel
