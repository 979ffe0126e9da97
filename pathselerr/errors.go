// Package pathselerr defines the sentinel error taxonomy shared across the
// path-selection core. The core reports its own failure cases with these
// sentinels, centralized here instead of scattered across each package;
// errors from the filesystem, YAML decoding, and the solver are returned
// unchanged.
package pathselerr

import "errors"

// Selector-governance sentinels.
var (
	// ErrUnsolvable indicates the solver returned no feasible solution and the
	// selector cannot proceed.
	ErrUnsolvable = errors.New("pathsel: solver returned no feasible solution")

	// ErrInvalidConfig indicates an unknown enum value for sort/expel/replace/
	// cluster method; reported to the caller, no retry.
	ErrInvalidConfig = errors.New("pathsel: invalid configuration value")

	// ErrUnknownPathVariant indicates a path sequence contains a variant the
	// consumer does not know how to bucket.
	ErrUnknownPathVariant = errors.New("pathsel: unknown path variant")

	// ErrNoMoreCandidates indicates the pathtree replace policy could not
	// draw enough distinct masked candidates from its PathTree within the
	// retry budget (or had no tree to draw from).
	ErrNoMoreCandidates = errors.New("pathsel: replace policy exhausted retry budget")
)

// Input-shape sentinels.
var (
	// ErrNilTopology indicates a nil *topology.Topology was passed in.
	ErrNilTopology = errors.New("pathsel: topology is nil")

	// ErrUnknownTC indicates an operation referenced a traffic class ID that
	// is not present in the PPTC.
	ErrUnknownTC = errors.New("pathsel: traffic class not found")

	// ErrMaskLengthMismatch indicates mask.size != total candidate count
	// for the targeted traffic class.
	ErrMaskLengthMismatch = errors.New("pathsel: mask length does not match candidate count")

	// ErrNoApplications indicates a selector was invoked with zero applications.
	ErrNoApplications = errors.New("pathsel: no applications supplied")
)
