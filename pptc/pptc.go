package pptc

import (
	"sort"

	"github.com/katalvlaran/pathsel/pathselerr"
)

// entry holds one traffic class's candidate sequence and its mask. Mask
// value true means masked out/hidden; false means selected/visible.
type entry struct {
	tc   TrafficClass
	mask []bool
}

// PPTC maps a traffic class to (candidate path sequence, boolean mask of
// equal length). Paths are never deleted, only masked.
// Not safe for concurrent mutation across goroutines — the core is
// single-threaded and synchronous, and a selector owns exclusive access
// to a PPTC for the duration of its call.
type PPTC struct {
	order []TCID
	byID  map[TCID]*entry
}

// New builds an empty PPTC.
func New() *PPTC {
	return &PPTC{byID: make(map[TCID]*entry)}
}

// FromTrafficClasses builds a PPTC from a set of traffic classes, seeding
// every mask to all-visible (all false). This is the construction path
// every selector runs through on entry.
func FromTrafficClasses(tcs []TrafficClass) *PPTC {
	p := New()
	for _, tc := range tcs {
		p.order = append(p.order, tc.ID)
		p.byID[tc.ID] = &entry{
			tc:   tc,
			mask: make([]bool, len(tc.Candidates)),
		}
	}

	return p
}

func (p *PPTC) get(tc TCID) (*entry, error) {
	e, ok := p.byID[tc]
	if !ok {
		return nil, pathselerr.ErrUnknownTC
	}

	return e, nil
}

// AllPaths returns the full candidate sequence for tc, masked or not.
func (p *PPTC) AllPaths(tc TCID) ([]Path, error) {
	e, err := p.get(tc)
	if err != nil {
		return nil, err
	}

	return e.tc.Candidates, nil
}

// TC returns the TrafficClass record for tc.
func (p *PPTC) TC(tc TCID) (TrafficClass, error) {
	e, err := p.get(tc)
	if err != nil {
		return TrafficClass{}, err
	}

	return e.tc, nil
}

// NumPaths returns the candidate count for tc. If all is false, only
// visible (unmasked) paths are counted.
func (p *PPTC) NumPaths(tc TCID, all bool) (int, error) {
	e, err := p.get(tc)
	if err != nil {
		return 0, err
	}
	if all {
		return len(e.mask), nil
	}

	var n int
	for _, masked := range e.mask {
		if !masked {
			n++
		}
	}

	return n, nil
}

// Mask replaces the mask for tc. len(m) must equal the total candidate
// count; returns ErrMaskLengthMismatch otherwise.
func (p *PPTC) Mask(tc TCID, m []bool) error {
	e, err := p.get(tc)
	if err != nil {
		return err
	}
	if len(m) != len(e.mask) {
		return pathselerr.ErrMaskLengthMismatch
	}
	copy(e.mask, m)

	return nil
}

// Unmask clears the mask for tc (all candidates become visible).
func (p *PPTC) Unmask(tc TCID) error {
	e, err := p.get(tc)
	if err != nil {
		return err
	}
	for i := range e.mask {
		e.mask[i] = false
	}

	return nil
}

// GetMask returns a mutable reference to tc's current mask. Callers mutate
// it in place; mutations are visible immediately, so a selector step that
// partially updates a mask before failing leaves the partial update in
// place rather than rolling it back.
func (p *PPTC) GetMask(tc TCID) ([]bool, error) {
	e, err := p.get(tc)
	if err != nil {
		return nil, err
	}

	return e.mask, nil
}

// MaxPaths returns the maximum candidate count across all traffic classes.
// If all is false, only visible candidates count toward the maximum.
func (p *PPTC) MaxPaths(all bool) int {
	var maxN int
	for _, tc := range p.order {
		n, _ := p.NumPaths(tc, all)
		if n > maxN {
			maxN = n
		}
	}

	return maxN
}

// TCs returns traffic-class IDs in a stable order: insertion order for a
// PPTC built by FromTrafficClasses, ascending ID order for one built by
// Merge. Path ordering within a TC stays stable across the whole
// selection run.
func (p *PPTC) TCs() []TCID {
	out := make([]TCID, len(p.order))
	copy(out, p.order)

	return out
}

// Merge unions several PPTCs into one new PPTC. Traffic classes must be
// disjoint across inputs; a later PPTC's entry for a TCID already seen
// overwrites the earlier one, mirroring map-union semantics.
func Merge(list []*PPTC) *PPTC {
	out := New()
	for _, p := range list {
		if p == nil {
			continue
		}
		for _, tc := range p.order {
			e := p.byID[tc]
			if _, exists := out.byID[tc]; !exists {
				out.order = append(out.order, tc)
			}
			maskCopy := make([]bool, len(e.mask))
			copy(maskCopy, e.mask)
			out.byID[tc] = &entry{tc: e.tc, mask: maskCopy}
		}
	}
	// Keep iteration order deterministic even if inputs arrive unordered.
	sort.Slice(out.order, func(i, j int) bool { return out.order[i] < out.order[j] })

	return out
}
