// Package pptc implements the Paths-Per-Traffic-Class container: a mapping
// from traffic class to its ordered candidate path sequence plus a boolean
// mask, and the TrafficClass/Path data model it operates over.
//
// Path variants are a tagged-union-by-interface rather than a single
// struct carrying an optional-middlebox flag: here a
// Path either is a PlainPath or carries an ordered Middleboxes list, and
// both satisfy the Path interface so PathTree and scoring code need not
// type-switch at every call site.
package pptc

// TCID uniquely identifies a traffic class within a selection run.
type TCID int

// Path is the capability trait every candidate path variant satisfies:
// nodes, length, and an optional middlebox sequence, so callers need not
// type-switch on the concrete variant.
type Path interface {
	// Nodes returns the ordered node-ID sequence of the route.
	Nodes() []int
	// Len returns the node count.
	Len() int
	// Middleboxes returns the ordered middlebox node IDs this path traverses,
	// or nil for a PlainPath.
	Middleboxes() []int
}

// PlainPath is a route described only by its node sequence.
type PlainPath struct {
	NodeSeq []int
}

func (p PlainPath) Nodes() []int        { return p.NodeSeq }
func (p PlainPath) Len() int            { return len(p.NodeSeq) }
func (p PlainPath) Middleboxes() []int  { return nil }

// MiddleboxPath is a route that additionally carries an ordered list of
// middlebox nodes it traverses, used by PathTree bucketing.
type MiddleboxPath struct {
	NodeSeq []int
	Mboxes  []int
}

func (p MiddleboxPath) Nodes() []int       { return p.NodeSeq }
func (p MiddleboxPath) Len() int           { return len(p.NodeSeq) }
func (p MiddleboxPath) Middleboxes() []int { return p.Mboxes }

// TrafficClass aggregates flows sharing a common ingress/egress, priority,
// and per-epoch volume profile.
type TrafficClass struct {
	ID         TCID
	Ingress    int
	Egress     int
	Priority   int
	VolFlows   [][]float64 // epoch -> volume vector (may be replaced by clustering)
	SrcPrefix  string
	DstPrefix  string
	Candidates []Path
}
