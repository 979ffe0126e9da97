// Package telemetry instruments the selection core with Prometheus
// metrics via github.com/prometheus/client_golang.
// The solver-driving selectors (SelectILP, SelectIterative, SelectSA)
// record their wall time and solver time here; simulated annealing
// additionally records accept/reject counts. Instrumentation is
// additive and never changes selection outcomes.
package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Recorder holds the Prometheus collectors selectors report into.
type Recorder struct {
	WallSeconds   *prometheus.HistogramVec
	SolverSeconds *prometheus.HistogramVec
	SAAccepted    prometheus.Counter
	SARejected    prometheus.Counter
}

// NewRecorder registers collectors on reg and returns a ready Recorder. If
// reg is nil, prometheus.DefaultRegisterer is used.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	r := &Recorder{
		WallSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "pathsel_selector_wall_seconds",
			Help: "Total wall-clock time per selector invocation.",
		}, []string{"selector"}),
		SolverSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "pathsel_selector_solver_seconds",
			Help: "Accumulated solver-internal time per selector invocation.",
		}, []string{"selector"}),
		SAAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathsel_sa_accept_total",
			Help: "Number of simulated-annealing iterations accepted.",
		}),
		SARejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pathsel_sa_reject_total",
			Help: "Number of simulated-annealing iterations rejected.",
		}),
	}

	reg.MustRegister(r.WallSeconds, r.SolverSeconds, r.SAAccepted, r.SARejected)

	return r
}

// ObserveWall records wallSeconds for the named selector. Safe to call
// with a nil Recorder (no-op), so selectors need not special-case an
// absent telemetry dependency.
func (r *Recorder) ObserveWall(selectorName string, wallSeconds float64) {
	if r == nil {
		return
	}
	r.WallSeconds.WithLabelValues(selectorName).Observe(wallSeconds)
}

// ObserveSolver records solverSeconds for the named selector.
func (r *Recorder) ObserveSolver(selectorName string, solverSeconds float64) {
	if r == nil {
		return
	}
	r.SolverSeconds.WithLabelValues(selectorName).Observe(solverSeconds)
}

// Accept increments the SA accept counter.
func (r *Recorder) Accept() {
	if r == nil {
		return
	}
	r.SAAccepted.Inc()
}

// Reject increments the SA reject counter.
func (r *Recorder) Reject() {
	if r == nil {
		return
	}
	r.SARejected.Inc()
}
