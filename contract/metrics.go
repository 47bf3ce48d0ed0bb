package contract

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// contractMetrics is optional; every method is a no-op on a nil receiver.
type contractMetrics struct {
	operations       *prometheus.CounterVec
	daosCreated      prometheus.Counter
	votesCast        prometheus.Counter
	proposalsSettled *prometheus.CounterVec
	treasuryMoved    *prometheus.CounterVec
}

func (m *contractMetrics) init(promRegistry prometheus.Registerer) {
	promautoFactory := promauto.With(promRegistry)
	m.operations = promautoFactory.NewCounterVec(prometheus.CounterOpts{
		Name: "okinoko_operations_total",
		Help: "governance calls by operation and result",
	}, []string{"op", "result"})
	m.daosCreated = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "okinoko_daos_created_total",
		Help: "number of daos created",
	})
	m.votesCast = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "okinoko_votes_cast_total",
		Help: "number of votes cast",
	})
	m.proposalsSettled = promautoFactory.NewCounterVec(prometheus.CounterOpts{
		Name: "okinoko_proposals_settled_total",
		Help: "settled proposals by outcome",
	}, []string{"outcome"})
	m.treasuryMoved = promautoFactory.NewCounterVec(prometheus.CounterOpts{
		Name: "okinoko_treasury_moved_total",
		Help: "native value moved in or out of dao treasuries",
	}, []string{"direction"})
}

// observe counts one call. result is "ok" or the error kind symbol.
func (m *contractMetrics) observe(op string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
		if kind, ok := KindOf(err); ok {
			result = kind.String()
		}
	}
	m.operations.WithLabelValues(op, result).Inc()
}

func (m *contractMetrics) daoCreated() {
	if m == nil {
		return
	}
	m.daosCreated.Inc()
}

func (m *contractMetrics) voteCast() {
	if m == nil {
		return
	}
	m.votesCast.Inc()
}

func (m *contractMetrics) proposalSettled(outcome string) {
	if m == nil {
		return
	}
	m.proposalsSettled.WithLabelValues(outcome).Inc()
}

func (m *contractMetrics) moved(direction string, amount uint64) {
	if m == nil {
		return
	}
	m.treasuryMoved.WithLabelValues(direction).Add(float64(amount))
}
