package padelelo

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the settlement collectors. A nil *Metrics records nothing.
type Metrics struct {
	Settlements *prometheus.CounterVec
	Deltas      *prometheus.HistogramVec
}

// NewMetrics registers the settlement collectors on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "padelelo",
			Name:      "settlements_total",
			Help:      "Settled events by kind and status.",
		}, []string{"kind", "status"}),
		Deltas: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "padelelo",
			Name:      "rating_delta",
			Help:      "Absolute rating change per player.",
			Buckets:   []float64{1, 5, 10, 20, 30, 50, 75, 100},
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{m.Settlements, m.Deltas} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(st *Settlement) {
	if m == nil {
		return
	}
	kind := string(st.Kind)
	m.Settlements.WithLabelValues(kind, "ok").Inc()
	for _, c := range st.Changes {
		m.Deltas.WithLabelValues(kind).Observe(math.Abs(float64(c.Delta)))
	}
}

func (m *Metrics) rejected(kind EventKind) {
	if m == nil {
		return
	}
	m.Settlements.WithLabelValues(string(kind), "rejected").Inc()
}
