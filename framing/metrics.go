package framing

import (
	"github.com/harlequix/hamming/encoding"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	blocks        *prometheus.CounterVec
	erasedSymbols prometheus.Counter
	candidates    prometheus.Histogram
}

// NewMetrics builds the decoder collectors. If registerer is nil the
// collectors are not registered.
func NewMetrics(registerer prometheus.Registerer, namespace, subsystem string) *Metrics {
	m := Metrics{
		blocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "blocks_decoded",
			Help:      "Number of decoded blocks by outcome",
		}, []string{"status"}),
		erasedSymbols: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "erased_symbols",
			Help:      "Number of erased symbols received",
		}),
		candidates: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "erasure_candidates",
			Help:      "Number of zero-syndrome candidates per block with erasures",
			Buckets:   []float64{0, 1, 2, 4, 8, 16},
		}),
	}

	if registerer != nil {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "hamming"},
			registerer,
		)
		registerer.MustRegister(
			m.blocks,
			m.erasedSymbols,
			m.candidates,
		)
	}

	return &m
}

func (m *Metrics) observe(res encoding.Result) {
	if m == nil {
		return
	}
	m.blocks.WithLabelValues(res.Status.String()).Inc()
	if res.Erasures > 0 {
		m.erasedSymbols.Add(float64(res.Erasures))
		m.candidates.Observe(float64(res.Candidates))
	}
}
