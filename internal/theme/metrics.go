package theme

import "github.com/prometheus/client_golang/prometheus"

var (
	appliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authdeck_theme_applies_total",
			Help: "Theme state changes applied, by operation.",
		},
		[]string{"operation"},
	)
	rejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authdeck_theme_rejections_total",
			Help: "Theme operations rejected by validation, by operation.",
		},
		[]string{"operation"},
	)
	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authdeck_theme_transitions_total",
			Help: "Variant switches by transition outcome (instant, animated, restarted).",
		},
		[]string{"outcome"},
	)
	persistFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "authdeck_theme_persist_failures_total",
			Help: "Theme preference reads or writes that failed.",
		},
	)
)

func init() {
	prometheus.MustRegister(appliesTotal, rejectionsTotal, transitionsTotal, persistFailuresTotal)
}
