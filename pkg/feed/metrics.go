package feed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK       = "ok"
	resultError    = "error"
	resultCacheHit = "cache_hit"
)

var (
	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feeds",
		Name:      "fetch_total",
		Help:      "Feed text requests by result",
	}, []string{"result"})

	normalizedItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feeds",
		Name:      "normalized_items_total",
		Help:      "Items produced by normalizers by feed format",
	}, []string{"format"})
)
