package widget

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var widgetRenders = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "feeds",
	Name:      "widget_renders_total",
	Help:      "Widget load cycles by result",
}, []string{"result"})
