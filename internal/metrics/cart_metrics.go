package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics holds counters for register cart activity.
// A nil *CartMetrics is valid and records nothing.
type CartMetrics struct {
	itemsAdded      prometheus.Counter
	quantityClamped *prometheus.CounterVec
	checkouts       *prometheus.CounterVec
	saleTotal       prometheus.Histogram
}

// NewCartMetrics registers the cart metrics with the default registerer
func NewCartMetrics() *CartMetrics {
	return NewCartMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewCartMetricsWithRegisterer registers the cart metrics with registerer
func NewCartMetricsWithRegisterer(registerer prometheus.Registerer) *CartMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CartMetrics{
		itemsAdded: register(registerer, prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_cart_items_added_total",
			Help: "Total number of add-item operations on register carts",
		})),
		quantityClamped: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_cart_quantity_clamped_total",
			Help: "Total number of cart mutations whose quantity was capped at the stock ceiling",
		}, []string{"operation"})),
		checkouts: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_checkouts_total",
			Help: "Total number of checkouts by outcome",
		}, []string{"outcome"})),
		saleTotal: register(registerer, prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pos_sale_final_total",
			Help:    "Final payable total of submitted sales",
			Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		})),
	}
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) T {
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(T)
			if !ok {
				panic(fmt.Sprintf("collector already registered with unexpected type: %T", alreadyRegistered.ExistingCollector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector: %v", err))
	}
	return collector
}

// RecordItemAdded counts an add-item operation
func (m *CartMetrics) RecordItemAdded() {
	if m == nil {
		return
	}
	m.itemsAdded.Inc()
}

// RecordClamp counts a quantity capped at stock by operation
func (m *CartMetrics) RecordClamp(operation string) {
	if m == nil {
		return
	}
	m.quantityClamped.WithLabelValues(operation).Inc()
}

// RecordCheckout counts a checkout attempt and, when submitted, observes its total
func (m *CartMetrics) RecordCheckout(submitted bool, finalTotal float64) {
	if m == nil {
		return
	}
	if !submitted {
		m.checkouts.WithLabelValues("failed").Inc()
		return
	}
	m.checkouts.WithLabelValues("submitted").Inc()
	m.saleTotal.Observe(finalTotal)
}
