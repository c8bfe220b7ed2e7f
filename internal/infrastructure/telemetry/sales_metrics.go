package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric"
)

// ErrNilMeter is returned when a metrics set is built without a meter.
var ErrNilMeter = errors.New("meter cannot be nil")

// OrderValueBuckets are bucket boundaries for order totals in JMD.
var OrderValueBuckets = []float64{2500, 5000, 10000, 20000, 40000, 80000, 160000}

// SalesMetrics records order volume per meat type.
type SalesMetrics struct {
	ordersPlaced *Counter
	poundsSold   *FloatCounter
	revenue      *Counter
	orderValue   *Histogram
}

// NewSalesMetrics registers the sales instruments on meter.
func NewSalesMetrics(meter metric.Meter) (*SalesMetrics, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	ordersPlaced, err := NewCounter(meter,
		"meatkonnex_orders_placed_total",
		"Number of orders committed",
		"{order}",
	)
	if err != nil {
		return nil, err
	}

	poundsSold, err := NewFloatCounter(meter,
		"meatkonnex_pounds_sold_total",
		"Pounds of meat sold",
		"[lb_av]",
	)
	if err != nil {
		return nil, err
	}

	revenue, err := NewCounter(meter,
		"meatkonnex_revenue_jmd_total",
		"Order revenue in Jamaican dollars",
		"{JMD}",
	)
	if err != nil {
		return nil, err
	}

	orderValue, err := NewHistogram(meter, HistogramOpts{
		Name:        "meatkonnex_order_value_jmd",
		Description: "Distribution of order totals in Jamaican dollars",
		Unit:        "{JMD}",
		Boundaries:  OrderValueBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &SalesMetrics{
		ordersPlaced: ordersPlaced,
		poundsSold:   poundsSold,
		revenue:      revenue,
		orderValue:   orderValue,
	}, nil
}

// RecordOrderPlaced records one committed order.
func (m *SalesMetrics) RecordOrderPlaced(ctx context.Context, meatType string, pounds float64, totalJMD int64) {
	attr := AttrMeatType.String(meatType)
	m.ordersPlaced.Inc(ctx, attr)
	m.poundsSold.Add(ctx, pounds, attr)
	m.revenue.Add(ctx, totalJMD, attr)
	m.orderValue.Record(ctx, float64(totalJMD), attr)
}
