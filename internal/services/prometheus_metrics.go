package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricReportGenerated   = "report_generated"
	MetricReportDuration    = "report_duration"
	MetricInsightEmitted    = "insight_emitted"
	MetricBudgetUtilization = "budget_utilization"
	MetricCashFlow          = "cash_flow"
)

type PrometheusMetrics struct {
	reportsTotal      *prometheus.CounterVec
	reportDuration    *prometheus.HistogramVec
	insightsTotal     *prometheus.CounterVec
	budgetUtilization prometheus.Gauge
	cashFlow          prometheus.Gauge
}

// NewPrometheusMetrics registers the report collectors with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		reportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_requests_total",
				Help: "Total number of report generations by outcome",
			},
			[]string{"report", "status"},
		),
		reportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_duration_milliseconds",
				Help:    "Report generation duration in milliseconds, reads included",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"report"},
		),
		insightsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insights_generated_total",
				Help: "Total number of insights emitted by type and severity",
			},
			[]string{"type", "severity"},
		),
		budgetUtilization: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_budget_utilization_percent",
				Help: "Portfolio budget utilization at the last dashboard summary",
			},
		),
		cashFlow: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_recent_cash_flow",
				Help: "Net cash flow over the recent transaction window at the last dashboard summary",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricReportGenerated:
		m.reportsTotal.WithLabelValues(tags["report"], tags["status"]).Inc()
	case MetricInsightEmitted:
		m.insightsTotal.WithLabelValues(tags["type"], tags["severity"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration, tags map[string]string) {
	if name == MetricReportDuration {
		m.reportDuration.WithLabelValues(tags["report"]).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricBudgetUtilization:
		m.budgetUtilization.Set(value)
	case MetricCashFlow:
		m.cashFlow.Set(value)
	}
}
