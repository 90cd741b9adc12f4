package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	GuideRequestsTotal   metric.Int64Counter
	GuideDurationSeconds metric.Float64Histogram
	UpstreamErrorsTotal  metric.Int64Counter
	AIFallbacksTotal     metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("WelcomeAnywhere")
		var err error
		m := &AppMetrics{}

		m.GuideRequestsTotal, err = meter.Int64Counter(
			"guide_requests_total",
			metric.WithDescription("Total number of guide generation requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create guide_requests_total: %v", err)
		}

		m.GuideDurationSeconds, err = meter.Float64Histogram(
			"guide_duration_seconds",
			metric.WithDescription("Duration of guide generation in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create guide_duration_seconds: %v", err)
		}

		m.UpstreamErrorsTotal, err = meter.Int64Counter(
			"upstream_errors_total",
			metric.WithDescription("Total geocoder and model call failures absorbed by the fallback chain"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create upstream_errors_total: %v", err)
		}

		m.AIFallbacksTotal, err = meter.Int64Counter(
			"ai_fallbacks_total",
			metric.WithDescription("Total requests that fell back from the AI path to mock generation"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create ai_fallbacks_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the initialized metrics instance, or nil when
// InitAppMetrics has not run.
func Get() *AppMetrics {
	return appMetrics
}
