package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// SetupPrometheus creates the service registry: build info, go runtime (gc and
// memory) and process collectors, plus any extra collectors given.
func SetupPrometheus(extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsGC, collectors.MetricsMemory),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, c := range extraCollectors {
		if c != nil {
			promRegistry.MustRegister(c)
		}
	}
	return promRegistry
}

// Handler exposes the registry for scraping. Scrapes are traced and counted
// in the registry itself.
func Handler(promRegistry *prometheus.Registry) http.Handler {
	return otelhttp.NewHandler(
		promhttp.InstrumentMetricHandler(
			promRegistry,
			promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{
				ErrorLog:          log.StandardLogger(),
				ErrorHandling:     promhttp.ContinueOnError,
				Registry:          promRegistry,
				EnableOpenMetrics: false,
			}),
		),
		"metrics",
	)
}
