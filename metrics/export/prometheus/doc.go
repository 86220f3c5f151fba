// Package prometheus renders stayauth session metrics in the Prometheus
// text exposition format without depending on the Prometheus client
// library. Mount [PrometheusExporter.Handler] on any mux.
package prometheus
