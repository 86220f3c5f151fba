// Package otel bridges stayauth session counters into an OpenTelemetry
// meter via asynchronous observable instruments. Values are read from the
// manager's snapshot on every collection cycle, so the exporter adds no
// cost to the hot path.
package otel
