// Package internaldefs holds the shared metric name and help-text
// definitions consumed by the Prometheus and OTel exporters. It exists so
// the two exporters render identical series without either importing the
// other.
package internaldefs
