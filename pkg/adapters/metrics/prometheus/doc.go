// Package prometheus provides the Prometheus metrics collector.
package prometheus
