// Package metrics defines prometheus metric types and provides convenience
// methods to add accounting to the gateway pipeline.
//
// When defining new operations or metrics, these are helpful values to
// track:
//   - things coming into or going out of the system: datagrams, PDUs, bytes.
//   - the success or error status of any of the above.
//   - the distribution of processing latency.
package metrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PacketsReceived counts datagrams read off a UDP socket, labeled by
	// endpoint ("dis" or "cdis").
	PacketsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdisgw_packets_received_total",
			Help: "Number of datagrams received on a socket endpoint.",
		}, []string{"endpoint"})

	// BytesReceived counts octets read off a UDP socket, labeled by endpoint.
	BytesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdisgw_bytes_received_total",
			Help: "Number of bytes received on a socket endpoint.",
		}, []string{"endpoint"})

	// EncodeSuccessCount counts successful DIS<->C-DIS translations, labeled
	// by translation direction ("encode" or "decode") and PduType name.
	EncodeSuccessCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdisgw_translate_success_total",
			Help: "Number of PDUs successfully translated.",
		}, []string{"direction", "pdu_type"})

	// RejectedCount counts PDUs dropped for any reason: parse failure,
	// serialize failure, unsupported type under drop policy, or channel
	// back-pressure.
	RejectedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdisgw_rejected_total",
			Help: "Number of PDUs rejected, labeled by stage and reason.",
		}, []string{"stage", "reason"})

	// ChannelDepth tracks the current occupancy of a pipeline edge.
	ChannelDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cdisgw_channel_depth",
			Help: "Current number of queued items on a pipeline edge.",
		}, []string{"edge"})

	// TranslateLatency tracks the wall-clock cost of translating one
	// datagram (all the PDUs it carries).
	TranslateLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cdisgw_translate_latency_seconds",
			Help:    "Per-datagram translation latency distribution.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16),
		}, []string{"direction"})

	// TaskRestarts counts task-supervisor restarts, labeled by task name.
	TaskRestarts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdisgw_task_restarts_total",
			Help: "Number of times a pipeline task was restarted after a crash.",
		}, []string{"task"})
)

// init prints a log message to let the user know the package has been
// loaded and the metrics registered. Registration happens automatically
// on import, and the exact time it occurs (and whether it occurs at all in
// a given binary) can otherwise be opaque.
func init() {
	log.Println("Prometheus metrics in cdis-gateway/metrics are registered.")
}
