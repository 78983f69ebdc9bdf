package gateway

import (
	"context"
	"time"

	"github.com/siso-dis/cdis-gateway/internal/cdis"
	"github.com/siso-dis/cdis-gateway/internal/dis"
	"github.com/siso-dis/cdis-gateway/internal/metrics"
)

// toCdisPolicy maps the config's string policy onto the cdis package's enum.
func toCdisPolicy(p UnknownPolicy) cdis.UnknownPolicy {
	if p == PolicyDrop {
		return cdis.PolicyDrop
	}
	return cdis.PolicyPassthrough
}

// Encoder is the DIS -> C-DIS translation task in spec.md §4.D's topology:
// it reads raw DIS datagrams off in, parses, translates each PDU with
// internal/cdis, re-batches them into a C-DIS datagram, and writes it to
// out. Modeled on collector.Run's ticker-free ctx-driven consume loop.
type Encoder struct {
	policy UnknownPolicy
	bus    *StatsBus
	State  *TaskStateMachine
}

// NewEncoder constructs an Encoder bound to cfg's unknown-PDU policy and a
// StatsBus for EdgeEncoder observations.
func NewEncoder(policy UnknownPolicy, bus *StatsBus) *Encoder {
	return &Encoder{policy: policy, bus: bus, State: NewTaskStateMachine()}
}

// Run drains in until it is closed or ctx is canceled, emitting one encoded
// C-DIS datagram per DIS datagram consumed. A malformed input datagram or an
// unsupported PDU under PolicyDrop is counted as rejected and skipped rather
// than aborting the task, per spec.md §7's partial-failure isolation rule.
func (e *Encoder) Run(ctx context.Context, in <-chan []byte, out chan<- []byte) error {
	e.State.enterRunning()
	defer e.State.enterStopped()

	policy := toCdisPolicy(e.policy)
	for {
		select {
		case datagram, ok := <-in:
			if !ok {
				return nil
			}
			e.translate(datagram, policy, out, ctx)
		case <-ctx.Done():
			e.State.enterDraining()
			e.drain(in, policy, out)
			return nil
		}
	}
}

// drain processes whatever is already buffered in in without blocking,
// satisfying the Draining -> Stopped transition ("empty input queue in
// Draining enters Stopped") in spec.md §4.D.
func (e *Encoder) drain(in <-chan []byte, policy cdis.UnknownPolicy, out chan<- []byte) {
	for {
		select {
		case datagram, ok := <-in:
			if !ok {
				return
			}
			e.translate(datagram, policy, out, context.Background())
		default:
			return
		}
	}
}

func (e *Encoder) translate(datagram []byte, policy cdis.UnknownPolicy, out chan<- []byte, ctx context.Context) {
	start := time.Now()
	pdus, _, errs := dis.ParseMany(datagram)
	for range errs {
		metrics.RejectedCount.WithLabelValues("encoder", "parse_error").Inc()
	}

	encoded := make([]cdis.Pdu, 0, len(pdus))
	for _, pdu := range pdus {
		encodedPdu, err := cdis.Encode(pdu, policy)
		if err != nil {
			metrics.RejectedCount.WithLabelValues("encoder", "unsupported_pdu").Inc()
			continue
		}
		encoded = append(encoded, encodedPdu)
		metrics.EncodeSuccessCount.WithLabelValues("encode", pdu.Body.BodyType().String()).Inc()
	}
	metrics.TranslateLatency.WithLabelValues("encode").Observe(time.Since(start).Seconds())

	if len(encoded) == 0 {
		e.bus.Publish(StatEvent{Edge: EdgeEncoder, Rejected: true, Timestamp: time.Now()})
		return
	}

	wire := cdis.SerializeDatagram(cdis.Header{ProtocolVersion: 0, FullUpdate: true}, encoded)
	select {
	case out <- wire:
	case <-ctx.Done():
	}
	e.bus.Publish(StatEvent{Edge: EdgeEncoder, Count: len(encoded), Timestamp: time.Now()})
}
