package gateway

import (
	"context"
	"time"

	"github.com/siso-dis/cdis-gateway/internal/cdis"
	"github.com/siso-dis/cdis-gateway/internal/dis"
	"github.com/siso-dis/cdis-gateway/internal/metrics"
)

// Decoder is the C-DIS -> DIS translation task mirroring Encoder, per
// spec.md §4.D's topology.
type Decoder struct {
	bus   *StatsBus
	State *TaskStateMachine
}

// NewDecoder constructs a Decoder bound to a StatsBus for EdgeDecoder
// observations.
func NewDecoder(bus *StatsBus) *Decoder {
	return &Decoder{bus: bus, State: NewTaskStateMachine()}
}

// Run drains in until it is closed or ctx is canceled, emitting one decoded
// DIS datagram per C-DIS datagram consumed.
func (d *Decoder) Run(ctx context.Context, in <-chan []byte, out chan<- []byte) error {
	d.State.enterRunning()
	defer d.State.enterStopped()

	for {
		select {
		case datagram, ok := <-in:
			if !ok {
				return nil
			}
			d.translate(datagram, out, ctx)
		case <-ctx.Done():
			d.State.enterDraining()
			d.drain(in, out)
			return nil
		}
	}
}

func (d *Decoder) drain(in <-chan []byte, out chan<- []byte) {
	for {
		select {
		case datagram, ok := <-in:
			if !ok {
				return
			}
			d.translate(datagram, out, context.Background())
		default:
			return
		}
	}
}

func (d *Decoder) translate(datagram []byte, out chan<- []byte, ctx context.Context) {
	start := time.Now()
	_, pdus, err := cdis.ParseDatagram(datagram)
	if err != nil {
		metrics.RejectedCount.WithLabelValues("decoder", "parse_error").Inc()
	}

	decoded := make([]dis.Pdu, 0, len(pdus))
	for _, pdu := range pdus {
		disPdu, err := cdis.Decode(pdu)
		if err != nil {
			metrics.RejectedCount.WithLabelValues("decoder", "unsupported_pdu").Inc()
			continue
		}
		decoded = append(decoded, disPdu)
		metrics.EncodeSuccessCount.WithLabelValues("decode", pdu.Body.PduType().String()).Inc()
	}
	metrics.TranslateLatency.WithLabelValues("decode").Observe(time.Since(start).Seconds())

	if len(decoded) == 0 {
		d.bus.Publish(StatEvent{Edge: EdgeDecoder, Rejected: true, Timestamp: time.Now()})
		return
	}

	wire, err := dis.SerializeMany(decoded, nil)
	if err != nil {
		metrics.RejectedCount.WithLabelValues("decoder", "serialize_error").Inc()
		return
	}
	select {
	case out <- wire:
	case <-ctx.Done():
	}
	d.bus.Publish(StatEvent{Edge: EdgeDecoder, Count: len(decoded), Timestamp: time.Now()})
}
