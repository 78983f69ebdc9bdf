package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siso-dis/cdis-gateway/internal/dis"
)

func TestEncoderTranslatesFireDatagram(t *testing.T) {
	fire := dis.NewFire(
		dis.WithFiringEntityID(dis.EntityId{Site: 1, Application: 1, Entity: 10}),
		dis.WithTargetEntityID(dis.EntityId{Site: 2, Application: 1, Entity: 5}),
		dis.WithFireRange(1500.0),
	)
	wire, _, err := dis.Serialize(dis.Pdu{Body: fire}, nil)
	require.NoError(t, err)

	in := make(chan []byte, 1)
	out := make(chan []byte, 1)
	bus := NewStatsBus()
	enc := NewEncoder(PolicyPassthrough, bus)

	ctx, cancel := context.WithCancel(context.Background())
	in <- wire

	done := make(chan error, 1)
	go func() { done <- enc.Run(ctx, in, out) }()

	select {
	case encoded := <-out:
		assert.NotEmpty(t, encoded)
	case <-time.After(time.Second):
		t.Fatal("encoder produced no output")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("encoder.Run did not return after cancel")
	}
	assert.Equal(t, TaskStopped, enc.State.State())
}

func TestEncoderDropPolicyRejectsUnsupportedPdu(t *testing.T) {
	other := dis.Other{ActualType: 250, RawBytes: []byte{0x01}}
	pdu := dis.Pdu{Header: dis.Header{ProtocolVersion: dis.ProtocolVersion7, PduType: 250}, Body: other}
	wire, _, err := dis.Serialize(pdu, nil)
	require.NoError(t, err)

	in := make(chan []byte, 1)
	out := make(chan []byte, 1)
	bus := NewStatsBus()
	enc := NewEncoder(PolicyDrop, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := bus.Subscribe(ctx)
	in <- wire
	go enc.Run(ctx, in, out)

	select {
	case event := <-sub:
		assert.True(t, event.Rejected)
		assert.Equal(t, EdgeEncoder, event.Edge)
	case <-time.After(time.Second):
		t.Fatal("no rejection event observed")
	}

	select {
	case <-out:
		t.Fatal("no datagram should be emitted under PolicyDrop")
	case <-time.After(100 * time.Millisecond):
	}
}
