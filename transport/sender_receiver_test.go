package transport_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DimitrisPapac/GRandLine/beacon"
	"github.com/DimitrisPapac/GRandLine/crypto/dleq"
	"github.com/DimitrisPapac/GRandLine/curve"
	. "github.com/DimitrisPapac/GRandLine/transport"
)

func freeLoopbackAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func sampleSigmaMessage(t *testing.T, e curve.Engine, epoch uint64, sender int) *beacon.SigmaMessage {
	t.Helper()
	g1, g2 := curve.Generators()

	a, err := e.RandomScalar()
	require.NoError(t, err)
	u := e.G2ScalarMul(g2, a)
	v, err := e.Pair(g1, g2)
	require.NoError(t, err)
	pi, err := dleq.Prove(e, g2, g2, a)
	require.NoError(t, err)

	return &beacon.SigmaMessage{Epoch: epoch, Sender: sender, Sigma: beacon.Sigma{U: u, V: v}, Proof: pi}
}

func TestSenderReceiverDeliversOverLoopback(t *testing.T) {
	e, err := curve.Default()
	require.NoError(t, err)

	addr := freeLoopbackAddress(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deliver := make(chan *beacon.SigmaMessage, 4)
	receiver := NewReceiver(e, addr)
	go receiver.Run(ctx, deliver)

	// give the listener a moment to bind before the sender dials it.
	time.Sleep(20 * time.Millisecond)

	sender := NewSender(e, []string{addr})
	outbound := make(chan *beacon.SigmaMessage, 4)
	go sender.Run(ctx, outbound)

	want := sampleSigmaMessage(t, e, 5, 2)
	outbound <- want

	select {
	case got := <-deliver:
		assert.Equal(t, want.Epoch, got.Epoch)
		assert.Equal(t, want.Sender, got.Sender)
		assert.True(t, e.G2Equal(want.Sigma.U, got.Sigma.U))
		assert.True(t, e.GTEqual(want.Sigma.V, got.Sigma.V))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivered message")
	}
}

func TestReceiverRunFailsOnUnbindableAddress(t *testing.T) {
	e, err := curve.Default()
	require.NoError(t, err)

	// "not-an-address" is not parseable as host:port, so binding it fails.
	receiver := NewReceiver(e, "not-an-address")
	err = receiver.Run(context.Background(), make(chan *beacon.SigmaMessage))
	assert.Error(t, err)
}
