package beacon_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	. "github.com/DimitrisPapac/GRandLine/beacon"
	"github.com/DimitrisPapac/GRandLine/crypto/pvss"
	"github.com/DimitrisPapac/GRandLine/curve"
	"github.com/DimitrisPapac/GRandLine/setup"
)

// network wires n loops together through a single shared outbound channel
// fanned out to every loop's inbound channel, emulating the broadcast
// transport without any real sockets.
type network struct {
	loops  []*Loop
	digest []map[uint64][DigestSize]byte
	cancel context.CancelFunc
}

func newNetwork(t *testing.T, n, threshold int) *network {
	t.Helper()

	e, err := curve.Default()
	require.NoError(t, err)

	artifacts, err := setup.Generate(e, curve.BLS12381, n, threshold)
	require.NoError(t, err)

	inbound := make([]chan SigmaMessage, n)
	for i := range inbound {
		inbound[i] = make(chan SigmaMessage, 64)
	}
	shared := make(chan SigmaMessage, 64*n)

	net := &network{loops: make([]*Loop, n), digest: make([]map[uint64][DigestSize]byte, n)}
	for id := 0; id < n; id++ {
		store, err := pvss.NewStore(artifacts.Commitments, id, artifacts.Shares[id].Witness)
		require.NoError(t, err)
		params := NewParameters(e, artifacts.Config, store, artifacts.Shares[id].Share)
		generators := NewGeneratorCache(e)
		proofs := NewProofEngine(params, generators)
		aggregator := NewAggregator(e, threshold)

		net.digest[id] = make(map[uint64][DigestSize]byte)
		id := id
		sink := func(epoch uint64, digest [DigestSize]byte) {
			net.digest[id][epoch] = digest
		}

		net.loops[id] = NewLoop(params, proofs, generators, aggregator, inbound[id], shared, sink)
	}

	ctx, cancel := context.WithCancel(context.Background())
	net.cancel = cancel

	// fan the shared outbound channel out to every participant's inbound.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m := <-shared:
				for _, in := range inbound {
					select {
					case in <- m:
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()

	for _, l := range net.loops {
		l := l
		go l.Run(ctx)
	}

	return net
}

func (n *network) stop() { n.cancel() }

func waitForDigest(t *testing.T, digests map[uint64][DigestSize]byte, epoch uint64) [DigestSize]byte {
	t.Helper()
	deadline := time.After(2 * time.Second)
	tick := time.NewTicker(time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-tick.C:
			if d, ok := digests[epoch]; ok {
				return d
			}
		case <-deadline:
			t.Fatalf("timed out waiting for epoch %d digest", epoch)
		}
	}
}

func TestLoopClusterReconstructsBeaconAcrossEpochs(t *testing.T) {
	net := newNetwork(t, 5, 1)
	defer net.stop()

	for epoch := uint64(0); epoch < 3; epoch++ {
		var first [DigestSize]byte
		for id, digests := range net.digest {
			d := waitForDigest(t, digests, epoch)
			if id == 0 {
				first = d
			} else {
				require.Equal(t, first, d, "epoch %d: participant %d disagrees with participant 0", epoch, id)
			}
		}
	}
}

func TestLoopDropsMalformedMessageWithoutAdvancing(t *testing.T) {
	h := newHarness(t, 5, 1)
	generators := NewGeneratorCache(h.engine)
	pe := NewProofEngine(h.params[0], generators)
	aggregator := NewAggregator(h.engine, h.t)

	inbound := make(chan SigmaMessage, 1)
	outbound := make(chan SigmaMessage, 16)
	received := make(map[uint64][DigestSize]byte)
	loop := NewLoop(h.params[0], pe, generators, aggregator, inbound, outbound, func(epoch uint64, d [DigestSize]byte) {
		received[epoch] = d
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go loop.Run(ctx)

	// drain the node's own epoch-0 broadcast so the outbound channel doesn't fill.
	<-outbound

	// a message with no proof fails ValidateBasic and is dropped with a warning.
	inbound <- SigmaMessage{Epoch: 0, Sender: 4, Sigma: Sigma{}, Proof: nil}

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, uint64(0), loop.Current(), "current epoch must not advance from an invalid message")
	require.Empty(t, received)
}
