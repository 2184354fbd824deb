// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package beacon

import (
	"context"

	"github.com/DimitrisPapac/GRandLine/common"
)

// DigestSink receives the derived beacon digest for each completed epoch
// (spec §4.5: "emit to the node's observable output").
type DigestSink func(epoch uint64, digest [DigestSize]byte)

// Loop drives the single repeating "broadcast, then collect until
// threshold" round of spec §4.5. It is the sole owner and mutator of the
// aggregator and generator cache it is constructed with; callers interact
// with it only through the inbound/outbound channels, matching the
// single-threaded cooperative scheduling model of spec §5.
type Loop struct {
	params     *Parameters
	proofs     *ProofEngine
	generators *GeneratorCache
	aggregator *Aggregator

	inbound  <-chan SigmaMessage
	outbound chan<- SigmaMessage
	sink     DigestSink

	current uint64
}

// NewLoop constructs a Loop starting at epoch 0 (spec §4.5's initial state:
// Broadcasting at epoch 0).
func NewLoop(
	params *Parameters,
	proofs *ProofEngine,
	generators *GeneratorCache,
	aggregator *Aggregator,
	inbound <-chan SigmaMessage,
	outbound chan<- SigmaMessage,
	sink DigestSink,
) *Loop {
	return &Loop{
		params:     params,
		proofs:     proofs,
		generators: generators,
		aggregator: aggregator,
		inbound:    inbound,
		outbound:   outbound,
		sink:       sink,
	}
}

// Run drives the loop until ctx is cancelled or the inbound channel closes
// (spec §4.5's terminal transition: "inbound channel closed -> stop").
func (l *Loop) Run(ctx context.Context) error {
	if err := l.broadcast(ctx, l.current); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-l.inbound:
			if !ok {
				common.Logger.Info("beacon loop: inbound channel closed, stopping")
				return nil
			}
			if err := l.handle(ctx, m); err != nil {
				return err
			}
		}
	}
}

// broadcast computes this node's contribution for epoch, sends it on the
// outbound channel, and routes it through the same accept path used for
// peer messages (spec §4.5's self-message handling).
func (l *Loop) broadcast(ctx context.Context, epoch uint64) error {
	sigma, pi, err := l.proofs.Prove(epoch)
	if err != nil {
		return NewError(err, "broadcast", epoch, l.params.SelfID())
	}
	msg := SigmaMessage{Epoch: epoch, Sender: l.params.SelfID(), Sigma: sigma, Proof: pi}

	select {
	case l.outbound <- msg:
	case <-ctx.Done():
		return ctx.Err()
	}

	common.Logger.Debugf("beacon loop: broadcast epoch %d", epoch)
	return l.ingest(ctx, msg)
}

// handle applies the cheap, non-cryptographic gates of spec §4.5's
// transition table (stale epoch, out-of-range sender) before handing the
// message to ingest.
func (l *Loop) handle(ctx context.Context, m SigmaMessage) error {
	if m.Epoch < l.current {
		common.Logger.Debugf("beacon loop: dropping stale message from %d for epoch %d (current %d)", m.Sender, m.Epoch, l.current)
		return nil
	}
	if err := m.ValidateBasic(l.params.N()); err != nil {
		common.Logger.Warnf("beacon loop: %s", err)
		return nil
	}
	return l.ingest(ctx, m)
}

// ingest applies the proof and consistency checks and, on success, files
// the contribution. A future-epoch message is accepted and stored without
// advancing (spec §4.5's buffering rule). When the current epoch becomes
// ready, ingest reconstructs, emits the digest, purges, and re-broadcasts
// for the next epoch — recursing through broadcast so a node that is
// already holding enough future contributions emits a run of back-to-back
// beacons without returning to the inbound select in between.
func (l *Loop) ingest(ctx context.Context, m SigmaMessage) error {
	if !l.proofs.Verify(m.Sigma, m.Proof, m.Epoch, m.Sender) {
		common.Logger.Warnf("beacon loop: rejecting sigma from %d for epoch %d: proof failed", m.Sender, m.Epoch)
		return nil
	}
	if !l.proofs.Consistency(m.Sigma, m.Epoch, m.Sender) {
		common.Logger.Warnf("beacon loop: rejecting sigma from %d for epoch %d: consistency failed", m.Sender, m.Epoch)
		return nil
	}

	l.aggregator.Accept(m.Epoch, m.Sender, m.Sigma)

	if m.Epoch != l.current || !l.aggregator.Ready(l.current) {
		return nil
	}

	secret, err := l.aggregator.Reconstruct(l.current)
	if err != nil {
		return NewError(err, "reconstruct", l.current, -1)
	}
	digest := Digest(l.params.Engine(), secret)
	if l.sink != nil {
		l.sink(l.current, digest)
	}
	common.Logger.Infof("beacon loop: epoch %d reconstructed from participants %v", l.current, l.aggregator.PresentIDs(l.current))

	l.aggregator.Purge(l.current, l.generators)
	l.current++

	return l.broadcast(ctx, l.current)
}

// Current returns the epoch the loop is presently collecting contributions
// for.
func (l *Loop) Current() uint64 {
	return l.current
}
