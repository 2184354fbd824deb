// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Command beacon-node runs a single participant of the randomness beacon
// described by spec §4-§6. Usage: beacon-node <node_id> <addresses_file>
// [log_level].
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/DimitrisPapac/GRandLine/beacon"
	"github.com/DimitrisPapac/GRandLine/common"
	"github.com/DimitrisPapac/GRandLine/curve"
	"github.com/DimitrisPapac/GRandLine/setup"
	"github.com/DimitrisPapac/GRandLine/transport"
)

// outboundQueueSize is the bounded outbound queue spec §5 specifies
// (1,000 messages).
const outboundQueueSize = 1000

func main() {
	if len(os.Args) < 3 || len(os.Args) > 4 {
		fmt.Fprintln(os.Stderr, "usage: beacon-node <node_id> <addresses_file> [log_level]")
		os.Exit(1)
	}

	nodeID, err := strconv.Atoi(os.Args[1])
	if err != nil || nodeID < 0 {
		fmt.Fprintf(os.Stderr, "beacon-node: invalid node_id %q\n", os.Args[1])
		os.Exit(1)
	}
	addressesFile := os.Args[2]

	logLevel := "info"
	if len(os.Args) == 4 {
		logLevel = os.Args[3]
	}
	if err := common.SetLogLevel(logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "beacon-node: invalid log level %q: %s\n", logLevel, err)
		os.Exit(1)
	}

	if err := run(nodeID, addressesFile); err != nil {
		common.Logger.Errorf("beacon-node: %s", err)
		os.Exit(1)
	}
}

func run(nodeID int, addressesFile string) error {
	addresses, err := transport.ParseAddresses(addressesFile)
	if err != nil {
		return err
	}
	n := len(addresses)
	if nodeID >= n {
		return fmt.Errorf("node id %d out of range for %d addresses", nodeID, n)
	}
	t := n/2 - 1

	engine, err := curve.Default()
	if err != nil {
		return err
	}

	params, qualified, err := setup.Load(engine, curve.BLS12381, "configs", n, t, nodeID)
	if err != nil {
		return fmt.Errorf("load setup: %w", err)
	}
	for id, ok := range qualified {
		if !ok {
			common.Logger.Warnf("beacon-node: participant %d failed qualification and will be ignored", id)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		common.Logger.Info("beacon-node: shutting down")
		cancel()
	}()

	generators := beacon.NewGeneratorCache(engine)
	proofs := beacon.NewProofEngine(params, generators)
	aggregator := beacon.NewAggregator(engine, params.T())

	loopIn := make(chan beacon.SigmaMessage, outboundQueueSize)
	loopOut := make(chan beacon.SigmaMessage, outboundQueueSize)

	peerAddresses := make([]string, 0, n-1)
	for id, addr := range addresses {
		if id != nodeID {
			peerAddresses = append(peerAddresses, addr)
		}
	}

	sender := transport.NewSender(engine, peerAddresses)
	receiver := transport.NewReceiver(engine, addresses[nodeID])

	senderIn := make(chan *beacon.SigmaMessage, outboundQueueSize)
	receiverOut := make(chan *beacon.SigmaMessage, outboundQueueSize)

	go sender.Run(ctx, senderIn)
	go bridgeOutbound(ctx, loopOut, senderIn)
	go bridgeInbound(ctx, receiverOut, loopIn, qualified)

	sink := func(epoch uint64, digest [beacon.DigestSize]byte) {
		common.Logger.Infof("beacon: epoch %d -> %x", epoch, digest)
	}

	loop := beacon.NewLoop(params, proofs, generators, aggregator, loopIn, loopOut, sink)

	errCh := make(chan error, 1)
	go func() { errCh <- receiver.Run(ctx, receiverOut) }()

	loopErr := make(chan error, 1)
	go func() { loopErr <- loop.Run(ctx) }()

	select {
	case err := <-errCh:
		// the receiver returns early with an error only on a bind failure;
		// it returns nil once ctx is cancelled.
		return err
	case err := <-loopErr:
		if err != nil && ctx.Err() == nil {
			return err
		}
		return <-errCh
	}
}

// bridgeOutbound copies each value the loop broadcasts onto the
// pointer-typed channel transport.Sender consumes.
func bridgeOutbound(ctx context.Context, in <-chan beacon.SigmaMessage, out chan<- *beacon.SigmaMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-in:
			msg := m
			select {
			case out <- &msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

// bridgeInbound copies each pointer transport.Receiver delivers onto the
// value-typed channel beacon.Loop consumes, dropping messages from senders
// that are not in the qualified set.
func bridgeInbound(ctx context.Context, in <-chan *beacon.SigmaMessage, out chan<- beacon.SigmaMessage, qualified map[int]bool) {
	for {
		select {
		case <-ctx.Done():
			return
		case m := <-in:
			if !qualified[m.Sender] {
				common.Logger.Warnf("beacon-node: dropping message from unqualified participant %d", m.Sender)
				continue
			}
			select {
			case out <- *m:
			case <-ctx.Done():
				return
			}
		}
	}
}
