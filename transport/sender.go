// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package transport

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/DimitrisPapac/GRandLine/beacon"
	"github.com/DimitrisPapac/GRandLine/common"
	"github.com/DimitrisPapac/GRandLine/curve"
	"github.com/DimitrisPapac/GRandLine/wire"
)

// retransmitDelay is the fixed delay spec D1 carries over from
// original_source/src/network/retransmitter.rs.
const retransmitDelay = 100 * time.Millisecond

const dialTimeout = 2 * time.Second

// Sender broadcasts every outbound SigmaMessage to every peer address, one
// dedicated TCP connection per peer, queuing a retry through a fixed-delay
// retransmitter when a peer is not currently reachable (spec §7's "network
// connection loss... handled by the transport collaborator"). Grounded on
// original_source/src/network/sender.rs's SimpleSender and retransmitter.rs's
// SimpleRetransmitter, translating the per-peer worker + retry queue design
// into goroutines and Go channels. Unlike the original, a failed send is
// retried against the specific peer it failed for rather than rebroadcast
// to the whole address list.
type Sender struct {
	engine    curve.Engine
	addresses []string

	mu      sync.Mutex
	workers map[string]chan *beacon.SigmaMessage

	retransmit chan retransmitEntry
}

type retransmitEntry struct {
	msg     *beacon.SigmaMessage
	address string
}

// NewSender constructs a Sender that broadcasts to addresses.
func NewSender(engine curve.Engine, addresses []string) *Sender {
	return &Sender{
		engine:     engine,
		addresses:  addresses,
		workers:    make(map[string]chan *beacon.SigmaMessage),
		retransmit: make(chan retransmitEntry, 1000),
	}
}

// Run drains outbound, broadcasting each message to every peer address,
// until ctx is cancelled or outbound closes.
func (s *Sender) Run(ctx context.Context, outbound <-chan *beacon.SigmaMessage) {
	go s.runRetransmitter(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-outbound:
			if !ok {
				return
			}
			for _, addr := range s.addresses {
				s.send(ctx, addr, m)
			}
		}
	}
}

func (s *Sender) send(ctx context.Context, addr string, m *beacon.SigmaMessage) {
	s.mu.Lock()
	ch, ok := s.workers[addr]
	s.mu.Unlock()

	if ok {
		select {
		case ch <- m:
			return
		default:
			// worker's queue is saturated or it already tore itself down;
			// fall through and try to (re)spawn it.
		}
	}

	newCh, connected := s.spawnWorker(ctx, addr)
	if !connected {
		common.Logger.Warnf("transport: could not connect to %s, queuing retransmit", addr)
		s.queueRetransmit(m, addr)
		return
	}

	s.mu.Lock()
	s.workers[addr] = newCh
	s.mu.Unlock()

	select {
	case newCh <- m:
	case <-ctx.Done():
	}
}

func (s *Sender) spawnWorker(ctx context.Context, addr string) (chan *beacon.SigmaMessage, bool) {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return nil, false
	}
	ch := make(chan *beacon.SigmaMessage, 1000)
	go s.runWorker(ctx, addr, conn, ch)
	return ch, true
}

func (s *Sender) runWorker(ctx context.Context, addr string, conn net.Conn, ch chan *beacon.SigmaMessage) {
	defer conn.Close()
	defer s.forgetWorker(addr, ch)

	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			payload, err := wire.EncodeSigmaMessage(s.engine, m)
			if err != nil {
				common.Logger.Warnf("transport: encode message to %s: %s", addr, err)
				continue
			}
			if err := wire.WriteFrame(conn, payload); err != nil {
				common.Logger.Warnf("transport: write to %s failed: %s", addr, err)
				return
			}
		}
	}
}

func (s *Sender) forgetWorker(addr string, ch chan *beacon.SigmaMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.workers[addr] == ch {
		delete(s.workers, addr)
	}
}

func (s *Sender) runRetransmitter(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-s.retransmit:
			if !ok {
				return
			}
			go s.delayedRetry(ctx, entry)
		}
	}
}

func (s *Sender) delayedRetry(ctx context.Context, entry retransmitEntry) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(retransmitDelay):
	}
	s.send(ctx, entry.address, entry.msg)
}

func (s *Sender) queueRetransmit(m *beacon.SigmaMessage, addr string) {
	select {
	case s.retransmit <- retransmitEntry{msg: m, address: addr}:
	default:
		common.Logger.Warnf("transport: retransmit queue full, dropping message to %s", addr)
	}
}
