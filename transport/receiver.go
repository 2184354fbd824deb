// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/DimitrisPapac/GRandLine/beacon"
	"github.com/DimitrisPapac/GRandLine/common"
	"github.com/DimitrisPapac/GRandLine/curve"
	"github.com/DimitrisPapac/GRandLine/wire"
)

// Receiver accepts inbound TCP connections on a single address and decodes
// every length-delimited frame into a SigmaMessage, forwarding it to a
// delivery channel. Grounded on original_source/src/network/receiver.rs's
// MessageReceiver: one long-lived listener, one goroutine per accepted
// connection.
type Receiver struct {
	engine  curve.Engine
	address string
}

// NewReceiver constructs a Receiver bound to address.
func NewReceiver(engine curve.Engine, address string) *Receiver {
	return &Receiver{engine: engine, address: address}
}

// Run binds r.address and forwards decoded messages to deliver until ctx is
// cancelled. A bind failure is returned directly so the caller can treat it
// as the fatal "socket bind failure" of spec §6/§7.
func (r *Receiver) Run(ctx context.Context, deliver chan<- *beacon.SigmaMessage) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", r.address)
	if err != nil {
		return fmt.Errorf("transport: bind %s: %w", r.address, err)
	}

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				common.Logger.Warnf("transport: accept on %s: %s", r.address, err)
				continue
			}
		}
		go r.handleConn(ctx, conn, deliver)
	}
}

func (r *Receiver) handleConn(ctx context.Context, conn net.Conn, deliver chan<- *beacon.SigmaMessage) {
	defer conn.Close()

	for {
		payload, err := wire.ReadFrame(conn)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				common.Logger.Debugf("transport: connection from %s closed: %s", conn.RemoteAddr(), err)
			}
			return
		}

		msg, err := wire.DecodeSigmaMessage(r.engine, payload)
		if err != nil {
			common.Logger.Warnf("transport: decode frame from %s: %s", conn.RemoteAddr(), err)
			continue
		}

		select {
		case deliver <- msg:
		case <-ctx.Done():
			return
		}
	}
}
