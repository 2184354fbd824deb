// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package beacon implements the per-participant randomness beacon engine
// described by the spec: the epoch state machine, the cryptographic
// contracts binding each contribution to a one-time setup commitment, and
// the concurrency glue between network I/O and beacon logic. It generalizes
// tss-lib's tss package (Parameters binding a curve + peer set + threshold,
// an Error type carrying task/round context, a cooperatively-scheduled
// party state machine) from a multi-round MPC protocol to this engine's
// single repeating "broadcast, then collect until threshold" round.
package beacon

import (
	"github.com/DimitrisPapac/GRandLine/crypto/pvss"
	"github.com/DimitrisPapac/GRandLine/curve"
)

// Parameters bundles the immutable, per-run context every beacon component
// needs: the pairing engine, the PVSS config (SRS + threshold + N), the
// commitment store, and this node's own decrypted PVSS share (sk_self).
// Generalizes tss/params.go's Parameters (EC + PeerContext + PartyID +
// threshold + partyCount) to the pairing setting.
type Parameters struct {
	engine   curve.Engine
	config   *pvss.Config
	store    *pvss.Store
	ownShare curve.G1
}

// NewParameters constructs Parameters. ownShare is sk_self, this node's
// decrypted PVSS share (spec §3's `sk_i`), supplied by the input provider
// collaborator alongside the commitment store.
func NewParameters(engine curve.Engine, config *pvss.Config, store *pvss.Store, ownShare curve.G1) *Parameters {
	return &Parameters{engine: engine, config: config, store: store, ownShare: ownShare}
}

func (p *Parameters) Engine() curve.Engine { return p.engine }

func (p *Parameters) Config() *pvss.Config { return p.config }

func (p *Parameters) Store() *pvss.Store { return p.store }

func (p *Parameters) OwnShare() curve.G1 { return p.ownShare }

func (p *Parameters) SelfID() int { return p.store.SelfID() }

func (p *Parameters) N() int { return p.config.N }

func (p *Parameters) T() int { return p.config.T }
