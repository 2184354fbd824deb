// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package beacon

import (
	"github.com/DimitrisPapac/GRandLine/crypto/dleq"
	"github.com/DimitrisPapac/GRandLine/curve"
)

// Sigma is a participant's per-epoch contribution (spec §4.3):
// u = g_r(e) * a_i and v = pair(share_i, g_r(e)), where a_i is the
// participant's commitment witness. Together with a DLEQ proof that
// log_{g_r}(u) = log_{g2}(part1_i) (both equal a_i), a verified
// Sigma is the unit the aggregator reconstructs the beacon output from.
type Sigma struct {
	U curve.G2
	V curve.GT
}

// ProofEngine produces and checks per-epoch contributions against the
// commitment a participant published at setup time. It holds no mutable
// state of its own beyond the generator cache it shares with the rest of
// the beacon loop.
type ProofEngine struct {
	params     *Parameters
	generators *GeneratorCache
}

// NewProofEngine binds a ProofEngine to params and a generator cache.
func NewProofEngine(params *Parameters, generators *GeneratorCache) *ProofEngine {
	return &ProofEngine{params: params, generators: generators}
}

// Prove computes this node's Sigma for epoch along with a DLEQ proof that
// U and the node's own commitment Part1 share a discrete log with the SRS
// G2 generator (spec §4.3, §5's contribution step).
func (pe *ProofEngine) Prove(epoch uint64) (Sigma, *dleq.Proof, error) {
	e := pe.params.Engine()

	gr, err := pe.generators.Get(epoch)
	if err != nil {
		return Sigma{}, nil, err
	}

	a := pe.params.Store().OwnWitness()
	u := e.G2ScalarMul(gr, a)

	v, err := e.Pair(pe.params.OwnShare(), gr)
	if err != nil {
		return Sigma{}, nil, err
	}

	pi, err := dleq.Prove(e, gr, pe.params.Config().SRS.G2, a)
	if err != nil {
		return Sigma{}, nil, err
	}

	return Sigma{U: u, V: v}, pi, nil
}

// Verify checks that sigma's DLEQ proof ties U to the commitment published
// by id at setup time, for the generator bound to epoch (spec §4.3's proof
// check, the first of the two gates a contribution must pass before it is
// accepted by the aggregator).
func (pe *ProofEngine) Verify(sigma Sigma, pi *dleq.Proof, epoch uint64, id int) bool {
	e := pe.params.Engine()

	gr, err := pe.generators.Get(epoch)
	if err != nil {
		return false
	}
	part1, _, ok := pe.params.Store().Get(id)
	if !ok {
		return false
	}
	return dleq.Verify(e, gr, pe.params.Config().SRS.G2, sigma.U, part1, pi)
}

// Consistency checks sigma against id's published commitment without the
// DLEQ proof, via the pairing identity
//
//	v * e(-part2_id, g_r) * e(-g1, u) = 1_GT
//
// (spec §4.3's consistency check, the second gate a contribution must
// pass). Unlike Verify this needs no proof object: it only needs the
// commitment pair every participant already holds.
func (pe *ProofEngine) Consistency(sigma Sigma, epoch uint64, id int) bool {
	e := pe.params.Engine()

	gr, err := pe.generators.Get(epoch)
	if err != nil {
		return false
	}
	_, part2, ok := pe.params.Store().Get(id)
	if !ok {
		return false
	}

	negPart2 := e.G1Neg(part2)
	negG1 := e.G1Neg(pe.params.Config().SRS.G1)

	p1, err := e.Pair(negPart2, gr)
	if err != nil {
		return false
	}
	p2, err := e.Pair(negG1, sigma.U)
	if err != nil {
		return false
	}

	product := e.GTMul(sigma.V, e.GTMul(p1, p2))
	return e.GTEqual(product, e.GTIdentity())
}
