// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package beacon

import (
	"sort"

	"github.com/DimitrisPapac/GRandLine/crypto/lagrange"
	"github.com/DimitrisPapac/GRandLine/curve"
)

// Aggregator holds per-epoch accepted contributions and reconstructs the
// beacon value once a threshold is reached (spec §4.4). It is not
// goroutine-safe by itself: the beacon loop is the sole owner and mutator,
// matching the single-threaded cooperative scheduling model (spec §5).
type Aggregator struct {
	engine curve.Engine
	t      int
	sigmas map[uint64]map[int]Sigma
}

// NewAggregator constructs an empty Aggregator for a run with reconstruction
// threshold t (spec's t+1 contributions required).
func NewAggregator(engine curve.Engine, t int) *Aggregator {
	return &Aggregator{engine: engine, t: t, sigmas: make(map[uint64]map[int]Sigma)}
}

// Accept inserts sigma for (epoch, id). Preconditions (msg.epoch >= current,
// id < N, verify, consistency) are the caller's responsibility — checked by
// the beacon loop before Accept is ever invoked. A duplicate id overwrites
// the previous entry; only one contribution per (epoch, id) is ever counted
// (spec L2).
func (a *Aggregator) Accept(epoch uint64, id int, sigma Sigma) {
	bucket, ok := a.sigmas[epoch]
	if !ok {
		bucket = make(map[int]Sigma)
		a.sigmas[epoch] = bucket
	}
	bucket[id] = sigma
}

// Ready reports whether at least t+1 contributions have been accepted for
// epoch.
func (a *Aggregator) Ready(epoch uint64) bool {
	return len(a.sigmas[epoch]) >= a.t+1
}

// Count returns the number of distinct contributions accepted for epoch.
func (a *Aggregator) Count(epoch uint64) int {
	return len(a.sigmas[epoch])
}

// Reconstruct interpolates the GT secret for epoch from every contribution
// currently held, iterating ids in ascending order for reproducible logs
// (spec §4.4 tie-breaking note). Callers must check Ready first; Reconstruct
// itself only requires a non-empty set.
func (a *Aggregator) Reconstruct(epoch uint64) (curve.GT, error) {
	bucket := a.sigmas[epoch]
	values := make(map[int]curve.GT, len(bucket))
	for id, sigma := range bucket {
		values[id] = sigma.V
	}
	return lagrange.Reconstruct(a.engine, values)
}

// Purge drops all state held for epoch, including the caller-supplied
// generator cache entry (spec §4.4's purge(e), which also drops
// generators[e]).
func (a *Aggregator) Purge(epoch uint64, generators *GeneratorCache) {
	delete(a.sigmas, epoch)
	if generators != nil {
		generators.Drop(epoch)
	}
}

// PresentIDs returns the sorted ids with an accepted contribution for epoch,
// used by callers that want deterministic iteration order without
// performing reconstruction (spec §4.4's tie-breaking note: "for
// reproducibility of logs, iterate ids 0..N").
func (a *Aggregator) PresentIDs(epoch uint64) []int {
	bucket := a.sigmas[epoch]
	ids := make([]int, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
