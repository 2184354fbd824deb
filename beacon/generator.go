// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package beacon

import (
	"encoding/binary"
	"sync"

	"github.com/DimitrisPapac/GRandLine/curve"
)

// persona is the domain-separation tag for the epoch generator hash, named
// PERSONA in the original source (spec §4.2).
const persona = "OnePiece"

// GeneratorCache is the lazy, per-epoch deterministic generator cache of
// spec §4.2: g_r(e) = hash_to_curve_G2(PERSONA, e as little-endian u64),
// computed once per epoch value and memoized since the hash-to-curve
// operation is expensive relative to a map lookup.
type GeneratorCache struct {
	engine curve.Engine

	mu    sync.Mutex
	cache map[uint64]curve.G2
}

// NewGeneratorCache constructs an empty cache bound to engine.
func NewGeneratorCache(engine curve.Engine) *GeneratorCache {
	return &GeneratorCache{engine: engine, cache: make(map[uint64]curve.G2)}
}

// Get returns the canonical generator for epoch, computing and memoizing it
// on first access. Two calls for the same epoch always return bit-identical
// bytes (spec I5), since the underlying hash-to-curve call is pure.
func (g *GeneratorCache) Get(epoch uint64) (curve.G2, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if gr, ok := g.cache[epoch]; ok {
		return gr, nil
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], epoch)

	gr, err := g.engine.HashToG2([]byte(persona), buf[:])
	if err != nil {
		return curve.G2{}, err
	}
	g.cache[epoch] = gr
	return gr, nil
}

// Drop evicts the memoized generator for epoch. Called once an epoch has
// been fully purged from the aggregator (spec §4.2's cleanup rule, §4.4
// purge) so the cache does not grow without bound across a long run.
func (g *GeneratorCache) Drop(epoch uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.cache, epoch)
}
