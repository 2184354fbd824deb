// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package beacon

import (
	"golang.org/x/crypto/sha3"

	"github.com/DimitrisPapac/GRandLine/curve"
)

// DigestSize is the fixed length of a beacon digest in bytes (spec §4.5).
const DigestSize = 32

// Digest derives the public beacon value from the reconstructed GT secret:
// serialize sigma with the engine's canonical encoding, feed it into
// SHAKE256, and read exactly DigestSize bytes (spec §4.5).
func Digest(e curve.Engine, sigma curve.GT) [DigestSize]byte {
	h := sha3.NewShake256()
	h.Write(e.SerializeGT(sigma))

	var out [DigestSize]byte
	h.Read(out[:])
	return out
}
