// Package dleq implements a non-interactive Chaum-Pedersen proof of
// discrete-log equality across two bases of the commitment group G2,
// generalizing the Fiat-Shamir Schnorr proof pattern of tss-lib's
// crypto/schnorr package (NewZKVProof/Verify) from a single elliptic curve
// to an arbitrary curve.Engine and from one base to the two-base equality
// statement the beacon's sigma contributions require (spec §4.3).
package dleq

import (
	"crypto/sha256"

	"github.com/DimitrisPapac/GRandLine/curve"
)

const domainTag = "GRandLine-DLEQ-v1"

// Proof is a non-interactive proof that log_base1(value1) == log_base2(value2),
// in the compact (challenge, response) form spec §6 specifies for the wire:
// the two commitment points a1, a2 are never sent, only recomputed by the
// verifier from c, z and the public bases/values.
type Proof struct {
	C curve.Scalar
	Z curve.Scalar
}

// Prove constructs a proof that secret is the common discrete logarithm of
// value1 = base1^secret and value2 = base2^secret. Contract (spec §4.3):
// Verify(Prove(...)) always returns true for the bases/values it was built
// for.
func Prove(e curve.Engine, base1, base2 curve.G2, secret curve.Scalar) (*Proof, error) {
	k, err := e.RandomScalar()
	if err != nil {
		return nil, err
	}
	a1 := e.G2ScalarMul(base1, k)
	a2 := e.G2ScalarMul(base2, k)

	value1 := e.G2ScalarMul(base1, secret)
	value2 := e.G2ScalarMul(base2, secret)

	c := challenge(e, base1, base2, value1, value2, a1, a2)

	var z curve.Scalar
	z.Mul(&c, &secret)
	z.Add(&z, &k)

	return &Proof{C: c, Z: z}, nil
}

// Verify checks that pi proves log_base1(value1) == log_base2(value2).
// It recomputes the commitment points a1 = z*base1 - c*value1 and
// a2 = z*base2 - c*value2 (correct iff secret, z, c satisfy the Prove
// relation), then checks the recomputed challenge matches pi.C. Never
// returns an error: a malformed proof simply fails to verify (spec §4.3).
func Verify(e curve.Engine, base1, base2, value1, value2 curve.G2, pi *Proof) bool {
	if pi == nil {
		return false
	}

	a1 := e.G2Add(e.G2ScalarMul(base1, pi.Z), e.G2Neg(e.G2ScalarMul(value1, pi.C)))
	a2 := e.G2Add(e.G2ScalarMul(base2, pi.Z), e.G2Neg(e.G2ScalarMul(value2, pi.C)))

	c := challenge(e, base1, base2, value1, value2, a1, a2)
	return c.Equal(&pi.C)
}

func challenge(e curve.Engine, points ...curve.G2) curve.Scalar {
	h := sha256.New()
	h.Write([]byte(domainTag))
	for _, p := range points {
		h.Write(e.SerializeG2(p))
	}
	var c curve.Scalar
	c.SetBytes(h.Sum(nil))
	return c
}
