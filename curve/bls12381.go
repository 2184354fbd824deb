package curve

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func init() {
	Register(BLS12381, bls12381Engine{})
}

// bls12381Engine implements Engine over gnark-crypto's bls12-381 package.
// It holds no state: every group operation is a pure function of its
// arguments, matching the spec's requirement that no pairing/RNG state
// survive a single call (§5).
type bls12381Engine struct{}

func (bls12381Engine) Name() Name { return BLS12381 }

func (bls12381Engine) Pair(a G1, b G2) (GT, error) {
	return bls12381.Pair([]G1{a}, []G2{b})
}

func (bls12381Engine) PairingCheck(g1s []G1, g2s []G2) (bool, error) {
	if len(g1s) != len(g2s) {
		return false, ErrLengthMismatch
	}
	return bls12381.PairingCheck(g1s, g2s)
}

func (bls12381Engine) HashToG2(dst, msg []byte) (G2, error) {
	return bls12381.HashToG2(msg, dst)
}

func (bls12381Engine) RandomScalar() (Scalar, error) {
	var s Scalar
	if _, err := s.SetRandom(); err != nil {
		return Scalar{}, fmt.Errorf("curve: sample random scalar: %w", err)
	}
	return s, nil
}

func (bls12381Engine) G1ScalarMul(base G1, s Scalar) G1 {
	var out G1
	bi := new(big.Int)
	s.BigInt(bi)
	out.ScalarMultiplication(&base, bi)
	return out
}

func (bls12381Engine) G2ScalarMul(base G2, s Scalar) G2 {
	var out G2
	bi := new(big.Int)
	s.BigInt(bi)
	out.ScalarMultiplication(&base, bi)
	return out
}

func (bls12381Engine) G1Add(a, b G1) G1 {
	var out G1
	out.Add(&a, &b)
	return out
}

func (bls12381Engine) G2Add(a, b G2) G2 {
	var out G2
	out.Add(&a, &b)
	return out
}

func (bls12381Engine) G1Neg(a G1) G1 {
	var out G1
	out.Neg(&a)
	return out
}

func (bls12381Engine) G2Neg(a G2) G2 {
	var out G2
	out.Neg(&a)
	return out
}

func (bls12381Engine) G2Equal(a, b G2) bool {
	return a.Equal(&b)
}

func (bls12381Engine) GTMul(a, b GT) GT {
	var out GT
	out.Mul(&a, &b)
	return out
}

func (bls12381Engine) GTExp(base GT, s Scalar) GT {
	var out GT
	bi := new(big.Int)
	s.BigInt(bi)
	out.Exp(base, bi)
	return out
}

func (bls12381Engine) GTInverse(a GT) GT {
	var out GT
	out.Inverse(&a)
	return out
}

func (bls12381Engine) GTIdentity() GT {
	var out GT
	out.SetOne()
	return out
}

func (bls12381Engine) GTEqual(a, b GT) bool {
	return a.Equal(&b)
}

func (bls12381Engine) SerializeG1(p G1) []byte {
	b := p.Bytes()
	return b[:]
}

func (bls12381Engine) DeserializeG1(b []byte) (G1, error) {
	var p G1
	if _, err := p.SetBytes(b); err != nil {
		return G1{}, fmt.Errorf("curve: deserialize G1: %w", err)
	}
	return p, nil
}

func (bls12381Engine) SerializeG2(p G2) []byte {
	b := p.Bytes()
	return b[:]
}

func (bls12381Engine) DeserializeG2(b []byte) (G2, error) {
	var p G2
	if _, err := p.SetBytes(b); err != nil {
		return G2{}, fmt.Errorf("curve: deserialize G2: %w", err)
	}
	return p, nil
}

func (bls12381Engine) SerializeGT(p GT) []byte {
	b := p.Bytes()
	return b[:]
}

func (bls12381Engine) DeserializeGT(b []byte) (GT, error) {
	var p GT
	if _, err := p.SetBytes(b); err != nil {
		return GT{}, fmt.Errorf("curve: deserialize GT: %w", err)
	}
	return p, nil
}

// Generators returns the standard base points of G1 and G2, used as the
// structured reference string (spec §3's g1/g2): these are fixed, public
// curve parameters, not a per-run secret, so no setup ceremony is needed to
// produce them.
func Generators() (G1, G2) {
	_, _, g1, g2 := bls12381.Generators()
	return g1, g2
}

func (bls12381Engine) SerializeScalar(s Scalar) []byte {
	b := s.Bytes()
	return b[:]
}

func (bls12381Engine) DeserializeScalar(b []byte) (Scalar, error) {
	var s Scalar
	s.SetBytes(b)
	return s, nil
}
