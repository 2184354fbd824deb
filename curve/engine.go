// Package curve abstracts the pairing-friendly curve backing the beacon
// engine, generalizing the CurveName registry pattern tss-lib uses for its
// (non-pairing) elliptic curves to a pairing Engine: G1 is the encryption
// group, G2 the commitment group, GT the pairing target group, and Scalar
// the shared scalar field. Everything above this package (proof engine,
// aggregator, beacon loop) is written against the Engine interface so an
// alternative pairing-friendly curve can be registered and swapped in at
// build time without touching the protocol logic.
package curve

import (
	"errors"
	"fmt"
)

// Name identifies a registered pairing engine.
type Name string

const (
	// BLS12381 is the default and only shipped engine, backed by
	// github.com/consensys/gnark-crypto/ecc/bls12-381.
	BLS12381 Name = "bls12-381"
)

var registry = map[Name]Engine{}

// Register makes an Engine available under name. Intended to be called
// from an init() in the package providing the concrete implementation.
func Register(name Name, e Engine) {
	registry[name] = e
}

// ByName returns the engine registered under name.
func ByName(name Name) (Engine, bool) {
	e, ok := registry[name]
	return e, ok
}

// Engine is the virtual interface the spec's design notes call for:
// pairing, hash-to-curve, canonical (de)serialization and scalar sampling,
// parametric over the concrete pairing-friendly curve. DLEQ proving and
// verification are intentionally not part of this interface: that logic
// (Fiat-Shamir over two same-group bases) is identical for any engine that
// satisfies this contract, so it lives in crypto/dleq as free functions
// taking an Engine, rather than being duplicated per engine implementation.
type Engine interface {
	Name() Name

	// Pair computes e(a, b) in GT.
	Pair(a G1, b G2) (GT, error)

	// PairingCheck reports whether the product of e(g1s[i], g2s[i]) over
	// all i equals the identity of GT. len(g1s) must equal len(g2s).
	PairingCheck(g1s []G1, g2s []G2) (bool, error)

	// HashToG2 deterministically maps msg to a G2 element, domain-separated
	// by dst. Two calls with identical (dst, msg) always return bit-identical
	// output (spec I5).
	HashToG2(dst, msg []byte) (G2, error)

	// RandomScalar samples a uniformly random field element using the
	// platform entropy source. Never persisted (spec §5).
	RandomScalar() (Scalar, error)

	G1ScalarMul(base G1, s Scalar) G1
	G2ScalarMul(base G2, s Scalar) G2

	G1Add(a, b G1) G1
	G2Add(a, b G2) G2
	G1Neg(a G1) G1
	G2Neg(a G2) G2
	G2Equal(a, b G2) bool

	GTMul(a, b GT) GT
	GTExp(base GT, s Scalar) GT
	GTInverse(a GT) GT
	GTIdentity() GT
	GTEqual(a, b GT) bool

	SerializeG1(p G1) []byte
	DeserializeG1(b []byte) (G1, error)

	SerializeG2(p G2) []byte
	DeserializeG2(b []byte) (G2, error)

	SerializeGT(p GT) []byte
	DeserializeGT(b []byte) (GT, error)

	SerializeScalar(s Scalar) []byte
	DeserializeScalar(b []byte) (Scalar, error)
}

// Default resolves the shipped BLS12-381 engine. Returns an error instead
// of panicking so callers can treat "engine unavailable" as the fatal
// configuration error the spec requires (§7).
func Default() (Engine, error) {
	e, ok := ByName(BLS12381)
	if !ok {
		return nil, fmt.Errorf("curve: %s engine not registered", BLS12381)
	}
	return e, nil
}

// ErrLengthMismatch is returned by PairingCheck when the G1/G2 slices
// passed to it have different lengths.
var ErrLengthMismatch = errors.New("curve: mismatched pairing operand lengths")
