package curve

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G1, G2, GT and Scalar are the concrete group/field element types used
// throughout the core. They are aliased to the BLS12-381 implementation
// rather than hidden behind an opaque wrapper: the only pairing-friendly
// curve this module ships is BLS12-381, and every component above this
// package already treats all cryptographic operations as going through an
// Engine, so swapping curves at build time means providing a new Engine
// implementation together with new aliases here.
type (
	G1     = bls12381.G1Affine
	G2     = bls12381.G2Affine
	GT     = bls12381.GT
	Scalar = fr.Element
)
