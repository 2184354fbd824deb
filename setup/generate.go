// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package setup

import (
	"fmt"

	"github.com/DimitrisPapac/GRandLine/crypto/pvss"
	"github.com/DimitrisPapac/GRandLine/curve"
)

// Generate runs the trusted-dealer simulation: sample one random degree-t
// polynomial f (coefficients a_0..a_t, a_0 the implicit master secret),
// evaluate it at x_i = i+1 for each of n participants (the setup
// polynomial is never evaluated at 0, per spec §4.4), and build every
// artifact a node needs. Grounded on tss-lib's crypto/vss samplePolynomial/
// evaluatePolynomial (Horner evaluation over the scalar field), generalized
// from a big.Int scalar field to curve.Scalar, and on
// original_source/src/config/config.rs's generate_setup_files for which
// artifacts get produced.
func Generate(e curve.Engine, curveName curve.Name, n, t int) (*Artifacts, error) {
	g1, g2 := curve.Generators()
	config, err := pvss.NewConfig(curveName, pvss.SRS{G1: g1, G2: g2}, t, n)
	if err != nil {
		return nil, fmt.Errorf("setup: build config: %w", err)
	}

	coeffs, err := samplePolynomial(e, t)
	if err != nil {
		return nil, fmt.Errorf("setup: sample polynomial: %w", err)
	}

	pks := make([]curve.G2, n)
	shares := make([]PrivateShare, n)
	commitments := make([]pvss.Commitment, n)

	for i := 0; i < n; i++ {
		var x curve.Scalar
		x.SetUint64(uint64(i + 1))
		s := evaluatePolynomial(coeffs, x)

		pks[i] = e.G2ScalarMul(g2, s)
		share := e.G1ScalarMul(g1, s)

		a, err := e.RandomScalar()
		if err != nil {
			return nil, fmt.Errorf("setup: sample witness for id %d: %w", i, err)
		}
		part1 := e.G2ScalarMul(g2, a)
		part2 := e.G1Add(share, e.G1Neg(e.G1ScalarMul(g1, a)))

		shares[i] = PrivateShare{Share: share, Witness: a}
		commitments[i] = pvss.Commitment{ID: i, Part1: part1, Part2: part2}
	}

	return &Artifacts{
		Config:      config,
		PublicKeys:  pks,
		Shares:      shares,
		Commitments: commitments,
	}, nil
}

// samplePolynomial draws t+1 uniformly random coefficients, index 0 being
// the implicit master secret.
func samplePolynomial(e curve.Engine, t int) ([]curve.Scalar, error) {
	coeffs := make([]curve.Scalar, t+1)
	for i := range coeffs {
		s, err := e.RandomScalar()
		if err != nil {
			return nil, err
		}
		coeffs[i] = s
	}
	return coeffs, nil
}

// evaluatePolynomial computes coeffs[0] + coeffs[1]*x + ... + coeffs[t]*x^t
// by Horner's method.
func evaluatePolynomial(coeffs []curve.Scalar, x curve.Scalar) curve.Scalar {
	var result curve.Scalar
	for i := len(coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &x)
		result.Add(&result, &coeffs[i])
	}
	return result
}
