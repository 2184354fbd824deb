// Package lagrange reconstructs a GT group element whose discrete log is
// Shamir-shared among a set of participants, generalizing tss-lib's
// crypto/vss.Shares.ReConstruct (Lagrange interpolation of a scalar secret)
// to the "multiplicative form of standard polynomial interpolation" the
// spec's GLOSSARY describes: coefficients are still computed in the scalar
// field exactly as tss-lib computes them, but applied as GT exponents and
// combined by multiplication instead of being summed.
package lagrange

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/DimitrisPapac/GRandLine/curve"
)

// ErrNoContributions is returned when Reconstruct is called with an empty
// contribution set.
var ErrNoContributions = errors.New("lagrange: no contributions to reconstruct from")

// Reconstruct interpolates the GT value at x=0 from contributions keyed by
// participant id, using evaluation points x_i = id+1 (the setup polynomial
// is never evaluated at 0, per spec §4.4). Any subset of at least degree+1
// consistent contributions yields the same result (spec I4); callers
// typically pass every present entry for a given epoch, iterated in
// ascending id order for reproducible logs (spec §4.4 tie-breaking note).
func Reconstruct(e curve.Engine, contributions map[int]curve.GT) (curve.GT, error) {
	if len(contributions) == 0 {
		return curve.GT{}, ErrNoContributions
	}

	ids := make([]int, 0, len(contributions))
	for id := range contributions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	xs := make([]curve.Scalar, len(ids))
	for i, id := range ids {
		xs[i].SetUint64(uint64(id + 1))
	}

	result := e.GTIdentity()
	for i, id := range ids {
		lambda := coefficientAtZero(xs, i)
		result = e.GTMul(result, e.GTExp(contributions[id], lambda))
	}
	return result, nil
}

// coefficientAtZero computes λ_i(0) = Π_{j≠i} x_j / (x_j - x_i), the
// Lagrange basis polynomial for index i evaluated at x=0.
func coefficientAtZero(xs []curve.Scalar, i int) curve.Scalar {
	var lambda curve.Scalar
	lambda.SetOne()
	for j := range xs {
		if j == i {
			continue
		}
		var diff curve.Scalar
		diff.Sub(&xs[j], &xs[i])
		diff.Inverse(&diff)

		var term curve.Scalar
		term.Mul(&xs[j], &diff)

		lambda.Mul(&lambda, &term)
	}
	return lambda
}
