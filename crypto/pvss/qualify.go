package pvss

import (
	"fmt"

	"github.com/DimitrisPapac/GRandLine/curve"
)

// Qualify computes the qualification set described in spec §3 and §6: for
// each participant i, admit i iff
//
//	e(-g1, pk_i) * e(g1, part1_i) * e(part2_i, g2) = 1_GT
//
// where pk_i = g2 * s_i is the PVSS public share published at setup time.
// The core consumes only qualified ids; Store itself performs no
// filtering, so callers must intersect with this set before building a
// Store (or before accepting contributions from an id not in it).
func Qualify(e curve.Engine, srs SRS, pks []curve.G2, commitments []Commitment) (map[int]bool, error) {
	if len(pks) != len(commitments) {
		return nil, fmt.Errorf("pvss: pks (%d) and commitments (%d) length mismatch", len(pks), len(commitments))
	}
	negG1 := e.G1Neg(srs.G1)

	qualified := make(map[int]bool, len(commitments))
	for i, c := range commitments {
		ok, err := e.PairingCheck(
			[]curve.G1{negG1, srs.G1, c.Part2},
			[]curve.G2{pks[i], c.Part1, srs.G2},
		)
		if err != nil {
			return nil, fmt.Errorf("pvss: pairing check for id %d: %w", i, err)
		}
		qualified[i] = ok
	}
	return qualified, nil
}
