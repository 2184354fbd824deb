package pvss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/DimitrisPapac/GRandLine/crypto/pvss"
	"github.com/DimitrisPapac/GRandLine/curve"
)

// dealt mirrors what setup.Generate computes for one participant, kept
// local to this test so it does not depend on the setup package.
func dealt(t *testing.T, e curve.Engine, g1 curve.G1, g2 curve.G2, share curve.Scalar) (curve.G2, Commitment, curve.Scalar) {
	t.Helper()

	pk := e.G2ScalarMul(g2, share)
	shareG1 := e.G1ScalarMul(g1, share)

	a, err := e.RandomScalar()
	require.NoError(t, err)

	part1 := e.G2ScalarMul(g2, a)
	part2 := e.G1Add(shareG1, e.G1Neg(e.G1ScalarMul(g1, a)))

	return pk, Commitment{ID: 0, Part1: part1, Part2: part2}, a
}

func TestQualifyAcceptsWellFormedCommitment(t *testing.T) {
	e, err := curve.Default()
	require.NoError(t, err)
	g1, g2 := curve.Generators()

	share, err := e.RandomScalar()
	require.NoError(t, err)

	pk, commitment, _ := dealt(t, e, g1, g2, share)
	commitment.ID = 0

	qualified, err := Qualify(e, SRS{G1: g1, G2: g2}, []curve.G2{pk}, []Commitment{commitment})
	require.NoError(t, err)
	assert.True(t, qualified[0])
}

func TestQualifyRejectsMismatchedPublicKey(t *testing.T) {
	e, err := curve.Default()
	require.NoError(t, err)
	g1, g2 := curve.Generators()

	share, err := e.RandomScalar()
	require.NoError(t, err)
	_, commitment, _ := dealt(t, e, g1, g2, share)
	commitment.ID = 0

	otherShare, err := e.RandomScalar()
	require.NoError(t, err)
	wrongPK := e.G2ScalarMul(g2, otherShare)

	qualified, err := Qualify(e, SRS{G1: g1, G2: g2}, []curve.G2{wrongPK}, []Commitment{commitment})
	require.NoError(t, err)
	assert.False(t, qualified[0])
}

func TestQualifyLengthMismatchErrors(t *testing.T) {
	e, err := curve.Default()
	require.NoError(t, err)
	g1, g2 := curve.Generators()

	_, err = Qualify(e, SRS{G1: g1, G2: g2}, []curve.G2{g2, g2}, []Commitment{{ID: 0}})
	assert.Error(t, err)
}
