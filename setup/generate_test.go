package setup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DimitrisPapac/GRandLine/crypto/pvss"
	"github.com/DimitrisPapac/GRandLine/curve"
	. "github.com/DimitrisPapac/GRandLine/setup"
)

func TestGenerateProducesQualifiedArtifactsForEveryParticipant(t *testing.T) {
	e, err := curve.Default()
	require.NoError(t, err)

	const n, threshold = 7, 2
	art, err := Generate(e, curve.BLS12381, n, threshold)
	require.NoError(t, err)

	assert.Equal(t, n, art.Config.N)
	assert.Equal(t, threshold, art.Config.T)
	assert.Len(t, art.PublicKeys, n)
	assert.Len(t, art.Shares, n)
	assert.Len(t, art.Commitments, n)

	qualified, err := pvss.Qualify(e, art.Config.SRS, art.PublicKeys, art.Commitments)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		assert.Truef(t, qualified[i], "participant %d should qualify from its own dealt share", i)
	}
}

func TestGenerateRejectsInvalidThreshold(t *testing.T) {
	e, err := curve.Default()
	require.NoError(t, err)

	_, err = Generate(e, curve.BLS12381, 4, 3)
	assert.Error(t, err)
}

func TestGenerateSharesAgreeWithPublicKeysViaPairing(t *testing.T) {
	e, err := curve.Default()
	require.NoError(t, err)
	g1, g2 := curve.Generators()

	art, err := Generate(e, curve.BLS12381, 5, 1)
	require.NoError(t, err)

	for i, share := range art.Shares {
		// e(share, g2) == e(g1, pk_i) iff share = g1^{s_i} and pk_i = g2^{s_i}
		lhs, err := e.Pair(share.Share, g2)
		require.NoError(t, err)
		rhs, err := e.Pair(g1, art.PublicKeys[i])
		require.NoError(t, err)
		assert.Truef(t, e.GTEqual(lhs, rhs), "participant %d share/public key mismatch", i)
	}
}
