package setup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DimitrisPapac/GRandLine/curve"
	. "github.com/DimitrisPapac/GRandLine/setup"
)

func TestLoadBuildsParametersForEveryQualifiedParticipant(t *testing.T) {
	e, err := curve.Default()
	require.NoError(t, err)

	const n, threshold = 5, 1
	art, err := Generate(e, curve.BLS12381, n, threshold)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, WriteArtifacts(e, dir, art))

	for id := 0; id < n; id++ {
		params, qualified, err := Load(e, curve.BLS12381, dir, n, threshold, id)
		require.NoError(t, err)
		assert.Equal(t, id, params.SelfID())
		assert.Equal(t, n, params.N())
		assert.Equal(t, threshold, params.T())
		for i := 0; i < n; i++ {
			assert.True(t, qualified[i], "participant %d expected to qualify", i)
		}
	}
}

func TestLoadRejectsOutOfRangeSelfID(t *testing.T) {
	e, err := curve.Default()
	require.NoError(t, err)

	const n, threshold = 4, 0
	art, err := Generate(e, curve.BLS12381, n, threshold)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, WriteArtifacts(e, dir, art))

	_, _, err = Load(e, curve.BLS12381, dir, n, threshold, n)
	assert.Error(t, err)
}
