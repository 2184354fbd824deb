package pvss_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/DimitrisPapac/GRandLine/crypto/pvss"
	"github.com/DimitrisPapac/GRandLine/curve"
)

func TestStoreGetAndOwnWitness(t *testing.T) {
	e, err := curve.Default()
	require.NoError(t, err)
	g1, g2 := curve.Generators()

	commitments := make([]Commitment, 3)
	for i := range commitments {
		commitments[i] = Commitment{ID: i, Part1: g2, Part2: g1}
	}

	witness, err := e.RandomScalar()
	require.NoError(t, err)

	store, err := NewStore(commitments, 1, witness)
	require.NoError(t, err)

	assert.Equal(t, 1, store.SelfID())
	assert.Equal(t, 3, store.N())
	ownWitness := store.OwnWitness()
	assert.True(t, witness.Equal(&ownWitness))

	part1, part2, ok := store.Get(1)
	assert.True(t, ok)
	assert.True(t, e.G2Equal(part1, g2))
	assert.Equal(t, g1, part2)

	_, _, ok = store.Get(3)
	assert.False(t, ok)
	_, _, ok = store.Get(-1)
	assert.False(t, ok)
}

func TestNewStoreRejectsOutOfRangeSelfID(t *testing.T) {
	commitments := []Commitment{{ID: 0}, {ID: 1}}
	var witness curve.Scalar
	_, err := NewStore(commitments, 5, witness)
	assert.Error(t, err)
}

func TestNewStoreRejectsOutOfOrderIDs(t *testing.T) {
	commitments := []Commitment{{ID: 1}, {ID: 0}}
	var witness curve.Scalar
	_, err := NewStore(commitments, 0, witness)
	assert.Error(t, err)
}

