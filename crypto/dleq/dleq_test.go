package dleq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/DimitrisPapac/GRandLine/crypto/dleq"
	"github.com/DimitrisPapac/GRandLine/curve"
)

func engine(t *testing.T) curve.Engine {
	t.Helper()
	e, err := curve.Default()
	require.NoError(t, err)
	return e
}

// bases returns two independent G2 bases for the two-base DLEQ statement.
func bases(t *testing.T, e curve.Engine) (curve.G2, curve.G2) {
	t.Helper()
	_, g2 := curve.Generators()
	other, err := e.HashToG2([]byte("GRandLine-DLEQ-test"), []byte("base2"))
	require.NoError(t, err)
	return g2, other
}

func TestProveVerifyRoundTrip(t *testing.T) {
	e := engine(t)
	base1, base2 := bases(t, e)

	secret, err := e.RandomScalar()
	require.NoError(t, err)

	value1 := e.G2ScalarMul(base1, secret)
	value2 := e.G2ScalarMul(base2, secret)

	pi, err := Prove(e, base1, base2, secret)
	require.NoError(t, err)

	assert.True(t, Verify(e, base1, base2, value1, value2, pi))
}

func TestVerifyRejectsMismatchedSecrets(t *testing.T) {
	e := engine(t)
	base1, base2 := bases(t, e)

	secret1, err := e.RandomScalar()
	require.NoError(t, err)
	secret2, err := e.RandomScalar()
	require.NoError(t, err)

	value1 := e.G2ScalarMul(base1, secret1)
	value2 := e.G2ScalarMul(base2, secret2)

	pi, err := Prove(e, base1, base2, secret1)
	require.NoError(t, err)

	assert.False(t, Verify(e, base1, base2, value1, value2, pi))
}

func TestVerifyRejectsNilProof(t *testing.T) {
	e := engine(t)
	base1, base2 := bases(t, e)
	assert.False(t, Verify(e, base1, base2, base1, base2, nil))
}

func TestVerifyRejectsTamperedResponse(t *testing.T) {
	e := engine(t)
	base1, base2 := bases(t, e)

	secret, err := e.RandomScalar()
	require.NoError(t, err)
	value1 := e.G2ScalarMul(base1, secret)
	value2 := e.G2ScalarMul(base2, secret)

	pi, err := Prove(e, base1, base2, secret)
	require.NoError(t, err)

	one, err := e.RandomScalar()
	require.NoError(t, err)
	pi.Z.Add(&pi.Z, &one)

	assert.False(t, Verify(e, base1, base2, value1, value2, pi))
}
