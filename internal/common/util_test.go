package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandByteArray_SaltSizes(t *testing.T) {
	for _, n := range []int{0, 1, 16, 32} {
		salt := GenerateRandByteArray(n)
		require.NotNil(t, salt)
		assert.Len(t, salt, n)
	}
}

func TestGenerateRandByteArray_FreshSaltEachCall(t *testing.T) {
	a := GenerateRandByteArray(16)
	b := GenerateRandByteArray(16)

	// 2^-128 chance of a collision
	assert.False(t, bytes.Equal(a, b), "two 16-byte salts should differ")
}

func TestWipeByteArray_PasswordBuffer(t *testing.T) {
	pw := []byte("TongGi13246@Admin")
	alias := pw[:5]

	WipeByteArray(pw)

	assert.Equal(t, make([]byte, len("TongGi13246@Admin")), pw)
	assert.Equal(t, []byte{0, 0, 0, 0, 0}, alias)
}

func TestWipeByteArray_NilAndEmpty(t *testing.T) {
	assert.NotPanics(t, func() { WipeByteArray(nil) })
	assert.NotPanics(t, func() { WipeByteArray([]byte{}) })
}
