package cryptox

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/dmitrijs2005/credcheck/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_KnownVectors(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{
			name:   "sha512 one iteration",
			params: Params{Algorithm: SHA512, Iterations: 1, KeyLength: 64},
			want: "867f70cf1ade02cff3752599a3a53dc4af34c7a669815ae5d513554e1c8cf252" +
				"c02d470a285a0501bad999bfe943c08f050235d7d68b1da55e63f73b60a57fce",
		},
		{
			name:   "sha256 one iteration",
			params: Params{Algorithm: SHA256, Iterations: 1, KeyLength: 32},
			want:   "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := Derive([]byte("password"), []byte("salt"), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(key))
		})
	}
}

func TestDerive_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := common.GenerateRandByteArray(16)
	p := DefaultParams().ForDigest(make([]byte, 64))

	key1, err := Derive(password, salt, p)
	require.NoError(t, err)
	key2, err := Derive(password, salt, p)
	require.NoError(t, err)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	assert.Len(t, key1, 64)
}

func TestDerive_DifferentSalts(t *testing.T) {
	p := Params{Algorithm: SHA512, Iterations: 10, KeyLength: 64}

	key1, err := Derive([]byte("secret-password"), []byte("salt-1"), p)
	require.NoError(t, err)
	key2, err := Derive([]byte("secret-password"), []byte("salt-2"), p)
	require.NoError(t, err)

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestDerive_InvalidParams(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantAlg bool
	}{
		{name: "unknown algorithm", params: Params{Algorithm: "md4", Iterations: 1, KeyLength: 16}, wantAlg: true},
		{name: "zero iterations", params: Params{Algorithm: SHA512, Iterations: 0, KeyLength: 64}},
		{name: "negative iterations", params: Params{Algorithm: SHA512, Iterations: -5, KeyLength: 64}},
		{name: "unresolved key length", params: Params{Algorithm: SHA512, Iterations: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := Derive([]byte("pw"), []byte("salt"), tt.params)
			require.Error(t, err)
			assert.Nil(t, key)
			assert.True(t, errors.Is(err, common.ErrDerivationFailure))
			assert.Equal(t, tt.wantAlg, errors.Is(err, common.ErrUnsupportedAlgorithm))
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]Algorithm{
		"sha512":   SHA512,
		"SHA-512":  SHA512,
		" sha256 ": SHA256,
		"Sha1":     SHA1,
	} {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAlgorithm("whirlpool")
	assert.ErrorIs(t, err, common.ErrUnsupportedAlgorithm)
}

func TestAlgorithmSize(t *testing.T) {
	assert.Equal(t, 64, SHA512.Size())
	assert.Equal(t, 32, SHA256.Size())
	assert.Equal(t, 20, SHA1.Size())
	assert.Equal(t, 0, Algorithm("nope").Size())
}

func TestParams_ForDigest(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 0, p.KeyLength)
	assert.Equal(t, 64, p.ForDigest(make([]byte, 64)).KeyLength)
	assert.Equal(t, 0, p.KeyLength, "ForDigest must not mutate the receiver")

	fixed := Params{Algorithm: SHA512, Iterations: 1, KeyLength: 32}
	assert.Equal(t, 32, fixed.ForDigest(make([]byte, 64)).KeyLength)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal([]byte{1, 2, 3}, []byte{1, 2, 3}))
	assert.False(t, Equal([]byte{1, 2, 3}, []byte{1, 2, 4}))
	assert.False(t, Equal([]byte{1, 2, 3}, []byte{1, 2}))
	assert.False(t, Equal(nil, []byte{0}))
}
