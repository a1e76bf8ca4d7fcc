package credential

import (
	"strings"
	"testing"

	"github.com/dmitrijs2005/credcheck/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteAdminRecord = "09208fc77dde6d10c1963a1939108648:" +
	"737b69d98f350265393c47428feb988fa3f1c18bd4a950471ea23fb238e93df0" +
	"f5701f2382f9b1c669d217bf1aebbf4f1413b0cdd98204a92dee9a444527087e"

func TestParse_SiteRecord(t *testing.T) {
	r, err := Parse(siteAdminRecord)
	require.NoError(t, err)

	assert.Len(t, r.Salt, 16)
	assert.Len(t, r.Hash, 64)
	assert.Equal(t, "09208fc77dde6d10c1963a1939108648", r.SaltHex())
	assert.Equal(t, siteAdminRecord, r.String())
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantSalt []byte
		wantHash []byte
	}{
		{name: "single byte halves", in: "00:ff", wantSalt: []byte{0x00}, wantHash: []byte{0xff}},
		{name: "uppercase accepted", in: "AB:CDEF", wantSalt: []byte{0xab}, wantHash: []byte{0xcd, 0xef}},
		{name: "surrounding whitespace", in: "  0102:0304\n", wantSalt: []byte{1, 2}, wantHash: []byte{3, 4}},
		{name: "uneven salt and hash sizes", in: "010203:04", wantSalt: []byte{1, 2, 3}, wantHash: []byte{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSalt, r.Salt)
			assert.Equal(t, tt.wantHash, r.Hash)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "no separator", in: "00ff"},
		{name: "two separators", in: "00:ff:aa"},
		{name: "only separator", in: ":"},
		{name: "empty salt", in: ":ff"},
		{name: "empty hash", in: "00:"},
		{name: "non-hex salt", in: "zz:ff"},
		{name: "non-hex hash", in: "00:fg"},
		{name: "odd salt length", in: "0:ff"},
		{name: "odd hash length", in: "00:fff"},
		// odd-length salt is rejected, not truncated
		{name: "33 char salt", in: strings.Repeat("a", 33) + ":" + strings.Repeat("b", 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrMalformedRecord)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	orig := Record{
		Salt: common.GenerateRandByteArray(16),
		Hash: common.GenerateRandByteArray(64),
	}
	back, err := Parse(orig.String())
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestHashPreview(t *testing.T) {
	r, err := Parse(siteAdminRecord)
	require.NoError(t, err)
	assert.Equal(t, "737b69d98f350265393c...", r.HashPreview(20))

	short := Record{Salt: []byte{0x00}, Hash: []byte{0xff}}
	assert.Equal(t, "ff", short.HashPreview(20))
	assert.Equal(t, "ff", short.HashPreview(-1))
}
