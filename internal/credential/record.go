// Package credential parses and formats stored password records of the form
//
//	<salt-hex>:<hash-hex>
//
// The salt may be any number of bytes; the hash is the raw KDF output. A
// Record is built once from configuration and treated as immutable.
package credential

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/credcheck/internal/common"
)

const separator = ":"

// Record is a decoded salt/hash pair.
type Record struct {
	Salt []byte
	Hash []byte
}

// Parse decodes s into a Record. Leading and trailing whitespace is ignored.
//
// Every failure wraps common.ErrMalformedRecord: a missing separator, more
// than one separator, an empty half, or a half that is not valid hex (odd
// length or a non-hex digit).
func Parse(s string) (Record, error) {
	s = strings.TrimSpace(s)

	switch n := strings.Count(s, separator); {
	case n == 0:
		return Record{}, fmt.Errorf("%w: missing %q separator", common.ErrMalformedRecord, separator)
	case n > 1:
		return Record{}, fmt.Errorf("%w: expected one %q separator, found %d", common.ErrMalformedRecord, separator, n)
	}

	saltHex, hashHex, _ := strings.Cut(s, separator)
	if saltHex == "" || hashHex == "" {
		return Record{}, fmt.Errorf("%w: empty salt or hash", common.ErrMalformedRecord)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return Record{}, fmt.Errorf("%w: salt: %w", common.ErrMalformedRecord, err)
	}
	hash, err := hex.DecodeString(hashHex)
	if err != nil {
		return Record{}, fmt.Errorf("%w: hash: %w", common.ErrMalformedRecord, err)
	}

	return Record{Salt: salt, Hash: hash}, nil
}

// String encodes r back into lowercase "<salt-hex>:<hash-hex>".
func (r Record) String() string {
	return hex.EncodeToString(r.Salt) + separator + hex.EncodeToString(r.Hash)
}

// SaltHex returns the salt as lowercase hex.
func (r Record) SaltHex() string {
	return hex.EncodeToString(r.Salt)
}

// HashPreview returns the first n hex characters of the hash followed by
// "..." when the hash is longer than that.
func (r Record) HashPreview(n int) string {
	h := hex.EncodeToString(r.Hash)
	if n < 0 || len(h) <= n {
		return h
	}
	return h[:n] + "..."
}
