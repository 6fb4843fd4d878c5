package blob

import (
	"fmt"

	gocid "github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
)

// Key returns the content key of data: a CIDv1 (raw codec, SHA2-256)
// encoded in base32. Equal contents always yield equal keys.
func Key(data []byte) string {
	c, err := ComputeCID(data)
	if err != nil {
		panic(err) // SHA2-256 is always registered
	}
	return encode(c)
}

// ComputeCID computes a CIDv1 (raw codec, SHA2-256) for the given data.
func ComputeCID(data []byte) (gocid.Cid, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return gocid.Undef, fmt.Errorf("multihash: %w", err)
	}
	return gocid.NewCidV1(gocid.Raw, mh), nil
}

// ParseKey decodes a key produced by Key.
func ParseKey(key string) (gocid.Cid, error) {
	_, raw, err := multibase.Decode(key)
	if err != nil {
		return gocid.Undef, fmt.Errorf("decode key %q: %w", key, err)
	}
	c, err := gocid.Cast(raw)
	if err != nil {
		return gocid.Undef, fmt.Errorf("cast key %q: %w", key, err)
	}
	if c.Prefix().MhType != multihash.SHA2_256 {
		return gocid.Undef, fmt.Errorf("key %q: unexpected hash type %d", key, c.Prefix().MhType)
	}
	return c, nil
}

func encode(c gocid.Cid) string {
	encoded, _ := multibase.Encode(multibase.Base32, c.Bytes())
	return encoded
}
