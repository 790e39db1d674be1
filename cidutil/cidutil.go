// Package cidutil derives content identifiers for canonical artifacts:
// signing payloads and conformance vector files.
package cidutil

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Sum returns an IPFS-compatible CIDv1 string using the "raw" multicodec
// and a sha2-256 multihash.
func Sum(data []byte) (string, error) {
	c, err := SumCID(data)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// SumCID returns the CIDv1 (raw + sha2-256) derived from data.
func SumCID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
