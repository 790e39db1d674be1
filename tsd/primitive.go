package tsd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Digest is the fixed-size output of the one-way hash primitive.
type Digest [32]byte

// Hex returns the lowercase hex encoding of the digest.
func (d Digest) Hex() string { return hex.EncodeToString(d[:]) }

func (d Digest) String() string { return d.Hex() }

// DigestFromHex parses a 64-character lowercase or uppercase hex string.
func DigestFromHex(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, wrapError(KindCrypto, "TSD-CRYPTO-202", "invalid digest hex", err)
	}
	if len(b) != len(d) {
		return d, newError(KindCrypto, "TSD-CRYPTO-202", fmt.Sprintf("digest must be %d bytes, got %d", len(d), len(b)))
	}
	copy(d[:], b)
	return d, nil
}

// HashFunc is the supplied one-way hash primitive: deterministic,
// collision-resistant, fixed 32-byte output. The engine never specifies
// the primitive itself; it is chosen per Hasher and every published
// vector names the algorithm it was produced with.
type HashFunc func(data []byte) Digest

// Supported hash algorithm names, mirroring the wire-level identifiers
// used in conformance vectors.
const (
	AlgKeccak256 = "keccak256"
	AlgSHA256    = "sha256"
	AlgSHA3256   = "sha3-256"
	AlgBlake3256 = "blake3-256"
)

// Keccak256 is the default primitive (the legacy pre-NIST keccak used by
// the sibling standard, not NIST SHA3-256).
func Keccak256(data []byte) Digest {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// HashForAlg returns the named primitive.
func HashForAlg(alg string) (HashFunc, error) {
	switch alg {
	case AlgKeccak256:
		return Keccak256, nil
	case AlgSHA256:
		return func(data []byte) Digest { return Digest(sha256.Sum256(data)) }, nil
	case AlgSHA3256:
		return func(data []byte) Digest { return Digest(sha3.Sum256(data)) }, nil
	case AlgBlake3256:
		return func(data []byte) Digest { return Digest(blake3.Sum256(data)) }, nil
	default:
		return nil, newError(KindCrypto, "TSD-CRYPTO-201", fmt.Sprintf("unsupported hash algorithm %q", alg))
	}
}
