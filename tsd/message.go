package tsd

import (
	"fmt"

	"xdao.co/tsd/cidutil"
)

// PayloadSize is the byte length of a signing payload:
// 2-byte prefix + 32-byte domain separator + 32-byte struct digest.
const PayloadSize = 66

// payloadPrefix is the fixed two-byte prefix of every signing payload.
var payloadPrefix = [2]byte{0x19, 0x01}

// Payload assembles the canonical 66-byte signing payload:
//
//	0x19 0x01 ‖ domainSeparator ‖ structDigest
//
// Whether a signer consumes the raw payload or a further hash pass over
// it (MessageDigest) is the signing layer's policy; both conventions are
// published in the conformance vectors.
func Payload(domainSeparator, structDigest Digest) []byte {
	out := make([]byte, 0, PayloadSize)
	out = append(out, payloadPrefix[:]...)
	out = append(out, domainSeparator[:]...)
	out = append(out, structDigest[:]...)
	return out
}

// MessageDigest is H(Payload(domainSeparator, structDigest)) under the
// Hasher's primitive, for signing layers that sign a fixed-size digest
// rather than the raw payload.
func (h *Hasher) MessageDigest(domainSeparator, structDigest Digest) Digest {
	return h.hash(Payload(domainSeparator, structDigest))
}

// PayloadCID returns the CIDv1 (raw + sha2-256) of a 66-byte signing
// payload, for audit trails and deduplication of signing requests.
func PayloadCID(payload []byte) (string, error) {
	if len(payload) != PayloadSize {
		return "", newError(KindCrypto, "TSD-CRYPTO-204",
			fmt.Sprintf("payload must be %d bytes, got %d", PayloadSize, len(payload)))
	}
	return cidutil.Sum(payload)
}
