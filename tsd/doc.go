// Package tsd implements deterministic hashing for typed structured data (xdao-tsd-1).
//
// Callers register struct types over a closed type system, then derive
// 32-byte digests that downstream signers and verifiers agree on
// bit-for-bit: canonical type signatures, memoized type hashes, 32-byte
// member slots, struct digests, a per-deployment domain separator, and a
// 66-byte signing payload ("\x19\x01" + domain separator + struct digest).
//
// The signature algorithm, transport of signing requests, and any
// struct-declaration syntax are external collaborators; this package is
// pure, synchronous, and free of I/O.
package tsd
