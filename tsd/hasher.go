package tsd

import "sync"

// Hasher derives type hashes, struct digests, domain separators, and
// message digests over one registry, with a fixed hash primitive and
// signature mode. Build one per deployment and share it freely: all
// operations are pure, and the type-hash cache tolerates racing writers
// (a race only risks redundant recomputation of an identical digest).
type Hasher struct {
	reg           *Registry
	hash          HashFunc
	mode          SignatureMode
	addressCompat bool

	mu    sync.RWMutex
	cache map[string]Digest // type hash per struct type name
}

// Option configures a Hasher at construction.
type Option func(*Hasher) error

// WithHashAlg selects the hash primitive by algorithm name
// (AlgKeccak256, AlgSHA256, AlgSHA3256, AlgBlake3256).
func WithHashAlg(alg string) Option {
	return func(h *Hasher) error {
		fn, err := HashForAlg(alg)
		if err != nil {
			return err
		}
		h.hash = fn
		return nil
	}
}

// WithHashFunc supplies the hash primitive directly.
func WithHashFunc(fn HashFunc) Option {
	return func(h *Hasher) error {
		if fn == nil {
			return newError(KindCrypto, "TSD-CRYPTO-203", "nil hash primitive")
		}
		h.hash = fn
		return nil
	}
}

// WithSignatureMode selects canonical type signature coverage.
func WithSignatureMode(mode SignatureMode) Option {
	return func(h *Hasher) error {
		if mode != SignatureModeFolded && mode != SignatureModeRootOnly {
			return newError(KindInternal, "TSD-INTERNAL-004", "unknown signature mode")
		}
		h.mode = mode
		return nil
	}
}

// WithAddressCompat encodes address slots under the sibling standard's
// 20-byte convention: the leftmost 12 bytes of every address slot are
// zeroed (rightmost 20 bytes kept). Native 32-byte structs are
// unaffected unless they contain address members.
func WithAddressCompat() Option {
	return func(h *Hasher) error {
		h.addressCompat = true
		return nil
	}
}

// NewHasher builds a Hasher over reg. Defaults: keccak256,
// SignatureModeFolded, native address encoding.
func NewHasher(reg *Registry, opts ...Option) (*Hasher, error) {
	if reg == nil {
		return nil, newError(KindInternal, "TSD-INTERNAL-001", "nil registry")
	}
	h := &Hasher{
		reg:   reg,
		hash:  Keccak256,
		mode:  SignatureModeFolded,
		cache: make(map[string]Digest),
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// TypeHash returns H(EncodeType(name)), memoized per type name. The
// cache never invalidates: types are immutable once registered, and the
// Hasher's mode and primitive are fixed at construction.
func (h *Hasher) TypeHash(name string) (Digest, error) {
	h.mu.RLock()
	d, ok := h.cache[name]
	h.mu.RUnlock()
	if ok {
		return d, nil
	}

	sig, err := h.EncodeType(name)
	if err != nil {
		return Digest{}, err
	}
	d = h.hash([]byte(sig))

	h.mu.Lock()
	h.cache[name] = d
	h.mu.Unlock()
	return d, nil
}
