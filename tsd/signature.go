package tsd

import (
	"fmt"
	"sort"
	"strings"
)

// SignatureMode selects how much of the type graph a canonical type
// signature covers. The two behaviors exist in the wild (the sibling
// 20-byte-address standard folds referenced types; other deployments
// hash only the root signature), so the choice is explicit per Hasher
// and recorded next to every published test vector.
type SignatureMode uint8

const (
	// SignatureModeFolded appends the signatures of all transitively
	// referenced struct types, sorted by type name, after the root's own
	// signature. Default; matches the sibling standard.
	SignatureModeFolded SignatureMode = iota
	// SignatureModeRootOnly hashes the root struct's own signature only.
	SignatureModeRootOnly
)

func (m SignatureMode) String() string {
	switch m {
	case SignatureModeFolded:
		return "folded"
	case SignatureModeRootOnly:
		return "root-only"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ownSignature renders one struct type's canonical signature,
// Name(tok1 name1,tok2 name2,...), in declared member order with no
// padding and no trailing separator.
func ownSignature(st StructType) string {
	var sb strings.Builder
	sb.WriteString(st.Name)
	sb.WriteByte('(')
	for i, m := range st.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.Type.Token())
		sb.WriteByte(' ')
		sb.WriteString(m.Name)
	}
	sb.WriteByte(')')
	return sb.String()
}

// EncodeType renders the canonical type signature of a registered struct
// type under the Hasher's signature mode. Fails with
// KindUnresolvedType if name is not registered.
func (h *Hasher) EncodeType(name string) (string, error) {
	root, ok := h.reg.Lookup(name)
	if !ok {
		return "", newError(KindUnresolvedType, "TSD-ENC-107", fmt.Sprintf("struct type %q not registered", name))
	}
	if h.mode == SignatureModeRootOnly {
		return ownSignature(root), nil
	}

	deps := make(map[string]StructType)
	h.collectRefs(root, deps)
	delete(deps, name)

	names := make([]string, 0, len(deps))
	for dep := range deps {
		names = append(names, dep)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(ownSignature(root))
	for _, dep := range names {
		sb.WriteString(ownSignature(deps[dep]))
	}
	return sb.String(), nil
}

// collectRefs walks the reference graph from st and records every
// reachable struct type, st included. Registration guarantees the graph
// is acyclic and fully resolved, so the walk terminates and lookups
// cannot miss.
func (h *Hasher) collectRefs(st StructType, out map[string]StructType) {
	if _, seen := out[st.Name]; seen {
		return
	}
	out[st.Name] = st
	for _, m := range st.Members {
		for _, ref := range structRefsOf(m.Type) {
			if dep, ok := h.reg.Lookup(ref); ok {
				h.collectRefs(dep, out)
			}
		}
	}
}
