package tsd

import (
	"fmt"
	"unicode/utf8"

	"xdao.co/tsd/compat"
)

// EncodeValue maps one value, given its declared type, to exactly one
// 32-byte slot. Total and recursive: arrays encode as the hash of their
// elements' concatenated slots, struct references delegate to
// HashStruct. Every failure is synchronous and local to the call.
func (h *Hasher) EncodeValue(t TypeRef, v Value) (Digest, error) {
	switch t.Kind {
	case TypeBool:
		if v.kind != valueBool {
			return Digest{}, mismatch(t, v)
		}
		var d Digest
		if v.boolV {
			d[31] = 1
		}
		return d, nil

	case TypeUint:
		if v.kind != valueUint {
			return Digest{}, mismatch(t, v)
		}
		if v.uintV == nil {
			return Digest{}, newError(KindTypeMismatch, "TSD-ENC-101", "nil integer value")
		}
		if v.uintV.Sign() < 0 {
			return Digest{}, newError(KindValueOutOfRange, "TSD-ENC-105",
				fmt.Sprintf("negative value for %s", t.Token()))
		}
		if v.uintV.BitLen() > t.Bits {
			return Digest{}, newError(KindValueOutOfRange, "TSD-ENC-104",
				fmt.Sprintf("value needs %d bits, declared type is %s", v.uintV.BitLen(), t.Token()))
		}
		var d Digest
		v.uintV.FillBytes(d[:])
		return d, nil

	case TypeBytes32:
		if v.kind != valueWord {
			return Digest{}, mismatch(t, v)
		}
		return Digest(v.wordV), nil

	case TypeAddress:
		if v.kind != valueWord {
			return Digest{}, mismatch(t, v)
		}
		if h.addressCompat {
			return Digest(compat.Expand(compat.Truncate(v.wordV))), nil
		}
		return Digest(v.wordV), nil

	case TypeBytes:
		if v.kind != valueBytes {
			return Digest{}, mismatch(t, v)
		}
		return h.hash(v.bytesV), nil

	case TypeString:
		if v.kind != valueString {
			return Digest{}, mismatch(t, v)
		}
		if !utf8.ValidString(v.strV) {
			return Digest{}, newError(KindInvalidText, "TSD-ENC-106", "string value is not valid UTF-8")
		}
		return h.hash([]byte(v.strV)), nil

	case TypeArray:
		if t.Elem == nil {
			return Digest{}, newError(KindInternal, "TSD-INTERNAL-002", "array type without element type")
		}
		if v.kind != valueArray {
			return Digest{}, mismatch(t, v)
		}
		if t.Len != DynamicLen && len(v.elems) != t.Len {
			return Digest{}, newError(KindTypeMismatch, "TSD-ENC-102",
				fmt.Sprintf("array length %d, declared type is %s", len(v.elems), t.Token()))
		}
		// An empty array of any element type hashes the empty byte
		// string, a fixed constant shared across element types.
		buf := make([]byte, 0, len(v.elems)*32)
		for i, e := range v.elems {
			slot, err := h.EncodeValue(*t.Elem, e)
			if err != nil {
				return Digest{}, memberContext(t.Token(), fmt.Sprintf("[%d]", i), err)
			}
			buf = append(buf, slot[:]...)
		}
		return h.hash(buf), nil

	case TypeStructRef:
		if v.kind != valueStruct {
			return Digest{}, mismatch(t, v)
		}
		return h.HashStruct(t.Name, v)

	default:
		return Digest{}, newError(KindInternal, "TSD-INTERNAL-003", "unknown type kind at encode")
	}
}

func mismatch(t TypeRef, v Value) error {
	return newError(KindTypeMismatch, "TSD-ENC-101",
		fmt.Sprintf("declared type %s, got %s value", t.Token(), v.kind))
}
