package tsd

import "fmt"

// HashStruct computes H(typeHash(T) ‖ slot(member1) ‖ ... ‖ slot(membern))
// for a value of the registered struct type named name, members in
// declared order. Referentially transparent: identical (type, value)
// pairs always produce identical output, and distinct types start from
// distinct type-hash prefixes regardless of data.
//
// The value's fields must match the declared member names in the
// declared order; a mismatched member set or order is a TypeMismatch,
// never a best-effort coercion.
func (h *Hasher) HashStruct(name string, v Value) (Digest, error) {
	st, ok := h.reg.Lookup(name)
	if !ok {
		return Digest{}, newError(KindUnresolvedType, "TSD-ENC-107", fmt.Sprintf("struct type %q not registered", name))
	}
	if v.kind != valueStruct {
		return Digest{}, newError(KindTypeMismatch, "TSD-ENC-101",
			fmt.Sprintf("declared type %s, got %s value", name, v.kind))
	}
	if len(v.fields) != len(st.Members) {
		return Digest{}, newError(KindTypeMismatch, "TSD-ENC-103",
			fmt.Sprintf("struct %s: %d fields, declared %d members", name, len(v.fields), len(st.Members)))
	}
	for i, m := range st.Members {
		if v.fields[i].Name != m.Name {
			return Digest{}, newError(KindTypeMismatch, "TSD-ENC-103",
				fmt.Sprintf("struct %s: field %d is %q, declared member is %q", name, i, v.fields[i].Name, m.Name))
		}
	}

	th, err := h.TypeHash(name)
	if err != nil {
		return Digest{}, err
	}

	buf := make([]byte, 0, 32*(1+len(st.Members)))
	buf = append(buf, th[:]...)
	for i, m := range st.Members {
		slot, err := h.EncodeValue(m.Type, v.fields[i].Value)
		if err != nil {
			return Digest{}, memberContext(name, m.Name, err)
		}
		buf = append(buf, slot[:]...)
	}
	return h.hash(buf), nil
}
