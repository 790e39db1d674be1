package tsd

import "strconv"

// TypeKind discriminates the closed set of member types. Encoders
// match exhaustively over it.
type TypeKind uint8

const (
	TypeInvalid TypeKind = iota
	TypeUint             // unsigned integer, 8..256 bits
	TypeBool
	TypeBytes32 // 32-byte opaque value (raw hash)
	TypeAddress // 32-byte opaque value (address-like identifier)
	TypeBytes   // dynamic byte sequence
	TypeString  // dynamic character sequence (UTF-8)
	TypeArray
	TypeStructRef
)

// DynamicLen marks a variable-length array.
const DynamicLen = -1

// TypeRef describes one member type. Struct references hold a name into
// the registry rather than an embedded copy; the registry validates that
// every reference resolves and that the reference graph is acyclic.
type TypeRef struct {
	Kind TypeKind
	Bits int      // TypeUint: width in bits, multiple of 8, 8..256
	Elem *TypeRef // TypeArray: element type
	Len  int      // TypeArray: fixed element count, or DynamicLen
	Name string   // TypeStructRef: registered struct type name
}

func UintType(bits int) TypeRef { return TypeRef{Kind: TypeUint, Bits: bits} }
func BoolType() TypeRef         { return TypeRef{Kind: TypeBool} }
func Bytes32Type() TypeRef      { return TypeRef{Kind: TypeBytes32} }
func AddressType() TypeRef      { return TypeRef{Kind: TypeAddress} }
func BytesType() TypeRef        { return TypeRef{Kind: TypeBytes} }
func StringType() TypeRef       { return TypeRef{Kind: TypeString} }

// ArrayType is a variable-length array of elem.
func ArrayType(elem TypeRef) TypeRef {
	return TypeRef{Kind: TypeArray, Elem: &elem, Len: DynamicLen}
}

// FixedArrayType is an array of exactly n elements of elem.
func FixedArrayType(elem TypeRef, n int) TypeRef {
	return TypeRef{Kind: TypeArray, Elem: &elem, Len: n}
}

// StructRef references a registered struct type by name.
func StructRef(name string) TypeRef { return TypeRef{Kind: TypeStructRef, Name: name} }

// Token returns the canonical spelling of the type, as it appears inside
// a canonical type signature. Unknown kinds yield "" (rejected at
// registration, so they never reach signature rendering).
func (t TypeRef) Token() string {
	switch t.Kind {
	case TypeUint:
		return "uint" + strconv.Itoa(t.Bits)
	case TypeBool:
		return "bool"
	case TypeBytes32:
		return "bytes32"
	case TypeAddress:
		return "address"
	case TypeBytes:
		return "bytes"
	case TypeString:
		return "string"
	case TypeArray:
		if t.Elem == nil {
			return ""
		}
		if t.Len == DynamicLen {
			return t.Elem.Token() + "[]"
		}
		return t.Elem.Token() + "[" + strconv.Itoa(t.Len) + "]"
	case TypeStructRef:
		return t.Name
	default:
		return ""
	}
}

// copyTypeRef deep-copies a TypeRef so registered definitions cannot be
// mutated through retained Elem pointers.
func copyTypeRef(t TypeRef) TypeRef {
	if t.Elem != nil {
		elem := copyTypeRef(*t.Elem)
		t.Elem = &elem
	}
	return t
}

// Member is one named, typed slot of a struct type. Order is significant
// and part of the type's identity.
type Member struct {
	Name string
	Type TypeRef
}

// StructType is a named, ordered member list. Registered once, immutable
// afterward.
type StructType struct {
	Name    string
	Members []Member
}

func copyStructType(st StructType) StructType {
	members := make([]Member, len(st.Members))
	for i, m := range st.Members {
		members[i] = Member{Name: m.Name, Type: copyTypeRef(m.Type)}
	}
	return StructType{Name: st.Name, Members: members}
}
