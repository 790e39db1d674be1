package tsd

import "math/big"

type valueKind uint8

const (
	valueInvalid valueKind = iota
	valueBool
	valueUint
	valueWord
	valueBytes
	valueString
	valueArray
	valueStruct
)

func (k valueKind) String() string {
	switch k {
	case valueBool:
		return "bool"
	case valueUint:
		return "uint"
	case valueWord:
		return "bytes32"
	case valueBytes:
		return "bytes"
	case valueString:
		return "string"
	case valueArray:
		return "array"
	case valueStruct:
		return "struct"
	default:
		return "invalid"
	}
}

// Value is a tagged union mirroring TypeRef. Values are short-lived:
// constructed per call, discarded after their digest is produced.
// Constructors copy their inputs, so callers cannot mutate a Value after
// building it.
type Value struct {
	kind   valueKind
	boolV  bool
	uintV  *big.Int
	wordV  [32]byte
	bytesV []byte
	strV   string
	elems  []Value
	fields []Field
}

// Field is one named member of a struct value. Fields carry order so the
// declared-order structural check is enforceable.
type Field struct {
	Name  string
	Value Value
}

func Bool(v bool) Value { return Value{kind: valueBool, boolV: v} }

// Uint64 wraps an unsigned integer value. Wider values use BigInt.
func Uint64(v uint64) Value {
	return Value{kind: valueUint, uintV: new(big.Int).SetUint64(v)}
}

// BigInt wraps an unsigned integer of up to 256 bits. The value is
// copied. A nil or negative value is rejected at encode time.
func BigInt(v *big.Int) Value {
	if v == nil {
		return Value{kind: valueUint}
	}
	return Value{kind: valueUint, uintV: new(big.Int).Set(v)}
}

// Bytes32 wraps a 32-byte opaque value (raw hash or identifier).
func Bytes32(b [32]byte) Value { return Value{kind: valueWord, wordV: b} }

// Address wraps a 32-byte address-like identifier. It is the same value
// variant as Bytes32; only the declared type distinguishes the two.
func Address(b [32]byte) Value { return Bytes32(b) }

func Bytes(b []byte) Value {
	return Value{kind: valueBytes, bytesV: append([]byte(nil), b...)}
}

func String(s string) Value { return Value{kind: valueString, strV: s} }

func Array(elems ...Value) Value {
	return Value{kind: valueArray, elems: append([]Value(nil), elems...)}
}

// Struct builds a struct instance value. Field order must match the
// declared member order of the struct type it is encoded against.
func Struct(fields ...Field) Value {
	return Value{kind: valueStruct, fields: append([]Field(nil), fields...)}
}
