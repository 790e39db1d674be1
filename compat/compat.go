// Package compat translates between this scheme's native 32-byte
// identifiers and the 20-byte-address convention of the sibling
// standard. It has no effect on native structs; the encoder applies it
// only when address-compat mode is requested.
package compat

// AddressSize is the sibling standard's address width.
const AddressSize = 20

// Truncate keeps the rightmost 20 bytes of a 32-byte identifier.
func Truncate(id [32]byte) [AddressSize]byte {
	var out [AddressSize]byte
	copy(out[:], id[32-AddressSize:])
	return out
}

// Expand left-pads a 20-byte address with 12 zero bytes, yielding the
// 32-byte slot form. For any input, Expand(Truncate(id)) preserves the
// rightmost 20 bytes of id and zeroes the leftmost 12.
func Expand(addr [AddressSize]byte) [32]byte {
	var out [32]byte
	copy(out[32-AddressSize:], addr[:])
	return out
}
