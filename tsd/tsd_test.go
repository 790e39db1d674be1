package tsd

import (
	"testing"
)

// emptyKeccakHex is keccak256 of the empty byte string: the shared
// encoding of every empty array regardless of element type.
const emptyKeccakHex = "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"

func word(b byte) [32]byte {
	var out [32]byte
	for i := range out {
		out[i] = b
	}
	return out
}

func mailType() StructType {
	return StructType{
		Name: "Mail",
		Members: []Member{
			{Name: "from", Type: AddressType()},
			{Name: "to", Type: AddressType()},
			{Name: "contents", Type: StringType()},
		},
	}
}

func mailValue(contents string) Value {
	return Struct(
		Field{Name: "from", Value: Address(word(0xA1))},
		Field{Name: "to", Value: Address(word(0xB2))},
		Field{Name: "contents", Value: String(contents)},
	)
}

func mustRegister(t *testing.T, reg *Registry, types ...StructType) {
	t.Helper()
	if err := reg.Register(types...); err != nil {
		t.Fatalf("Register: %v", err)
	}
}

func mustHasher(t *testing.T, reg *Registry, opts ...Option) *Hasher {
	t.Helper()
	h, err := NewHasher(reg, opts...)
	if err != nil {
		t.Fatalf("NewHasher: %v", err)
	}
	return h
}

func mustDigest(t *testing.T, hexStr string) Digest {
	t.Helper()
	d, err := DigestFromHex(hexStr)
	if err != nil {
		t.Fatalf("DigestFromHex(%q): %v", hexStr, err)
	}
	return d
}

func TestHashStruct_MailLiteral(t *testing.T) {
	reg := NewRegistry()
	mustRegister(t, reg, mailType())
	h := mustHasher(t, reg)

	got, err := h.HashStruct("Mail", mailValue("hello"))
	if err != nil {
		t.Fatalf("HashStruct: %v", err)
	}
	want := mustDigest(t, "d9c0c57502cb6f4ba587cab58209cab0c9466f719fa9298a2f9860742dde1ffa")
	if got != want {
		t.Fatalf("Mail struct hash mismatch: got %s want %s", got, want)
	}
}

func TestHashStruct_TypeDomainSeparation(t *testing.T) {
	// Two distinct types, byte-identical data: digests must differ
	// because the type-hash prefixes differ.
	reg := NewRegistry()
	members := []Member{{Name: "payload", Type: Bytes32Type()}}
	mustRegister(t, reg,
		StructType{Name: "Transfer", Members: members},
		StructType{Name: "Approval", Members: members},
	)
	h := mustHasher(t, reg)

	v := Struct(Field{Name: "payload", Value: Bytes32(word(0x5C))})
	a, err := h.HashStruct("Transfer", v)
	if err != nil {
		t.Fatalf("HashStruct(Transfer): %v", err)
	}
	b, err := h.HashStruct("Approval", v)
	if err != nil {
		t.Fatalf("HashStruct(Approval): %v", err)
	}
	if a == b {
		t.Fatalf("distinct types produced identical digests: %s", a)
	}
}

func TestHashStruct_MemberOrderSensitivity(t *testing.T) {
	regA := NewRegistry()
	mustRegister(t, regA, StructType{Name: "Pair", Members: []Member{
		{Name: "a", Type: UintType(8)},
		{Name: "b", Type: UintType(8)},
	}})
	regB := NewRegistry()
	mustRegister(t, regB, StructType{Name: "Pair", Members: []Member{
		{Name: "b", Type: UintType(8)},
		{Name: "a", Type: UintType(8)},
	}})

	hA := mustHasher(t, regA)
	hB := mustHasher(t, regB)

	sigA, err := hA.EncodeType("Pair")
	if err != nil {
		t.Fatalf("EncodeType: %v", err)
	}
	sigB, err := hB.EncodeType("Pair")
	if err != nil {
		t.Fatalf("EncodeType: %v", err)
	}
	if sigA == sigB {
		t.Fatalf("permuted member order produced identical signatures: %s", sigA)
	}

	thA, err := hA.TypeHash("Pair")
	if err != nil {
		t.Fatalf("TypeHash: %v", err)
	}
	thB, err := hB.TypeHash("Pair")
	if err != nil {
		t.Fatalf("TypeHash: %v", err)
	}
	if thA == thB {
		t.Fatalf("permuted member order produced identical type hashes: %s", thA)
	}
}

func TestHashStruct_NestedStruct_BothModes(t *testing.T) {
	person := StructType{Name: "Person", Members: []Member{
		{Name: "id", Type: AddressType()},
		{Name: "name", Type: StringType()},
	}}
	envelope := StructType{Name: "Envelope", Members: []Member{
		{Name: "sender", Type: StructRef("Person")},
		{Name: "note", Type: StringType()},
	}}
	v := Struct(
		Field{Name: "sender", Value: Struct(
			Field{Name: "id", Value: Address(word(0xC3))},
			Field{Name: "name", Value: String("alice")},
		)},
		Field{Name: "note", Value: String("hi")},
	)

	cases := []struct {
		mode     SignatureMode
		wantHash string
	}{
		{SignatureModeFolded, "6798a8d09a5ba7c27507dbbf044cf363d9c3b148c107be1df0cbd201a728f9a9"},
		{SignatureModeRootOnly, "5efcb0050a18ce268c6724e65ba24ee529847aed92ae0848e0a214e1779dd304"},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			reg := NewRegistry()
			mustRegister(t, reg, envelope, person)
			h := mustHasher(t, reg, WithSignatureMode(tc.mode))

			got, err := h.HashStruct("Envelope", v)
			if err != nil {
				t.Fatalf("HashStruct: %v", err)
			}
			if want := mustDigest(t, tc.wantHash); got != want {
				t.Fatalf("Envelope hash mismatch in %s mode: got %s want %s", tc.mode, got, want)
			}
		})
	}
}
