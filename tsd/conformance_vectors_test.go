package tsd

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

type conformanceVector struct {
	Spec          string `json:"spec"`
	HashAlg       string `json:"hashAlg"`
	SignatureMode string `json:"signatureMode"`
	Domain        struct {
		Name              string `json:"name"`
		Version           string `json:"version"`
		ChainID           uint64 `json:"chainId"`
		VerifyingContract string `json:"verifyingContract"`
	} `json:"domain"`
	Message struct {
		From     string `json:"from"`
		To       string `json:"to"`
		Contents string `json:"contents"`
	} `json:"message"`
	EncodeType      string `json:"encodeType"`
	TypeHash        string `json:"typeHash"`
	DomainTypeHash  string `json:"domainTypeHash"`
	DomainSeparator string `json:"domainSeparator"`
	StructHash      string `json:"structHash"`
	Payload         string `json:"payload"`
	MessageDigest   string `json:"messageDigest"`
	PayloadCID      string `json:"payloadCID"`
}

func mustWord(t *testing.T, hexStr string) [32]byte {
	t.Helper()
	d, err := DigestFromHex(hexStr)
	if err != nil {
		t.Fatalf("vector word %q: %v", hexStr, err)
	}
	return [32]byte(d)
}

func TestConformanceVectors_MailHello(t *testing.T) {
	path := filepath.Join("..", "testdata", "conformance", "tsd", "xdao-tsd-1", "mail_hello.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read vector: %v", err)
	}
	var vec conformanceVector
	if err := json.Unmarshal(raw, &vec); err != nil {
		t.Fatalf("decode vector: %v", err)
	}
	if vec.Spec != "xdao-tsd-1" {
		t.Fatalf("unexpected vector spec %q", vec.Spec)
	}
	if vec.SignatureMode != SignatureModeFolded.String() {
		t.Fatalf("vector signature mode %q; this test runs the folded default", vec.SignatureMode)
	}

	reg := NewRegistry()
	mustRegister(t, reg, mailType())
	h := mustHasher(t, reg, WithHashAlg(vec.HashAlg))

	sig, err := h.EncodeType("Mail")
	if err != nil {
		t.Fatalf("EncodeType: %v", err)
	}
	if sig != vec.EncodeType {
		t.Fatalf("encodeType: got %q want %q", sig, vec.EncodeType)
	}

	th, err := h.TypeHash("Mail")
	if err != nil {
		t.Fatalf("TypeHash: %v", err)
	}
	if th != mustDigest(t, vec.TypeHash) {
		t.Fatalf("typeHash: got %s want %s", th, vec.TypeHash)
	}

	dth, err := h.TypeHash(DomainTypeName)
	if err != nil {
		t.Fatalf("TypeHash(domain): %v", err)
	}
	if dth != mustDigest(t, vec.DomainTypeHash) {
		t.Fatalf("domainTypeHash: got %s want %s", dth, vec.DomainTypeHash)
	}

	sep, err := h.DomainSeparator(Domain{
		Name:              vec.Domain.Name,
		Version:           vec.Domain.Version,
		ChainID:           vec.Domain.ChainID,
		VerifyingContract: mustWord(t, vec.Domain.VerifyingContract),
	})
	if err != nil {
		t.Fatalf("DomainSeparator: %v", err)
	}
	if sep != mustDigest(t, vec.DomainSeparator) {
		t.Fatalf("domainSeparator: got %s want %s", sep, vec.DomainSeparator)
	}

	structHash, err := h.HashStruct("Mail", Struct(
		Field{Name: "from", Value: Address(mustWord(t, vec.Message.From))},
		Field{Name: "to", Value: Address(mustWord(t, vec.Message.To))},
		Field{Name: "contents", Value: String(vec.Message.Contents)},
	))
	if err != nil {
		t.Fatalf("HashStruct: %v", err)
	}
	if structHash != mustDigest(t, vec.StructHash) {
		t.Fatalf("structHash: got %s want %s", structHash, vec.StructHash)
	}

	payload := Payload(sep, structHash)
	if got := hex.EncodeToString(payload); got != vec.Payload {
		t.Fatalf("payload: got %s want %s", got, vec.Payload)
	}
	if got := h.MessageDigest(sep, structHash); got != mustDigest(t, vec.MessageDigest) {
		t.Fatalf("messageDigest: got %s want %s", got, vec.MessageDigest)
	}
	cid, err := PayloadCID(payload)
	if err != nil {
		t.Fatalf("PayloadCID: %v", err)
	}
	if cid != vec.PayloadCID {
		t.Fatalf("payloadCID: got %s want %s", cid, vec.PayloadCID)
	}
}
