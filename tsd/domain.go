package tsd

// DomainTypeName is the fixed, pre-registered domain schema:
//
//	TSDDomain(string name,string version,uint64 chainId,address verifyingContract)
//
// Every Registry carries it and it cannot be redefined.
const DomainTypeName = "TSDDomain"

// DomainTypeHashKeccakHex is the published keccak256 type hash of the
// domain schema. All implementations hard-code this constant
// identically; it is asserted against the computed value in tests and
// conformance vectors.
const DomainTypeHashKeccakHex = "2cded8ff454d70fcbd595170bf92943e509d44a157c7222160832f2f98f41b7e"

func domainStructType() StructType {
	return StructType{
		Name: DomainTypeName,
		Members: []Member{
			{Name: "name", Type: StringType()},
			{Name: "version", Type: StringType()},
			{Name: "chainId", Type: UintType(64)},
			{Name: "verifyingContract", Type: AddressType()},
		},
	}
}

// Domain binds signatures to one protocol deployment. Built once at
// initialization and reused for every message within that deployment;
// a redeployment (new chain id, new contract) is a new Domain value,
// never a mutation of the old one.
type Domain struct {
	Name              string
	Version           string
	ChainID           uint64
	VerifyingContract [32]byte
}

// DomainSeparator computes the struct digest of the domain value under
// the fixed TSDDomain schema. Callers cache the result per deployment.
func (h *Hasher) DomainSeparator(d Domain) (Digest, error) {
	return h.HashStruct(DomainTypeName, Struct(
		Field{Name: "name", Value: String(d.Name)},
		Field{Name: "version", Value: String(d.Version)},
		Field{Name: "chainId", Value: Uint64(d.ChainID)},
		Field{Name: "verifyingContract", Value: Address(d.VerifyingContract)},
	))
}
