package types

// Allowed identification issuers. The producer issuer is the default.
const (
	IssuerProducer = "referenceMaterialProducer"
	IssuerCustomer = "customer"
	IssuerOwner    = "owner"
	IssuerOther    = "other"
)

// AllowedIssuers lists the recognized issuers, default first.
var AllowedIssuers = []string{IssuerProducer, IssuerCustomer, IssuerOwner, IssuerOther}

// validIssuers is the set of recognized issuer values.
var validIssuers = map[string]bool{
	IssuerProducer: true,
	IssuerCustomer: true,
	IssuerOwner:    true,
	IssuerOther:    true,
}

// ValidIssuer reports whether s is an allowed issuer.
func ValidIssuer(s string) bool {
	return validIssuers[s]
}

// Identification is a reference material identifier issued by a party.
// The document vocabulary allows a list of these, but the editable model
// clamps both the document-level and the per-material entry to exactly
// one; material entries mirror the document-level entry on export.
// An empty Value serializes as the sentinel "N/A".
type Identification struct {
	Issuer string `json:"issuer"`
	Value  string `json:"value"`
	IDName string `json:"id_name,omitempty"`
}

// DefaultIdentification returns an empty identification issued by the
// reference material producer.
func DefaultIdentification() Identification {
	return Identification{Issuer: IssuerProducer}
}
