package types

import "github.com/google/uuid"

// Material describes one reference material covered by the certificate.
// ID is a synthetic identity used only for addressing the record in the
// editor; it never appears in the serialized document. An empty
// MinimumSampleSize serializes as the sentinel "0".
type Material struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description,omitempty"`
	MaterialClass     string         `json:"material_class,omitempty"`
	MinimumSampleSize string         `json:"minimum_sample_size,omitempty"`
	ItemQuantities    string         `json:"item_quantities,omitempty"`
	IsCertified       bool           `json:"is_certified,omitempty"`
	Identification    Identification `json:"identification"`
}

// NewMaterial returns an empty material with a fresh synthetic identity
// and a default identification entry.
func NewMaterial() *Material {
	return &Material{
		ID:             uuid.NewString(),
		Identification: DefaultIdentification(),
	}
}
