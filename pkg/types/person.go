package types

// ResponsiblePerson is a person certifying the document. The four
// signing flags are independent; absence in the serialized form encodes
// false, and only true flags are emitted.
type ResponsiblePerson struct {
	PersonName               string `json:"person_name"`
	Description              string `json:"description,omitempty"`
	Role                     string `json:"role,omitempty"`
	MainSigner               bool   `json:"main_signer,omitempty"`
	CryptElectronicSeal      bool   `json:"crypt_electronic_seal,omitempty"`
	CryptElectronicSignature bool   `json:"crypt_electronic_signature,omitempty"`
	CryptElectronicTimeStamp bool   `json:"crypt_electronic_time_stamp,omitempty"`
}
