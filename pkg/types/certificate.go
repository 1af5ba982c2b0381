package types

// Certificate is the whole editable document state for one session. It
// exclusively owns every record it holds; there is no sharing between
// certificates and no persistence beyond an exported document or a saved
// session. Construct with NewCertificate and pass it explicitly into the
// parser, serializer, and CLI layers.
type Certificate struct {
	Title          string              `json:"title"`
	PersistentID   string              `json:"persistent_id,omitempty"`
	Identification Identification      `json:"identification"`
	Validity       Validity            `json:"validity"`
	Producers      []Producer          `json:"producers"`
	Persons        []ResponsiblePerson `json:"persons"`
	Materials      []*Material         `json:"materials"`
	PropertySets   []*PropertySet      `json:"property_sets"`
	Statements     StatementSet        `json:"statements"`
	Comment        string              `json:"comment,omitempty"`

	// Attachments accumulates documents found on import; the exporter
	// emits at most the first entry. The editor keeps the list at length
	// zero or one.
	Attachments []Attachment `json:"attachments,omitempty"`

	// SignatureFile is the staged signature artifact name. Signing is a
	// placeholder: only the filename is ever written to the document.
	SignatureFile string `json:"signature_file,omitempty"`
}

// NewCertificate returns the session-start state: default title, one
// empty producer, one empty responsible person, one empty material, the
// official statement mapping, and until-revoked validity.
func NewCertificate() *Certificate {
	return &Certificate{
		Title:          TitleCertificate,
		Identification: DefaultIdentification(),
		Validity:       DefaultValidity(),
		Producers:      []Producer{{}},
		Persons:        []ResponsiblePerson{{}},
		Materials:      []*Material{NewMaterial()},
		PropertySets:   []*PropertySet{},
		Statements:     NewStatementSet(),
	}
}

// SetTitle sets the document title. Returns ErrInvalidTitle for values
// outside the allowed enumeration.
func (c *Certificate) SetTitle(title string) error {
	if !ValidTitle(title) {
		return ErrInvalidTitle
	}
	c.Title = title
	return nil
}

// SetIdentification replaces the clamped document-level identification.
// An unrecognized issuer is rejected with ErrInvalidIssuer; material
// identifications mirror this entry on export.
func (c *Certificate) SetIdentification(ident Identification) error {
	if !ValidIssuer(ident.Issuer) {
		return ErrInvalidIssuer
	}
	c.Identification = ident
	return nil
}

// AddMaterial appends a fresh empty material and returns it.
func (c *Certificate) AddMaterial() *Material {
	m := NewMaterial()
	c.Materials = append(c.Materials, m)
	return m
}

// RemoveMaterial removes the material at index i. The last material
// cannot be removed; the document always describes at least one.
func (c *Certificate) RemoveMaterial(i int) error {
	if i < 0 || i >= len(c.Materials) {
		return ErrIndexOutOfRange
	}
	if len(c.Materials) == 1 {
		return ErrLastMaterial
	}
	c.Materials = append(c.Materials[:i], c.Materials[i+1:]...)
	return nil
}

// AddPropertySet appends a fresh empty property set and returns it.
func (c *Certificate) AddPropertySet() *PropertySet {
	p := NewPropertySet()
	c.PropertySets = append(c.PropertySets, p)
	return p
}

// RemovePropertySet removes the property set at index i.
func (c *Certificate) RemovePropertySet(i int) error {
	if i < 0 || i >= len(c.PropertySets) {
		return ErrIndexOutOfRange
	}
	c.PropertySets = append(c.PropertySets[:i], c.PropertySets[i+1:]...)
	return nil
}

// AddPerson appends an empty responsible person record.
func (c *Certificate) AddPerson() *ResponsiblePerson {
	c.Persons = append(c.Persons, ResponsiblePerson{})
	return &c.Persons[len(c.Persons)-1]
}

// RemovePerson removes the responsible person at index i.
func (c *Certificate) RemovePerson(i int) error {
	if i < 0 || i >= len(c.Persons) {
		return ErrIndexOutOfRange
	}
	c.Persons = append(c.Persons[:i], c.Persons[i+1:]...)
	return nil
}

// SetAttachment replaces any existing attachment with the given one.
func (c *Certificate) SetAttachment(a Attachment) {
	c.Attachments = []Attachment{a}
}

// RemoveAttachment discards the active attachment. Removing when none
// is present is a no-op.
func (c *Certificate) RemoveAttachment() {
	c.Attachments = nil
}

// Attachment returns the active attachment, or nil when none is set.
func (c *Certificate) Attachment() *Attachment {
	if len(c.Attachments) == 0 {
		return nil
	}
	return &c.Attachments[0]
}
