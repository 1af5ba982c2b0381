package drmdxml

import (
	"encoding/base64"
	"strings"

	"github.com/beevik/etree"

	"github.com/dukaforge/drmd/pkg/types"
)

// Sentinel values substituted for required-but-empty fields on export.
const (
	sentinelNoValue    = "N/A"
	sentinelZeroSample = "0"
)

// Dummy records synthesized so required list elements never export
// empty.
const (
	dummyProducerName = "Dummy Producer"
	dummyPersonName   = "Dummy Person"
	dummyPersonRole   = "Dummy Role"
	dummyMaterialName = "Dummy Material"
)

// identificationRefType is the refType attribute on exported
// identification entries.
const identificationRefType = "basic_certificateIdentification"

// measuredValueRefType is the refType attribute on exported quantities.
const measuredValueRefType = "basic_measuredValue"

// contentLang is the language attribute stamped on every localized
// content node.
const contentLang = "en"

// Serializer walks a populated Certificate and emits a serialized DRMD
// document. It never fails on missing optional data; required-but-empty
// fields get the documented sentinel values and required lists get
// synthesized dummy entries.
type Serializer struct{}

// NewSerializer returns a Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize renders the certificate as an indented, UTF-8 encoded
// document. Output is deterministic: serializing, importing, and
// serializing again reproduces the same bytes.
func (s *Serializer) Serialize(cert *types.Certificate) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("drmd:" + RootTag)
	root.CreateAttr("xmlns:drmd", NamespaceDRMD)
	root.CreateAttr("xmlns:dcc", NamespaceDCC)
	root.CreateAttr("xmlns:si", NamespaceSI)
	root.CreateAttr("xmlns:ds", NamespaceDS)
	root.CreateAttr("schemaVersion", SchemaVersion)

	s.writeAdministrativeData(root, cert)
	s.writeMaterials(root, cert)
	s.writePropertySets(root, cert)
	s.writeStatements(root, cert)
	s.writeComment(root, cert)
	s.writeDocument(root, cert)
	s.writeSignature(root, cert)

	doc.Indent(2)
	return doc.WriteToBytes()
}

// addIfValid appends a child with the given text only when the value is
// non-blank after trimming. Applied uniformly so optional fields never
// emit empty nodes.
func addIfValid(parent *etree.Element, tag, value string) *etree.Element {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	e := parent.CreateElement(tag)
	e.SetText(value)
	return e
}

// addContent appends a localized dcc:content child carrying the given
// text, which may be empty for required name shapes.
func addContent(parent *etree.Element, text string) *etree.Element {
	c := parent.CreateElement("dcc:content")
	c.CreateAttr("lang", contentLang)
	if text != "" {
		c.SetText(text)
	}
	return c
}

// writeAdministrativeData emits coreData, the producer list, and the
// responsible person list.
func (s *Serializer) writeAdministrativeData(root *etree.Element, cert *types.Certificate) {
	admin := root.CreateElement("drmd:administrativeData")

	core := admin.CreateElement("drmd:coreData")
	title := core.CreateElement("drmd:titleOfTheDocument")
	title.SetText(cert.Title)
	uid := core.CreateElement("drmd:uniqueIdentifier")
	if cert.PersistentID != "" {
		uid.SetText(cert.PersistentID)
	}
	s.writeIdentifications(core, cert.Identification)
	s.writeValidity(core, cert.Validity)

	s.writeProducers(admin, cert.Producers)
	s.writePersons(admin, cert.Persons)
}

// writeIdentifications emits the clamped single identification entry.
// An issuer outside the allowed enumeration falls back to the default;
// an empty value gets the "N/A" sentinel.
func (s *Serializer) writeIdentifications(parent *etree.Element, ident types.Identification) {
	container := parent.CreateElement("drmd:identifications")
	entry := container.CreateElement("drmd:identification")
	entry.CreateAttr("refType", identificationRefType)

	issuer := ident.Issuer
	if !types.ValidIssuer(issuer) {
		issuer = types.IssuerProducer
	}
	entry.CreateElement("drmd:issuer").SetText(issuer)

	value := strings.TrimSpace(ident.Value)
	if value == "" {
		value = sentinelNoValue
	}
	entry.CreateElement("drmd:value").SetText(value)

	if strings.TrimSpace(ident.IDName) != "" {
		name := entry.CreateElement("drmd:name")
		addContent(name, strings.TrimSpace(ident.IDName))
	}
}

// writeValidity emits exactly one branch of the validity union.
func (s *Serializer) writeValidity(parent *etree.Element, v types.Validity) {
	validity := parent.CreateElement("drmd:validity")
	switch v.Kind {
	case types.ValidityTimeAfterDispatch:
		tad := validity.CreateElement("drmd:timeAfterDispatch")
		tad.CreateElement("drmd:dispatchDate").SetText(v.DispatchDate.Format(types.DateFormat))
		period := tad.CreateElement("drmd:period")
		if v.Period != "" {
			period.SetText(v.Period)
		}
	case types.ValiditySpecificTime:
		validity.CreateElement("drmd:specificTime").SetText(v.SpecificDate.Format(types.DateFormat))
	default:
		validity.CreateElement("drmd:untilRevoked").SetText("true")
	}
}

// writeProducers emits every producer, or a dummy when the list is
// empty. The contact's location child appears only when at least one
// address field is set.
func (s *Serializer) writeProducers(admin *etree.Element, producers []types.Producer) {
	if len(producers) == 0 {
		prod := admin.CreateElement("drmd:referenceMaterialProducer")
		name := prod.CreateElement("drmd:name")
		addContent(name, dummyProducerName)
		return
	}
	for _, p := range producers {
		prod := admin.CreateElement("drmd:referenceMaterialProducer")
		name := prod.CreateElement("drmd:name")
		addContent(name, p.Name)

		contact := prod.CreateElement("drmd:contact")
		contactName := contact.CreateElement("dcc:name")
		addContent(contactName, p.Name)
		addIfValid(contact, "dcc:eMail", p.Email)
		addIfValid(contact, "dcc:phone", p.Phone)
		addIfValid(contact, "dcc:fax", p.Fax)
		if p.Street != "" || p.StreetNo != "" || p.PostCode != "" || p.City != "" || p.CountryCode != "" {
			loc := contact.CreateElement("dcc:location")
			addIfValid(loc, "dcc:street", p.Street)
			addIfValid(loc, "dcc:streetNo", p.StreetNo)
			addIfValid(loc, "dcc:postCode", p.PostCode)
			addIfValid(loc, "dcc:city", p.City)
			addIfValid(loc, "dcc:countryCode", p.CountryCode)
		}
	}
}

// writePersons emits every responsible person, or a dummy when the list
// is empty. Signing flags are written only when true; absence encodes
// false.
func (s *Serializer) writePersons(admin *etree.Element, persons []types.ResponsiblePerson) {
	container := admin.CreateElement("drmd:respPersons")
	if len(persons) == 0 {
		rp := container.CreateElement("dcc:respPerson")
		person := rp.CreateElement("dcc:person")
		name := person.CreateElement("dcc:name")
		addContent(name, dummyPersonName)
		rp.CreateElement("dcc:role").SetText(dummyPersonRole)
		return
	}
	for _, p := range persons {
		rp := container.CreateElement("dcc:respPerson")
		person := rp.CreateElement("dcc:person")
		name := person.CreateElement("dcc:name")
		addContent(name, p.PersonName)
		if strings.TrimSpace(p.Description) != "" {
			desc := rp.CreateElement("dcc:description")
			addContent(desc, strings.TrimSpace(p.Description))
		}
		addIfValid(rp, "dcc:role", p.Role)
		if p.MainSigner {
			rp.CreateElement("dcc:mainSigner").SetText("true")
		}
		if p.CryptElectronicSeal {
			rp.CreateElement("dcc:cryptElectronicSeal").SetText("true")
		}
		if p.CryptElectronicSignature {
			rp.CreateElement("dcc:cryptElectronicSignature").SetText("true")
		}
		if p.CryptElectronicTimeStamp {
			rp.CreateElement("dcc:cryptElectronicTimeStamp").SetText("true")
		}
	}
}

// writeMaterials emits the materials list, synthesizing a dummy material
// when the certificate has none. Material identifications mirror the
// document-level entry.
func (s *Serializer) writeMaterials(root *etree.Element, cert *types.Certificate) {
	container := root.CreateElement("drmd:materials")
	if len(cert.Materials) == 0 {
		dummy := container.CreateElement("drmd:material")
		name := dummy.CreateElement("drmd:name")
		addContent(name, dummyMaterialName)
		return
	}
	for _, m := range cert.Materials {
		mat := container.CreateElement("drmd:material")
		mat.CreateAttr("isCertified", boolString(m.IsCertified))
		name := mat.CreateElement("drmd:name")
		addContent(name, m.Name)
		if strings.TrimSpace(m.Description) != "" {
			desc := mat.CreateElement("drmd:description")
			addContent(desc, strings.TrimSpace(m.Description))
		}
		if strings.TrimSpace(m.MaterialClass) != "" {
			class := mat.CreateElement("drmd:materialClass")
			addContent(class, strings.TrimSpace(m.MaterialClass))
		}

		sample := strings.TrimSpace(m.MinimumSampleSize)
		if sample == "" {
			sample = sentinelZeroSample
		}
		s.writeQuantityList(mat, "drmd:minimumSampleSize", sample)

		if strings.TrimSpace(m.ItemQuantities) != "" {
			s.writeQuantityList(mat, "drmd:itemQuantities", strings.TrimSpace(m.ItemQuantities))
		}

		s.writeIdentifications(mat, cert.Identification)
	}
}

// writeQuantityList emits the itemQuantity/realListXMLList shape shared
// by minimumSampleSize and itemQuantities. The unit slot is present but
// empty; the editor does not capture it.
func (s *Serializer) writeQuantityList(parent *etree.Element, tag, value string) {
	wrapper := parent.CreateElement(tag)
	iq := wrapper.CreateElement("dcc:itemQuantity")
	list := iq.CreateElement("si:realListXMLList")
	list.CreateElement("si:valueXMLList").SetText(value)
	list.CreateElement("si:unitXMLList")
}

// writePropertySets emits the material property set list with nested
// results and quantity tables. The container is present even when the
// certificate has no property sets.
func (s *Serializer) writePropertySets(root *etree.Element, cert *types.Certificate) {
	container := root.CreateElement("drmd:materialPropertiesList")
	for _, set := range cert.PropertySets {
		mp := container.CreateElement("drmd:materialProperties")
		mp.CreateAttr("isCertified", boolString(set.IsCertified))
		if strings.TrimSpace(set.ExternalID) != "" {
			mp.CreateAttr("id", strings.TrimSpace(set.ExternalID))
		}
		name := mp.CreateElement("drmd:name")
		addContent(name, set.Name)
		if strings.TrimSpace(set.Description) != "" {
			desc := mp.CreateElement("drmd:description")
			addContent(desc, strings.TrimSpace(set.Description))
		}
		if strings.TrimSpace(set.Procedures) != "" {
			proc := mp.CreateElement("drmd:procedures")
			addContent(proc, strings.TrimSpace(set.Procedures))
		}

		results := mp.CreateElement("drmd:results")
		for _, res := range set.Results {
			s.writeResult(results, res)
		}
	}
}

// writeResult emits one result table.
func (s *Serializer) writeResult(parent *etree.Element, res *types.Result) {
	result := parent.CreateElement("dcc:result")
	name := result.CreateElement("dcc:name")
	addContent(name, res.Name)
	if strings.TrimSpace(res.Description) != "" {
		desc := result.CreateElement("dcc:description")
		addContent(desc, strings.TrimSpace(res.Description))
	}
	data := result.CreateElement("dcc:data")
	list := data.CreateElement("dcc:list")
	for _, row := range res.Quantities {
		s.writeQuantity(list, row)
	}
}

// writeQuantity emits one quantity row. The uncertainty block is
// all-or-nothing: the expandedMU element appears only when at least one
// of its four sub-fields is present, and then carries only the valid
// sub-fields.
func (s *Serializer) writeQuantity(list *etree.Element, row types.QuantityRow) {
	quant := list.CreateElement("dcc:quantity")
	quant.CreateAttr("refType", measuredValueRefType)
	name := quant.CreateElement("dcc:name")
	addContent(name, row.Name)

	real := quant.CreateElement("si:real")
	if row.Value != nil {
		real.CreateElement("si:value").SetText(formatFloat(*row.Value))
	}
	addIfValid(real, "si:unit", row.Unit)

	if !row.HasUncertainty() {
		return
	}
	mu := real.CreateElement("si:measurementUncertaintyUnivariate")
	expanded := mu.CreateElement("si:expandedMU")
	if row.Uncertainty != nil {
		expanded.CreateElement("si:valueExpandedMU").SetText(formatFloat(*row.Uncertainty))
	}
	if row.CoverageFactor != nil {
		expanded.CreateElement("si:coverageFactor").SetText(formatFloat(*row.CoverageFactor))
	}
	if row.CoverageProbability != nil {
		expanded.CreateElement("si:coverageProbability").SetText(formatFloat(*row.CoverageProbability))
	}
	addIfValid(expanded, "si:distribution", row.Distribution)
}

// writeStatements emits the official statements in their fixed order
// followed by the custom statements. A statement with blank content is
// skipped entirely; each non-blank content line becomes its own
// localized content node.
func (s *Serializer) writeStatements(root *etree.Element, cert *types.Certificate) {
	container := root.CreateElement("drmd:statements")
	for _, key := range types.OfficialStatementKeys {
		stmt := cert.Statements.Official[key]
		s.writeStatement(container, "drmd:"+key, types.OfficialStatementLabels[key], stmt.Content)
	}
	for _, stmt := range cert.Statements.Custom {
		s.writeStatement(container, "drmd:"+types.CustomStatementTag, stmt.Name, stmt.Content)
	}
}

// writeStatement emits one statement element when content is non-blank.
func (s *Serializer) writeStatement(container *etree.Element, tag, label, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	stmt := container.CreateElement(tag)
	if strings.TrimSpace(label) != "" {
		name := stmt.CreateElement("dcc:name")
		addContent(name, strings.TrimSpace(label))
	}
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		addContent(stmt, line)
	}
}

// writeComment emits at most one comment node.
func (s *Serializer) writeComment(root *etree.Element, cert *types.Certificate) {
	if comment := strings.TrimSpace(cert.Comment); comment != "" {
		root.CreateElement("drmd:comment").SetText(comment)
	}
}

// writeDocument emits at most one embedded document node from the active
// attachment.
func (s *Serializer) writeDocument(root *etree.Element, cert *types.Certificate) {
	att := cert.Attachment()
	if att == nil {
		return
	}
	doc := root.CreateElement("drmd:document")
	doc.CreateElement("dcc:fileName").SetText(att.FileName)
	mime := att.MimeType
	if mime == "" {
		mime = types.DefaultMimeType
	}
	doc.CreateElement("dcc:mimeType").SetText(mime)
	payload := doc.CreateElement("dcc:dataBase64")
	if len(att.Data) > 0 {
		payload.SetText(base64.StdEncoding.EncodeToString(att.Data))
	}
}

// writeSignature emits the detached signature placeholder. No signing
// occurs; only the staged artifact's filename is recorded.
func (s *Serializer) writeSignature(root *etree.Element, cert *types.Certificate) {
	if cert.SignatureFile == "" {
		return
	}
	root.CreateElement("ds:Signature").SetText(cert.SignatureFile)
}

// boolString renders the attribute-encoded boolean convention.
func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
