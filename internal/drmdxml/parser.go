package drmdxml

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/dukaforge/drmd/pkg/types"
)

// excerptLimit bounds the raw-document excerpt attached to fatal import
// errors.
const excerptLimit = 1000

// ParseError is returned when a document cannot be imported at all. It
// carries a best-effort excerpt of the raw input for debugging; lenient
// field-level problems never produce a ParseError.
type ParseError struct {
	Err     error
	Excerpt string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("import document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser reads a serialized DRMD document into a fresh Certificate.
// Missing or malformed optional nodes map to type-appropriate defaults;
// only a document that is not well-formed XML fails the import.
type Parser struct {
	log *zap.Logger
}

// NewParser returns a parser logging lenient-field events to log. A nil
// logger disables logging.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log}
}

// Parse imports a serialized document. On success the returned
// Certificate is fully populated; on failure nothing is committed and
// the caller's current state stays untouched.
func (p *Parser) Parse(data []byte) (*types.Certificate, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Err: err, Excerpt: excerpt(data)}
	}
	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Err: fmt.Errorf("document has no root element"), Excerpt: excerpt(data)}
	}

	ns := resolveNamespaces(root)
	cert := types.NewCertificate()

	p.parseCoreData(root, ns, cert)
	p.parseProducers(root, ns, cert)
	p.parsePersons(root, ns, cert)
	p.parseMaterials(root, ns, cert)
	p.parseStatements(root, ns, cert)
	p.parsePropertySets(root, ns, cert)
	p.parseComments(root, ns, cert)
	p.parseDocuments(root, ns, cert)

	return cert, nil
}

// excerpt returns the head of the raw document for diagnostics.
func excerpt(data []byte) string {
	if len(data) > excerptLimit {
		return string(data[:excerptLimit]) + "..."
	}
	return string(data)
}

// parseCoreData loads title, persistent identifier, the clamped
// document-level identification, and the validity union.
func (p *Parser) parseCoreData(root *etree.Element, ns namespaces, cert *types.Certificate) {
	if title := elemText(firstDescendant(root, ns.drmd, "titleOfTheDocument")); title != "" {
		if types.ValidTitle(title) {
			cert.Title = title
		} else {
			p.log.Warn("unrecognized document title, keeping default", zap.String("title", title))
		}
	}
	if uid := elemText(firstDescendant(root, ns.drmd, "uniqueIdentifier")); uid != "" {
		cert.PersistentID = uid
	}

	cert.Identification = p.parseIdentifications(firstDescendant(root, ns.drmd, "identifications"), ns)

	validity := firstDescendant(root, ns.drmd, "validity")
	if validity == nil {
		return
	}
	switch {
	case childElem(validity, ns.drmd, "untilRevoked") != nil:
		cert.Validity.Kind = types.ValidityUntilRevoked
	case childElem(validity, ns.drmd, "timeAfterDispatch") != nil:
		cert.Validity.Kind = types.ValidityTimeAfterDispatch
		tad := childElem(validity, ns.drmd, "timeAfterDispatch")
		if period := elemText(childElem(tad, ns.drmd, "period")); period != "" {
			cert.Validity.Period = period
		}
		if dd := elemText(childElem(tad, ns.drmd, "dispatchDate")); dd != "" {
			cert.Validity.DispatchDate = types.ParseDate(dd)
		}
	case childElem(validity, ns.drmd, "specificTime") != nil:
		cert.Validity.Kind = types.ValiditySpecificTime
		if st := elemText(childElem(validity, ns.drmd, "specificTime")); st != "" {
			cert.Validity.SpecificDate = types.ParseDate(st)
		}
	}
}

// parseIdentifications extracts the first identification entry under the
// given container, synthesizing a default entry when the container is
// missing or empty. The underlying format allows a list; the model
// clamps to one, first wins.
func (p *Parser) parseIdentifications(container *etree.Element, ns namespaces) types.Identification {
	for _, ident := range childElems(container, ns.drmd, "identification") {
		out := types.DefaultIdentification()
		if issuer := elemText(childElem(ident, ns.drmd, "issuer")); issuer != "" {
			out.Issuer = issuer
		}
		out.Value = elemText(childElem(ident, ns.drmd, "value"))
		out.IDName = collapseSpace(elemText(descend(ident,
			[2]string{ns.drmd, "name"}, [2]string{ns.dcc, "content"})))
		return out
	}
	return types.DefaultIdentification()
}

// parseProducers loads every producer node. Contact sub-fields are each
// independently optional; street-level fields sit one level deeper under
// the contact's location child.
func (p *Parser) parseProducers(root *etree.Element, ns namespaces, cert *types.Certificate) {
	var producers []types.Producer
	for _, node := range descendants(root, ns.drmd, "referenceMaterialProducer") {
		prod := types.Producer{
			Name: elemText(descend(node, [2]string{ns.drmd, "name"}, [2]string{ns.dcc, "content"})),
		}
		if contact := childElem(node, ns.drmd, "contact"); contact != nil {
			prod.Phone = elemText(childElem(contact, ns.dcc, "phone"))
			prod.Fax = elemText(childElem(contact, ns.dcc, "fax"))
			prod.Email = elemText(childElem(contact, ns.dcc, "eMail"))
			if loc := childElem(contact, ns.dcc, "location"); loc != nil {
				prod.Street = elemText(childElem(loc, ns.dcc, "street"))
				prod.StreetNo = elemText(childElem(loc, ns.dcc, "streetNo"))
				prod.PostCode = elemText(childElem(loc, ns.dcc, "postCode"))
				prod.City = elemText(childElem(loc, ns.dcc, "city"))
				prod.CountryCode = elemText(childElem(loc, ns.dcc, "countryCode"))
			}
		}
		producers = append(producers, prod)
	}
	if len(producers) > 0 {
		cert.Producers = producers
	}
}

// parsePersons loads responsible persons. Multiple description content
// nodes are joined with spaces; each signing flag is a case-insensitive
// comparison against the literal "true".
func (p *Parser) parsePersons(root *etree.Element, ns namespaces, cert *types.Certificate) {
	var persons []types.ResponsiblePerson
	for _, container := range descendants(root, ns.drmd, "respPersons") {
		for _, node := range childElems(container, ns.dcc, "respPerson") {
			person := types.ResponsiblePerson{
				PersonName: elemText(descend(node,
					[2]string{ns.dcc, "person"}, [2]string{ns.dcc, "name"}, [2]string{ns.dcc, "content"})),
				Role: elemText(childElem(node, ns.dcc, "role")),
			}
			if desc := childElem(node, ns.dcc, "description"); desc != nil {
				var parts []string
				for _, content := range childElems(desc, ns.dcc, "content") {
					if t := elemText(content); t != "" {
						parts = append(parts, t)
					}
				}
				person.Description = strings.Join(parts, " ")
			}
			person.MainSigner = isTrue(elemText(childElem(node, ns.dcc, "mainSigner")))
			person.CryptElectronicSeal = isTrue(elemText(childElem(node, ns.dcc, "cryptElectronicSeal")))
			person.CryptElectronicSignature = isTrue(elemText(childElem(node, ns.dcc, "cryptElectronicSignature")))
			person.CryptElectronicTimeStamp = isTrue(elemText(childElem(node, ns.dcc, "cryptElectronicTimeStamp")))
			persons = append(persons, person)
		}
	}
	if len(persons) > 0 {
		cert.Persons = persons
	}
}

// parseMaterials loads every material node. A document with zero
// materials yields the single empty default material from the fresh
// certificate; a material with zero identifications gets a default
// entry.
func (p *Parser) parseMaterials(root *etree.Element, ns namespaces, cert *types.Certificate) {
	var materials []*types.Material
	for _, container := range descendants(root, ns.drmd, "materials") {
		for _, node := range childElems(container, ns.drmd, "material") {
			mat := types.NewMaterial()
			mat.Name = elemText(descend(node, [2]string{ns.drmd, "name"}, [2]string{ns.dcc, "content"}))
			mat.Description = collapseSpace(elemText(descend(node,
				[2]string{ns.drmd, "description"}, [2]string{ns.dcc, "content"})))
			mat.MaterialClass = elemText(descend(node,
				[2]string{ns.drmd, "materialClass"}, [2]string{ns.dcc, "content"}))
			mat.MinimumSampleSize = elemText(descend(node,
				[2]string{ns.drmd, "minimumSampleSize"},
				[2]string{ns.dcc, "itemQuantity"},
				[2]string{ns.si, "realListXMLList"},
				[2]string{ns.si, "valueXMLList"}))
			mat.ItemQuantities = elemText(descend(node,
				[2]string{ns.drmd, "itemQuantities"},
				[2]string{ns.dcc, "itemQuantity"},
				[2]string{ns.si, "realListXMLList"},
				[2]string{ns.si, "valueXMLList"}))
			mat.IsCertified = isTrue(node.SelectAttrValue("isCertified", "false"))
			mat.Identification = p.parseIdentifications(childElem(node, ns.drmd, "identifications"), ns)
			materials = append(materials, mat)
		}
	}
	if len(materials) > 0 {
		cert.Materials = materials
	}
}

// parseStatements classifies direct children of the statements container
// by local tag: official keys overwrite their mapping slot, the generic
// statement tag appends to the custom list, anything else is skipped.
func (p *Parser) parseStatements(root *etree.Element, ns namespaces, cert *types.Certificate) {
	container := firstDescendant(root, ns.drmd, "statements")
	if container == nil {
		return
	}
	set := types.NewStatementSet()
	for _, child := range container.ChildElements() {
		stmt := types.Statement{
			Name: collapseSpace(elemText(descend(child,
				[2]string{ns.dcc, "name"}, [2]string{ns.dcc, "content"}))),
		}
		var lines []string
		for _, content := range childElems(child, ns.dcc, "content") {
			if t := collapseSpace(elemText(content)); t != "" {
				lines = append(lines, t)
			}
		}
		stmt.Content = strings.Join(lines, "\n")

		switch {
		case types.OfficialStatementKey(child.Tag):
			set.Official[child.Tag] = stmt
		case child.Tag == types.CustomStatementTag:
			set.Custom = append(set.Custom, stmt)
		default:
			p.log.Warn("skipping unrecognized statement tag", zap.String("tag", child.Tag))
		}
	}
	cert.Statements = set
}

// parsePropertySets loads the material property set list with its nested
// results and quantity tables. Every numeric field is guarded; invalid
// text imports as an absent value. Property sets get fresh synthetic
// identities, never ones taken from the document.
func (p *Parser) parsePropertySets(root *etree.Element, ns namespaces, cert *types.Certificate) {
	list := firstDescendant(root, ns.drmd, "materialPropertiesList")
	if list == nil {
		return
	}
	var sets []*types.PropertySet
	for _, node := range childElems(list, ns.drmd, "materialProperties") {
		set := types.NewPropertySet()
		set.IsCertified = isTrue(node.SelectAttrValue("isCertified", "false"))
		set.ExternalID = strings.TrimSpace(node.SelectAttrValue("id", ""))
		set.Name = collapseSpace(elemText(descend(node,
			[2]string{ns.drmd, "name"}, [2]string{ns.dcc, "content"})))
		set.Description = collapseSpace(elemText(descend(node,
			[2]string{ns.drmd, "description"}, [2]string{ns.dcc, "content"})))
		set.Procedures = collapseSpace(elemText(descend(node,
			[2]string{ns.drmd, "procedures"}, [2]string{ns.dcc, "content"})))

		if results := childElem(node, ns.drmd, "results"); results != nil {
			for _, resNode := range childElems(results, ns.dcc, "result") {
				res := types.NewResult()
				res.Name = collapseSpace(elemText(descend(resNode,
					[2]string{ns.dcc, "name"}, [2]string{ns.dcc, "content"})))
				res.Description = collapseSpace(elemText(descend(resNode,
					[2]string{ns.dcc, "description"}, [2]string{ns.dcc, "content"})))
				listElem := descend(resNode, [2]string{ns.dcc, "data"}, [2]string{ns.dcc, "list"})
				for _, quant := range childElems(listElem, ns.dcc, "quantity") {
					res.Quantities = append(res.Quantities, p.parseQuantity(quant, ns))
				}
				set.Results = append(set.Results, res)
			}
		}
		sets = append(sets, set)
	}
	if len(sets) > 0 {
		cert.PropertySets = sets
	}
}

// parseQuantity extracts one quantity row: name, the real value block,
// and the optional nested uncertainty block.
func (p *Parser) parseQuantity(quant *etree.Element, ns namespaces) types.QuantityRow {
	row := types.QuantityRow{
		Name: collapseSpace(elemText(descend(quant,
			[2]string{ns.dcc, "name"}, [2]string{ns.dcc, "content"}))),
	}
	real := childElem(quant, ns.si, "real")
	if real == nil {
		return row
	}
	row.Value = p.decimal(childElem(real, ns.si, "value"), "value")
	row.Unit = elemText(childElem(real, ns.si, "unit"))
	mu := descend(real,
		[2]string{ns.si, "measurementUncertaintyUnivariate"},
		[2]string{ns.si, "expandedMU"})
	if mu == nil {
		return row
	}
	row.Uncertainty = p.decimal(childElem(mu, ns.si, "valueExpandedMU"), "valueExpandedMU")
	row.CoverageFactor = p.decimal(childElem(mu, ns.si, "coverageFactor"), "coverageFactor")
	row.CoverageProbability = p.decimal(childElem(mu, ns.si, "coverageProbability"), "coverageProbability")
	row.Distribution = elemText(childElem(mu, ns.si, "distribution"))
	return row
}

// decimal parses a numeric leaf, logging when non-blank content is
// dropped for failing the decimal guard.
func (p *Parser) decimal(e *etree.Element, field string) *float64 {
	text := elemText(e)
	v := parseDecimal(text)
	if v == nil && text != "" {
		p.log.Warn("dropping non-numeric quantity field",
			zap.String("field", field), zap.String("text", text))
	}
	return v
}

// parseComments newline-joins the text of every comment node into the
// single comment field.
func (p *Parser) parseComments(root *etree.Element, ns namespaces, cert *types.Certificate) {
	var parts []string
	for _, node := range descendants(root, ns.drmd, "comment") {
		if t := elemText(node); t != "" {
			parts = append(parts, t)
		}
	}
	cert.Comment = strings.Join(parts, "\n")
}

// parseDocuments accumulates embedded documents as attachments, decoding
// the base64 payload. An empty or undecodable payload imports as empty
// bytes rather than failing.
func (p *Parser) parseDocuments(root *etree.Element, ns namespaces, cert *types.Certificate) {
	for _, node := range descendants(root, ns.drmd, "document") {
		att := types.Attachment{
			FileName: elemText(childElem(node, ns.dcc, "fileName")),
			MimeType: elemText(childElem(node, ns.dcc, "mimeType")),
			Data:     []byte{},
		}
		if att.FileName == "" {
			att.FileName = "unknown"
		}
		if att.MimeType == "" {
			att.MimeType = types.DefaultMimeType
		}
		if payload := compactBase64(childElem(node, ns.dcc, "dataBase64")); payload != "" {
			data, err := base64.StdEncoding.DecodeString(payload)
			if err != nil {
				p.log.Warn("dropping undecodable attachment payload",
					zap.String("file", att.FileName), zap.Error(err))
			} else {
				att.Data = data
			}
		}
		cert.Attachments = append(cert.Attachments, att)
	}
}

// compactBase64 strips the whitespace XML pretty-printing inserts into
// long base64 payloads.
func compactBase64(e *etree.Element) string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range e.Text() {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
