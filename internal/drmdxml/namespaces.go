// Package drmdxml maps between the editable certificate record model and
// the serialized DRMD document: a namespaced XML tree mixing the DRMD
// vocabulary with the DCC and SI content schemas plus a detached
// signature namespace. The parser is lenient about missing or malformed
// nodes; the serializer substitutes documented sentinel values for
// required-but-empty fields so export always succeeds.
package drmdxml

import "github.com/beevik/etree"

// Namespace URIs of the document vocabulary. The DRMD namespace may be
// overridden on import by the root element's own namespace; the other
// three are fixed and never introspected.
const (
	NamespaceDRMD = "https://example.org/drmd"
	NamespaceDCC  = "https://ptb.de/dcc"
	NamespaceSI   = "https://ptb.de/si"
	NamespaceDS   = "http://www.w3.org/2000/09/xmldsig#"
)

// SchemaVersion is written to the root element's schemaVersion attribute.
const SchemaVersion = "0.2.0"

// RootTag is the local name of the document root element.
const RootTag = "digitalReferenceMaterialDocument"

// namespaces carries the URIs used when resolving elements of one
// document. Only drmd varies; the rest mirror the fixed constants.
type namespaces struct {
	drmd string
	dcc  string
	si   string
	ds   string
}

// defaultNamespaces returns the fixed namespace set.
func defaultNamespaces() namespaces {
	return namespaces{
		drmd: NamespaceDRMD,
		dcc:  NamespaceDCC,
		si:   NamespaceSI,
		ds:   NamespaceDS,
	}
}

// resolveNamespaces derives the namespace set for a parsed document,
// preferring the root element's own namespace URI for the primary
// vocabulary and falling back to the default.
func resolveNamespaces(root *etree.Element) namespaces {
	ns := defaultNamespaces()
	if uri := root.NamespaceURI(); uri != "" {
		ns.drmd = uri
	}
	return ns
}
