// Package units loads the QUDT ontology and builds the quantity-kind to
// applicable-units lookup used to offer unit choices in the editor. The
// lookup is a convenience only; it plays no part in document round-trip
// correctness.
package units

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/knakk/rdf"
)

// QUDT vocabulary IRIs consulted while building the lookup.
const (
	quantityKindIRI   = "http://qudt.org/schema/qudt/QuantityKind"
	applicableUnitIRI = "http://qudt.org/schema/qudt/applicableUnit"
)

// CustomUnit is offered for quantity kinds without applicable units,
// and as the catch-all kind.
const CustomUnit = "Custom"

// Lookup maps a quantity-kind name to the names of its applicable
// units.
type Lookup map[string][]string

// Load reads a Turtle serialization of the QUDT ontology and builds the
// lookup. Subjects typed as QuantityKind become keys; their
// applicableUnit objects become values, reduced to the final IRI path
// segment.
func Load(path string) (Lookup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ontology %s: %w", path, err)
	}
	defer f.Close()

	dec := rdf.NewTripleDecoder(f, rdf.Turtle)
	triples, err := dec.DecodeAll()
	if err != nil {
		return nil, fmt.Errorf("decode ontology %s: %w", path, err)
	}

	kinds := make(map[string]bool)
	unitsByKind := make(map[string][]string)
	for _, t := range triples {
		subj := t.Subj.String()
		switch {
		case t.Obj.String() == quantityKindIRI:
			kinds[subj] = true
		case t.Pred.String() == applicableUnitIRI:
			unitsByKind[subj] = append(unitsByKind[subj], lastSegment(t.Obj.String()))
		}
	}

	lookup := make(Lookup, len(kinds))
	for iri := range kinds {
		units := unitsByKind[iri]
		if len(units) == 0 {
			units = []string{CustomUnit}
		}
		sort.Strings(units)
		lookup[lastSegment(iri)] = units
	}
	return lookup, nil
}

// Kinds returns the known quantity-kind names sorted, with the custom
// catch-all appended.
func (l Lookup) Kinds() []string {
	kinds := make([]string, 0, len(l)+1)
	for k := range l {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return append(kinds, CustomUnit)
}

// Units returns the applicable units for a quantity kind, or the custom
// fallback for unknown kinds.
func (l Lookup) Units(kind string) []string {
	if units, ok := l[kind]; ok {
		return units
	}
	return []string{CustomUnit}
}

// lastSegment reduces an IRI to the text after its final slash.
func lastSegment(iri string) string {
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}
