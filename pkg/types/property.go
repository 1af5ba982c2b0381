package types

import "github.com/google/uuid"

// PropertySet groups the measurement results certified for a material
// property. ID is a synthetic identity for editor addressing only;
// ExternalID is the optional id attribute carried by the document.
type PropertySet struct {
	ID          string    `json:"id"`
	ExternalID  string    `json:"external_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Procedures  string    `json:"procedures,omitempty"`
	IsCertified bool      `json:"is_certified,omitempty"`
	Results     []*Result `json:"results"`
}

// NewPropertySet returns an empty property set with a fresh synthetic
// identity and no results.
func NewPropertySet() *PropertySet {
	return &PropertySet{
		ID:      uuid.NewString(),
		Results: []*Result{},
	}
}

// AddResult appends a fresh empty result table and returns it.
func (p *PropertySet) AddResult() *Result {
	r := NewResult()
	p.Results = append(p.Results, r)
	return r
}

// RemoveResult removes the result at index i.
func (p *PropertySet) RemoveResult(i int) error {
	if i < 0 || i >= len(p.Results) {
		return ErrIndexOutOfRange
	}
	p.Results = append(p.Results[:i], p.Results[i+1:]...)
	return nil
}

// Result is one measurement result: a named, ordered table of quantity
// rows. Row order is display order and is preserved through the
// document round trip.
type Result struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Quantities  []QuantityRow `json:"quantities"`
}

// NewResult returns an empty result table.
func NewResult() *Result {
	return &Result{Quantities: []QuantityRow{}}
}

// Default uncertainty parameters applied to new quantity rows.
const (
	DefaultCoverageFactor      = 2.0
	DefaultCoverageProbability = 0.95
	DefaultDistribution        = "normal"
)

// QuantityRow is one row of a result table. Numeric fields are nil when
// absent; non-numeric document content imports as nil rather than
// failing. The four uncertainty fields form a single optional sub-block:
// they are serialized as a group only when at least one is present.
type QuantityRow struct {
	Name                string   `json:"name"`
	Label               string   `json:"label,omitempty"`
	Value               *float64 `json:"value,omitempty"`
	Unit                string   `json:"unit,omitempty"`
	Uncertainty         *float64 `json:"uncertainty,omitempty"`
	CoverageFactor      *float64 `json:"coverage_factor,omitempty"`
	CoverageProbability *float64 `json:"coverage_probability,omitempty"`
	Distribution        string   `json:"distribution,omitempty"`
}

// NewQuantityRow returns a row primed with the default uncertainty
// parameters.
func NewQuantityRow() QuantityRow {
	return QuantityRow{
		CoverageFactor:      Float(DefaultCoverageFactor),
		CoverageProbability: Float(DefaultCoverageProbability),
		Distribution:        DefaultDistribution,
	}
}

// HasUncertainty reports whether any field of the uncertainty sub-block
// is present.
func (q QuantityRow) HasUncertainty() bool {
	return q.Uncertainty != nil ||
		q.CoverageFactor != nil ||
		q.CoverageProbability != nil ||
		q.Distribution != ""
}

// Float returns a pointer to v, for filling optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
