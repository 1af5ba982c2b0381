package types

// Official statement keys. These nine ISO 17034 statements are always
// present in the model as a mapping, even when empty.
const (
	StatementIntendedUse          = "intendedUse"
	StatementCommutability        = "commutability"
	StatementStorageInformation   = "storageInformation"
	StatementHandlingInstructions = "instructionsForHandlingAndUse"
	StatementTraceability         = "metrologicalTraceability"
	StatementHealthAndSafety      = "healthAndSafetyInformation"
	StatementSubcontractors       = "subcontractors"
	StatementLegalNotice          = "legalNotice"
	StatementCertificationReport  = "referenceToCertificationReport"
)

// CustomStatementTag is the generic element name used for statements
// outside the official set.
const CustomStatementTag = "statement"

// OfficialStatementKeys lists the official keys in document order.
var OfficialStatementKeys = []string{
	StatementIntendedUse,
	StatementCommutability,
	StatementStorageInformation,
	StatementHandlingInstructions,
	StatementTraceability,
	StatementHealthAndSafety,
	StatementSubcontractors,
	StatementLegalNotice,
	StatementCertificationReport,
}

// OfficialStatementLabels maps official keys to the display labels
// emitted as the statement name on export.
var OfficialStatementLabels = map[string]string{
	StatementIntendedUse:          "Intended Use",
	StatementCommutability:        "Commutability",
	StatementStorageInformation:   "Storage Information",
	StatementHandlingInstructions: "Handling Instructions",
	StatementTraceability:         "Metrological Traceability",
	StatementHealthAndSafety:      "Health and Safety Information",
	StatementSubcontractors:       "Subcontractors",
	StatementLegalNotice:          "Legal Notice",
	StatementCertificationReport:  "Reference to Certification Report",
}

// OfficialStatementKey reports whether tag is one of the nine official
// statement keys.
func OfficialStatementKey(tag string) bool {
	_, ok := OfficialStatementLabels[tag]
	return ok
}

// Statement is one certifying statement. Content may span multiple
// lines; each non-blank line becomes its own content node on export.
type Statement struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content"`
}

// StatementSet holds the nine official statements keyed by their closed
// enumeration plus an unbounded list of custom statements.
type StatementSet struct {
	Official map[string]Statement `json:"official"`
	Custom   []Statement          `json:"custom"`
}

// NewStatementSet returns a set with every official key present and
// empty, and no custom statements.
func NewStatementSet() StatementSet {
	official := make(map[string]Statement, len(OfficialStatementKeys))
	for _, key := range OfficialStatementKeys {
		official[key] = Statement{}
	}
	return StatementSet{Official: official, Custom: []Statement{}}
}

// SetOfficial replaces the statement stored under an official key.
// Returns ErrUnknownStatement for keys outside the closed set.
func (s *StatementSet) SetOfficial(key string, stmt Statement) error {
	if !OfficialStatementKey(key) {
		return ErrUnknownStatement
	}
	if s.Official == nil {
		s.Official = make(map[string]Statement, len(OfficialStatementKeys))
	}
	s.Official[key] = stmt
	return nil
}

// AddCustom appends a custom statement.
func (s *StatementSet) AddCustom(stmt Statement) {
	s.Custom = append(s.Custom, stmt)
}

// RemoveCustom removes the custom statement at index i.
func (s *StatementSet) RemoveCustom(i int) error {
	if i < 0 || i >= len(s.Custom) {
		return ErrIndexOutOfRange
	}
	s.Custom = append(s.Custom[:i], s.Custom[i+1:]...)
	return nil
}
