package types

import "time"

// Allowed document titles. The certificate title is the default.
const (
	TitleCertificate      = "referenceMaterialCertificate"
	TitleInformationSheet = "productInformationSheet"
)

// AllowedTitles lists the recognized document titles, default first.
var AllowedTitles = []string{TitleCertificate, TitleInformationSheet}

// validTitles is the set of recognized title values.
var validTitles = map[string]bool{
	TitleCertificate:      true,
	TitleInformationSheet: true,
}

// ValidTitle reports whether s is an allowed document title.
func ValidTitle(s string) bool {
	return validTitles[s]
}

// ValidityKind selects one branch of the validity tagged union.
type ValidityKind string

// Validity kinds. Exactly one branch is serialized per document.
const (
	ValidityUntilRevoked      ValidityKind = "untilRevoked"
	ValidityTimeAfterDispatch ValidityKind = "timeAfterDispatch"
	ValiditySpecificTime      ValidityKind = "specificTime"
)

// validValidityKinds is the set of recognized validity kinds.
var validValidityKinds = map[ValidityKind]bool{
	ValidityUntilRevoked:      true,
	ValidityTimeAfterDispatch: true,
	ValiditySpecificTime:      true,
}

// Validity is the period-of-validity tagged union. Period and
// DispatchDate are meaningful only for ValidityTimeAfterDispatch,
// SpecificDate only for ValiditySpecificTime. The unused branch fields
// keep their defaults so switching kinds in the editor is lossless.
type Validity struct {
	Kind         ValidityKind `json:"kind"`
	Period       string       `json:"period,omitempty"`        // xs:duration, e.g. P1Y6M
	DispatchDate time.Time    `json:"dispatch_date,omitempty"` // date-only precision
	SpecificDate time.Time    `json:"specific_date,omitempty"` // date-only precision
}

// SetKind sets the validity branch. Returns ErrInvalidValidityKind for
// unrecognized kinds.
func (v *Validity) SetKind(kind ValidityKind) error {
	if !validValidityKinds[kind] {
		return ErrInvalidValidityKind
	}
	v.Kind = kind
	return nil
}

// DefaultValidity returns the session-start validity: until revoked,
// with both date branches primed to today.
func DefaultValidity() Validity {
	today := Today()
	return Validity{
		Kind:         ValidityUntilRevoked,
		DispatchDate: today,
		SpecificDate: today,
	}
}

// DateFormat is the ISO-8601 date-only layout used throughout the
// serialized document.
const DateFormat = "2006-01-02"

// Today returns the current date truncated to date-only precision in UTC.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses ISO-8601 date-only text. Malformed input falls back
// to today rather than failing; imports never abort on a bad date.
func ParseDate(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Today()
	}
	return t
}
