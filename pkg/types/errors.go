package types

import "errors"

// Standard errors returned by record mutation helpers.
var (
	ErrInvalidTitle        = errors.New("title is not an allowed document title")
	ErrInvalidIssuer       = errors.New("issuer is not an allowed identification issuer")
	ErrInvalidValidityKind = errors.New("unknown validity kind")
	ErrUnknownStatement    = errors.New("unknown official statement key")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrLastMaterial        = errors.New("a certificate keeps at least one material")
)
