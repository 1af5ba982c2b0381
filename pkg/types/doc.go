// Package types defines the editable record model for digital reference
// material documents: the Certificate session container, its entity
// records (identifications, producers, responsible persons, materials,
// material property sets, measurement results, statements, attachments),
// the fixed DRMD enumerations, and factory functions with documented
// defaults. The package is pure data; parsing and serialization live in
// internal/drmdxml.
package types
