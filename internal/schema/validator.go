// Package schema checks serialized documents against the external XSD
// resource. Content invalidity and validation-infrastructure failures
// are reported separately: a schema that cannot be loaded yields an
// error, never a "document invalid" result.
package schema

import (
	"fmt"
	"os"
	"strings"

	"github.com/lestrrat-go/libxml2"
	"github.com/lestrrat-go/libxml2/xsd"
)

// Result is the outcome of validating one document.
type Result struct {
	// Valid reports whether the document conforms to the schema.
	Valid bool

	// Detail carries the schema engine's error report when Valid is
	// false. Empty for valid documents.
	Detail string
}

// Validator validates documents against a fixed schema file. The schema
// is compiled lazily on first use and reused afterwards.
type Validator struct {
	schemaPath string
	compiled   *xsd.Schema
}

// NewValidator returns a validator for the schema at path. The file is
// not touched until the first Validate call.
func NewValidator(path string) *Validator {
	return &Validator{schemaPath: path}
}

// Validate checks the serialized document. A non-nil error means the
// validation infrastructure failed (schema unloadable); the document's
// own conformance is reported through Result.
func (v *Validator) Validate(document []byte) (Result, error) {
	s, err := v.schema()
	if err != nil {
		return Result{}, err
	}

	doc, err := libxml2.Parse(document)
	if err != nil {
		return Result{Detail: fmt.Sprintf("document is not well-formed: %v", err)}, nil
	}
	defer doc.Free()

	if err := s.Validate(doc); err != nil {
		return Result{Detail: validationDetail(err)}, nil
	}
	return Result{Valid: true}, nil
}

// Close releases the compiled schema.
func (v *Validator) Close() {
	if v.compiled != nil {
		v.compiled.Free()
		v.compiled = nil
	}
}

// schema loads and compiles the schema resource once.
func (v *Validator) schema() (*xsd.Schema, error) {
	if v.compiled != nil {
		return v.compiled, nil
	}
	buf, err := os.ReadFile(v.schemaPath)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", v.schemaPath, err)
	}
	s, err := xsd.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", v.schemaPath, err)
	}
	v.compiled = s
	return s, nil
}

// validationDetail flattens the schema engine's error list into one
// report string.
func validationDetail(err error) string {
	sve, ok := err.(xsd.SchemaValidationError)
	if !ok {
		return err.Error()
	}
	var lines []string
	for _, e := range sve.Errors() {
		lines = append(lines, e.Error())
	}
	return strings.Join(lines, "\n")
}
