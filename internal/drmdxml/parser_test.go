package drmdxml

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/drmd/pkg/types"
)

// wrap builds a well-formed document around the given body, optionally
// overriding the root namespace URI.
func wrap(drmdNS, body string) []byte {
	if drmdNS == "" {
		drmdNS = NamespaceDRMD
	}
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<drmd:digitalReferenceMaterialDocument xmlns:drmd=%q xmlns:dcc=%q xmlns:si=%q schemaVersion="0.2.0">
%s
</drmd:digitalReferenceMaterialDocument>`, drmdNS, NamespaceDCC, NamespaceSI, body))
}

func TestParseMalformedDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "truncated markup", input: "<drmd:digitalReferenceMaterialDocument><unclosed"},
		{name: "plain text", input: "this is not markup at all"},
		{name: "empty input", input: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(nil).Parse([]byte(tt.input))
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.input, perr.Excerpt)
		})
	}
}

func TestParseErrorExcerptIsBounded(t *testing.T) {
	input := "<broken " + strings.Repeat("x", 5000)
	_, err := NewParser(nil).Parse([]byte(input))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Len(t, perr.Excerpt, excerptLimit+len("..."))
	assert.True(t, strings.HasSuffix(perr.Excerpt, "..."))
}

func TestParseNamespaceOverride(t *testing.T) {
	const altNS = "https://example.org/drmd/draft"
	doc := wrap(altNS, `
  <drmd:administrativeData>
    <drmd:coreData>
      <drmd:titleOfTheDocument>productInformationSheet</drmd:titleOfTheDocument>
      <drmd:uniqueIdentifier>urn:alt:7</drmd:uniqueIdentifier>
    </drmd:coreData>
  </drmd:administrativeData>`)

	cert, err := NewParser(nil).Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, types.TitleInformationSheet, cert.Title)
	assert.Equal(t, "urn:alt:7", cert.PersistentID)
}

func TestParseUnknownTitleKeepsDefault(t *testing.T) {
	doc := wrap("", `
  <drmd:administrativeData>
    <drmd:coreData>
      <drmd:titleOfTheDocument>somethingElse</drmd:titleOfTheDocument>
    </drmd:coreData>
  </drmd:administrativeData>`)

	cert, err := NewParser(nil).Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, types.TitleCertificate, cert.Title)
}

func TestParseIdentificationFirstWins(t *testing.T) {
	doc := wrap("", `
  <drmd:administrativeData>
    <drmd:coreData>
      <drmd:identifications>
        <drmd:identification>
          <drmd:issuer>customer</drmd:issuer>
          <drmd:value>FIRST</drmd:value>
        </drmd:identification>
        <drmd:identification>
          <drmd:issuer>owner</drmd:issuer>
          <drmd:value>SECOND</drmd:value>
        </drmd:identification>
      </drmd:identifications>
    </drmd:coreData>
  </drmd:administrativeData>`)

	cert, err := NewParser(nil).Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, types.IssuerCustomer, cert.Identification.Issuer)
	assert.Equal(t, "FIRST", cert.Identification.Value)
}

func TestParseValidityBranches(t *testing.T) {
	tests := []struct {
		name string
		body string
		want types.Validity
	}{
		{
			name: "until revoked",
			body: `<drmd:untilRevoked>true</drmd:untilRevoked>`,
			want: types.Validity{Kind: types.ValidityUntilRevoked},
		},
		{
			name: "time after dispatch",
			body: `<drmd:timeAfterDispatch>
        <drmd:dispatchDate>2024-03-15</drmd:dispatchDate>
        <drmd:period>P6M</drmd:period>
      </drmd:timeAfterDispatch>`,
			want: types.Validity{
				Kind:         types.ValidityTimeAfterDispatch,
				Period:       "P6M",
				DispatchDate: types.ParseDate("2024-03-15"),
			},
		},
		{
			name: "specific time",
			body: `<drmd:specificTime>2030-01-01</drmd:specificTime>`,
			want: types.Validity{
				Kind:         types.ValiditySpecificTime,
				SpecificDate: types.ParseDate("2030-01-01"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := wrap("", fmt.Sprintf(`
  <drmd:administrativeData>
    <drmd:coreData>
      <drmd:validity>%s</drmd:validity>
    </drmd:coreData>
  </drmd:administrativeData>`, tt.body))

			cert, err := NewParser(nil).Parse(doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind, cert.Validity.Kind)
			assert.Equal(t, tt.want.Period, cert.Validity.Period)
			if !tt.want.DispatchDate.IsZero() {
				assert.Equal(t, tt.want.DispatchDate, cert.Validity.DispatchDate)
			}
			if !tt.want.SpecificDate.IsZero() {
				assert.Equal(t, tt.want.SpecificDate, cert.Validity.SpecificDate)
			}
		})
	}
}

func TestParseStatementClassification(t *testing.T) {
	doc := wrap("", `
  <drmd:statements>
    <drmd:intendedUse>
      <dcc:name><dcc:content lang="en">Intended Use</dcc:content></dcc:name>
      <dcc:content lang="en">For calibration.</dcc:content>
      <dcc:content lang="en">Not for consumption.</dcc:content>
    </drmd:intendedUse>
    <drmd:statement>
      <dcc:name><dcc:content lang="en">Shipping note</dcc:content></dcc:name>
      <dcc:content lang="en">Ships cold.</dcc:content>
    </drmd:statement>
    <drmd:notARealStatement>
      <dcc:content lang="en">ignored</dcc:content>
    </drmd:notARealStatement>
  </drmd:statements>`)

	cert, err := NewParser(nil).Parse(doc)
	require.NoError(t, err)

	intended := cert.Statements.Official[types.StatementIntendedUse]
	assert.Equal(t, "Intended Use", intended.Name)
	assert.Equal(t, "For calibration.\nNot for consumption.", intended.Content)

	require.Len(t, cert.Statements.Custom, 1)
	assert.Equal(t, "Shipping note", cert.Statements.Custom[0].Name)
	assert.Equal(t, "Ships cold.", cert.Statements.Custom[0].Content)

	// The unrecognized tag leaves every other official slot empty.
	assert.Empty(t, cert.Statements.Official[types.StatementLegalNotice].Content)
}

func TestParseNumericGuard(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *float64
	}{
		{name: "plain integer", text: "42", want: types.Float(42)},
		{name: "plain decimal", text: "12.5", want: types.Float(12.5)},
		{name: "negative rejected", text: "-5", want: nil},
		{name: "scientific rejected", text: "1e3", want: nil},
		{name: "words rejected", text: "about twelve", want: nil},
		{name: "leading plus rejected", text: "+3", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := wrap("", fmt.Sprintf(`
  <drmd:materialPropertiesList>
    <drmd:materialProperties isCertified="false">
      <drmd:name><dcc:content lang="en">P</dcc:content></drmd:name>
      <drmd:results>
        <dcc:result>
          <dcc:name><dcc:content lang="en">R</dcc:content></dcc:name>
          <dcc:data>
            <dcc:list>
              <dcc:quantity>
                <dcc:name><dcc:content lang="en">Q</dcc:content></dcc:name>
                <si:real>
                  <si:value>%s</si:value>
                  <si:unit>\gram</si:unit>
                </si:real>
              </dcc:quantity>
            </dcc:list>
          </dcc:data>
        </dcc:result>
      </drmd:results>
    </drmd:materialProperties>
  </drmd:materialPropertiesList>`, tt.text))

			cert, err := NewParser(nil).Parse(doc)
			require.NoError(t, err)
			require.Len(t, cert.PropertySets, 1)
			require.Len(t, cert.PropertySets[0].Results, 1)
			require.Len(t, cert.PropertySets[0].Results[0].Quantities, 1)

			row := cert.PropertySets[0].Results[0].Quantities[0]
			if tt.want == nil {
				assert.Nil(t, row.Value)
			} else {
				require.NotNil(t, row.Value)
				assert.Equal(t, *tt.want, *row.Value)
			}
			assert.Equal(t, `\gram`, row.Unit)
		})
	}
}

func TestParsePropertySetsGetFreshIdentity(t *testing.T) {
	doc := wrap("", `
  <drmd:materialPropertiesList>
    <drmd:materialProperties isCertified="true" id="props-7">
      <drmd:name><dcc:content lang="en">Purity</dcc:content></drmd:name>
    </drmd:materialProperties>
  </drmd:materialPropertiesList>`)

	first, err := NewParser(nil).Parse(doc)
	require.NoError(t, err)
	second, err := NewParser(nil).Parse(doc)
	require.NoError(t, err)

	require.Len(t, first.PropertySets, 1)
	require.Len(t, second.PropertySets, 1)
	assert.Equal(t, "props-7", first.PropertySets[0].ExternalID)
	assert.True(t, first.PropertySets[0].IsCertified)
	assert.NotEmpty(t, first.PropertySets[0].ID)
	assert.NotEqual(t, first.PropertySets[0].ID, second.PropertySets[0].ID)
}

func TestParseCommentsNewlineJoined(t *testing.T) {
	doc := wrap("", `
  <drmd:comment>first remark</drmd:comment>
  <drmd:comment>second remark</drmd:comment>`)

	cert, err := NewParser(nil).Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "first remark\nsecond remark", cert.Comment)
}

func TestParseDocuments(t *testing.T) {
	t.Run("decodes base64 with embedded whitespace", func(t *testing.T) {
		doc := wrap("", `
  <drmd:document>
    <dcc:fileName>report.pdf</dcc:fileName>
    <dcc:mimeType>application/pdf</dcc:mimeType>
    <dcc:dataBase64>aGVsbG8g
      d29ybGQ=</dcc:dataBase64>
  </drmd:document>`)

		cert, err := NewParser(nil).Parse(doc)
		require.NoError(t, err)
		require.Len(t, cert.Attachments, 1)
		assert.Equal(t, "report.pdf", cert.Attachments[0].FileName)
		assert.Equal(t, []byte("hello world"), cert.Attachments[0].Data)
	})

	t.Run("undecodable payload imports as empty bytes", func(t *testing.T) {
		doc := wrap("", `
  <drmd:document>
    <dcc:dataBase64>!!! not base64 !!!</dcc:dataBase64>
  </drmd:document>`)

		cert, err := NewParser(nil).Parse(doc)
		require.NoError(t, err)
		require.Len(t, cert.Attachments, 1)
		assert.Equal(t, "unknown", cert.Attachments[0].FileName)
		assert.Equal(t, types.DefaultMimeType, cert.Attachments[0].MimeType)
		assert.Empty(t, cert.Attachments[0].Data)
	})
}

func TestParseMissingSectionsYieldDefaults(t *testing.T) {
	cert, err := NewParser(nil).Parse(wrap("", ""))
	require.NoError(t, err)

	fresh := types.NewCertificate()
	assert.Equal(t, fresh.Title, cert.Title)
	assert.Equal(t, fresh.Identification, cert.Identification)
	assert.Equal(t, types.ValidityUntilRevoked, cert.Validity.Kind)
	assert.Len(t, cert.Producers, 1)
	assert.Len(t, cert.Persons, 1)
	assert.Len(t, cert.Materials, 1)
	assert.Empty(t, cert.PropertySets)
	assert.Empty(t, cert.Comment)
	assert.Empty(t, cert.Attachments)
}

func TestParseErrorUnwraps(t *testing.T) {
	_, err := NewParser(nil).Parse([]byte("<broken"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.True(t, errors.Is(err, perr.Err))
}
