package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCertificateDefaults(t *testing.T) {
	cert := NewCertificate()

	assert.Equal(t, TitleCertificate, cert.Title)
	assert.Equal(t, DefaultIdentification(), cert.Identification)
	assert.Equal(t, ValidityUntilRevoked, cert.Validity.Kind)
	assert.Len(t, cert.Producers, 1)
	assert.Len(t, cert.Persons, 1)
	require.Len(t, cert.Materials, 1)
	assert.NotEmpty(t, cert.Materials[0].ID)
	assert.Empty(t, cert.PropertySets)
	assert.Len(t, cert.Statements.Official, len(OfficialStatementKeys))
	assert.Empty(t, cert.Statements.Custom)
}

func TestCertificateSetTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{name: "certificate title", title: TitleCertificate},
		{name: "information sheet title", title: TitleInformationSheet},
		{name: "unknown title", title: "certificateOfAnalysis", wantErr: ErrInvalidTitle},
		{name: "empty title", title: "", wantErr: ErrInvalidTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert := NewCertificate()
			err := cert.SetTitle(tt.title)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, TitleCertificate, cert.Title)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, cert.Title)
		})
	}
}

func TestCertificateSetIdentification(t *testing.T) {
	cert := NewCertificate()

	err := cert.SetIdentification(Identification{Issuer: "somebody", Value: "X"})
	assert.ErrorIs(t, err, ErrInvalidIssuer)
	assert.Equal(t, DefaultIdentification(), cert.Identification)

	want := Identification{Issuer: IssuerCustomer, Value: "CRM-5", IDName: "Lot"}
	require.NoError(t, cert.SetIdentification(want))
	assert.Equal(t, want, cert.Identification)
}

func TestCertificateMaterials(t *testing.T) {
	cert := NewCertificate()

	added := cert.AddMaterial()
	require.Len(t, cert.Materials, 2)
	assert.NotEqual(t, cert.Materials[0].ID, added.ID)

	require.NoError(t, cert.RemoveMaterial(0))
	require.Len(t, cert.Materials, 1)
	assert.Equal(t, added.ID, cert.Materials[0].ID)

	assert.ErrorIs(t, cert.RemoveMaterial(0), ErrLastMaterial)
	assert.ErrorIs(t, cert.RemoveMaterial(5), ErrIndexOutOfRange)
	assert.ErrorIs(t, cert.RemoveMaterial(-1), ErrIndexOutOfRange)
}

func TestCertificatePersons(t *testing.T) {
	cert := NewCertificate()

	p := cert.AddPerson()
	p.PersonName = "Jane Doe"
	require.Len(t, cert.Persons, 2)
	assert.Equal(t, "Jane Doe", cert.Persons[1].PersonName)

	require.NoError(t, cert.RemovePerson(0))
	require.Len(t, cert.Persons, 1)
	assert.ErrorIs(t, cert.RemovePerson(3), ErrIndexOutOfRange)
}

func TestCertificatePropertySets(t *testing.T) {
	cert := NewCertificate()

	set := cert.AddPropertySet()
	set.Name = "Purity"
	res := set.AddResult()
	res.Quantities = append(res.Quantities, NewQuantityRow())

	require.Len(t, cert.PropertySets, 1)
	require.NoError(t, set.RemoveResult(0))
	assert.Empty(t, set.Results)
	assert.ErrorIs(t, set.RemoveResult(0), ErrIndexOutOfRange)

	require.NoError(t, cert.RemovePropertySet(0))
	assert.Empty(t, cert.PropertySets)
	assert.ErrorIs(t, cert.RemovePropertySet(0), ErrIndexOutOfRange)
}

func TestCertificateAttachment(t *testing.T) {
	cert := NewCertificate()
	assert.Nil(t, cert.Attachment())

	cert.SetAttachment(Attachment{FileName: "a.pdf", Data: []byte("a")})
	cert.SetAttachment(Attachment{FileName: "b.pdf", Data: []byte("b")})
	require.NotNil(t, cert.Attachment())
	assert.Equal(t, "b.pdf", cert.Attachment().FileName)
	assert.Len(t, cert.Attachments, 1)

	cert.RemoveAttachment()
	assert.Nil(t, cert.Attachment())
	cert.RemoveAttachment()
}

func TestCertificateJSONRoundTrip(t *testing.T) {
	cert := NewCertificate()
	cert.Comment = "remark"
	cert.Materials[0].Name = "Disk"
	require.NoError(t, cert.Statements.SetOfficial(StatementLegalNotice,
		Statement{Content: "All rights reserved."}))

	data, err := json.Marshal(cert)
	require.NoError(t, err)

	var got Certificate
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, cert.Title, got.Title)
	assert.Equal(t, cert.Comment, got.Comment)
	assert.Equal(t, cert.Materials[0].Name, got.Materials[0].Name)
	assert.Equal(t, "All rights reserved.", got.Statements.Official[StatementLegalNotice].Content)
}
