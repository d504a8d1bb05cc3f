package owner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "caseta/internal/domain/owner/valueobjects"
)

func validDocument(t *testing.T, raw string) *vo.DocumentNumber {
	t.Helper()
	doc, err := vo.NewDocumentNumber(raw)
	require.NoError(t, err)
	return doc
}

func validFullName(t *testing.T, raw string) *vo.FullName {
	t.Helper()
	name, err := vo.NewFullName(raw)
	require.NoError(t, err)
	return name
}

func newTestOwner(t *testing.T) *Owner {
	t.Helper()
	o, err := NewOwner(
		vo.DocumentTypeCC,
		validDocument(t, "1234567"),
		validFullName(t, "Ana Pérez"),
		nil,
		"",
		vo.PersonTypeNatural,
	)
	require.NoError(t, err)
	return o
}

func TestNewOwner(t *testing.T) {
	o := newTestOwner(t)

	assert.Equal(t, "1234567", o.DocumentNumber().String())
	assert.Equal(t, "Ana Pérez", o.FullName().String())
	assert.Equal(t, vo.PersonTypeNatural, o.PersonType())
	assert.True(t, o.IsActive())
	assert.Nil(t, o.Phone())
}

func TestNewOwner_MissingRequired(t *testing.T) {
	_, err := NewOwner(vo.DocumentTypeCC, nil, validFullName(t, "Ana Pérez"), nil, "", vo.PersonTypeNatural)
	assert.Error(t, err)

	_, err = NewOwner(vo.DocumentTypeCC, validDocument(t, "1234567"), nil, nil, "", vo.PersonTypeNatural)
	assert.Error(t, err)
}

func TestOwner_UpdateContact(t *testing.T) {
	o := newTestOwner(t)

	phone, err := vo.NewPhone("300-123-4567")
	require.NoError(t, err)

	require.NoError(t, o.UpdateContact(validFullName(t, "Ana María Pérez"), phone, "ana@example.com"))
	assert.Equal(t, "Ana María Pérez", o.FullName().String())
	assert.Equal(t, "3001234567", o.Phone().String())
	assert.Equal(t, "ana@example.com", o.Email())

	assert.Error(t, o.UpdateContact(nil, nil, ""))
}

func TestOwner_Deactivate(t *testing.T) {
	o := newTestOwner(t)

	o.Deactivate()
	assert.False(t, o.IsActive())

	o.Activate()
	assert.True(t, o.IsActive())
}
