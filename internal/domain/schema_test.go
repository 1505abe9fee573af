package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFor_AllDomainsRegistered(t *testing.T) {
	for _, d := range AllDomains() {
		s, err := SchemaFor(d)
		require.NoError(t, err, "domain %s", d)
		assert.Equal(t, d, s.Domain)
		assert.NotEmpty(t, s.Fields)
	}
}

func TestSchemaFor_UnknownDomain(t *testing.T) {
	_, err := SchemaFor(Domain("astrology"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDomain)

	var ude *UnknownDomainError
	require.True(t, errors.As(err, &ude))
	assert.Equal(t, "astrology", ude.Name)
}

func TestParseDomain(t *testing.T) {
	d, err := ParseDomain("hydration")
	require.NoError(t, err)
	assert.Equal(t, DomainHydration, d)

	_, err = ParseDomain("")
	assert.ErrorIs(t, err, ErrUnknownDomain)
}

func TestSchema_Validate_MissingRequiredField(t *testing.T) {
	s, err := SchemaFor(DomainHydration)
	require.NoError(t, err)

	err = s.Validate(NewRecord(map[string]any{"caffeine_intake": 2}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)

	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, DomainHydration, se.Domain)
	assert.Equal(t, "water_intake", se.Field)
}

func TestSchema_Validate_OptionalFieldsMayBeAbsent(t *testing.T) {
	s, err := SchemaFor(DomainHydration)
	require.NoError(t, err)
	assert.NoError(t, s.Validate(NewRecord(map[string]any{"water_intake": 6})))
}

func TestSchema_Validate_AllOptionalDomain(t *testing.T) {
	// Longitudinal marks every field optional; an empty record is valid.
	s, err := SchemaFor(DomainLongitudinal)
	require.NoError(t, err)
	assert.NoError(t, s.Validate(NewRecord(nil)))
}

func TestSchema_KeysPreserveDeclarationOrder(t *testing.T) {
	s, err := SchemaFor(DomainWorkspace)
	require.NoError(t, err)

	keys := s.Keys()
	require.NotEmpty(t, keys)
	assert.Equal(t, "good_posture", keys[0])
	assert.Equal(t, "notes", keys[len(keys)-1])
}

func TestSchema_NotesKeys(t *testing.T) {
	for _, d := range AllDomains() {
		s, err := SchemaFor(d)
		require.NoError(t, err)
		assert.Equal(t, []string{"notes"}, s.NotesKeys(), "domain %s", d)
	}
}
