package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValueDefaultsToDefaultLabel(t *testing.T) {
	def, err := NewDefinition("volunteer", "admin")
	require.NoError(t, err)

	v := NewValue(def)
	assert.True(t, v.Is("volunteer"))
	assert.False(t, v.Is("admin"))
	assert.Equal(t, "volunteer", v.Label())
	assert.Equal(t, 0, v.Code())

	def, err = def.WithDefault("admin")
	require.NoError(t, err)
	v = NewValue(def)
	assert.True(t, v.Is("admin"))
	assert.Equal(t, 1, v.Code())
}

func TestValueSet(t *testing.T) {
	def, err := NewDefinition("volunteer", "admin")
	require.NoError(t, err)

	v := NewValue(def)
	updated, err := v.Set("admin")
	require.NoError(t, err)
	assert.True(t, updated.Is("admin"))
	assert.False(t, updated.Is("volunteer"))

	// Value semantics: the original is untouched.
	assert.True(t, v.Is("volunteer"))

	_, err = v.Set("nonexistent")
	assert.ErrorIs(t, err, ErrUnknownLabel)
}

func TestValueIsUnknownLabel(t *testing.T) {
	def, err := NewDefinition("volunteer", "admin")
	require.NoError(t, err)

	v := NewValue(def)
	assert.False(t, v.Is("nonexistent"))
	assert.False(t, v.Is(""))
}

func TestValueOf(t *testing.T) {
	def, err := NewDefinition("volunteer", "admin")
	require.NoError(t, err)

	v, err := ValueOf(def, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Code())
	assert.Equal(t, "admin", v.String())

	_, err = ValueOf(def, "nonexistent")
	assert.ErrorIs(t, err, ErrUnknownLabel)
}

func TestValueFromCode(t *testing.T) {
	def, err := NewDefinition("volunteer", "admin")
	require.NoError(t, err)

	v, err := ValueFromCode(def, 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", v.Label())

	// A stored code outside the definition is drifted data, not a value.
	_, err = ValueFromCode(def, 2)
	assert.ErrorIs(t, err, ErrUnknownCode)
	_, err = ValueFromCode(def, -1)
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestValueSurvivesDefinitionExtension(t *testing.T) {
	def, err := NewDefinition("volunteer", "admin")
	require.NoError(t, err)
	v, err := ValueOf(def, "admin")
	require.NoError(t, err)

	extended, err := def.Extend("vendor", "customer")
	require.NoError(t, err)

	// A code written under the old definition decodes identically under the
	// extended one.
	label, err := extended.Decode(v.Code())
	require.NoError(t, err)
	assert.Equal(t, "admin", label)
}
