package claims

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractedFieldsMissingMarker(t *testing.T) {
	fields := NewExtractedFields()

	// Empty strings never create a present field
	fields.SetText(FieldPolicyNumber, "")
	assert.False(t, fields.Has(FieldPolicyNumber))
	assert.Equal(t, 0, fields.Len())

	fields.SetText(FieldPolicyNumber, "POL-1")
	assert.True(t, fields.Has(FieldPolicyNumber))

	fields.Remove(FieldPolicyNumber)
	assert.False(t, fields.Has(FieldPolicyNumber))
}

func TestExtractedFieldsAccessors(t *testing.T) {
	fields := NewExtractedFields()
	fields.SetText(FieldPolicyNumber, "POL-1")
	fields.SetAmount(FieldEstimatedDamage, 1234.56)

	text, ok := fields.Text(FieldPolicyNumber)
	require.True(t, ok)
	assert.Equal(t, "POL-1", text)

	amount, ok := fields.Amount(FieldEstimatedDamage)
	require.True(t, ok)
	assert.Equal(t, 1234.56, amount)

	// Type-mismatched reads report absence of that representation
	_, ok = fields.Amount(FieldPolicyNumber)
	assert.False(t, ok)
	_, ok = fields.Text(FieldEstimatedDamage)
	assert.False(t, ok)

	_, ok = fields.Text(FieldVIN)
	assert.False(t, ok)
}

func TestExtractedFieldsNamesSorted(t *testing.T) {
	fields := NewExtractedFields()
	fields.SetText(FieldVIN, "4T1BF1FK5MU123456")
	fields.SetText(FieldAssetType, AssetTypeVehicle)
	fields.SetText(FieldPolicyNumber, "POL-1")

	assert.Equal(t, []FieldName{FieldAssetType, FieldPolicyNumber, FieldVIN}, fields.Names())
}

func TestExtractedFieldsJSONRoundTrip(t *testing.T) {
	fields := NewExtractedFields()
	fields.SetText(FieldPolicyNumber, "POL-1")
	fields.SetAmount(FieldEstimatedDamage, 3200)

	body, err := json.Marshal(fields)
	require.NoError(t, err)

	// Missing fields are omitted entirely
	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Len(t, raw, 2)
	assert.Equal(t, 3200.0, raw["estimated_damage"])

	var restored ExtractedFields
	require.NoError(t, json.Unmarshal(body, &restored))
	text, ok := restored.Text(FieldPolicyNumber)
	require.True(t, ok)
	assert.Equal(t, "POL-1", text)
	amount, ok := restored.Amount(FieldEstimatedDamage)
	require.True(t, ok)
	assert.Equal(t, 3200.0, amount)
}
