package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeFields() *ExtractedFields {
	fields := NewExtractedFields()
	fields.SetText(FieldPolicyNumber, "POL-2024-001")
	fields.SetText(FieldPolicyholderName, "Sarah Mitchell")
	fields.SetText(FieldIncidentDate, "03/15/2024")
	fields.SetText(FieldIncidentLocation, "4500 Main Street")
	fields.SetText(FieldClaimType, string(ClaimTypeVehicleCollision))
	fields.SetText(FieldAssetType, AssetTypeVehicle)
	return fields
}

func TestValidatorComplete(t *testing.T) {
	v := NewValidator(nil)

	missing := v.Validate(completeFields())
	assert.NotNil(t, missing, "complete claim must yield an empty slice, not nil")
	assert.Empty(t, missing)
}

func TestValidatorMissingFields(t *testing.T) {
	v := NewValidator(nil)

	t.Run("single missing field", func(t *testing.T) {
		fields := completeFields()
		fields.Remove(FieldPolicyNumber)
		assert.Equal(t, []FieldName{FieldPolicyNumber}, v.Validate(fields))
	})

	t.Run("missing fields reported in mandatory order", func(t *testing.T) {
		fields := completeFields()
		fields.Remove(FieldIncidentDate)
		fields.Remove(FieldPolicyNumber)
		assert.Equal(t, []FieldName{FieldPolicyNumber, FieldIncidentDate}, v.Validate(fields))
	})

	t.Run("nothing extracted", func(t *testing.T) {
		assert.Equal(t, DefaultMandatoryFields, v.Validate(NewExtractedFields()))
	})
}

func TestValidatorCustomMandatoryList(t *testing.T) {
	v := NewValidator([]FieldName{FieldVIN, FieldPolicyNumber})

	fields := NewExtractedFields()
	fields.SetText(FieldPolicyNumber, "POL-1")

	assert.Equal(t, []FieldName{FieldVIN}, v.Validate(fields))
	assert.Equal(t, []FieldName{FieldVIN, FieldPolicyNumber}, v.MandatoryFields())
}

func TestValidatorExtraFieldsIgnored(t *testing.T) {
	v := NewValidator(nil)

	fields := completeFields()
	fields.SetText(FieldVIN, "4T1BF1FK5MU123456")
	fields.SetAmount(FieldEstimatedDamage, 100)

	assert.Empty(t, v.Validate(fields))
}
