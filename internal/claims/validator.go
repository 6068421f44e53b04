package claims

// DefaultMandatoryFields is the ordered mandatory-field set: a claim missing
// any of these is routed to manual review regardless of other signals
var DefaultMandatoryFields = []FieldName{
	FieldPolicyNumber,
	FieldPolicyholderName,
	FieldIncidentDate,
	FieldIncidentLocation,
	FieldClaimType,
	FieldAssetType,
}

// Validator checks extracted fields against a mandatory-field list
type Validator struct {
	mandatory []FieldName
}

// NewValidator creates a validator for the given mandatory fields; a nil
// slice falls back to the defaults
func NewValidator(mandatory []FieldName) *Validator {
	if mandatory == nil {
		mandatory = DefaultMandatoryFields
	}
	return &Validator{mandatory: mandatory}
}

// MandatoryFields returns the configured mandatory-field list in order
func (v *Validator) MandatoryFields() []FieldName {
	out := make([]FieldName, len(v.mandatory))
	copy(out, v.mandatory)
	return out
}

// Validate returns the mandatory fields absent from the extracted set, in
// mandatory-list declaration order so reports are stable across runs. The
// result is empty (never nil) when the claim is complete.
func (v *Validator) Validate(fields *ExtractedFields) []FieldName {
	missing := make([]FieldName, 0, len(v.mandatory))
	for _, field := range v.mandatory {
		if !fields.Has(field) {
			missing = append(missing, field)
		}
	}
	return missing
}
