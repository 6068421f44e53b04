package claims

import (
	"encoding/json"
	"sort"
)

// FieldName identifies one of the fixed FNOL fields the pipeline knows about
type FieldName string

const (
	FieldPolicyNumber        FieldName = "policy_number"
	FieldPolicyholderName    FieldName = "policyholder_name"
	FieldEffectiveDate       FieldName = "effective_date"
	FieldIncidentDate        FieldName = "incident_date"
	FieldIncidentTime        FieldName = "incident_time"
	FieldIncidentLocation    FieldName = "incident_location"
	FieldCityStateZip        FieldName = "city_state_zip"
	FieldCountry             FieldName = "country"
	FieldIncidentDescription FieldName = "incident_description"
	FieldAssetType           FieldName = "asset_type"
	FieldVIN                 FieldName = "vin"
	FieldAssetID             FieldName = "asset_id"
	FieldPlateNumber         FieldName = "plate_number"
	FieldVehicleMake         FieldName = "vehicle_make"
	FieldVehicleModel        FieldName = "vehicle_model"
	FieldVehicleYear         FieldName = "vehicle_year"
	FieldBodyType            FieldName = "body_type"
	FieldEstimatedDamage     FieldName = "estimated_damage"
	FieldDamageDescription   FieldName = "damage_description"
	FieldClaimantName        FieldName = "claimant_name"
	FieldDriverName          FieldName = "driver_name"
	FieldOwnerName           FieldName = "owner_name"
	FieldContactPhone        FieldName = "contact_phone"
	FieldContactEmail        FieldName = "contact_email"
	FieldClaimType           FieldName = "claim_type"
)

// Asset type values produced by the extractor
const (
	AssetTypeVehicle  = "Vehicle"
	AssetTypeProperty = "Property"
	AssetTypeUnknown  = "Unknown"
)

// ClaimType is the classification label derived from extracted fields
type ClaimType string

const (
	ClaimTypeInjury           ClaimType = "injury"
	ClaimTypePropertyDamage   ClaimType = "property_damage"
	ClaimTypeVehicleCollision ClaimType = "vehicle_collision"
	ClaimTypeVehicleDamage    ClaimType = "vehicle_damage"
	ClaimTypeGeneral          ClaimType = "general"
)

// Route is the terminal workflow queue assigned to a claim
type Route string

const (
	RouteManualReview       Route = "Manual Review"
	RouteInvestigationQueue Route = "Investigation Queue"
	RouteSpecialistQueue    Route = "Specialist Queue"
	RouteFastTrack          Route = "Fast-Track"
	RouteStandardProcessing Route = "Standard Processing"
)

// AllRoutes returns the closed set of route names
func AllRoutes() []Route {
	return []Route{
		RouteManualReview,
		RouteInvestigationQueue,
		RouteSpecialistQueue,
		RouteFastTrack,
		RouteStandardProcessing,
	}
}

// ExtractedFields maps field names to extracted values. A field absent from
// the underlying map is the "missing" marker; the extractor never stores an
// empty string, so missing and present are always distinguishable.
type ExtractedFields struct {
	values map[FieldName]any
}

// NewExtractedFields creates an empty field set
func NewExtractedFields() *ExtractedFields {
	return &ExtractedFields{values: make(map[FieldName]any)}
}

// SetText stores a text value for a field. Empty strings are ignored so the
// field stays missing rather than present-but-empty.
func (f *ExtractedFields) SetText(name FieldName, value string) {
	if value == "" {
		return
	}
	f.values[name] = value
}

// SetAmount stores a numeric value for a field
func (f *ExtractedFields) SetAmount(name FieldName, value float64) {
	f.values[name] = value
}

// Text returns the text value for a field and whether it is present
func (f *ExtractedFields) Text(name FieldName) (string, bool) {
	v, ok := f.values[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Amount returns the numeric value for a field and whether it is present
func (f *ExtractedFields) Amount(name FieldName) (float64, bool) {
	v, ok := f.values[name]
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return n, ok
}

// Remove deletes a field, returning it to the missing state
func (f *ExtractedFields) Remove(name FieldName) {
	delete(f.values, name)
}

// Value returns the raw value for a field and whether it is present
func (f *ExtractedFields) Value(name FieldName) (any, bool) {
	v, ok := f.values[name]
	return v, ok
}

// Has reports whether a field was extracted
func (f *ExtractedFields) Has(name FieldName) bool {
	_, ok := f.values[name]
	return ok
}

// Len returns the number of extracted fields
func (f *ExtractedFields) Len() int {
	return len(f.values)
}

// Names returns the present field names in lexical order
func (f *ExtractedFields) Names() []FieldName {
	names := make([]FieldName, 0, len(f.values))
	for name := range f.values {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// MarshalJSON serializes present fields only; missing fields are omitted,
// never emitted as null or empty strings
func (f *ExtractedFields) MarshalJSON() ([]byte, error) {
	out := make(map[FieldName]any, len(f.values))
	for name, value := range f.values {
		out[name] = value
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a field set from its JSON object form
func (f *ExtractedFields) UnmarshalJSON(data []byte) error {
	values := make(map[FieldName]any)
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	f.values = values
	return nil
}
