package claims

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultMaxDescriptionLength bounds the incident description after
	// whitespace collapsing
	DefaultMaxDescriptionLength = 500

	minNameLength     = 3
	minLocationLength = 4
	maxVehicleDetail  = 30
	vinLength         = 17
)

// Asset type detection is keyword-based over the whole document, since FNOL
// forms rarely carry an explicit "asset type" label
var (
	vehicleAssetPattern  = regexp.MustCompile(`(?i)\b(?:AUTOMOBILE|VEHICLE|CAR|TRUCK|VAN)\b`)
	propertyAssetPattern = regexp.MustCompile(`(?i)\b(?:PROPERTY|BUILDING|HOME|HOUSE)\b`)

	// A continuation line starting with an uppercase form label ends a
	// multi-line description capture
	fieldLabelLine = regexp.MustCompile(`^[A-Z][A-Z0-9\s/'&#-]*:`)

	phoneSeparators = strings.NewReplacer("-", "", ".", "", " ", "")
	amountNoise     = strings.NewReplacer("$", "", ",", "")
)

// Extractor applies the pattern library to raw document text and produces an
// ExtractedFields mapping. It is a pure function of its input: a field whose
// patterns find nothing simply stays missing, and no input ever makes
// extraction fail.
type Extractor struct {
	library        *Library
	maxDescription int
}

// NewExtractor creates an extractor over the given pattern library.
// maxDescription bounds the incident description length; values <= 0 fall
// back to DefaultMaxDescriptionLength.
func NewExtractor(library *Library, maxDescription int) *Extractor {
	if library == nil {
		library = DefaultLibrary()
	}
	if maxDescription <= 0 {
		maxDescription = DefaultMaxDescriptionLength
	}
	return &Extractor{
		library:        library,
		maxDescription: maxDescription,
	}
}

// Extract pulls all known fields out of the document text. It never returns
// an error: unparseable input degrades to missing fields, which downstream
// validation surfaces as business data.
func (e *Extractor) Extract(text string) *ExtractedFields {
	fields := NewExtractedFields()

	e.extractPolicyInfo(text, fields)
	e.extractIncidentInfo(text, fields)
	e.extractInvolvedParties(text, fields)
	e.extractAssetDetails(text, fields)

	return fields
}

// extractPolicyInfo extracts policy number, policyholder name and effective date
func (e *Extractor) extractPolicyInfo(text string, fields *ExtractedFields) {
	if v, ok := e.library.First(FieldPolicyNumber, text); ok {
		fields.SetText(FieldPolicyNumber, v)
	}
	if v, ok := e.firstName(FieldPolicyholderName, text); ok {
		fields.SetText(FieldPolicyholderName, v)
	}
	if v, ok := e.library.First(FieldEffectiveDate, text); ok {
		fields.SetText(FieldEffectiveDate, v)
	}
}

// extractIncidentInfo extracts the date, time, location and description of the loss
func (e *Extractor) extractIncidentInfo(text string, fields *ExtractedFields) {
	if v, ok := e.library.First(FieldIncidentDate, text); ok {
		fields.SetText(FieldIncidentDate, v)
	}
	if v, ok := e.library.First(FieldIncidentTime, text); ok {
		fields.SetText(FieldIncidentTime, collapseWhitespace(v))
	}

	if v, ok := e.library.First(FieldIncidentLocation, text); ok {
		location := collapseWhitespace(v)
		if len(location) >= minLocationLength {
			fields.SetText(FieldIncidentLocation, location)
		}
	}

	if v, ok := e.library.First(FieldCityStateZip, text); ok {
		fields.SetText(FieldCityStateZip, collapseWhitespace(v))
	}
	if v, ok := e.library.First(FieldCountry, text); ok {
		fields.SetText(FieldCountry, v)
	}

	if v, ok := e.library.First(FieldIncidentDescription, text); ok {
		description := collapseWhitespace(truncateAtLabel(v))
		if len(description) > e.maxDescription {
			description = description[:e.maxDescription]
		}
		fields.SetText(FieldIncidentDescription, description)
	}
}

// extractInvolvedParties extracts claimant, driver and owner names plus contact details
func (e *Extractor) extractInvolvedParties(text string, fields *ExtractedFields) {
	for _, field := range []FieldName{FieldClaimantName, FieldDriverName, FieldOwnerName} {
		if v, ok := e.firstName(field, text); ok {
			fields.SetText(field, v)
		}
	}

	if v, ok := e.library.First(FieldContactPhone, text); ok {
		fields.SetText(FieldContactPhone, phoneSeparators.Replace(v))
	}
	if v, ok := e.library.First(FieldContactEmail, text); ok {
		fields.SetText(FieldContactEmail, v)
	}
}

// extractAssetDetails extracts the asset type, vehicle identifiers and the
// damage estimate
func (e *Extractor) extractAssetDetails(text string, fields *ExtractedFields) {
	switch {
	case vehicleAssetPattern.MatchString(text):
		fields.SetText(FieldAssetType, AssetTypeVehicle)
	case propertyAssetPattern.MatchString(text):
		fields.SetText(FieldAssetType, AssetTypeProperty)
	default:
		fields.SetText(FieldAssetType, AssetTypeUnknown)
	}

	if v, ok := e.library.First(FieldVIN, text); ok {
		vin := strings.ToUpper(v)
		// Secondary validation: a capture that fails the VIN shape check is
		// treated as no match, not as a bad value.
		if validVIN(vin) {
			fields.SetText(FieldVIN, vin)
			fields.SetText(FieldAssetID, vin)
		}
	}

	if v, ok := e.library.First(FieldPlateNumber, text); ok {
		fields.SetText(FieldPlateNumber, v)
	}
	if v, ok := e.library.First(FieldVehicleYear, text); ok {
		fields.SetText(FieldVehicleYear, v)
	}

	for _, field := range []FieldName{FieldVehicleMake, FieldVehicleModel, FieldBodyType} {
		if v, ok := e.library.First(field, text); ok {
			detail := collapseWhitespace(v)
			if detail != "" && len(detail) < maxVehicleDetail {
				fields.SetText(field, detail)
			}
		}
	}

	if amount, ok := e.extractDamageEstimate(text); ok {
		fields.SetAmount(FieldEstimatedDamage, amount)
	}

	if v, ok := e.library.First(FieldDamageDescription, text); ok {
		damage := collapseWhitespace(v)
		if len(damage) >= minNameLength {
			fields.SetText(FieldDamageDescription, damage)
		}
	}
}

// extractDamageEstimate walks the damage patterns individually: a capture
// that fails numeric parsing falls through to the next pattern rather than
// ending the search
func (e *Extractor) extractDamageEstimate(text string) (float64, bool) {
	for _, p := range e.library.Patterns(FieldEstimatedDamage) {
		capture, ok := p.Match(text)
		if !ok {
			continue
		}
		amount, err := strconv.ParseFloat(amountNoise.Replace(capture), 64)
		if err != nil || amount < 0 {
			continue
		}
		return amount, true
	}
	return 0, false
}

// firstName extracts a person-name field and applies name cleanup: collapsed
// whitespace, stripped trailing punctuation, minimum meaningful length
func (e *Extractor) firstName(field FieldName, text string) (string, bool) {
	v, ok := e.library.First(field, text)
	if !ok {
		return "", false
	}
	name := strings.TrimSpace(strings.TrimRight(collapseWhitespace(v), ",."))
	if len(name) < minNameLength {
		return "", false
	}
	return name, true
}

// validVIN reports whether s is a well-formed VIN: exactly 17 characters
// drawn from digits and uppercase letters excluding I, O and Q
func validVIN(s string) bool {
	if len(s) != vinLength {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z' && r != 'I' && r != 'O' && r != 'Q':
		default:
			return false
		}
	}
	return true
}

// truncateAtLabel cuts a multi-line capture at the first continuation line
// that opens a new form label, bounding greedy description captures
func truncateAtLabel(s string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		if fieldLabelLine.MatchString(strings.TrimSpace(lines[i])) {
			return strings.Join(lines[:i], "\n")
		}
	}
	return s
}

// collapseWhitespace folds runs of whitespace, including newlines, into
// single spaces
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
