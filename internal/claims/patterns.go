package claims

import (
	"regexp"
	"strings"
)

// Pattern is a single extraction rule: a case-insensitive regular expression
// with exactly one capture group delimiting the field value.
type Pattern struct {
	Name string
	re   *regexp.Regexp
}

// newPattern compiles an extraction pattern. Patterns are part of the
// built-in library, so a bad expression is a programming error.
func newPattern(name, expr string) Pattern {
	return Pattern{
		Name: name,
		re:   regexp.MustCompile(`(?i)` + expr),
	}
}

// Match attempts the pattern anywhere in text and returns the cleaned capture.
// An empty capture after cleaning counts as no match.
func (p Pattern) Match(text string) (string, bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil || len(m) < 2 {
		return "", false
	}
	value := cleanCapture(m[1])
	if value == "" {
		return "", false
	}
	return value, true
}

// cleanCapture trims surrounding whitespace and trailing punctuation from a
// captured value
func cleanCapture(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ",.;:")
	return strings.TrimSpace(s)
}

// FieldPatterns is the ordered pattern list for one field. Order encodes
// preference: the first pattern that matches wins and no further patterns
// for the field are tried.
type FieldPatterns struct {
	Field    FieldName
	Patterns []Pattern
}

// Library holds the per-field extraction patterns in a fixed field order
type Library struct {
	sets  []FieldPatterns
	index map[FieldName]int
}

// NewLibrary builds a library from ordered field pattern sets
func NewLibrary(sets []FieldPatterns) *Library {
	index := make(map[FieldName]int, len(sets))
	for i, set := range sets {
		index[set.Field] = i
	}
	return &Library{sets: sets, index: index}
}

// Fields returns the field names the library can extract, in library order
func (l *Library) Fields() []FieldName {
	fields := make([]FieldName, len(l.sets))
	for i, set := range l.sets {
		fields[i] = set.Field
	}
	return fields
}

// Patterns returns the ordered pattern list for a field
func (l *Library) Patterns(field FieldName) []Pattern {
	i, ok := l.index[field]
	if !ok {
		return nil
	}
	return l.sets[i].Patterns
}

// First tries a field's patterns in order and returns the first capture
func (l *Library) First(field FieldName, text string) (string, bool) {
	for _, p := range l.Patterns(field) {
		if value, ok := p.Match(text); ok {
			return value, true
		}
	}
	return "", false
}

// descriptionLineBound is the maximum number of continuation lines a
// description capture may span before the extractor cuts it off
const descriptionLineBound = 5

// DefaultLibrary returns the built-in FNOL extraction patterns. Alternative
// labels for the same concept are listed most-specific first; ACORD-style
// uppercase form labels take precedence over free-form ones.
func DefaultLibrary() *Library {
	return NewLibrary([]FieldPatterns{
		{
			Field: FieldPolicyNumber,
			Patterns: []Pattern{
				newPattern("policy_number_label", `POLICY\s*NUMBER[:\s]*([A-Z0-9-]+)`),
				newPattern("policy_hash", `Policy\s*#[:\s]*([A-Z0-9-]+)`),
				newPattern("pol_no", `POL(?:ICY)?\s*NO\.?[:\s]*([A-Z0-9-]+)`),
				newPattern("policy_no", `Policy\s*No\.?[:\s]*([A-Z0-9-]+)`),
			},
		},
		{
			Field: FieldPolicyholderName,
			Patterns: []Pattern{
				newPattern("name_of_insured_qualified", `NAME\s+OF\s+INSURED\s*\([^)]+\)[:\s]*([A-Za-z\s,\.]+?)(?:\n|INSURED)`),
				newPattern("insured", `INSURED[:\s]+([A-Za-z\s,\.]+?)(?:\n|MAILING|ADDRESS)`),
				newPattern("policyholder", `Policyholder[:\s]+([A-Za-z\s,\.]+?)\n`),
				newPattern("insured_name", `Insured[:\s]*Name[:\s]*([A-Za-z\s,\.]+?)\n`),
			},
		},
		{
			Field: FieldEffectiveDate,
			Patterns: []Pattern{
				newPattern("effective_date", `Effective\s+Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
				newPattern("policy_date", `Policy\s+Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			},
		},
		{
			Field: FieldIncidentDate,
			Patterns: []Pattern{
				newPattern("date_of_loss_and_time", `DATE\s+OF\s+LOSS\s+AND\s+TIME[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
				newPattern("date_of_loss", `DATE\s+OF\s+LOSS[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
				newPattern("loss_date", `Loss\s+Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
				newPattern("incident_date", `Incident\s+Date[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
				newPattern("date_mmddyyyy", `DATE\s*\(MM/DD/YYYY\)[:\s]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
			},
		},
		{
			Field: FieldIncidentTime,
			Patterns: []Pattern{
				newPattern("time_label", `TIME[:\s]*(\d{1,2}:\d{2}\s*(?:AM|PM)?)`),
				newPattern("time_at", `\bat\s*(\d{1,2}:\d{2}\s*(?:AM|PM)?)`),
				newPattern("time_bare", `(\d{1,2}:\d{2}\s*(?:AM|PM))`),
			},
		},
		{
			Field: FieldIncidentLocation,
			Patterns: []Pattern{
				newPattern("location_of_loss_street", `LOCATION\s+OF\s+LOSS[:\s]*STREET[:\s]*([^\n]+?)(?:CITY|COUNTRY|\n\n)`),
				newPattern("location_of_loss", `LOCATION\s+OF\s+LOSS[:\s]*([^\n]+)`),
				newPattern("street", `STREET[:\s]*([^\n]+?)(?:CITY|COUNTRY|STATE)`),
				newPattern("location_freeform", `(?:Location|Address)[:\s]*([^\n]+)`),
			},
		},
		{
			Field: FieldCityStateZip,
			Patterns: []Pattern{
				newPattern("city_state_zip_label", `CITY,\s*STATE,\s*ZIP[:\s]*([^\n]+)`),
				newPattern("city_state_zip_freeform", `(City[:\s]*[A-Za-z\s]+,?\s*[A-Z]{2}\s*\d{5})`),
			},
		},
		{
			Field: FieldCountry,
			Patterns: []Pattern{
				newPattern("country", `COUNTRY[:\s]*([A-Za-z\s]+?)(?:\n|CITY)`),
			},
		},
		{
			// Bounded multi-line capture: each pattern grabs the labeled line
			// plus at most descriptionLineBound continuation lines; the
			// extractor cuts the capture at the first line that looks like a
			// new form label (RE2 has no lookahead to do it here).
			Field: FieldIncidentDescription,
			Patterns: []Pattern{
				newPattern("description_of_accident_qualified", `DESCRIPTION\s+OF\s+ACCIDENT\s*\([^)]+\)[:\s]*([^\n]+(?:\n[^\n]+){0,5})`),
				newPattern("description_of_accident", `DESCRIPTION\s+OF\s+ACCIDENT[:\s]*([^\n]+(?:\n[^\n]+){0,5})`),
				newPattern("accident_description", `(?:Accident|Incident)\s+Description[:\s]*([^\n]+(?:\n[^\n]+){0,5})`),
			},
		},
		{
			Field: FieldClaimantName,
			Patterns: []Pattern{
				newPattern("claimant", `Claimant[:\s]+([A-Za-z\s,\.]+?)(?:\n|PHONE)`),
			},
		},
		{
			Field: FieldDriverName,
			Patterns: []Pattern{
				newPattern("drivers_name_and_address", `DRIVER'S\s+NAME\s+AND\s+ADDRESS[:\s]*([^\n]+)`),
				newPattern("driver", `Driver[:\s]+([A-Za-z\s,\.]+?)(?:\n|PHONE|ADDRESS)`),
			},
		},
		{
			Field: FieldOwnerName,
			Patterns: []Pattern{
				newPattern("owners_name_and_address", `OWNER'S\s+NAME\s+AND\s+ADDRESS[:\s]*([^\n]+)`),
				newPattern("owner", `Owner[:\s]+([A-Za-z\s,\.]+?)(?:\n|PHONE)`),
			},
		},
		{
			Field: FieldContactPhone,
			Patterns: []Pattern{
				newPattern("phone", `(?s)(?:PHONE|Tel|Contact).*?(\d{3}[-.\s]?\d{3}[-.\s]?\d{4})`),
			},
		},
		{
			Field: FieldContactEmail,
			Patterns: []Pattern{
				newPattern("email_address", `E-?MAIL\s*ADDRESS[:\s]*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
				newPattern("email", `E-?MAIL[:\s]*([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`),
			},
		},
		{
			Field: FieldVIN,
			Patterns: []Pattern{
				// Deliberately loose: the extractor applies the VIN shape
				// check (17 chars, no I/O/Q) as secondary validation.
				newPattern("vin", `V\.?I\.?N\.?[:\s]*([A-Z0-9]{17})`),
			},
		},
		{
			Field: FieldPlateNumber,
			Patterns: []Pattern{
				newPattern("plate_number", `PLATE\s+NUMBER[:\s]*([A-Z0-9-]+)`),
			},
		},
		{
			Field: FieldVehicleYear,
			Patterns: []Pattern{
				newPattern("year", `(?:VEH\s*#\s*)?YEAR[:\s]*(\d{4})`),
			},
		},
		{
			Field: FieldVehicleMake,
			Patterns: []Pattern{
				newPattern("make", `MAKE[:\s]*([A-Za-z0-9\s]+?)(?:\s+VEH|\s+YEAR|\s+MODEL|:|\n)`),
			},
		},
		{
			Field: FieldVehicleModel,
			Patterns: []Pattern{
				newPattern("model", `MODEL[:\s]*([A-Za-z0-9\s]+?)(?:\s+BODY|\s+TYPE|:|\n)`),
			},
		},
		{
			Field: FieldBodyType,
			Patterns: []Pattern{
				newPattern("body", `BODY[:\s]*([A-Za-z0-9\s]+?)(?:\s+MODEL|\s+TYPE|:|\n)`),
			},
		},
		{
			Field: FieldEstimatedDamage,
			Patterns: []Pattern{
				newPattern("estimate_amount", `ESTIMATE\s+AMOUNT[:\s]*\$?\s*([0-9,]+\.?\d*)`),
				newPattern("estimated_damage", `Estimated?\s+Damage[:\s]*\$?\s*([0-9,]+\.?\d*)`),
				newPattern("damage_estimate", `Damage\s+Estimate[:\s]*\$?\s*([0-9,]+\.?\d*)`),
				newPattern("dollar_damage", `\$\s*([0-9,]+\.?\d*)\s*(?:damage|estimate)`),
			},
		},
		{
			Field: FieldDamageDescription,
			Patterns: []Pattern{
				newPattern("describe_damage", `DESCRIBE\s+DAMAGE[:\s]*([^\n]+)`),
				newPattern("damage_description", `Damage\s+Description[:\s]*([^\n]+)`),
			},
		},
	})
}
