package claims

import "strings"

// Default keyword sets. These are tunable via Config; the defaults cover the
// vocabulary seen on common FNOL forms.
var (
	DefaultInjuryKeywords = []string{
		"injury", "injured", "hurt", "medical", "hospital", "ambulance", "emergency", "airbag",
	}
	DefaultCollisionKeywords = []string{
		"collision", "accident", "crash", "rear-end", "struck", "sideswipe",
	}
)

// Classifier derives a claim type from extracted fields using a fixed
// precedence of keyword and field checks
type Classifier struct {
	injuryKeywords    []string
	collisionKeywords []string
}

// NewClassifier creates a classifier with the given keyword sets; nil slices
// fall back to the defaults
func NewClassifier(injuryKeywords, collisionKeywords []string) *Classifier {
	if injuryKeywords == nil {
		injuryKeywords = DefaultInjuryKeywords
	}
	if collisionKeywords == nil {
		collisionKeywords = DefaultCollisionKeywords
	}
	return &Classifier{
		injuryKeywords:    injuryKeywords,
		collisionKeywords: collisionKeywords,
	}
}

// Classify returns the claim type for the extracted fields. Evaluation is
// top-to-bottom, first match wins; injury outranks every asset-based
// classification because it drives specialist routing downstream.
func (c *Classifier) Classify(fields *ExtractedFields) ClaimType {
	description, _ := fields.Text(FieldIncidentDescription)
	descriptionLower := strings.ToLower(description)

	if containsAny(descriptionLower, c.injuryKeywords) {
		return ClaimTypeInjury
	}

	assetType, _ := fields.Text(FieldAssetType)
	assetLower := strings.ToLower(assetType)

	if strings.Contains(assetLower, "property") {
		return ClaimTypePropertyDamage
	}

	if strings.Contains(assetLower, "vehicle") || strings.Contains(assetLower, "automobile") {
		if containsAny(descriptionLower, c.collisionKeywords) {
			return ClaimTypeVehicleCollision
		}
		return ClaimTypeVehicleDamage
	}

	return ClaimTypeGeneral
}

// containsAny reports whether text contains any of the keywords; keywords
// are matched case-insensitively as substrings
func containsAny(textLower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(textLower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
