package claims

import (
	"regexp"
	"strings"
)

// DefaultFraudKeywords is the default suspicious-language vocabulary
var DefaultFraudKeywords = []string{
	"fraud", "inconsistent", "staged", "suspicious", "fake", "false",
}

// Suspicious phrasings that the keyword list alone does not catch
var suspiciousPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`seems?\s+(?:fake|staged|suspicious)`),
	regexp.MustCompile(`(?:might|could)\s+be\s+fraud`),
	regexp.MustCompile(`doesn'?t\s+add\s+up`),
}

// FraudDetector flags claims whose description contains suspicious language.
// This is a coarse binary heuristic, not a scored fraud model.
type FraudDetector struct {
	keywords []string
}

// NewFraudDetector creates a detector with the given keyword set; a nil
// slice falls back to the defaults
func NewFraudDetector(keywords []string) *FraudDetector {
	if keywords == nil {
		keywords = DefaultFraudKeywords
	}
	return &FraudDetector{keywords: keywords}
}

// Detect reports whether the description contains any fraud indicator.
// An absent or empty description is never suspicious.
func (d *FraudDetector) Detect(description string) bool {
	if description == "" {
		return false
	}
	descriptionLower := strings.ToLower(description)

	if containsAny(descriptionLower, d.keywords) {
		return true
	}

	for _, pattern := range suspiciousPhrasePatterns {
		if pattern.MatchString(descriptionLower) {
			return true
		}
	}

	return false
}
