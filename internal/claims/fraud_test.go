package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFraudDetector(t *testing.T) {
	d := NewFraudDetector(nil)

	tests := []struct {
		name        string
		description string
		want        bool
	}{
		{"empty description", "", false},
		{"benign description", "rear-end collision at a stop light", false},
		{"staged keyword", "witness says the accident looked staged", true},
		{"inconsistent keyword", "statements are inconsistent with the damage", true},
		{"suspicious keyword", "timing of the claim is suspicious", true},
		{"keyword case insensitive", "this looks like FRAUD", true},
		{"seems fake phrase", "the whole thing seems fake to me", true},
		{"might be fraud phrase", "adjuster notes this might be fraud", true},
		{"doesnt add up phrase", "the story doesn't add up", true},
		{"doesnt add up without apostrophe", "it doesnt add up", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.description))
		})
	}
}

func TestFraudDetectorCustomKeywords(t *testing.T) {
	d := NewFraudDetector([]string{"ringer"})

	assert.True(t, d.Detect("vehicle is a known ringer"))
	// Custom list replaces the defaults entirely
	assert.False(t, d.Detect("claim appears staged"))
	// Phrase patterns still apply alongside custom keywords
	assert.True(t, d.Detect("the estimate doesn't add up"))
}
