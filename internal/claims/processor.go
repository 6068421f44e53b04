package claims

import (
	"errors"
	"fmt"
	"time"
)

// Config holds the construction-time tunables of the claims pipeline.
// These are programmer/operator inputs: invalid values fail fast at
// NewProcessor rather than surfacing per document.
type Config struct {
	// FastTrackThreshold is the damage amount at or above which a claim
	// leaves the fast track
	FastTrackThreshold float64

	// MandatoryFields is the ordered field list whose absence forces manual
	// review
	MandatoryFields []FieldName

	// Keyword vocabularies for fraud signals and classification
	FraudKeywords     []string
	InjuryKeywords    []string
	CollisionKeywords []string

	// MaxDescriptionLength bounds the captured incident description
	MaxDescriptionLength int

	// Library overrides the extraction pattern library; nil uses the
	// built-in FNOL patterns
	Library *Library
}

// DefaultConfig returns the configuration matching standard FNOL triage
func DefaultConfig() Config {
	return Config{
		FastTrackThreshold:   DefaultFastTrackThreshold,
		MandatoryFields:      DefaultMandatoryFields,
		FraudKeywords:        DefaultFraudKeywords,
		InjuryKeywords:       DefaultInjuryKeywords,
		CollisionKeywords:    DefaultCollisionKeywords,
		MaxDescriptionLength: DefaultMaxDescriptionLength,
	}
}

// Validate checks the configuration for setup mistakes
func (c Config) Validate() error {
	if c.FastTrackThreshold < 0 {
		return fmt.Errorf("fast-track threshold cannot be negative: %v", c.FastTrackThreshold)
	}
	if len(c.MandatoryFields) == 0 {
		return errors.New("mandatory-field list cannot be empty")
	}
	if c.MaxDescriptionLength < 0 {
		return fmt.Errorf("max description length cannot be negative: %d", c.MaxDescriptionLength)
	}
	return nil
}

// Processor orchestrates the claims pipeline: extraction, classification,
// fraud detection, validation and routing, in that fixed order. It holds no
// mutable state between calls, so one Processor may serve concurrent
// documents.
type Processor struct {
	extractor  *Extractor
	classifier *Classifier
	fraud      *FraudDetector
	validator  *Validator
	router     *Router
	now        func() time.Time
}

// Option customizes a Processor at construction
type Option func(*Processor)

// WithClock substitutes the wall clock used for the processing timestamp.
// The clock is the pipeline's only non-deterministic input.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProcessor creates a processor from the configuration, failing fast on
// configuration errors
func NewProcessor(cfg Config, opts ...Option) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid claims configuration: %w", err)
	}

	threshold := cfg.FastTrackThreshold
	if threshold == 0 {
		threshold = DefaultFastTrackThreshold
	}

	p := &Processor{
		extractor:  NewExtractor(cfg.Library, cfg.MaxDescriptionLength),
		classifier: NewClassifier(cfg.InjuryKeywords, cfg.CollisionKeywords),
		fraud:      NewFraudDetector(cfg.FraudKeywords),
		validator:  NewValidator(cfg.MandatoryFields),
		router:     NewRouter(threshold),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Process runs the whole pipeline over one decoded document. It has no
// failure path: imperfect input degrades to missing fields and a Manual
// Review route, which is business output rather than an error. An empty
// rawText is valid and deterministically yields Manual Review.
func (p *Processor) Process(rawText, sourceFile string) *ProcessingResult {
	fields := p.extractor.Extract(rawText)

	claimType := p.classifier.Classify(fields)
	fields.SetText(FieldClaimType, string(claimType))

	description, _ := fields.Text(FieldIncidentDescription)
	fraudDetected := p.fraud.Detect(description)

	missing := p.validator.Validate(fields)

	decision := p.router.Route(fields, missing, fraudDetected, claimType)

	return &ProcessingResult{
		ExtractedFields:     fields,
		MissingFields:       missing,
		RecommendedRoute:    decision.Route,
		Reasoning:           decision.Reasoning,
		ProcessingTimestamp: p.now().Format(time.RFC3339),
		SourceFile:          sourceFile,
	}
}
