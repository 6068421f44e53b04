package claims

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultFastTrackThreshold is the damage amount below which a complete,
// unflagged claim is fast-tracked
const DefaultFastTrackThreshold = 25000

// RoutingDecision is the terminal routing outcome for a claim: the workflow
// queue plus a human-readable explanation of which rule fired and why
type RoutingDecision struct {
	Route     Route
	Reasoning string
}

// routingInput bundles everything the routing rules may inspect
type routingInput struct {
	fields    *ExtractedFields
	missing   []FieldName
	fraud     bool
	claimType ClaimType
}

// routingRule is one guard in the priority chain. Rules are evaluated
// top-to-bottom and the first rule whose predicate holds produces the
// decision; the final rule's predicate always holds, so routing is total.
type routingRule struct {
	name    string
	applies func(in routingInput) bool
	decide  func(in routingInput) RoutingDecision
}

// Router applies the priority-ordered routing rule chain
type Router struct {
	threshold float64
	rules     []routingRule
	printer   *message.Printer
}

// NewRouter creates a router with the given fast-track threshold; values
// <= 0 fall back to the default
func NewRouter(threshold float64) *Router {
	if threshold <= 0 {
		threshold = DefaultFastTrackThreshold
	}
	r := &Router{
		threshold: threshold,
		printer:   message.NewPrinter(language.English),
	}
	r.rules = []routingRule{
		{
			name:    "missing_mandatory_fields",
			applies: func(in routingInput) bool { return len(in.missing) > 0 },
			decide: func(in routingInput) RoutingDecision {
				return RoutingDecision{
					Route:     RouteManualReview,
					Reasoning: "Missing mandatory fields: " + joinFields(in.missing),
				}
			},
		},
		{
			name:    "fraud_indicators",
			applies: func(in routingInput) bool { return in.fraud },
			decide: func(in routingInput) RoutingDecision {
				return RoutingDecision{
					Route:     RouteInvestigationQueue,
					Reasoning: "Potential fraud indicators detected in claim description or documentation",
				}
			},
		},
		{
			name:    "injury_claim",
			applies: func(in routingInput) bool { return in.claimType == ClaimTypeInjury },
			decide: func(in routingInput) RoutingDecision {
				return RoutingDecision{
					Route:     RouteSpecialistQueue,
					Reasoning: "Claim involves injury and requires specialist medical review",
				}
			},
		},
		{
			name:    "no_damage_estimate",
			applies: func(in routingInput) bool { return !in.fields.Has(FieldEstimatedDamage) },
			decide: func(in routingInput) RoutingDecision {
				return RoutingDecision{
					Route:     RouteManualReview,
					Reasoning: "No damage estimate provided - requires manual assessment",
				}
			},
		},
		{
			name: "below_fast_track_threshold",
			applies: func(in routingInput) bool {
				amount, _ := in.fields.Amount(FieldEstimatedDamage)
				return amount < r.threshold
			},
			decide: func(in routingInput) RoutingDecision {
				amount, _ := in.fields.Amount(FieldEstimatedDamage)
				return RoutingDecision{
					Route: RouteFastTrack,
					Reasoning: fmt.Sprintf("Estimated damage (%s) is below fast-track threshold (%s)",
						r.dollars(amount), r.thresholdDollars()),
				}
			},
		},
		{
			name:    "standard_processing",
			applies: func(in routingInput) bool { return true },
			decide: func(in routingInput) RoutingDecision {
				amount, _ := in.fields.Amount(FieldEstimatedDamage)
				return RoutingDecision{
					Route: RouteStandardProcessing,
					Reasoning: fmt.Sprintf("Estimated damage (%s) exceeds fast-track threshold (%s). "+
						"Requires standard review process", r.dollars(amount), r.thresholdDollars()),
				}
			},
		},
	}
	return r
}

// Threshold returns the configured fast-track threshold
func (r *Router) Threshold() float64 {
	return r.threshold
}

// Route evaluates the rule chain and returns a decision. The chain is total:
// every input combination maps to exactly one route.
func (r *Router) Route(fields *ExtractedFields, missing []FieldName, fraud bool, claimType ClaimType) RoutingDecision {
	in := routingInput{
		fields:    fields,
		missing:   missing,
		fraud:     fraud,
		claimType: claimType,
	}
	for _, rule := range r.rules {
		if rule.applies(in) {
			return rule.decide(in)
		}
	}
	// Unreachable: the last rule always applies.
	return RoutingDecision{Route: RouteManualReview, Reasoning: "No routing rule matched"}
}

// dollars formats an amount with thousands grouping and two decimals,
// e.g. $15,000.00
func (r *Router) dollars(amount float64) string {
	return r.printer.Sprintf("$%.2f", amount)
}

// thresholdDollars formats the threshold without trailing cents when it is a
// whole amount, e.g. $25,000
func (r *Router) thresholdDollars() string {
	if r.threshold == math.Trunc(r.threshold) {
		return r.printer.Sprintf("$%.0f", r.threshold)
	}
	return r.dollars(r.threshold)
}

// joinFields renders field names as a comma-separated list
func joinFields(fields []FieldName) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
