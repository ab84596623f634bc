package decision

import (
	"fmt"

	"offerLens/domain"
)

// WeightPolicy controls how missing scoring weights are treated. The two
// policies coexist upstream and callers must pick one explicitly per call
// site; they are never merged.
type WeightPolicy int

const (
	// WeightPolicyDefaulted fills each missing weight independently with a
	// fixed constant. Used when weights come per-candidate or from a generic
	// selection summary.
	WeightPolicyDefaulted WeightPolicy = iota
	// WeightPolicyStrict reports a nil final score when any of the five
	// weights is absent. Used when weights come from the authoritative
	// debug.scoring.weights bag.
	WeightPolicyStrict
)

const weightsMissingFormula = "Weights missing in debug.scoring.weights"

const (
	defaultValueWeight      = 0.30
	defaultConversionWeight = 0.35
	defaultExperienceWeight = 0.10
	defaultMarginWeight     = 0.10
	defaultRiskWeight       = 0.15
)

// ReconstructScore reproduces a candidate's weighted-sum score from its raw
// components and a weight source, and renders the substitution as a
// human-checkable equation. An upstream-supplied score always wins over the
// computed value when weights are usable.
func ReconstructScore(candidate map[string]any, weightsSource map[string]any, policy WeightPolicy) domain.ScoringModel {
	components := asRecord(firstPresent(
		candidate["scoreComponents"],
		candidate["scoringComponents"],
		candidate["components"],
	))

	model := domain.ScoringModel{
		Value:      numberOr(0, components["value"], components["valueScore"], components["value_score"]),
		Conversion: numberOr(0, components["conversion"], components["conversionScore"], components["conversion_score"]),
		Experience: numberOr(0, components["experience"], components["experienceScore"], components["experience_score"]),
		Margin: numberOr(0,
			components["margin"],
			components["marginScore"],
			components["margin_score"],
			components["marginProxyScore"],
			components["margin_proxy_score"],
		),
		Risk: numberOr(0,
			components["risk"],
			components["riskPenalty"],
			components["risk_penalty"],
			components["riskScore"],
			components["risk_score"],
		),
		Weights: resolveWeights(weightsSource),
	}

	if policy == WeightPolicyStrict && !weightsComplete(model.Weights) {
		model.Formula = weightsMissingFormula
		return model
	}

	weights := model.Weights
	if policy == WeightPolicyDefaulted {
		weights = applyDefaultWeights(weights)
		model.Weights = weights
	}

	computed := round2(model.Value**weights.Value +
		model.Conversion**weights.Conversion +
		model.Experience**weights.Experience +
		model.Margin**weights.Margin -
		model.Risk**weights.Risk)

	final := computed
	if supplied, ok := firstNumber(candidate["score"], candidate["totalScore"], candidate["scoreTotal"]); ok {
		final = supplied
	}
	model.FinalScore = &final

	model.Formula = fmt.Sprintf("%.2f = %.2f*%.2f + %.2f*%.2f + %.2f*%.2f + %.2f*%.2f - %.2f*%.2f",
		final,
		model.Value, *weights.Value,
		model.Conversion, *weights.Conversion,
		model.Experience, *weights.Experience,
		model.Margin, *weights.Margin,
		model.Risk, *weights.Risk,
	)

	return model
}

func resolveWeights(source map[string]any) domain.ScoreWeights {
	return domain.ScoreWeights{
		Value:      firstNumberPtr(source["value"], source["valueWeight"], source["value_weight"]),
		Conversion: firstNumberPtr(source["conversion"], source["conversionWeight"], source["conversion_weight"]),
		Experience: firstNumberPtr(source["experience"], source["experienceWeight"], source["experience_weight"]),
		Margin:     firstNumberPtr(source["margin"], source["marginWeight"], source["margin_weight"]),
		Risk:       firstNumberPtr(source["risk"], source["riskWeight"], source["risk_weight"]),
	}
}

func weightsComplete(w domain.ScoreWeights) bool {
	return w.Value != nil && w.Conversion != nil && w.Experience != nil && w.Margin != nil && w.Risk != nil
}

func applyDefaultWeights(w domain.ScoreWeights) domain.ScoreWeights {
	fill := func(current *float64, fallback float64) *float64 {
		if current != nil {
			return current
		}
		v := fallback
		return &v
	}

	return domain.ScoreWeights{
		Value:      fill(w.Value, defaultValueWeight),
		Conversion: fill(w.Conversion, defaultConversionWeight),
		Experience: fill(w.Experience, defaultExperienceWeight),
		Margin:     fill(w.Margin, defaultMarginWeight),
		Risk:       fill(w.Risk, defaultRiskWeight),
	}
}

// DefaultedWeightsSource picks the weight bag for the defaulted policy: the
// candidate's own weights first, then the selection summary spellings.
func DefaultedWeightsSource(candidate map[string]any, selectionSummary map[string]any) map[string]any {
	return asRecord(firstPresent(
		candidate["weights"],
		selectionSummary["weights"],
		selectionSummary["scoreWeights"],
		selectionSummary["score_weights"],
	))
}

// StrictWeightsSource reads the single authoritative debug.scoring.weights bag.
func StrictWeightsSource(debug domain.DecisionDebug) map[string]any {
	return asRecord(asRecord(debug.Scoring)["weights"])
}
