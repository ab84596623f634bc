package decision

import (
	"math"

	"offerLens/domain"
)

// BuildFunnel reconstructs the eight-stage candidate elimination funnel from
// whatever subset of counters the response carries. Missing removal counters
// default to zero; "zero removed" and "not reported" are not distinguished.
func BuildFunnel(record domain.DecisionRecord) []domain.FunnelStage {
	raw := unwrapRecord(record.Raw)
	summary := asRecord(record.Debug.SelectionSummary)
	funnelSource := asRecord(firstPresent(
		summary["candidateFunnel"],
		summary["candidate_funnel"],
		raw["candidateFunnel"],
		raw["candidate_funnel"],
	))

	candidateIDs := candidateIDs(record.Debug.TopCandidates)

	generated := stageCount(numberOr(float64(len(record.Debug.TopCandidates)),
		funnelSource["generated"],
		summary["generatedCandidates"],
		summary["generated_candidates"],
		raw["generatedCandidates"],
		raw["generated_candidates"],
	))

	accessibility := stageCount(numberOr(0,
		funnelSource["removedAccessibility"],
		funnelSource["removed_accessibility"],
		funnelSource["accessibility"],
		summary["removedByAccessibility"],
		summary["removed_by_accessibility"],
	))

	occupancy := stageCount(numberOr(0,
		funnelSource["removedOccupancy"],
		funnelSource["removed_occupancy"],
		funnelSource["occupancy"],
		summary["removedByOccupancy"],
		summary["removed_by_occupancy"],
	))

	restrictions := stageCount(numberOr(0,
		funnelSource["removedRestrictions"],
		funnelSource["removed_restrictions"],
		funnelSource["restrictions"],
		summary["removedByRestrictions"],
		summary["removed_by_restrictions"],
	))

	currency := stageCount(numberOr(0,
		funnelSource["removedCurrency"],
		funnelSource["removed_currency"],
		funnelSource["currency"],
		summary["removedByCurrency"],
		summary["removed_by_currency"],
	))

	missingPrice := stageCount(numberOr(0,
		funnelSource["removedMissingPrice"],
		funnelSource["removed_missing_price"],
		funnelSource["missingPrice"],
		summary["removedByMissingPrice"],
		summary["removed_by_missing_price"],
	))

	// Floor the remaining bucket at the candidate set actually available, so
	// the stage is never smaller than what can be displayed.
	remaining := generated - accessibility - occupancy - restrictions - currency - missingPrice
	if remaining < len(record.Debug.TopCandidates) {
		remaining = len(record.Debug.TopCandidates)
	}

	basisBucket := stageCount(numberOr(float64(remaining),
		funnelSource["remainingByBasisBucket"],
		funnelSource["remaining_by_basis_bucket"],
		summary["remainingByBasisBucket"],
		summary["remaining_by_basis_bucket"],
	))

	activeBasis := stageCount(numberOr(float64(len(record.Debug.TopCandidates)),
		funnelSource["activeBasisSelected"],
		funnelSource["active_basis_selected"],
		summary["activeBasisSelected"],
		summary["active_basis_selected"],
	))

	return []domain.FunnelStage{
		{ID: "generated", Label: "Generated", Count: generated, PercentOfGenerated: percentOf(generated, generated), CandidateIDs: candidateIDs},
		{ID: "accessibility", Label: "Removed by accessibility", Count: accessibility, PercentOfGenerated: percentOf(accessibility, generated), CandidateIDs: []string{}},
		{ID: "occupancy", Label: "Removed by occupancy", Count: occupancy, PercentOfGenerated: percentOf(occupancy, generated), CandidateIDs: []string{}},
		{ID: "restrictions", Label: "Removed by restrictions", Count: restrictions, PercentOfGenerated: percentOf(restrictions, generated), CandidateIDs: []string{}},
		{ID: "currency", Label: "Removed by currency", Count: currency, PercentOfGenerated: percentOf(currency, generated), CandidateIDs: []string{}},
		{ID: "missing-price", Label: "Removed by missing price", Count: missingPrice, PercentOfGenerated: percentOf(missingPrice, generated), CandidateIDs: []string{}},
		{ID: "basis-bucket", Label: "Remaining by basis bucket", Count: basisBucket, PercentOfGenerated: percentOf(basisBucket, generated), CandidateIDs: candidateIDs},
		{ID: "active-basis", Label: "Active basis selected", Count: activeBasis, PercentOfGenerated: percentOf(activeBasis, generated), CandidateIDs: candidateIDs},
	}
}

func candidateIDs(candidates []map[string]any) []string {
	out := []string{}
	for _, candidate := range candidates {
		id := firstText(
			candidate["offerId"],
			candidate["offer_id"],
			candidate["candidateId"],
			candidate["candidate_id"],
		)
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

func stageCount(n float64) int {
	if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return int(n)
}

// percentOf rounds to one decimal and is defined as 0 whenever the generated
// base is zero; no stage ever surfaces NaN or Inf.
func percentOf(count, generated int) float64 {
	if generated <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(generated)*1000) / 10
}
