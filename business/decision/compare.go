package decision

import (
	"fmt"

	"offerLens/domain"
)

// CompareRuns diffs two normalized records. It returns nil when there is no
// previous run. Offer-id membership is a set difference, so duplicate ids
// collapse; summary changes only list fields that actually differ.
func CompareRuns(previous *domain.DecisionRecord, current domain.DecisionRecord) *domain.RunComparison {
	if previous == nil {
		return nil
	}

	previousIDs := offerIDSet(previous.Offers)
	currentIDs := offerIDSet(current.Offers)

	added := []string{}
	seenAdded := map[string]bool{}
	for _, offer := range current.Offers {
		if !previousIDs[offer.OfferID] && !seenAdded[offer.OfferID] {
			seenAdded[offer.OfferID] = true
			added = append(added, offer.OfferID)
		}
	}

	removed := []string{}
	seenRemoved := map[string]bool{}
	for _, offer := range previous.Offers {
		if !currentIDs[offer.OfferID] && !seenRemoved[offer.OfferID] {
			seenRemoved[offer.OfferID] = true
			removed = append(removed, offer.OfferID)
		}
	}

	changes := []string{}
	appendChange := func(field, old, new string) {
		if old != new {
			changes = append(changes, fmt.Sprintf("%s: %s -> %s", field, old, new))
		}
	}
	appendChange("priceBasisUsed", previous.PriceBasisUsed, current.PriceBasisUsed)
	appendChange("configVersion", previous.ConfigVersion, current.ConfigVersion)
	appendChange("currency", previous.Currency, current.Currency)

	return &domain.RunComparison{
		AddedOfferIDs:   added,
		RemovedOfferIDs: removed,
		SummaryChanges:  changes,
	}
}

func offerIDSet(offers []domain.OfferCard) map[string]bool {
	set := make(map[string]bool, len(offers))
	for _, offer := range offers {
		set[offer.OfferID] = true
	}
	return set
}

// PriceDelta renders the secondary-versus-primary price gap as a percent and
// absolute amount, or "n/a" when either total is unavailable.
func PriceDelta(primary, secondary *domain.OfferCard) string {
	if primary == nil || secondary == nil || primary.TotalPrice == nil || secondary.TotalPrice == nil || *primary.TotalPrice == 0 {
		return "n/a"
	}

	amount := *secondary.TotalPrice - *primary.TotalPrice
	percent := amount / *primary.TotalPrice * 100
	sign := "+"
	if amount < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%.2f%% / %s$%.2f", percent, sign, abs(amount))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
