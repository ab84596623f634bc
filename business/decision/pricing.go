package decision

import "offerLens/domain"

// ResolvePricing derives the four-part breakdown from whichever nested pricing
// shape the offer carries. Each part stays nil when no spelling variant is
// present anywhere in its chain.
func ResolvePricing(offerRaw map[string]any) domain.PricingBreakdown {
	pricing := asRecord(offerRaw["pricing"])
	breakdown := asRecord(pricing["breakdown"])
	includedFees := asRecord(breakdown["includedFees"])
	includedFeesSnake := asRecord(breakdown["included_fees"])

	subtotal := firstNumberPtr(
		breakdown["subtotal"],
		breakdown["sub_total"],
		breakdown["baseRateSubtotal"],
		breakdown["base_rate_subtotal"],
		pricing["subtotal"],
		pricing["sub_total"],
		pricing["baseRateSubtotal"],
		pricing["base_rate_subtotal"],
	)

	taxesFees := firstNumberPtr(
		breakdown["taxesFees"],
		breakdown["taxes_and_fees"],
		breakdown["taxesAndFees"],
		pricing["taxesFees"],
		pricing["taxes_and_fees"],
		pricing["taxesAndFees"],
		breakdown["taxes"],
		pricing["taxes"],
		breakdown["fees"],
		pricing["fees"],
	)

	addOns := firstNumberPtr(
		breakdown["addOns"],
		breakdown["add_ons"],
		breakdown["addons"],
		includedFees["totalIncludedFees"],
		includedFeesSnake["total_included_fees"],
		pricing["addOns"],
		pricing["add_ons"],
		pricing["addons"],
	)

	total := firstNumberPtr(
		breakdown["total"],
		pricing["total"],
		pricing["totalAfterTax"],
		pricing["total_after_tax"],
		offerRaw["total"],
		offerRaw["totalPrice"],
		offerRaw["total_amount"],
	)

	return domain.PricingBreakdown{
		Subtotal:  subtotal,
		TaxesFees: taxesFees,
		AddOns:    addOns,
		Total:     total,
	}
}

// ResolveTotal prefers the breakdown-derived total and otherwise falls back to
// the offer-level spellings. When upstream data is inconsistent the two can
// diverge; that divergence is preserved, not reconciled.
func ResolveTotal(offerRaw map[string]any) *float64 {
	if total := ResolvePricing(offerRaw).Total; total != nil {
		return total
	}
	return firstNumberPtr(offerRaw["total"], offerRaw["totalPrice"], offerRaw["total_amount"])
}
