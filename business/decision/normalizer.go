package decision

import (
	"fmt"

	"offerLens/domain"
)

// Field spellings that mark a bag as the decision record itself rather than an
// envelope around it. The order of everything below encodes backward
// compatibility with every schema the decision engine has shipped; treat the
// chains as load-bearing.
var offerBearingKeys = []string{
	"offers",
	"selectedOffers",
	"selected_offers",
	"recommendations",
	"decisionTrace",
	"decision_trace",
	"reasonCodes",
	"reason_codes",
}

var envelopeKeys = []string{"data", "result", "response", "offerDecision", "offer_decision"}

// Normalize maps an arbitrarily shaped decision payload onto the canonical
// record. It never fails: malformed or missing fields degrade to sentinels.
func Normalize(raw any) domain.DecisionRecord {
	record := unwrapRecord(raw)
	debug := decodeDebug(record)

	offersSource := firstSlice(
		record["offers"],
		record["selectedOffers"],
		record["selected_offers"],
		record["recommendations"],
	)

	offers := make([]domain.OfferCard, 0, len(offersSource))
	for index, entry := range offersSource {
		offers = append(offers, parseOffer(entry, index))
	}

	reasonCodes := firstStringSlice(
		record["reasonCodes"],
		record["reason_codes"],
		asRecord(record["debug"])["reasonCodes"],
		asRecord(record["debug"])["reason_codes"],
	)

	out := domain.DecisionRecord{
		PropertyID:     textOr("-", record["propertyId"], record["property_id"]),
		Channel:        textOr("-", record["channel"]),
		Currency:       textOr("-", record["currency"]),
		PriceBasisUsed: textOr("-", record["priceBasisUsed"], record["price_basis_used"]),
		ConfigVersion:  textOr("-", record["configVersion"], record["config_version"]),
		Offers:         offers,
		DecisionTrace:  firstPresent(record["decisionTrace"], record["decision_trace"]),
		ReasonCodes:    reasonCodes,
		Debug:          debug,
		Raw:            raw,
	}
	out.PropertyContext = extractContext(record, debug)

	return out
}

// unwrapRecord peels at most one envelope level. A bag qualifies as the record
// when it carries any offer-bearing key; otherwise the known envelope keys are
// probed in order and the first qualifying child wins. When nothing matches
// the input itself is treated as the record.
func unwrapRecord(raw any) map[string]any {
	record := asRecord(raw)
	if hasOfferFields(record) {
		return record
	}

	for _, key := range envelopeKeys {
		candidate := asRecord(record[key])
		if hasOfferFields(candidate) {
			return candidate
		}
	}

	return record
}

func hasOfferFields(record map[string]any) bool {
	for _, key := range offerBearingKeys {
		if _, ok := record[key]; ok {
			return true
		}
	}
	return false
}

func decodeDebug(record map[string]any) domain.DecisionDebug {
	debug := asRecord(record["debug"])

	candidatesSource := firstSlice(debug["topCandidates"], debug["top_candidates"])
	candidates := make([]map[string]any, 0, len(candidatesSource))
	for _, item := range candidatesSource {
		candidates = append(candidates, asRecord(item))
	}

	return domain.DecisionDebug{
		ResolvedRequest:  firstPresent(debug["resolvedRequest"], debug["resolved_request"]),
		ProfilePreAri:    firstPresent(debug["profilePreAri"], debug["profile_pre_ari"]),
		ProfileFinal:     firstPresent(debug["profileFinal"], debug["profile_final"]),
		Scoring:          firstPresent(debug["scoring"]),
		SelectionSummary: firstPresent(debug["selectionSummary"], debug["selection_summary"]),
		TopCandidates:    candidates,
	}
}

func parseOffer(entry any, index int) domain.OfferCard {
	raw := asRecord(entry)
	roomType := asRecord(raw["roomType"])
	ratePlan := asRecord(raw["ratePlan"])
	policy := firstPresent(raw["policy"], raw["cancellationPolicy"], raw["cancellation_policy"], raw["terms"])

	features := toStringSlice(raw["features"])
	if len(features) == 0 {
		features = toStringSlice(roomType["features"])
	}

	return domain.OfferCard{
		OfferID:             textOr(fmt.Sprintf("offer-%d", index+1), raw["offerId"], raw["offer_id"], raw["id"]),
		Type:                textOr("unknown", raw["type"], raw["offerType"], raw["offer_type"]),
		Recommended:         offerRecommended(raw),
		Room:                textOr("-", raw["room"], raw["roomType"], raw["room_type"], roomType["name"]),
		RoomTypeDescription: textOr("-", raw["roomTypeDescription"], raw["room_type_description"], roomType["description"]),
		Features:            features,
		RatePlan:            textOr("-", raw["ratePlan"], raw["rate_plan"], ratePlan["name"]),
		Policy:              policy,
		Pricing:             firstPresent(raw["pricing"], raw["price"], raw["totalPrice"]),
		Enhancements:        presentOr([]any{}, raw["enhancements"], raw["upsells"]),
		Disclosures:         presentOr([]any{}, raw["disclosures"], raw["notices"]),
		TotalPrice:          ResolveTotal(raw),
		PricingBreakdown:    ResolvePricing(raw),
		CancellationSummary: cancellationSummary(asRecord(policy)),
		PaymentSummary:      paymentSummary(raw, asRecord(policy)),
		Raw:                 raw,
	}
}

func offerRecommended(raw map[string]any) bool {
	for _, key := range []string{"recommended", "isRecommended", "is_recommended"} {
		if b, ok := toBool(raw[key]); ok {
			return b
		}
	}
	return false
}

func cancellationSummary(policy map[string]any) string {
	if summary := firstText(policy["cancellationSummary"], policy["cancellation_summary"], policy["summary"]); summary != "" {
		return summary
	}

	if refundable, ok := toBool(policy["refundable"]); ok {
		if refundable {
			return "Refundable"
		}
		return "Non-refundable"
	}

	if refundability := toText(policy["refundability"]); refundability != "" {
		if containsFold(refundability, "non") {
			return "Non-refundable"
		}
		return "Refundable"
	}

	return "Policy details unavailable"
}

func paymentSummary(raw, policy map[string]any) string {
	pricing := asRecord(raw["pricing"])
	return textOr("Payment details unavailable",
		policy["paymentTiming"],
		policy["payment_timing"],
		pricing["paymentType"],
		pricing["payment_type"],
		raw["paymentType"],
		raw["payment_type"],
	)
}

// GetPrimaryOffer returns the first recommended offer, else the first offer.
func GetPrimaryOffer(offers []domain.OfferCard) *domain.OfferCard {
	for i := range offers {
		if offers[i].Recommended {
			return &offers[i]
		}
	}
	if len(offers) > 0 {
		return &offers[0]
	}
	return nil
}

// GetSecondaryOffer picks by position, not id: the first offer that is not the
// primary entry. Duplicate offer ids therefore still yield a distinct
// secondary.
func GetSecondaryOffer(offers []domain.OfferCard) *domain.OfferCard {
	primaryIndex := -1
	for i := range offers {
		if offers[i].Recommended {
			primaryIndex = i
			break
		}
	}
	if primaryIndex == -1 && len(offers) > 0 {
		primaryIndex = 0
	}

	for i := range offers {
		if i != primaryIndex {
			return &offers[i]
		}
	}
	return nil
}

func firstPresent(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func presentOr(fallback any, values ...any) any {
	if v := firstPresent(values...); v != nil {
		return v
	}
	return fallback
}
