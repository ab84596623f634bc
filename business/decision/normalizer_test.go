package decision

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, payload string) any {
	t.Helper()
	var out any
	require.NoError(t, json.Unmarshal([]byte(payload), &out))
	return out
}

func TestNormalizeMinimalPayload(t *testing.T) {
	record := Normalize(decodeJSON(t, `{"offers":[{}]}`))

	assert.Equal(t, "-", record.PropertyID)
	assert.Equal(t, "-", record.Currency)
	assert.Equal(t, "-", record.PriceBasisUsed)
	assert.Equal(t, "-", record.ConfigVersion)
	assert.Empty(t, record.ReasonCodes)

	require.Len(t, record.Offers, 1)
	offer := record.Offers[0]
	assert.Equal(t, "offer-1", offer.OfferID)
	assert.Equal(t, "unknown", offer.Type)
	assert.Equal(t, "-", offer.Room)
	assert.Equal(t, "-", offer.RatePlan)
	assert.False(t, offer.Recommended)
	assert.Nil(t, offer.TotalPrice)
	assert.Equal(t, "Policy details unavailable", offer.CancellationSummary)
	assert.Equal(t, "Payment details unavailable", offer.PaymentSummary)
	assert.Equal(t, []any{}, offer.Enhancements)
	assert.Equal(t, []any{}, offer.Disclosures)
}

func TestNormalizeUnwrapsOneEnvelopeLevel(t *testing.T) {
	inner := `{"propertyId":"hotel-lake-001","currency":"USD","offers":[{"offerId":"o1","recommended":true}]}`

	direct := Normalize(decodeJSON(t, inner))
	wrapped := Normalize(decodeJSON(t, `{"data":`+inner+`}`))

	assert.Equal(t, direct.PropertyID, wrapped.PropertyID)
	assert.Equal(t, direct.Currency, wrapped.Currency)
	require.Len(t, wrapped.Offers, 1)
	assert.Equal(t, "o1", wrapped.Offers[0].OfferID)
	assert.True(t, wrapped.Offers[0].Recommended)
}

func TestNormalizeKeySpellingEquivalence(t *testing.T) {
	camel := Normalize(decodeJSON(t, `{
		"propertyId": "p1",
		"priceBasisUsed": "nightly",
		"configVersion": "v3",
		"selectedOffers": [{"offerId": "a", "offerType": "standard"}],
		"reasonCodes": ["SELECTED_BY_SCORE"]
	}`))
	snake := Normalize(decodeJSON(t, `{
		"property_id": "p1",
		"price_basis_used": "nightly",
		"config_version": "v3",
		"selected_offers": [{"offer_id": "a", "offer_type": "standard"}],
		"reason_codes": ["SELECTED_BY_SCORE"]
	}`))

	assert.Equal(t, camel.PropertyID, snake.PropertyID)
	assert.Equal(t, camel.PriceBasisUsed, snake.PriceBasisUsed)
	assert.Equal(t, camel.ConfigVersion, snake.ConfigVersion)
	assert.Equal(t, camel.ReasonCodes, snake.ReasonCodes)
	require.Len(t, snake.Offers, 1)
	assert.Equal(t, camel.Offers[0].OfferID, snake.Offers[0].OfferID)
	assert.Equal(t, camel.Offers[0].Type, snake.Offers[0].Type)
}

func TestNormalizeNumericConfigVersion(t *testing.T) {
	record := Normalize(decodeJSON(t, `{"offers":[],"configVersion":1}`))
	assert.Equal(t, "1", record.ConfigVersion)
}

func TestNormalizeReasonCodesFromDebug(t *testing.T) {
	record := Normalize(decodeJSON(t, `{
		"offers": [],
		"debug": {"reason_codes": ["FILTERED_ACCESSIBILITY", "SELECTED_BY_SCORE"]}
	}`))
	assert.Equal(t, []string{"FILTERED_ACCESSIBILITY", "SELECTED_BY_SCORE"}, record.ReasonCodes)
}

func TestNormalizeObjectRoomTypeAndRatePlan(t *testing.T) {
	record := Normalize(decodeJSON(t, `{
		"offers": [{
			"roomType": {"name": "Deluxe King", "description": "Corner room", "features": ["view", "sofa"]},
			"ratePlan": {"name": "Flex Rate"}
		}]
	}`))

	require.Len(t, record.Offers, 1)
	offer := record.Offers[0]
	assert.Equal(t, "Deluxe King", offer.Room)
	assert.Equal(t, "Corner room", offer.RoomTypeDescription)
	assert.Equal(t, "Flex Rate", offer.RatePlan)
	assert.Equal(t, []string{"view", "sofa"}, offer.Features)
}

func TestNormalizeCancellationSummary(t *testing.T) {
	cases := []struct {
		name   string
		policy string
		want   string
	}{
		{"explicit summary", `{"summary": "Free cancel until 6pm"}`, "Free cancel until 6pm"},
		{"refundable true", `{"refundable": true}`, "Refundable"},
		{"refundable false", `{"refundable": false}`, "Non-refundable"},
		{"refundability text", `{"refundability": "non_refundable"}`, "Non-refundable"},
		{"refundability positive", `{"refundability": "fully refundable"}`, "Refundable"},
		{"empty", `{}`, "Policy details unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := Normalize(decodeJSON(t, `{"offers":[{"policy":`+tc.policy+`}]}`))
			require.Len(t, record.Offers, 1)
			assert.Equal(t, tc.want, record.Offers[0].CancellationSummary)
		})
	}
}

func TestNormalizeIsIdempotentOnRecordFields(t *testing.T) {
	payload := decodeJSON(t, `{
		"propertyId": "p9",
		"currency": "USD",
		"offers": [{"offerId": "x", "totalPrice": 120.5}]
	}`)

	first := Normalize(payload)
	second := Normalize(payload)

	assert.Equal(t, first.PropertyID, second.PropertyID)
	assert.Equal(t, first.Offers, second.Offers)
	assert.Equal(t, first.ReasonCodes, second.ReasonCodes)
}

func TestGetPrimaryOffer(t *testing.T) {
	record := Normalize(decodeJSON(t, `{"offers":[
		{"offerId": "a"},
		{"offerId": "b", "recommended": true}
	]}`))

	primary := GetPrimaryOffer(record.Offers)
	require.NotNil(t, primary)
	assert.Equal(t, "b", primary.OfferID)

	secondary := GetSecondaryOffer(record.Offers)
	require.NotNil(t, secondary)
	assert.Equal(t, "a", secondary.OfferID)
}

func TestGetSecondaryOfferWithDuplicateIDs(t *testing.T) {
	record := Normalize(decodeJSON(t, `{"offers":[
		{"offerId": "same", "recommended": true, "totalPrice": 100},
		{"offerId": "same", "totalPrice": 140}
	]}`))

	primary := GetPrimaryOffer(record.Offers)
	secondary := GetSecondaryOffer(record.Offers)
	require.NotNil(t, primary)
	require.NotNil(t, secondary)
	require.NotNil(t, secondary.TotalPrice)
	assert.Equal(t, 140.0, *secondary.TotalPrice)
}

func TestGetOffersFromEmptyRecord(t *testing.T) {
	record := Normalize(decodeJSON(t, `{"offers":[]}`))
	assert.Nil(t, GetPrimaryOffer(record.Offers))
	assert.Nil(t, GetSecondaryOffer(record.Offers))
}
