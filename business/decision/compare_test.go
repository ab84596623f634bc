package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareRunsNilPrevious(t *testing.T) {
	current := Normalize(decodeJSON(t, `{"offers":[]}`))
	assert.Nil(t, CompareRuns(nil, current))
}

func TestCompareRunsOfferMembership(t *testing.T) {
	previous := Normalize(decodeJSON(t, `{"offers":[{"offerId":"a"},{"offerId":"b"}]}`))
	current := Normalize(decodeJSON(t, `{"offers":[{"offerId":"b"},{"offerId":"c"}]}`))

	comparison := CompareRuns(&previous, current)
	require.NotNil(t, comparison)
	assert.Equal(t, []string{"c"}, comparison.AddedOfferIDs)
	assert.Equal(t, []string{"a"}, comparison.RemovedOfferIDs)
	assert.Empty(t, comparison.SummaryChanges)
}

func TestCompareRunsSummaryChanges(t *testing.T) {
	previous := Normalize(decodeJSON(t, `{"offers":[],"configVersion":"v1","currency":"USD"}`))
	current := Normalize(decodeJSON(t, `{"offers":[],"configVersion":"v2","currency":"USD"}`))

	comparison := CompareRuns(&previous, current)
	require.NotNil(t, comparison)
	assert.Equal(t, []string{"configVersion: v1 -> v2"}, comparison.SummaryChanges)
}

func TestCompareRunsIdenticalRecords(t *testing.T) {
	payload := `{"offers":[{"offerId":"a"}],"priceBasisUsed":"nightly"}`
	previous := Normalize(decodeJSON(t, payload))
	current := Normalize(decodeJSON(t, payload))

	comparison := CompareRuns(&previous, current)
	require.NotNil(t, comparison)
	assert.Empty(t, comparison.AddedOfferIDs)
	assert.Empty(t, comparison.RemovedOfferIDs)
	assert.Empty(t, comparison.SummaryChanges)
}

func TestPriceDelta(t *testing.T) {
	primary := &(Normalize(decodeJSON(t, `{"offers":[{"totalPrice":200}]}`)).Offers[0])
	secondary := &(Normalize(decodeJSON(t, `{"offers":[{"totalPrice":250}]}`)).Offers[0])

	assert.Equal(t, "25.00% / +$50.00", PriceDelta(primary, secondary))
	assert.Equal(t, "-20.00% / -$50.00", PriceDelta(secondary, primary))
}

func TestPriceDeltaUnavailable(t *testing.T) {
	priced := &(Normalize(decodeJSON(t, `{"offers":[{"totalPrice":200}]}`)).Offers[0])
	unpriced := &(Normalize(decodeJSON(t, `{"offers":[{}]}`)).Offers[0])

	assert.Equal(t, "n/a", PriceDelta(nil, priced))
	assert.Equal(t, "n/a", PriceDelta(priced, nil))
	assert.Equal(t, "n/a", PriceDelta(priced, unpriced))
}
