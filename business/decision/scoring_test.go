package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructScoreDefaultedFillsMissingWeights(t *testing.T) {
	candidate := asRecord(decodeJSON(t, `{
		"scoreComponents": {"value": 1, "conversion": 1, "experience": 1, "margin": 1, "risk": 1}
	}`))

	model := ReconstructScore(candidate, map[string]any{}, WeightPolicyDefaulted)

	require.NotNil(t, model.FinalScore)
	assert.Equal(t, 0.70, *model.FinalScore)
	assert.Equal(t, "0.70 = 1.00*0.30 + 1.00*0.35 + 1.00*0.10 + 1.00*0.10 - 1.00*0.15", model.Formula)
}

func TestReconstructScoreWithExplicitWeights(t *testing.T) {
	bag := asRecord(decodeJSON(t, `{
		"candidate": {
			"scoreComponents": {"value": 100, "conversion": 80, "experience": 60, "margin": 40, "riskPenalty": 10}
		},
		"weights": {"value": 0.7816, "conversion": 0.1954, "experience": 0.023, "margin": 0, "risk": 0.13}
	}`))

	model := ReconstructScore(asRecord(bag["candidate"]), asRecord(bag["weights"]), WeightPolicyDefaulted)

	require.NotNil(t, model.FinalScore)
	assert.Equal(t, 93.87, *model.FinalScore)
	assert.Equal(t, "93.87 = 100.00*0.78 + 80.00*0.20 + 60.00*0.02 + 40.00*0.00 - 10.00*0.13", model.Formula)
}

func TestReconstructScoreStrictRequiresAllWeights(t *testing.T) {
	candidate := asRecord(decodeJSON(t, `{
		"scoreComponents": {"value": 1, "conversion": 1, "experience": 1, "margin": 1, "risk": 1}
	}`))
	weights := asRecord(decodeJSON(t, `{"value": 0.3, "conversion": 0.35}`))

	model := ReconstructScore(candidate, weights, WeightPolicyStrict)

	assert.Nil(t, model.FinalScore)
	assert.Equal(t, "Weights missing in debug.scoring.weights", model.Formula)
}

func TestReconstructScoreStrictWithCompleteWeights(t *testing.T) {
	candidate := asRecord(decodeJSON(t, `{
		"components": {"value": 2, "conversion": 2, "experience": 2, "margin": 2, "risk": 2}
	}`))
	weights := asRecord(decodeJSON(t, `{
		"value": 0.3, "conversion": 0.35, "experience": 0.1, "margin": 0.1, "risk": 0.15
	}`))

	model := ReconstructScore(candidate, weights, WeightPolicyStrict)

	require.NotNil(t, model.FinalScore)
	assert.Equal(t, 1.40, *model.FinalScore)
}

func TestReconstructScoreSuppliedScoreWins(t *testing.T) {
	candidate := asRecord(decodeJSON(t, `{
		"score": 55,
		"scoreComponents": {"value": 1, "conversion": 1, "experience": 1, "margin": 1, "risk": 1}
	}`))

	model := ReconstructScore(candidate, map[string]any{}, WeightPolicyDefaulted)

	require.NotNil(t, model.FinalScore)
	assert.Equal(t, 55.0, *model.FinalScore)
	assert.Contains(t, model.Formula, "55.00 = ")
}

func TestReconstructScoreMissingComponentsDefaultToZero(t *testing.T) {
	model := ReconstructScore(map[string]any{}, map[string]any{}, WeightPolicyDefaulted)

	assert.Equal(t, 0.0, model.Value)
	assert.Equal(t, 0.0, model.Risk)
	require.NotNil(t, model.FinalScore)
	assert.Equal(t, 0.0, *model.FinalScore)
}

func TestDefaultedWeightsSourcePrefersCandidate(t *testing.T) {
	candidate := asRecord(decodeJSON(t, `{"weights": {"value": 0.5}}`))
	summary := asRecord(decodeJSON(t, `{"scoreWeights": {"value": 0.9}}`))

	source := DefaultedWeightsSource(candidate, summary)
	assert.Equal(t, 0.5, source["value"])
}

func TestStrictWeightsSourceReadsScoringBag(t *testing.T) {
	record := Normalize(decodeJSON(t, `{
		"offers": [],
		"debug": {"scoring": {"weights": {"value": 0.25}}}
	}`))

	source := StrictWeightsSource(record.Debug)
	assert.Equal(t, 0.25, source["value"])
}
