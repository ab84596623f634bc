package domain

import (
	"time"

	"github.com/google/uuid"
)

// DecisionRecord is the canonical form of one offer-generation response.
// String fields default to "-" when the upstream payload omits them.
type DecisionRecord struct {
	PropertyID      string           `json:"property_id"`
	Channel         string           `json:"channel"`
	Currency        string           `json:"currency"`
	PriceBasisUsed  string           `json:"price_basis_used"`
	ConfigVersion   string           `json:"config_version"`
	Offers          []OfferCard      `json:"offers"`
	DecisionTrace   any              `json:"decision_trace"`
	ReasonCodes     []string         `json:"reason_codes"`
	PropertyContext PropertyContext  `json:"property_context"`
	Debug           DecisionDebug    `json:"debug"`
	Raw             any              `json:"raw"`
}

// OfferCard is one guest-facing offer. OfferID is unique within a record only
// when the upstream supplies unique ids; duplicates are tolerated and
// primary/secondary selection is positional.
type OfferCard struct {
	OfferID             string           `json:"offer_id"`
	Type                string           `json:"type"`
	Recommended         bool             `json:"recommended"`
	Room                string           `json:"room"`
	RoomTypeDescription string           `json:"room_type_description"`
	Features            []string         `json:"features"`
	RatePlan            string           `json:"rate_plan"`
	Policy              any              `json:"policy"`
	Pricing             any              `json:"pricing"`
	Enhancements        any              `json:"enhancements"`
	Disclosures         any              `json:"disclosures"`
	TotalPrice          *float64         `json:"total_price"`
	PricingBreakdown    PricingBreakdown `json:"pricing_breakdown"`
	CancellationSummary string           `json:"cancellation_summary"`
	PaymentSummary      string           `json:"payment_summary"`
	Raw                 map[string]any   `json:"raw"`
}

// PricingBreakdown holds the four-part price decomposition. Nil means the
// upstream never reported that part, which is distinct from zero.
type PricingBreakdown struct {
	Subtotal  *float64 `json:"subtotal"`
	TaxesFees *float64 `json:"taxes_fees"`
	AddOns    *float64 `json:"add_ons"`
	Total     *float64 `json:"total"`
}

// DecisionDebug carries the opaque explainability payload. TopCandidates keeps
// raw bags because upstream score/feature fields vary between schema versions.
type DecisionDebug struct {
	ResolvedRequest  any              `json:"resolved_request"`
	ProfilePreAri    any              `json:"profile_pre_ari"`
	ProfileFinal     any              `json:"profile_final"`
	Scoring          any              `json:"scoring"`
	SelectionSummary any              `json:"selection_summary"`
	TopCandidates    []map[string]any `json:"top_candidates"`
}

type PropertyContext struct {
	PropertyID   string   `json:"property_id"`
	Currency     string   `json:"currency"`
	StrategyMode string   `json:"strategy_mode"`
	Timezone     string   `json:"timezone"`
	Policies     []string `json:"policies"`
	Capabilities []string `json:"capabilities"`
}

type FunnelStage struct {
	ID                 string   `json:"id"`
	Label              string   `json:"label"`
	Count              int      `json:"count"`
	PercentOfGenerated float64  `json:"percent_of_generated"`
	CandidateIDs       []string `json:"candidate_ids"`
}

// ScoreWeights are independently nullable: a missing weight is a distinct
// state from an explicit zero.
type ScoreWeights struct {
	Value      *float64 `json:"value"`
	Conversion *float64 `json:"conversion"`
	Experience *float64 `json:"experience"`
	Margin     *float64 `json:"margin"`
	Risk       *float64 `json:"risk"`
}

type ScoringModel struct {
	Value      float64      `json:"value"`
	Conversion float64      `json:"conversion"`
	Experience float64      `json:"experience"`
	Margin     float64      `json:"margin"`
	Risk       float64      `json:"risk"`
	Weights    ScoreWeights `json:"weights"`
	FinalScore *float64     `json:"final_score"`
	Formula    string       `json:"formula"`
}

type ReasonGroups struct {
	Filters   []string `json:"filters"`
	Selection []string `json:"selection"`
	Fallback  []string `json:"fallback"`
	Other     []string `json:"other"`
}

type RunComparison struct {
	AddedOfferIDs   []string `json:"added_offer_ids"`
	RemovedOfferIDs []string `json:"removed_offer_ids"`
	SummaryChanges  []string `json:"summary_changes"`
}

// DecisionRun is one request/response cycle kept in memory. Only the current
// and previous runs are retained, for the comparator.
type DecisionRun struct {
	ID        uuid.UUID      `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Request   map[string]any `json:"request"`
	Record    DecisionRecord `json:"record"`
}

// DecisionReport mirrors the downloadable audit report of the demo dashboard.
type DecisionReport struct {
	GeneratedAt   time.Time             `json:"generatedAt"`
	Request       map[string]any        `json:"request"`
	Summary       DecisionReportSummary `json:"summary"`
	DecisionTrace any                   `json:"decisionTrace"`
	Response      any                   `json:"response"`
}

type DecisionReportSummary struct {
	PropertyID     string   `json:"propertyId"`
	Currency       string   `json:"currency"`
	PriceBasisUsed string   `json:"priceBasisUsed"`
	ReasonCodes    []string `json:"reasonCodes"`
}
