package domain

import (
	"fmt"
	"strings"
)

type RoomOccupancy struct {
	Adults   int `json:"adults" validate:"min=1"`
	Children int `json:"children" validate:"min=0"`
}

type OfferPreferences struct {
	NeedsSpace  bool `json:"needs_space"`
	LateArrival bool `json:"late_arrival"`
}

// GenerateRequest is the validated body sent to the offer decision engine.
// Extra carries pass-through fields from the advanced JSON override; they are
// merged into the top level of the outgoing payload.
type GenerateRequest struct {
	PropertyID      string           `json:"property_id" validate:"required"`
	Channel         string           `json:"channel" validate:"required,oneof=voice web agent"`
	CheckIn         string           `json:"check_in" validate:"required"`
	CheckOut        string           `json:"check_out" validate:"required"`
	Nights          int              `json:"nights,omitempty" validate:"min=0"`
	Currency        string           `json:"currency" validate:"required"`
	Rooms           int              `json:"rooms" validate:"min=1"`
	Adults          int              `json:"adults" validate:"min=1"`
	Children        int              `json:"children" validate:"min=0"`
	ChildAges       []int            `json:"child_ages"`
	RoomOccupancies []RoomOccupancy  `json:"roomOccupancies" validate:"dive"`
	Preferences     OfferPreferences `json:"preferences"`
	StubScenario    string           `json:"stub_scenario,omitempty"`
	Debug           bool             `json:"debug"`
	BudgetCap       float64          `json:"budget_cap,omitempty"`
	Extra           map[string]any   `json:"extra,omitempty"`
}

// ScenarioPreset is a prefilled guest-stay request used by the demo dashboard.
type ScenarioPreset struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Request     GenerateRequest `json:"request"`
	ExtraJSON   map[string]any  `json:"extra_json,omitempty"`
}

// ValidationError collects cross-field issues found while checking a
// GenerateRequest. It is the only non-transport error the service returns.
type ValidationError struct {
	Issues []string `json:"issues"`
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Issues, "; ")
}

// RequestError is the typed transport error raised when the decision engine
// answers with a non-2xx status. Body is the parsed (or raw) response body so
// the caller can render it without further parsing.
type RequestError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Body    any    `json:"body"`
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("offer decision request failed (%d): %s", e.Status, e.Message)
}
