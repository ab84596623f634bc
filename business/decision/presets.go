package decision

import "offerLens/domain"

// ScenarioPresets are the prefilled guest-stay requests the demo dashboard
// offers as starting points. They are static data, copied fresh per call so
// callers can mutate their copy.
func ScenarioPresets() []domain.ScenarioPreset {
	return []domain.ScenarioPreset{
		{
			ID:          "family-trip",
			Label:       "Family trip",
			Description: "Two adults + kids, larger room preference",
			Request: domain.GenerateRequest{
				PropertyID: "hotel-lake-001",
				Channel:    "web",
				CheckIn:    "2026-05-12",
				CheckOut:   "2026-05-16",
				Currency:   "USD",
				Rooms:      1,
				Adults:     2,
				Children:   2,
				ChildAges:  []int{5, 8},
				RoomOccupancies: []domain.RoomOccupancy{
					{Adults: 2, Children: 2},
				},
				Preferences:  domain.OfferPreferences{NeedsSpace: true},
				StubScenario: "family_space_priority",
				Debug:        true,
			},
		},
		{
			ID:          "late-arrival",
			Label:       "Late arrival",
			Description: "Check-in after midnight and flexible plan",
			Request: domain.GenerateRequest{
				PropertyID: "hotel-city-007",
				Channel:    "voice",
				CheckIn:    "2026-04-03",
				CheckOut:   "2026-04-05",
				Currency:   "USD",
				Rooms:      1,
				Adults:     1,
				ChildAges:  []int{},
				RoomOccupancies: []domain.RoomOccupancy{
					{Adults: 1},
				},
				Preferences:  domain.OfferPreferences{LateArrival: true},
				StubScenario: "late_arrival_after_midnight",
				Debug:        true,
			},
		},
		{
			ID:          "compression-weekend",
			Label:       "Compression weekend",
			Description: "High demand period with stricter policies",
			Request: domain.GenerateRequest{
				PropertyID: "hotel-stadium-021",
				Channel:    "agent",
				CheckIn:    "2026-09-18",
				CheckOut:   "2026-09-20",
				Currency:   "USD",
				Rooms:      2,
				Adults:     4,
				ChildAges:  []int{},
				RoomOccupancies: []domain.RoomOccupancy{
					{Adults: 2},
					{Adults: 2},
				},
				StubScenario: "compression_weekend_event",
				Debug:        true,
			},
			ExtraJSON: map[string]any{
				"loyalty_tier":  "none",
				"demand_signal": "high",
			},
		},
		{
			ID:          "currency-mismatch",
			Label:       "Currency mismatch",
			Description: "Guest requests unsupported billing currency",
			Request: domain.GenerateRequest{
				PropertyID: "hotel-euro-014",
				Channel:    "web",
				CheckIn:    "2026-06-10",
				CheckOut:   "2026-06-13",
				Currency:   "JPY",
				Rooms:      1,
				Adults:     2,
				Children:   1,
				ChildAges:  []int{10},
				RoomOccupancies: []domain.RoomOccupancy{
					{Adults: 2, Children: 1},
				},
				StubScenario: "currency_fallback",
				Debug:        true,
			},
		},
		{
			ID:          "agent-upgrade",
			Label:       "Agent upsell",
			Description: "Agent-assisted premium upsell path",
			Request: domain.GenerateRequest{
				PropertyID: "hotel-bay-033",
				Channel:    "agent",
				CheckIn:    "2026-07-21",
				CheckOut:   "2026-07-24",
				Currency:   "USD",
				Rooms:      1,
				Adults:     2,
				ChildAges:  []int{},
				RoomOccupancies: []domain.RoomOccupancy{
					{Adults: 2},
				},
				Preferences:  domain.OfferPreferences{NeedsSpace: true},
				StubScenario: "agent_upgrade_path",
				Debug:        true,
			},
			ExtraJSON: map[string]any{
				"loyalty_tier":       "gold",
				"upgrade_preference": "suite",
			},
		},
	}
}
