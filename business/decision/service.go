package decision

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"offerLens/domain"
	"offerLens/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const stayDateLayout = "2006-01-02"

type ctxKey string

// TraceIDKey carries the per-request trace id set by the HTTP middleware.
const TraceIDKey ctxKey = "trace_id"

func TraceIDFromContext(ctx context.Context) string {
	if v := ctx.Value(TraceIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// OffersRepository is the transport collaborator that calls the decision
// engine. On non-2xx it returns a *domain.RequestError.
type OffersRepository interface {
	Generate(ctx context.Context, payload map[string]any) (any, error)
}

// DecisionService runs offer decisions and retains the current and previous
// normalized runs in memory for the comparator. Nothing is persisted across
// sessions.
type DecisionService struct {
	offersRepo OffersRepository
	validate   *validator.Validate

	mu       sync.RWMutex
	current  *domain.DecisionRun
	previous *domain.DecisionRun
}

func NewDecisionService(offersRepo OffersRepository) *DecisionService {
	return &DecisionService{
		offersRepo: offersRepo,
		validate:   validator.New(),
	}
}

// Run validates the guest-stay request, calls the decision engine, normalizes
// whatever comes back, and stores the run. The transport error passes through
// wrapped so handlers can unwrap the typed status/message/body.
func (s *DecisionService) Run(ctx context.Context, req domain.GenerateRequest) (domain.DecisionRun, error) {
	if err := ctx.Err(); err != nil {
		return domain.DecisionRun{}, fmt.Errorf("context error: %w", err)
	}

	if err := s.validateRequest(req); err != nil {
		return domain.DecisionRun{}, err
	}

	payload := buildPayload(req)

	response, err := s.offersRepo.Generate(ctx, payload)
	if err != nil {
		return domain.DecisionRun{}, fmt.Errorf("generate offers: %w", err)
	}

	record := Normalize(response)

	run := domain.DecisionRun{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Request:   payload,
		Record:    record,
	}

	s.mu.Lock()
	s.previous = s.current
	s.current = &run
	s.mu.Unlock()

	logger.Info("offer_decision_run",
		"trace_id", TraceIDFromContext(ctx),
		"run_id", run.ID.String(),
		"property_id", record.PropertyID,
		"offers", len(record.Offers),
		"candidates", len(record.Debug.TopCandidates),
	)

	return run, nil
}

func (s *DecisionService) validateRequest(req domain.GenerateRequest) error {
	issues := []string{}

	if err := s.validate.Struct(&req); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range fieldErrors {
				issues = append(issues, fmt.Sprintf("%s failed on the %s rule", fieldError.Field(), fieldError.Tag()))
			}
		} else {
			issues = append(issues, err.Error())
		}
	}

	checkIn, checkInErr := time.Parse(stayDateLayout, req.CheckIn)
	checkOut, checkOutErr := time.Parse(stayDateLayout, req.CheckOut)
	if req.CheckIn != "" && checkInErr != nil {
		issues = append(issues, "check_in must be a valid YYYY-MM-DD date.")
	}
	if req.CheckOut != "" && checkOutErr != nil {
		issues = append(issues, "check_out must be a valid YYYY-MM-DD date.")
	}
	if checkInErr == nil && checkOutErr == nil && !checkOut.After(checkIn) {
		issues = append(issues, "check_out must be after check_in.")
	}

	if len(req.ChildAges) != req.Children {
		issues = append(issues, "child_ages length must match children.")
	}
	for _, age := range req.ChildAges {
		if age < 0 {
			issues = append(issues, "child_ages must contain valid non-negative numbers.")
			break
		}
	}

	if req.Rooms > 0 && len(req.RoomOccupancies) != req.Rooms {
		issues = append(issues, "roomOccupancies length must match rooms.")
	}

	if req.BudgetCap < 0 {
		issues = append(issues, "budget_cap must be a number greater than 0 when provided.")
	}

	if len(issues) > 0 {
		return &domain.ValidationError{Issues: issues}
	}
	return nil
}

// buildPayload produces the outgoing engine request. Advanced pass-through
// fields land at the top level and may override the canonical ones, matching
// the demo form's behavior.
func buildPayload(req domain.GenerateRequest) map[string]any {
	payload := map[string]any{
		"property_id":     strings.TrimSpace(req.PropertyID),
		"channel":         req.Channel,
		"check_in":        req.CheckIn,
		"check_out":       req.CheckOut,
		"currency":        strings.ToUpper(strings.TrimSpace(req.Currency)),
		"rooms":           req.Rooms,
		"adults":          req.Adults,
		"children":        req.Children,
		"child_ages":      req.ChildAges,
		"roomOccupancies": req.RoomOccupancies,
		"preferences": map[string]any{
			"needs_space":  req.Preferences.NeedsSpace,
			"late_arrival": req.Preferences.LateArrival,
		},
		"debug": req.Debug,
	}

	if strings.TrimSpace(req.StubScenario) != "" {
		payload["stub_scenario"] = strings.TrimSpace(req.StubScenario)
	}
	if req.Nights > 0 {
		payload["nights"] = req.Nights
	}
	if req.BudgetCap > 0 {
		payload["budget_cap"] = req.BudgetCap
	}

	for key, value := range req.Extra {
		payload[key] = value
	}

	return payload
}

// ComputedNights derives the stay length from the dates; ok is false when
// either date is missing or malformed or the range is not positive.
func ComputedNights(checkIn, checkOut string) (int, bool) {
	start, startErr := time.Parse(stayDateLayout, checkIn)
	end, endErr := time.Parse(stayDateLayout, checkOut)
	if startErr != nil || endErr != nil || !end.After(start) {
		return 0, false
	}
	return int(end.Sub(start).Hours() / 24), true
}

// Latest returns the most recent run.
func (s *DecisionService) Latest() (domain.DecisionRun, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.DecisionRun{}, false
	}
	return *s.current, true
}

// Comparison diffs the latest run against the previous one. Nil when fewer
// than two runs exist.
func (s *DecisionService) Comparison() *domain.RunComparison {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.previous == nil {
		return nil
	}
	return CompareRuns(&s.previous.Record, s.current.Record)
}

// Funnel rebuilds the candidate funnel for the latest run.
func (s *DecisionService) Funnel() ([]domain.FunnelStage, bool) {
	run, ok := s.Latest()
	if !ok {
		return nil, false
	}
	return BuildFunnel(run.Record), true
}

// CandidateScore reconstructs the scoring model for one debug candidate under
// the requested weight policy.
func (s *DecisionService) CandidateScore(index int, policy WeightPolicy) (domain.ScoringModel, bool) {
	run, ok := s.Latest()
	if !ok {
		return domain.ScoringModel{}, false
	}

	candidates := run.Record.Debug.TopCandidates
	if index < 0 || index >= len(candidates) {
		return domain.ScoringModel{}, false
	}

	candidate := candidates[index]
	var weights map[string]any
	switch policy {
	case WeightPolicyStrict:
		weights = StrictWeightsSource(run.Record.Debug)
	default:
		weights = DefaultedWeightsSource(candidate, asRecord(run.Record.Debug.SelectionSummary))
	}

	return ReconstructScore(candidate, weights, policy), true
}

// Report assembles the downloadable audit aggregate for the latest run.
func (s *DecisionService) Report() (domain.DecisionReport, bool) {
	run, ok := s.Latest()
	if !ok {
		return domain.DecisionReport{}, false
	}

	return domain.DecisionReport{
		GeneratedAt: time.Now().UTC(),
		Request:     run.Request,
		Summary: domain.DecisionReportSummary{
			PropertyID:     run.Record.PropertyID,
			Currency:       run.Record.Currency,
			PriceBasisUsed: run.Record.PriceBasisUsed,
			ReasonCodes:    run.Record.ReasonCodes,
		},
		DecisionTrace: run.Record.DecisionTrace,
		Response:      run.Record.Raw,
	}, true
}
