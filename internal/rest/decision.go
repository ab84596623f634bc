package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"offerLens/business/decision"
	"offerLens/domain"
	"offerLens/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	DecisionHandler struct {
		validate        *validator.Validate
		decisionService DecisionService
	}

	DecisionService interface {
		Run(ctx context.Context, req domain.GenerateRequest) (domain.DecisionRun, error)
		Latest() (domain.DecisionRun, bool)
		Comparison() *domain.RunComparison
		Funnel() ([]domain.FunnelStage, bool)
		CandidateScore(index int, policy decision.WeightPolicy) (domain.ScoringModel, bool)
		Report() (domain.DecisionReport, bool)
	}

	ResponseError struct {
		Message string `json:"message"`
	}

	ValidationErrorResponse struct {
		Message string   `json:"message"`
		Issues  []string `json:"issues"`
	}

	EngineErrorResponse struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
		Body    any    `json:"body,omitempty"`
	}
)

func NewDecisionHandler(svc DecisionService) *DecisionHandler {
	return &DecisionHandler{
		validate:        validator.New(),
		decisionService: svc,
	}
}

// POST /api/v1/offers/decisions
func (h *DecisionHandler) RunDecision(c echo.Context) error {
	start := time.Now()

	var req domain.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	run, err := h.decisionService.Run(c.Request().Context(), req)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			metrics.DecisionRunValidationFailures.Inc()
			return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
				Message: "Request validation failed",
				Issues:  validationErr.Issues,
			})
		}

		var requestErr *domain.RequestError
		if errors.As(err, &requestErr) {
			metrics.DecisionEngineErrors.Inc()
			return c.JSON(requestErr.Status, EngineErrorResponse{
				Message: requestErr.Message,
				Status:  requestErr.Status,
				Body:    requestErr.Body,
			})
		}

		return c.JSON(http.StatusBadGateway, ResponseError{Message: err.Error()})
	}

	metrics.DecisionRunRequests.Inc()
	metrics.DecisionRunLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.decisionStory(run)))
}

// GET /api/v1/offers/decisions/latest
func (h *DecisionHandler) LatestDecision(c echo.Context) error {
	run, ok := h.decisionService.Latest()
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "no decision run yet"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.decisionStory(run)))
}

// GET /api/v1/offers/decisions/comparison
func (h *DecisionHandler) Comparison(c echo.Context) error {
	comparison := h.decisionService.Comparison()
	if comparison == nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "needs two runs to compare"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(comparison))
}

// GET /api/v1/offers/decisions/funnel
func (h *DecisionHandler) Funnel(c echo.Context) error {
	stages, ok := h.decisionService.Funnel()
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "no decision run yet"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stages))
}

// GET /api/v1/offers/decisions/candidates/:index/score?policy=defaulted|strict
func (h *DecisionHandler) CandidateScore(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid candidate index"})
	}

	var policy decision.WeightPolicy
	switch c.QueryParam("policy") {
	case "", "defaulted":
		policy = decision.WeightPolicyDefaulted
	case "strict":
		policy = decision.WeightPolicyStrict
	default:
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "policy must be defaulted or strict"})
	}

	model, ok := h.decisionService.CandidateScore(index, policy)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "candidate not found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(model))
}

// GET /api/v1/offers/decisions/report
func (h *DecisionHandler) Report(c echo.Context) error {
	report, ok := h.decisionService.Report()
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "no decision run yet"})
	}

	return c.JSON(http.StatusOK, report)
}

// GET /api/v1/offers/presets
func (h *DecisionHandler) Presets(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(decision.ScenarioPresets()))
}

// decisionStory flattens one run into everything the dashboard renders: the
// normalized record plus the derived views built from it.
func (h *DecisionHandler) decisionStory(run domain.DecisionRun) map[string]any {
	record := run.Record
	primary := decision.GetPrimaryOffer(record.Offers)
	secondary := decision.GetSecondaryOffer(record.Offers)

	return map[string]any{
		"runId":           run.ID,
		"createdAt":       run.CreatedAt,
		"record":          record,
		"primaryOffer":    primary,
		"secondaryOffer":  secondary,
		"priceDelta":      decision.PriceDelta(primary, secondary),
		"reasonGroups":    decision.GroupReasonCodes(record.ReasonCodes),
		"funnel":          decision.BuildFunnel(record),
		"comparison":      h.decisionService.Comparison(),
		"propertyContext": record.PropertyContext,
	}
}
