package router

import (
	"offerLens/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupDecisionRoutes(api *echo.Group, handler *rest.DecisionHandler, extraMiddleware ...echo.MiddlewareFunc) {
	offers := api.Group("/offers", extraMiddleware...)

	offers.GET("/presets", handler.Presets)

	decisions := offers.Group("/decisions")
	decisions.POST("", handler.RunDecision)
	decisions.GET("/latest", handler.LatestDecision)
	decisions.GET("/comparison", handler.Comparison)
	decisions.GET("/funnel", handler.Funnel)
	decisions.GET("/candidates/:index/score", handler.CandidateScore)
	decisions.GET("/report", handler.Report)
}
