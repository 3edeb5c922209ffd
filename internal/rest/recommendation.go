package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/silverkeytech/Teddy-recommendation-system/business/ctr"
	"github.com/silverkeytech/Teddy-recommendation-system/domain"
	"github.com/silverkeytech/Teddy-recommendation-system/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate *validator.Validate
		service  RecommenderService
		cache    ResultCache
	}

	RecommenderService interface {
		GetRecommendations(ctx context.Context, userID uint, n int, enableCTRLogging bool) ([]domain.Recommendation, error)
		LogFeedback(ctx context.Context, userID uint, productID uint64, eventType string) error
		CTRSummary() map[string]map[string]ctr.Stat
		RebuildSnapshot(ctx context.Context) error
	}

	// ResultCache is optional; a nil cache disables caching entirely.
	ResultCache interface {
		Get(ctx context.Context, userID uint, n int) ([]domain.Recommendation, bool)
		Set(ctx context.Context, userID uint, n int, recs []domain.Recommendation) error
		Invalidate(ctx context.Context, userID uint) error
	}

	RecommendQuery struct {
		N   int    `query:"n"`
		CTR string `query:"ctr" validate:"omitempty,oneof=true false"`
	}

	FeedbackRequest struct {
		ProductID uint64 `json:"product_id" validate:"required"`
		EventType string `json:"event_type" validate:"required,oneof=impression click view atc purchase"`
	}
)

type ResponseError struct {
	Message string `json:"message"`
}

func NewRecommendationHandler(svc RecommenderService, cache ResultCache) *RecommendationHandler {
	return &RecommendationHandler{
		validate: validator.New(),
		service:  svc,
		cache:    cache,
	}
}

// GET /api/v1/recommendations?n=10&ctr=true
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	start := time.Now()

	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctrLogging := q.CTR != "false"

	ctx := c.Request().Context()

	// the cache is only a shortcut when the request carries no logging
	// side effect
	if h.cache != nil && !ctrLogging {
		if recs, hit := h.cache.Get(ctx, userID, q.N); hit {
			return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
		}
	}

	recs, err := h.service.GetRecommendations(ctx, userID, q.N, ctrLogging)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if h.cache != nil && !ctrLogging {
		_ = h.cache.Set(ctx, userID, q.N, recs)
	}

	metrics.RecommendRequests.Inc()
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// POST /api/v1/recommendations/feedback
func (h *RecommendationHandler) Feedback(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx := c.Request().Context()

	if err := h.service.LogFeedback(ctx, userID, req.ProductID, req.EventType); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if h.cache != nil {
		_ = h.cache.Invalidate(ctx, userID)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("feedback recorded"))
}

// GET /api/v1/recommendations/ctr-summary
func (h *RecommendationHandler) CTRSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.service.CTRSummary()))
}

// POST /api/v1/recommendations/rebuild
func (h *RecommendationHandler) Rebuild(c echo.Context) error {
	if err := h.service.RebuildSnapshot(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("snapshot rebuilt"))
}
