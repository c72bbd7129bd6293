package fiber

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"mobile-analytics-service/internal/activity/core/domain"
	"mobile-analytics-service/internal/activity/core/ports"
	"mobile-analytics-service/internal/activity/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type TrackActivityUseCase interface {
	TrackBatch(ctx context.Context, category domain.Category, records []map[string]any, geo *domain.GeoInfo) ([]*usecase.TrackResult, error)
}

type ActivityHandler struct {
	trackUC TrackActivityUseCase
	geo     ports.GeoResolverPort
}

func NewActivityHandler(trackUC TrackActivityUseCase, geo ports.GeoResolverPort) *ActivityHandler {
	return &ActivityHandler{trackUC: trackUC, geo: geo}
}

// PostEvents godoc
// @Summary Ingest telemetry events
// @Description Attributes each event to an app, visitor and session, then records it
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body EventBatchRequest true "Event batch"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse "Record vetoed"
// @Failure 404 {object} ErrorResponse "App not registered"
// @Router /v1/events [post]
func (h *ActivityHandler) PostEvents(c *fiber.Ctx) error {
	var req EventBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	if req.Events == nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "events_required"})
	}
	return h.track(c, domain.CategoryEvent, req.Events)
}

// PostActions godoc
// @Summary Ingest telemetry actions
// @Description Same pipeline as events; actions accept any non-empty type
// @Tags Activity
// @Accept json
// @Produce json
// @Param request body ActionBatchRequest true "Action batch"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse "Record vetoed"
// @Failure 404 {object} ErrorResponse "App not registered"
// @Router /v1/actions [post]
func (h *ActivityHandler) PostActions(c *fiber.Ctx) error {
	var req ActionBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	if req.Actions == nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "actions_required"})
	}
	return h.track(c, domain.CategoryAction, req.Actions)
}

func (h *ActivityHandler) track(c *fiber.Ctx, category domain.Category, records []map[string]any) error {
	if len(records) == 0 {
		return c.JSON(StatusResponse{Status: "ok"})
	}

	geoInfo, err := h.geo.Resolve(c.UserContext(), clientIP(c))
	if err != nil {
		// Geo enrichment is best effort; attribution proceeds without it.
		log.Printf("geo lookup failed: %v", err)
		geoInfo = nil
	}

	results, err := h.trackUC.TrackBatch(c.UserContext(), category, records, geoInfo)
	for _, res := range results {
		if res.AggregationErr != nil {
			log.Printf("aggregation failed for activity %s: %v", res.Activity.ID, res.AggregationErr)
		}
	}
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRecord):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_record",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrIgnored):
			return c.Status(http.StatusPaymentRequired).JSON(ErrorResponse{
				Error: "ignored",
			})
		case errors.Is(err, usecase.ErrAppNotFound):
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Error: "app_not_found",
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.JSON(StatusResponse{Status: "ok"})
}

// clientIP prefers the first X-Forwarded-For hop over the socket address.
func clientIP(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	return c.IP()
}
