package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mobile-analytics-service/internal/dashboard/core/domain"
	"mobile-analytics-service/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type GetDashboardUseCase interface {
	Activated(ctx context.Context, appID uuid.UUID) (bool, error)
	DailyStats(ctx context.Context, appID uuid.UUID, days int) ([]domain.DailyStat, error)
	CrashGroups(ctx context.Context, appID uuid.UUID) ([]domain.CrashGroup, error)
	GoalGroups(ctx context.Context, appID uuid.UUID) ([]domain.GoalGroup, error)
}

type DashboardHandler struct {
	dashboardUC GetDashboardUseCase
}

func NewDashboardHandler(dashboardUC GetDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// GetActivated godoc
// @Summary Check whether an app has received any sessions
// @Tags Dashboard
// @Produce json
// @Param app_id path string true "App ID"
// @Success 200 {object} ActivatedResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/apps/{app_id}/activated [get]
func (h *DashboardHandler) GetActivated(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("app_id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_app_id"})
	}

	activated, err := h.dashboardUC.Activated(c.UserContext(), appID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}
	return c.JSON(ActivatedResponse{Activated: activated})
}

// GetStats godoc
// @Summary Daily session and visitor counts
// @Tags Dashboard
// @Produce json
// @Param app_id path string true "App ID"
// @Param days query int false "Trailing window in days (default 30)"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/apps/{app_id}/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("app_id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_app_id"})
	}
	days := c.QueryInt("days", 0)

	stats, err := h.dashboardUC.DailyStats(c.UserContext(), appID, days)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidDays) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_days",
				Message: err.Error(),
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}

	resp := StatsResponse{Stats: make([]DailyStatItem, 0, len(stats))}
	for _, s := range stats {
		resp.Stats = append(resp.Stats, DailyStatItem{
			Day:      s.Day.Format(time.RFC3339),
			Sessions: s.Sessions,
			Visitors: s.Visitors,
		})
	}
	return c.JSON(resp)
}

// GetCrashes godoc
// @Summary Deduplicated crash groups
// @Tags Dashboard
// @Produce json
// @Param app_id path string true "App ID"
// @Success 200 {object} CrashesResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/apps/{app_id}/crashes [get]
func (h *DashboardHandler) GetCrashes(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("app_id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_app_id"})
	}

	groups, err := h.dashboardUC.CrashGroups(c.UserContext(), appID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}

	resp := CrashesResponse{Crashes: make([]CrashGroupItem, 0, len(groups))}
	for _, g := range groups {
		resp.Crashes = append(resp.Crashes, CrashGroupItem{
			ID:            g.ID.String(),
			Signature:     g.Signature,
			FirstAt:       g.FirstAt.Format(time.RFC3339),
			LastAt:        g.LastAt.Format(time.RFC3339),
			SessionCount:  g.SessionCount,
			ActivityCount: g.ActivityCount,
		})
	}
	return c.JSON(resp)
}

// GetGoals godoc
// @Summary Deduplicated goal groups
// @Tags Dashboard
// @Produce json
// @Param app_id path string true "App ID"
// @Success 200 {object} GoalsResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/apps/{app_id}/goals [get]
func (h *DashboardHandler) GetGoals(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("app_id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_app_id"})
	}

	groups, err := h.dashboardUC.GoalGroups(c.UserContext(), appID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}

	resp := GoalsResponse{Goals: make([]GoalGroupItem, 0, len(groups))}
	for _, g := range groups {
		resp.Goals = append(resp.Goals, GoalGroupItem{
			ID:            g.ID.String(),
			Name:          g.Name,
			FirstAt:       g.FirstAt.Format(time.RFC3339),
			LastAt:        g.LastAt.Format(time.RFC3339),
			SessionCount:  g.SessionCount,
			ActivityCount: g.ActivityCount,
		})
	}
	return c.JSON(resp)
}
