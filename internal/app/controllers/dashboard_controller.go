package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hariz/collegems/internal/app/models/dto"
	"github.com/hariz/collegems/internal/app/services"
	"github.com/hariz/collegems/internal/middleware"
)

// DashboardController handles aggregate counts and diagnostics
type DashboardController struct {
	statsService services.StatsService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(statsService services.StatsService) *DashboardController {
	return &DashboardController{
		statsService: statsService,
	}
}

// GetStats returns the record count of each entity type
// @Summary Dashboard stats
// @Description Returns the number of students, courses, faculty and departments
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsResponse "Counts retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.Stats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// TestDatabase inserts a throwaway student record and returns the updated
// count. Registered outside production mode only.
func (c *DashboardController) TestDatabase(ctx *gin.Context) {
	count, err := c.statsService.DatabaseCheck(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Database test failed").WithError(err))
		return
	}

	ctx.JSON(http.StatusOK, dto.DatabaseCheckResponse{
		Message:      "Database test successful",
		StudentCount: count,
	})
}
