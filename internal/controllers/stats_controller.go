package controllers

import (
	"net/http"
	"strconv"

	"github.com/QuanCaViet/quanca_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// StatsController controller thống kê truy cập
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController tạo StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// RecordPageView ghi nhận một lượt truy cập trang
func (c *StatsController) RecordPageView(ctx *gin.Context) {
	if err := c.statsService.RecordPageView(); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetTraffic lấy số liệu truy cập (quản trị)
func (c *StatsController) GetTraffic(ctx *gin.Context) {
	days, err := strconv.Atoi(ctx.DefaultQuery("days", "30"))
	if err != nil || days < 1 || days > 365 {
		days = 30
	}

	stats, err := c.statsService.GetTraffic(days)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
