package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController kiểm tra tình trạng dịch vụ
type HealthController struct{}

// NewHealthController tạo HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check trả về trạng thái dịch vụ
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
