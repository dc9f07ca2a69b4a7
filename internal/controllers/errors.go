package controllers

import (
	"errors"
	"net/http"

	"github.com/QuanCaViet/quanca_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError đổi lỗi của tầng service thành mã trạng thái HTTP.
// So khớp bằng errors.Is trên tập lỗi cố định, không đọc chuỗi lỗi.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidParent):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// currentUser lấy người dùng đã xác thực từ context
func currentUser(ctx *gin.Context) (*models.User, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	return user.(*models.User), true
}
