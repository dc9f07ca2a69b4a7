package controllers

import (
	"net/http"
	"strconv"

	"github.com/QuanCaViet/quanca_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// NotificationController controller thông báo
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController tạo NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// List lấy các thông báo mới nhất của người dùng hiện tại
func (c *NotificationController) List(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	notifications, err := c.notificationService.ListForUser(user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkRead đánh dấu một thông báo đã đọc
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	if err := c.notificationService.MarkRead(uint(id), user.ID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MarkAllRead đánh dấu tất cả thông báo đã đọc
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	if err := c.notificationService.MarkAllRead(user.ID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UnreadCount đếm số thông báo chưa đọc
func (c *NotificationController) UnreadCount(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	count, err := c.notificationService.UnreadCount(user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"count": count})
}
