package controllers

import (
	"net/http"
	"strconv"

	"github.com/QuanCaViet/quanca_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController controller người dùng
type UserController struct {
	userService services.UserService
}

// NewUserController tạo UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetMe lấy hồ sơ người dùng hiện tại
func (c *UserController) GetMe(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

// ProfileRequest dữ liệu cập nhật hồ sơ
type ProfileRequest struct {
	Name      string `json:"name" binding:"required"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateProfile cập nhật tên hiển thị và ảnh đại diện
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := c.userService.UpdateProfile(user.ID, req.Name, req.AvatarURL)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": updated})
}

// ScoreRequest dữ liệu cập nhật điểm số
type ScoreRequest struct {
	Score int `json:"score"`
}

// UpdateScore đặt điểm số mới cho người dùng hiện tại
func (c *UserController) UpdateScore(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	var req ScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.userService.UpdateScore(user.ID, req.Score); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Leaderboard lấy bảng xếp hạng người dùng theo điểm
func (c *UserController) Leaderboard(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	users, err := c.userService.Leaderboard(limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": users})
}

// MarkCompleted ghi nhận bài hát đã học xong
func (c *UserController) MarkCompleted(ctx *gin.Context) {
	songID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	if err := c.userService.MarkSongCompleted(user.ID, uint(songID)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListCompleted lấy danh sách ID bài hát đã học xong
func (c *UserController) ListCompleted(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	ids, err := c.userService.ListCompletedSongIDs(user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"song_ids": ids})
}

// AddToPlaylist thêm bài hát vào danh sách phát
func (c *UserController) AddToPlaylist(ctx *gin.Context) {
	songID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	if err := c.userService.AddToPlaylist(user.ID, uint(songID)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RemoveFromPlaylist xóa bài hát khỏi danh sách phát
func (c *UserController) RemoveFromPlaylist(ctx *gin.Context) {
	songID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	if err := c.userService.RemoveFromPlaylist(user.ID, uint(songID)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListPlaylist lấy danh sách phát của người dùng hiện tại
func (c *UserController) ListPlaylist(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	items, err := c.userService.ListPlaylist(user.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"playlist": items})
}

// ListAll lấy toàn bộ người dùng (quản trị)
func (c *UserController) ListAll(ctx *gin.Context) {
	users, err := c.userService.ListAll()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": users})
}

// RoleRequest dữ liệu đổi vai trò
type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetRole đổi vai trò người dùng (quản trị)
func (c *UserController) SetRole(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var req RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.userService.SetRole(uint(id), req.Role); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
