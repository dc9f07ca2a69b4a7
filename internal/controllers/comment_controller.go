package controllers

import (
	"net/http"
	"strconv"

	"github.com/QuanCaViet/quanca_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CommentController controller bình luận
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController tạo CommentController
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// CommentRequest dữ liệu tạo / sửa bình luận
type CommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

// Create tạo bình luận mới cho một bài hát
func (c *CommentController) Create(ctx *gin.Context) {
	songID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	comment, err := c.commentService.Create(uint(songID), user, req.Content, req.ParentID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// List lấy cây bình luận của một bài hát. Khách vẫn xem được,
// người đã đăng nhập có thêm trạng thái đã thích.
func (c *CommentController) List(ctx *gin.Context) {
	songID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var viewerID uint
	if user, ok := currentUser(ctx); ok {
		viewerID = user.ID
	}

	threads, err := c.commentService.ListThreadBySong(uint(songID), viewerID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"comments": threads})
}

// Update sửa nội dung bình luận
func (c *CommentController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	comment, err := c.commentService.Update(uint(id), user.ID, req.Content)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"comment": comment})
}

// Delete xóa bình luận (tác giả hoặc quản trị viên)
func (c *CommentController) Delete(ctx *gin.Context) {
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

	if err := c.commentService.Delete(uint(id), user.ID, user.IsAdmin()); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ToggleLike bật / tắt lượt thích trên một bình luận
func (c *CommentController) ToggleLike(ctx *gin.Context) {
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

	result, err := c.commentService.ToggleLike(uint(id), user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
