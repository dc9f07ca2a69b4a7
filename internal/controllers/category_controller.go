package controllers

import (
	"net/http"
	"strconv"

	"github.com/QuanCaViet/quanca_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// CategoryController controller thể loại
type CategoryController struct {
	categoryService services.CategoryService
}

// NewCategoryController tạo CategoryController
func NewCategoryController(categoryService services.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// CategoryRequest dữ liệu tạo / sửa thể loại
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// List lấy danh sách thể loại
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.categoryService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetByID lấy một thể loại
func (c *CategoryController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	category, err := c.categoryService.GetByID(uint(id))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"category": category})
}

// Create tạo thể loại mới (quản trị)
func (c *CategoryController) Create(ctx *gin.Context) {
	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := c.categoryService.Create(req.Name, req.Description)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"category": category})
}

// Update cập nhật thể loại (quản trị)
func (c *CategoryController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var req CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := c.categoryService.Update(uint(id), req.Name, req.Description)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"category": category})
}

// Delete xóa thể loại (quản trị)
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	if err := c.categoryService.Delete(uint(id)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
