package controllers

import (
	"net/http"
	"strconv"

	"github.com/QuanCaViet/quanca_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// SongController controller bài hát
type SongController struct {
	songService  services.SongService
	statsService services.StatsService
}

// NewSongController tạo SongController
func NewSongController(songService services.SongService, statsService services.StatsService) *SongController {
	return &SongController{
		songService:  songService,
		statsService: statsService,
	}
}

// List lấy danh sách bài hát, hỗ trợ lọc thể loại, tìm kiếm và phân trang
func (c *SongController) List(ctx *gin.Context) {
	var categoryID *uint
	if s := ctx.Query("category_id"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "thể loại không hợp lệ"})
			return
		}
		id := uint(v)
		categoryID = &id
	}

	search := ctx.Query("search")

	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	songs, total, pages, err := c.songService.List(categoryID, search, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"songs": songs,
		"total": total,
		"pages": pages,
		"page":  page,
	})
}

// GetByID lấy một bài hát kèm thống kê, đồng thời ghi nhận lượt xem
func (c *SongController) GetByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	song, err := c.songService.GetByID(uint(id))
	if err != nil {
		respondError(ctx, err)
		return
	}

	// Lượt xem là số liệu phụ, lỗi không chặn phản hồi
	_ = c.statsService.RecordSongView(uint(id))

	ctx.JSON(http.StatusOK, gin.H{"song": song})
}

// Create tạo bài hát mới (quản trị)
func (c *SongController) Create(ctx *gin.Context) {
	var input services.SongInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := c.songService.Create(input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"song": song})
}

// Update cập nhật bài hát (quản trị)
func (c *SongController) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var input services.SongInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := c.songService.Update(uint(id), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"song": song})
}

// Delete xóa bài hát (quản trị)
func (c *SongController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	if err := c.songService.Delete(uint(id)); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
