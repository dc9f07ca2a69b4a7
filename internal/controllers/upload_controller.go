package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/QuanCaViet/quanca_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Giới hạn kích thước ảnh đại diện
const maxAvatarSize = 5 << 20 // 5MB

// UploadController controller tải ảnh lên
type UploadController struct {
	cloudinaryService services.CloudinaryService
}

// NewUploadController tạo UploadController
func NewUploadController(cloudinaryService services.CloudinaryService) *UploadController {
	return &UploadController{
		cloudinaryService: cloudinaryService,
	}
}

// UploadAvatar tải ảnh đại diện lên Cloudinary, trả về URL để lưu vào hồ sơ
func (c *UploadController) UploadAvatar(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "thiếu file ảnh"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "ảnh vượt quá 5MB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "không thể đọc file ảnh"})
		return
	}
	defer file.Close()

	fileName := fmt.Sprintf("avatar_%d_%d", user.ID, time.Now().Unix())
	publicID, url, err := c.cloudinaryService.UploadImage(file, fileName, 80)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"public_id": publicID,
		"url":       url,
	})
}
