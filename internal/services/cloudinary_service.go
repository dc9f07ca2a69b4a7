package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"

	"github.com/QuanCaViet/quanca_backend/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService lưu ảnh đại diện người dùng trên Cloudinary
type CloudinaryService interface {
	UploadImage(file multipart.File, fileName string, compressionQuality int) (string, string, error)
	DeleteImage(publicID string) error
}

type cloudinaryService struct {
	cld *cloudinary.Cloudinary
	cfg *config.Config
}

// NewCloudinaryService tạo CloudinaryService
func NewCloudinaryService(cfg *config.Config) (CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, err
	}

	return &cloudinaryService{
		cld: cld,
		cfg: cfg,
	}, nil
}

// UploadImage tải ảnh lên, trả về public ID và URL an toàn
func (s *cloudinaryService) UploadImage(file multipart.File, fileName string, compressionQuality int) (string, string, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(file); err != nil {
		return "", "", fmt.Errorf("không thể đọc file: %v", err)
	}

	uploadParams := uploader.UploadParams{
		Folder:         s.cfg.Cloudinary.Folder,
		PublicID:       fileName,
		ResourceType:   "image",
		Transformation: fmt.Sprintf("q_%d", compressionQuality),
	}

	ctx := context.Background()
	result, err := s.cld.Upload.Upload(ctx, buf, uploadParams)
	if err != nil {
		return "", "", fmt.Errorf("tải lên Cloudinary thất bại: %v", err)
	}

	return result.PublicID, result.SecureURL, nil
}

// DeleteImage xóa ảnh theo public ID
func (s *cloudinaryService) DeleteImage(publicID string) error {
	if publicID == "" {
		return nil
	}

	_, err := s.cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("xóa ảnh trên Cloudinary thất bại: %v", err)
	}
	return nil
}
