package repository

import (
	"github.com/QuanCaViet/quanca_backend/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository interface thao tác cơ sở dữ liệu cho thể loại
type CategoryRepository interface {
	Create(category *models.Category) error
	FindByID(id uint) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	List() ([]models.Category, error)
}

// categoryRepository triển khai CategoryRepository
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository tạo CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create tạo thể loại mới
func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// FindByID tìm thể loại theo ID
func (r *categoryRepository) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Update cập nhật thể loại
func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete xóa thể loại
func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

// List lấy danh sách thể loại, mới nhất trước
func (r *categoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("created_at DESC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
