package services

import (
	"fmt"
	"strings"

	"github.com/QuanCaViet/quanca_backend/internal/models"
	"github.com/QuanCaViet/quanca_backend/internal/repository"
)

// CategoryService nghiệp vụ thể loại bài hát
type CategoryService interface {
	Create(name, description string) (*models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Update(id uint, name, description string) (*models.Category, error)
	Delete(id uint) error
	List() ([]models.Category, error)
}

// categoryService triển khai CategoryService
type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService tạo CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

// Create tạo thể loại mới
func (s *categoryService) Create(name, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tên thể loại trống", models.ErrValidation)
	}

	category := &models.Category{
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID lấy thể loại theo ID
func (s *categoryService) GetByID(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: thể loại %d", models.ErrNotFound, id)
	}
	return category, nil
}

// Update cập nhật thể loại
func (s *categoryService) Update(id uint, name, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tên thể loại trống", models.ErrValidation)
	}

	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: thể loại %d", models.ErrNotFound, id)
	}

	category.Name = name
	category.Description = strings.TrimSpace(description)
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete xóa thể loại
func (s *categoryService) Delete(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return fmt.Errorf("%w: thể loại %d", models.ErrNotFound, id)
	}
	return s.categoryRepo.Delete(id)
}

// List lấy danh sách thể loại
func (s *categoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}
