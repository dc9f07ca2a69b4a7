package repository

import (
	"errors"

	"github.com/QuanCaViet/quanca_backend/internal/models"

	"gorm.io/gorm"
)

// SongRepository interface thao tác cơ sở dữ liệu cho bài hát
type SongRepository interface {
	Create(song *models.Song) error
	FindByID(id uint) (*models.Song, error)
	Update(song *models.Song) error
	Delete(id uint) error
	List(categoryID *uint, search string, page, limit int) ([]models.Song, int64, error)
}

// songRepository triển khai SongRepository
type songRepository struct {
	db *gorm.DB
}

// NewSongRepository tạo SongRepository
func NewSongRepository(db *gorm.DB) SongRepository {
	return &songRepository{db: db}
}

// Create tạo bài hát mới kèm bản ghi thống kê trong cùng một transaction
func (r *songRepository) Create(song *models.Song) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(song).Error; err != nil {
			return err
		}
		return tx.Create(&models.SongStats{SongID: song.ID}).Error
	})
}

// FindByID tìm bài hát theo ID
func (r *songRepository) FindByID(id uint) (*models.Song, error) {
	var song models.Song
	if err := r.db.Preload("Category").First(&song, id).Error; err != nil {
		return nil, err
	}
	return &song, nil
}

// Update cập nhật bài hát
func (r *songRepository) Update(song *models.Song) error {
	return r.db.Save(song).Error
}

// Delete xóa bài hát cùng thống kê, bình luận và lượt thích bình luận
func (r *songRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint
		if err := tx.Model(&models.Comment{}).Where("song_id = ?", id).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&models.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("song_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("song_id = ?", id).Delete(&models.SongStats{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Song{}, id).Error
	})
}

// List lấy danh sách bài hát có phân trang, lọc theo thể loại và tìm kiếm
// theo tiêu đề hoặc tác giả, mới nhất trước
func (r *songRepository) List(categoryID *uint, search string, page, limit int) ([]models.Song, int64, error) {
	var songs []models.Song
	var total int64

	offset := (page - 1) * limit

	query := r.db.Model(&models.Song{}).Preload("Category")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR author LIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&songs).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}

	return songs, total, nil
}
