package repository

import (
	"errors"

	"github.com/QuanCaViet/quanca_backend/internal/models"

	"gorm.io/gorm"
)

// CommentRepository interface thao tác cơ sở dữ liệu cho bình luận
type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id uint) (*models.Comment, error)
	Update(comment *models.Comment) error
	DeleteWithReplies(id uint) error
	ListBySong(songID uint) ([]models.Comment, error)
	HasLiked(commentID, userID uint) (bool, error)
	AddLike(commentID, userID uint) (int, error)
	RemoveLike(commentID, userID uint) (int, error)
	ListLikedIDs(songID, userID uint) ([]uint, error)
}

// commentRepository triển khai CommentRepository
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository tạo CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create tạo bình luận mới
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByID tìm bình luận theo ID
func (r *commentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Preload("User").First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update cập nhật bình luận
func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// DeleteWithReplies xóa bình luận, các trả lời của nó và mọi lượt thích
// liên quan trong cùng một transaction
func (r *commentRepository) DeleteWithReplies(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		ids := []uint{id}
		var replyIDs []uint
		if err := tx.Model(&models.Comment{}).Where("parent_id = ?", id).Pluck("id", &replyIDs).Error; err != nil {
			return err
		}
		ids = append(ids, replyIDs...)

		if err := tx.Where("comment_id IN ?", ids).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.Comment{}).Error
	})
}

// ListBySong lấy toàn bộ bình luận của một bài hát, mới nhất trước.
// Thứ tự phụ theo id để kết quả ổn định khi trùng thời điểm tạo.
func (r *commentRepository) ListBySong(songID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.
		Where("song_id = ?", songID).
		Preload("User").
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return comments, nil
}

// HasLiked kiểm tra người dùng đã thích bình luận chưa
func (r *commentRepository) HasLiked(commentID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddLike thêm lượt thích và tăng bộ đếm trong cùng một transaction.
// Khóa chính kép (comment_id, user_id) chặn việc cộng hai lần.
func (r *commentRepository) AddLike(commentID, userID uint) (int, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		like := models.CommentLike{CommentID: commentID, UserID: userID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		return tx.Model(&models.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error
	})
	if err != nil {
		return 0, err
	}
	return r.getLikesCount(commentID)
}

// RemoveLike bỏ lượt thích và giảm bộ đếm, không xuống dưới 0
func (r *commentRepository) RemoveLike(commentID, userID uint) (int, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).
			Delete(&models.CommentLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("likes_count", gorm.Expr("GREATEST(likes_count - ?, 0)", 1)).Error
	})
	if err != nil {
		return 0, err
	}
	return r.getLikesCount(commentID)
}

// ListLikedIDs lấy danh sách ID bình luận của một bài hát mà người dùng đã thích
func (r *commentRepository) ListLikedIDs(songID, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.CommentLike{}).
		Joins("JOIN comments ON comments.id = comment_likes.comment_id").
		Where("comments.song_id = ? AND comment_likes.user_id = ?", songID, userID).
		Pluck("comment_likes.comment_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *commentRepository) getLikesCount(commentID uint) (int, error) {
	var comment models.Comment
	if err := r.db.Select("likes_count").First(&comment, commentID).Error; err != nil {
		return 0, err
	}
	return comment.LikesCount, nil
}
