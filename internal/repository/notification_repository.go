package repository

import (
	"errors"

	"github.com/QuanCaViet/quanca_backend/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository interface thao tác cơ sở dữ liệu cho thông báo
type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListByUser(userID uint, limit int) ([]models.Notification, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
	CountUnread(userID uint) (int64, error)
}

// notificationRepository triển khai NotificationRepository
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository tạo NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create tạo thông báo mới
func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// ListByUser lấy thông báo của một người dùng, mới nhất trước
func (r *notificationRepository) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.
		Where("user_id = ?", userID).
		Preload("Actor").
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return notifications, nil
}

// MarkRead đánh dấu đã đọc. Chỉ chuyển read từ false sang true,
// và chỉ khi thông báo thuộc về đúng người dùng.
func (r *notificationRepository) MarkRead(id, userID uint) error {
	var notification models.Notification
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error; err != nil {
		return err
	}
	if notification.Read {
		return nil
	}
	return r.db.Model(&notification).Update("read", true).Error
}

// MarkAllRead đánh dấu tất cả thông báo chưa đọc của người dùng là đã đọc
func (r *notificationRepository) MarkAllRead(userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Update("read", true).Error
}

// CountUnread đếm số thông báo chưa đọc
func (r *notificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
