package services

import (
	"errors"
	"log"

	"github.com/QuanCaViet/quanca_backend/internal/models"
	"github.com/QuanCaViet/quanca_backend/internal/repository"
	"github.com/QuanCaViet/quanca_backend/internal/utils"

	"gorm.io/gorm"
)

// Độ dài tối đa của đoạn trích nội dung trong thông báo
const notificationPreviewLimit = 100

// Số thông báo tối đa trả về mỗi lần
const notificationListLimit = 50

// NotificationService phát thông báo từ lượt trả lời / lượt thích và phục vụ
// phần đọc thông báo. Việc ghi thông báo là best-effort: hành động chính đã
// được lưu thành công nên lỗi ở đây chỉ ghi log, không trả về cho người dùng.
type NotificationService interface {
	NotifyReply(parent *models.Comment, reply *models.Comment, actor *models.User)
	NotifyLike(comment *models.Comment, actor *models.User)
	ListForUser(userID uint) ([]models.Notification, error)
	MarkRead(id, userID uint) error
	MarkAllRead(userID uint) error
	UnreadCount(userID uint) (int64, error)
}

// notificationService triển khai NotificationService
type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService tạo NotificationService
func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// NotifyReply báo cho tác giả bình luận gốc khi có người trả lời.
// Tự trả lời chính mình thì không tạo thông báo.
func (s *notificationService) NotifyReply(parent *models.Comment, reply *models.Comment, actor *models.User) {
	if parent.UserID == actor.ID {
		return
	}

	notification := &models.Notification{
		UserID:    parent.UserID,
		Type:      models.NotificationTypeReply,
		SongID:    parent.SongID,
		CommentID: parent.ID,
		ActorID:   actor.ID,
		Preview:   utils.TruncateRunes(reply.Content, notificationPreviewLimit),
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		log.Printf("[notification] không thể tạo thông báo trả lời cho người dùng %d: %v", parent.UserID, err)
	}
}

// NotifyLike báo cho tác giả bình luận khi có lượt thích mới. Chỉ gọi khi
// chuyển từ chưa thích sang thích, không gọi khi bỏ thích.
func (s *notificationService) NotifyLike(comment *models.Comment, actor *models.User) {
	if comment.UserID == actor.ID {
		return
	}

	notification := &models.Notification{
		UserID:    comment.UserID,
		Type:      models.NotificationTypeLike,
		SongID:    comment.SongID,
		CommentID: comment.ID,
		ActorID:   actor.ID,
		Preview:   utils.TruncateRunes(comment.Content, notificationPreviewLimit),
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		log.Printf("[notification] không thể tạo thông báo lượt thích cho người dùng %d: %v", comment.UserID, err)
	}
}

// ListForUser lấy các thông báo mới nhất của người dùng
func (s *notificationService) ListForUser(userID uint) ([]models.Notification, error) {
	return s.notificationRepo.ListByUser(userID, notificationListLimit)
}

// MarkRead đánh dấu một thông báo là đã đọc
func (s *notificationService) MarkRead(id, userID uint) error {
	if err := s.notificationRepo.MarkRead(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return nil
}

// MarkAllRead đánh dấu tất cả thông báo của người dùng là đã đọc
func (s *notificationService) MarkAllRead(userID uint) error {
	return s.notificationRepo.MarkAllRead(userID)
}

// UnreadCount đếm số thông báo chưa đọc
func (s *notificationService) UnreadCount(userID uint) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}
