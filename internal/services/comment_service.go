package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/QuanCaViet/quanca_backend/internal/models"
	"github.com/QuanCaViet/quanca_backend/internal/repository"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// ToggleLikeResult kết quả của một lần bật / tắt lượt thích
type ToggleLikeResult struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}

// CommentService nghiệp vụ bình luận: tạo, sửa, xóa, thích và dựng cây
// hiển thị hai cấp. Tầng repository là trusted-caller; kiểm tra quyền
// (tác giả / quản trị) nằm ở đây.
type CommentService interface {
	Create(songID uint, author *models.User, content string, parentID *uint) (*models.Comment, error)
	ListThreadBySong(songID, viewerID uint) ([]models.CommentThread, error)
	Update(id, userID uint, content string) (*models.Comment, error)
	Delete(id, userID uint, isAdmin bool) error
	ToggleLike(commentID uint, actor *models.User) (*ToggleLikeResult, error)
}

// commentService triển khai CommentService
type commentService struct {
	commentRepo repository.CommentRepository
	songRepo    repository.SongRepository
	notifier    NotificationService
	sanitizer   *bluemonday.Policy
}

// NewCommentService tạo CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	songRepo repository.SongRepository,
	notifier NotificationService,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		songRepo:    songRepo,
		notifier:    notifier,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

// Create tạo bình luận mới. parentID nếu có phải trỏ tới một bình luận gốc
// của cùng bài hát; trả lời một trả lời bị từ chối để giữ cây hai cấp.
// Thông báo trả lời được phát sau khi bình luận đã lưu thành công.
func (s *commentService) Create(songID uint, author *models.User, content string, parentID *uint) (*models.Comment, error) {
	if author == nil || author.ID == 0 || strings.TrimSpace(author.Name) == "" {
		return nil, fmt.Errorf("%w: thiếu thông tin người bình luận", models.ErrValidation)
	}
	if songID == 0 {
		return nil, fmt.Errorf("%w: thiếu bài hát", models.ErrValidation)
	}

	content = s.sanitizer.Sanitize(strings.TrimSpace(content))
	if content == "" {
		return nil, fmt.Errorf("%w: nội dung bình luận trống", models.ErrValidation)
	}

	// Bài hát phải tồn tại
	if _, err := s.songRepo.FindByID(songID); err != nil {
		return nil, fmt.Errorf("%w: bài hát %d", models.ErrNotFound, songID)
	}

	// Kiểm tra bình luận cha
	var parent *models.Comment
	if parentID != nil {
		var err error
		parent, err = s.commentRepo.FindByID(*parentID)
		if err != nil {
			return nil, fmt.Errorf("%w: không tìm thấy bình luận cha", models.ErrInvalidParent)
		}
		if parent.ParentID != nil {
			return nil, fmt.Errorf("%w: chỉ cho phép một cấp trả lời", models.ErrInvalidParent)
		}
		if parent.SongID != songID {
			return nil, fmt.Errorf("%w: bình luận cha thuộc bài hát khác", models.ErrInvalidParent)
		}
	}

	comment := &models.Comment{
		SongID:   songID,
		UserID:   author.ID,
		ParentID: parentID,
		Content:  content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// Thông báo best-effort, không ảnh hưởng kết quả của bình luận
	if parent != nil {
		s.notifier.NotifyReply(parent, comment, author)
	}

	return s.commentRepo.FindByID(comment.ID)
}

// ListThreadBySong lấy bình luận của một bài hát đã dựng thành cây hai cấp,
// kèm trạng thái đã thích cho người xem hiện tại (viewerID 0 là khách)
func (s *commentService) ListThreadBySong(songID, viewerID uint) ([]models.CommentThread, error) {
	comments, err := s.commentRepo.ListBySong(songID)
	if err != nil {
		return nil, err
	}

	if viewerID != 0 {
		likedIDs, err := s.commentRepo.ListLikedIDs(songID, viewerID)
		if err != nil {
			return nil, err
		}
		MarkLiked(comments, likedIDs)
	}

	return AssembleThread(comments), nil
}

// Update sửa nội dung bình luận. Chỉ tác giả được sửa.
func (s *commentService) Update(id, userID uint, content string) (*models.Comment, error) {
	content = s.sanitizer.Sanitize(strings.TrimSpace(content))
	if content == "" {
		return nil, fmt.Errorf("%w: nội dung bình luận trống", models.ErrValidation)
	}

	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: bình luận %d", models.ErrNotFound, id)
	}
	if comment.UserID != userID {
		return nil, fmt.Errorf("%w: chỉ tác giả được sửa bình luận", models.ErrForbidden)
	}

	comment.Content = content
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.FindByID(id)
}

// Delete xóa bình luận. Tác giả hoặc quản trị viên được xóa; xóa bình luận
// gốc kéo theo các trả lời của nó để không có trả lời mồ côi.
func (s *commentService) Delete(id, userID uint, isAdmin bool) error {
	comment, err := s.commentRepo.FindByID(id)
	if err != nil {
		return fmt.Errorf("%w: bình luận %d", models.ErrNotFound, id)
	}
	if comment.UserID != userID && !isAdmin {
		return fmt.Errorf("%w: không thể xóa bình luận của người khác", models.ErrForbidden)
	}

	return s.commentRepo.DeleteWithReplies(id)
}

// ToggleLike bật / tắt lượt thích của một người dùng trên một bình luận.
// Thông báo chỉ phát khi chuyển từ chưa thích sang thích.
func (s *commentService) ToggleLike(commentID uint, actor *models.User) (*ToggleLikeResult, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: bình luận %d", models.ErrNotFound, commentID)
		}
		return nil, err
	}

	liked, err := s.commentRepo.HasLiked(commentID, actor.ID)
	if err != nil {
		return nil, err
	}

	if liked {
		count, err := s.commentRepo.RemoveLike(commentID, actor.ID)
		if err != nil {
			return nil, err
		}
		return &ToggleLikeResult{Liked: false, Likes: count}, nil
	}

	count, err := s.commentRepo.AddLike(commentID, actor.ID)
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyLike(comment, actor)

	return &ToggleLikeResult{Liked: true, Likes: count}, nil
}

// AssembleThread chia danh sách bình luận phẳng thành các bình luận gốc kèm
// trả lời, giữ nguyên thứ tự đầu vào trong từng nhóm. Trả lời có cha không
// nằm trong danh sách bị loại khỏi cây.
func AssembleThread(comments []models.Comment) []models.CommentThread {
	threads := make([]models.CommentThread, 0, len(comments))
	index := make(map[uint]int)

	for _, c := range comments {
		if c.ParentID == nil {
			index[c.ID] = len(threads)
			threads = append(threads, models.CommentThread{Comment: c, Replies: []models.Comment{}})
		}
	}

	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		if i, ok := index[*c.ParentID]; ok {
			threads[i].Replies = append(threads[i].Replies, c)
		}
	}

	return threads
}

// MarkLiked đặt cờ Liked cho các bình luận có ID nằm trong likedIDs
func MarkLiked(comments []models.Comment, likedIDs []uint) {
	if len(likedIDs) == 0 {
		return
	}
	likedSet := make(map[uint]bool, len(likedIDs))
	for _, id := range likedIDs {
		likedSet[id] = true
	}
	for i := range comments {
		comments[i].Liked = likedSet[comments[i].ID]
	}
}
