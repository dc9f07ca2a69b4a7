package services

import (
	"fmt"
	"strings"

	"github.com/QuanCaViet/quanca_backend/internal/models"
	"github.com/QuanCaViet/quanca_backend/internal/repository"
)

// Kích thước mặc định của bảng xếp hạng
const defaultLeaderboardSize = 10

// UserService nghiệp vụ người dùng: hồ sơ, tiến độ học, danh sách phát,
// điểm số và bảng xếp hạng
type UserService interface {
	GetByID(id uint) (*models.User, error)
	UpdateProfile(userID uint, name, avatarURL string) (*models.User, error)
	MarkSongCompleted(userID, songID uint) error
	ListCompletedSongIDs(userID uint) ([]uint, error)
	AddToPlaylist(userID, songID uint) error
	RemoveFromPlaylist(userID, songID uint) error
	ListPlaylist(userID uint) ([]models.PlaylistItem, error)
	UpdateScore(userID uint, score int) error
	Leaderboard(limit int) ([]models.User, error)
	ListAll() ([]models.User, error)
	SetRole(userID uint, role string) error
}

// userService triển khai UserService
type userService struct {
	userRepo  repository.UserRepository
	songRepo  repository.SongRepository
	statsRepo repository.StatsRepository
}

// NewUserService tạo UserService
func NewUserService(
	userRepo repository.UserRepository,
	songRepo repository.SongRepository,
	statsRepo repository.StatsRepository,
) UserService {
	return &userService{
		userRepo:  userRepo,
		songRepo:  songRepo,
		statsRepo: statsRepo,
	}
}

// GetByID lấy người dùng theo ID
func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: người dùng %d", models.ErrNotFound, id)
	}
	return user, nil
}

// UpdateProfile cập nhật tên hiển thị và ảnh đại diện
func (s *userService) UpdateProfile(userID uint, name, avatarURL string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: tên hiển thị trống", models.ErrValidation)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: người dùng %d", models.ErrNotFound, userID)
	}

	user.Name = name
	user.AvatarURL = strings.TrimSpace(avatarURL)
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// MarkSongCompleted ghi nhận bài hát đã học xong và tăng bộ đếm hoàn thành.
// Gọi lặp lại với cùng bài hát không tính thêm lần hoàn thành.
func (s *userService) MarkSongCompleted(userID, songID uint) error {
	if _, err := s.songRepo.FindByID(songID); err != nil {
		return fmt.Errorf("%w: bài hát %d", models.ErrNotFound, songID)
	}

	existing, err := s.userRepo.ListCompletedSongIDs(userID)
	if err != nil {
		return err
	}
	for _, id := range existing {
		if id == songID {
			return nil
		}
	}

	if err := s.userRepo.AddCompletedSong(userID, songID); err != nil {
		return err
	}
	return s.statsRepo.IncrementSongCompletions(songID)
}

// ListCompletedSongIDs lấy danh sách ID bài hát đã học xong
func (s *userService) ListCompletedSongIDs(userID uint) ([]uint, error) {
	return s.userRepo.ListCompletedSongIDs(userID)
}

// AddToPlaylist thêm bài hát vào danh sách phát
func (s *userService) AddToPlaylist(userID, songID uint) error {
	if _, err := s.songRepo.FindByID(songID); err != nil {
		return fmt.Errorf("%w: bài hát %d", models.ErrNotFound, songID)
	}
	return s.userRepo.AddPlaylistItem(userID, songID)
}

// RemoveFromPlaylist xóa bài hát khỏi danh sách phát
func (s *userService) RemoveFromPlaylist(userID, songID uint) error {
	return s.userRepo.RemovePlaylistItem(userID, songID)
}

// ListPlaylist lấy danh sách phát của người dùng
func (s *userService) ListPlaylist(userID uint) ([]models.PlaylistItem, error) {
	return s.userRepo.ListPlaylist(userID)
}

// UpdateScore đặt điểm số mới cho người dùng
func (s *userService) UpdateScore(userID uint, score int) error {
	if score < 0 {
		return fmt.Errorf("%w: điểm số âm", models.ErrValidation)
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return fmt.Errorf("%w: người dùng %d", models.ErrNotFound, userID)
	}
	return s.userRepo.UpdateScore(userID, score)
}

// Leaderboard lấy những người dùng điểm cao nhất
func (s *userService) Leaderboard(limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	return s.userRepo.TopByScore(limit)
}

// ListAll lấy toàn bộ người dùng (trang quản trị)
func (s *userService) ListAll() ([]models.User, error) {
	return s.userRepo.List()
}

// SetRole đổi vai trò người dùng
func (s *userService) SetRole(userID uint, role string) error {
	switch role {
	case models.RoleUser, models.RoleEditor, models.RoleAdmin:
	default:
		return fmt.Errorf("%w: vai trò %q không hợp lệ", models.ErrValidation, role)
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return fmt.Errorf("%w: người dùng %d", models.ErrNotFound, userID)
	}
	return s.userRepo.UpdateRole(userID, role)
}
