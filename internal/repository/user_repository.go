package repository

import (
	"time"

	"github.com/QuanCaViet/quanca_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository interface thao tác cơ sở dữ liệu cho người dùng
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByAuthUID(authUID string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	List() ([]models.User, error)
	UpdateRole(userID uint, role string) error
	UpdateScore(userID uint, score int) error
	TopByScore(limit int) ([]models.User, error)
	AddCompletedSong(userID, songID uint) error
	ListCompletedSongIDs(userID uint) ([]uint, error)
	AddPlaylistItem(userID, songID uint) error
	RemovePlaylistItem(userID, songID uint) error
	ListPlaylist(userID uint) ([]models.PlaylistItem, error)
}

// userRepository triển khai UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository tạo UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create tạo người dùng mới
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID tìm người dùng theo ID
func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByAuthUID tìm người dùng theo định danh của nhà cung cấp xác thực
func (r *userRepository) FindByAuthUID(authUID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("auth_uid = ?", authUID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail tìm người dùng theo email
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update cập nhật người dùng
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// List lấy toàn bộ người dùng (dành cho trang quản trị)
func (r *userRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole đổi vai trò người dùng
func (r *userRepository) UpdateRole(userID uint, role string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("role", role).Error
}

// UpdateScore đặt điểm số mới và cập nhật thời điểm hoạt động cuối
func (r *userRepository) UpdateScore(userID uint, score int) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"score":       score,
			"last_active": time.Now(),
		}).Error
}

// TopByScore lấy những người dùng điểm cao nhất cho bảng xếp hạng
func (r *userRepository) TopByScore(limit int) ([]models.User, error) {
	var users []models.User
	if err := r.db.
		Order("score DESC, last_active DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddCompletedSong ghi nhận bài hát đã học xong, gọi lại nhiều lần không tạo bản ghi trùng
func (r *userRepository) AddCompletedSong(userID, songID uint) error {
	completed := models.CompletedSong{UserID: userID, SongID: songID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&completed).Error
}

// ListCompletedSongIDs lấy danh sách ID bài hát đã học xong
func (r *userRepository) ListCompletedSongIDs(userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&models.CompletedSong{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("song_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// AddPlaylistItem thêm bài hát vào danh sách phát, bỏ qua nếu đã có
func (r *userRepository) AddPlaylistItem(userID, songID uint) error {
	item := models.PlaylistItem{UserID: userID, SongID: songID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error
}

// RemovePlaylistItem xóa bài hát khỏi danh sách phát
func (r *userRepository) RemovePlaylistItem(userID, songID uint) error {
	return r.db.Where("user_id = ? AND song_id = ?", userID, songID).
		Delete(&models.PlaylistItem{}).Error
}

// ListPlaylist lấy danh sách phát của người dùng theo thứ tự thêm vào
func (r *userRepository) ListPlaylist(userID uint) ([]models.PlaylistItem, error) {
	var items []models.PlaylistItem
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
