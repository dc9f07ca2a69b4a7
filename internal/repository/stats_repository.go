package repository

import (
	"errors"

	"github.com/QuanCaViet/quanca_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatsRepository interface thao tác cơ sở dữ liệu cho thống kê
type StatsRepository interface {
	GetSongStats(songID uint) (*models.SongStats, error)
	IncrementSongViews(songID uint) error
	IncrementSongCompletions(songID uint) error
	IncrementSongLikes(songID uint) error
	IncrementDailyViews(date string) error
	GetDaily(date string) (*models.DailyStats, error)
	ListDaily(days int) ([]models.DailyStats, error)
	TotalViews() (int64, error)
}

// statsRepository triển khai StatsRepository
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository tạo StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// GetSongStats lấy thống kê của bài hát, tạo bản ghi mặc định nếu chưa có
func (r *statsRepository) GetSongStats(songID uint) (*models.SongStats, error) {
	var stats models.SongStats
	err := r.db.First(&stats, "song_id = ?", songID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stats = models.SongStats{SongID: songID}
		if err := r.db.Create(&stats).Error; err != nil {
			return nil, err
		}
		return &stats, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) incrementSongColumn(songID uint, column string) error {
	result := r.db.Model(&models.SongStats{}).
		Where("song_id = ?", songID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Chưa có bản ghi thống kê, tạo mới rồi tăng
		if _, err := r.GetSongStats(songID); err != nil {
			return err
		}
		return r.db.Model(&models.SongStats{}).
			Where("song_id = ?", songID).
			UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error
	}
	return nil
}

// IncrementSongViews tăng lượt xem bài hát
func (r *statsRepository) IncrementSongViews(songID uint) error {
	return r.incrementSongColumn(songID, "views")
}

// IncrementSongCompletions tăng lượt hoàn thành bài hát
func (r *statsRepository) IncrementSongCompletions(songID uint) error {
	return r.incrementSongColumn(songID, "completions")
}

// IncrementSongLikes tăng lượt thích bài hát
func (r *statsRepository) IncrementSongLikes(songID uint) error {
	return r.incrementSongColumn(songID, "likes")
}

// IncrementDailyViews tăng lượt truy cập của một ngày, tạo bản ghi nếu chưa có
func (r *statsRepository) IncrementDailyViews(date string) error {
	daily := models.DailyStats{Date: date, Views: 1}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"views": gorm.Expr("views + ?", 1)}),
	}).Create(&daily).Error
}

// GetDaily lấy thống kê của một ngày
func (r *statsRepository) GetDaily(date string) (*models.DailyStats, error) {
	var daily models.DailyStats
	if err := r.db.First(&daily, "date = ?", date).Error; err != nil {
		return nil, err
	}
	return &daily, nil
}

// ListDaily lấy thống kê của N ngày gần nhất, xếp tăng dần theo ngày
func (r *statsRepository) ListDaily(days int) ([]models.DailyStats, error) {
	var stats []models.DailyStats
	if err := r.db.
		Order("date DESC").
		Limit(days).
		Find(&stats).Error; err != nil {
		return nil, err
	}
	// Đảo lại để trả về tăng dần theo ngày cho biểu đồ
	for i, j := 0, len(stats)-1; i < j; i, j = i+1, j-1 {
		stats[i], stats[j] = stats[j], stats[i]
	}
	return stats, nil
}

// TotalViews tổng lượt truy cập của tất cả các ngày
func (r *statsRepository) TotalViews() (int64, error) {
	var total int64
	err := r.db.Model(&models.DailyStats{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
