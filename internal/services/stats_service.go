package services

import (
	"errors"
	"time"

	"github.com/QuanCaViet/quanca_backend/internal/models"
	"github.com/QuanCaViet/quanca_backend/internal/repository"

	"gorm.io/gorm"
)

// Số ngày mặc định cho biểu đồ truy cập
const defaultTrafficDays = 30

// TrafficStats số liệu truy cập cho trang thống kê quản trị
type TrafficStats struct {
	TodayViews int                 `json:"today_views"`
	TotalViews int64               `json:"total_views"`
	DailyData  []models.DailyStats `json:"daily_data"`
}

// StatsService nghiệp vụ thống kê: bộ đếm theo bài hát và lượt truy cập
// theo ngày
type StatsService interface {
	RecordPageView() error
	RecordSongView(songID uint) error
	GetSongStats(songID uint) (*models.SongStats, error)
	GetTraffic(days int) (*TrafficStats, error)
}

// statsService triển khai StatsService
type statsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService tạo StatsService
func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// RecordPageView ghi nhận một lượt truy cập trang cho ngày hôm nay
func (s *statsService) RecordPageView() error {
	return s.statsRepo.IncrementDailyViews(today())
}

// RecordSongView ghi nhận một lượt xem bài hát
func (s *statsService) RecordSongView(songID uint) error {
	return s.statsRepo.IncrementSongViews(songID)
}

// GetSongStats lấy thống kê của một bài hát
func (s *statsService) GetSongStats(songID uint) (*models.SongStats, error) {
	return s.statsRepo.GetSongStats(songID)
}

// GetTraffic lấy số liệu truy cập: hôm nay, tổng và N ngày gần nhất
func (s *statsService) GetTraffic(days int) (*TrafficStats, error) {
	if days <= 0 {
		days = defaultTrafficDays
	}

	stats := &TrafficStats{}

	daily, err := s.statsRepo.GetDaily(today())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if daily != nil {
		stats.TodayViews = daily.Views
	}

	total, err := s.statsRepo.TotalViews()
	if err != nil {
		return nil, err
	}
	stats.TotalViews = total

	data, err := s.statsRepo.ListDaily(days)
	if err != nil {
		return nil, err
	}
	stats.DailyData = data

	return stats, nil
}
