package services

import (
	"fmt"
	"strings"

	"github.com/QuanCaViet/quanca_backend/internal/models"
	"github.com/QuanCaViet/quanca_backend/internal/repository"
)

// SongInput dữ liệu tạo / cập nhật bài hát
type SongInput struct {
	Title            string `json:"title" binding:"required"`
	Author           string `json:"author" binding:"required"`
	Lyrics           string `json:"lyrics"`
	VideoKaraoke     string `json:"video_karaoke"`
	VideoPerformance string `json:"video_performance"`
	CategoryID       uint   `json:"category_id" binding:"required"`
	Year             int    `json:"year"`
	Meaning          string `json:"meaning"`
}

// SongService nghiệp vụ bài hát
type SongService interface {
	Create(input SongInput) (*models.Song, error)
	GetByID(id uint) (*models.Song, error)
	Update(id uint, input SongInput) (*models.Song, error)
	Delete(id uint) error
	List(categoryID *uint, search string, page, limit int) ([]models.Song, int64, int, error)
}

// songService triển khai SongService
type songService struct {
	songRepo     repository.SongRepository
	categoryRepo repository.CategoryRepository
	statsRepo    repository.StatsRepository
}

// NewSongService tạo SongService
func NewSongService(
	songRepo repository.SongRepository,
	categoryRepo repository.CategoryRepository,
	statsRepo repository.StatsRepository,
) SongService {
	return &songService{
		songRepo:     songRepo,
		categoryRepo: categoryRepo,
		statsRepo:    statsRepo,
	}
}

func (s *songService) validate(input *SongInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Author = strings.TrimSpace(input.Author)
	if input.Title == "" {
		return fmt.Errorf("%w: thiếu tiêu đề bài hát", models.ErrValidation)
	}
	if input.Author == "" {
		return fmt.Errorf("%w: thiếu tác giả", models.ErrValidation)
	}
	if _, err := s.categoryRepo.FindByID(input.CategoryID); err != nil {
		return fmt.Errorf("%w: thể loại %d", models.ErrNotFound, input.CategoryID)
	}
	return nil
}

// Create tạo bài hát mới, bản ghi thống kê được tạo cùng lúc
func (s *songService) Create(input SongInput) (*models.Song, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	song := &models.Song{
		Title:            input.Title,
		Author:           input.Author,
		Lyrics:           input.Lyrics,
		VideoKaraoke:     input.VideoKaraoke,
		VideoPerformance: input.VideoPerformance,
		CategoryID:       input.CategoryID,
		Year:             input.Year,
		Meaning:          input.Meaning,
	}
	if err := s.songRepo.Create(song); err != nil {
		return nil, err
	}

	return s.songRepo.FindByID(song.ID)
}

// GetByID lấy bài hát kèm thống kê
func (s *songService) GetByID(id uint) (*models.Song, error) {
	song, err := s.songRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: bài hát %d", models.ErrNotFound, id)
	}

	stats, err := s.statsRepo.GetSongStats(id)
	if err == nil {
		song.Stats = stats
	}

	return song, nil
}

// Update cập nhật bài hát
func (s *songService) Update(id uint, input SongInput) (*models.Song, error) {
	song, err := s.songRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: bài hát %d", models.ErrNotFound, id)
	}

	if err := s.validate(&input); err != nil {
		return nil, err
	}

	song.Title = input.Title
	song.Author = input.Author
	song.Lyrics = input.Lyrics
	song.VideoKaraoke = input.VideoKaraoke
	song.VideoPerformance = input.VideoPerformance
	song.CategoryID = input.CategoryID
	song.Year = input.Year
	song.Meaning = input.Meaning

	if err := s.songRepo.Update(song); err != nil {
		return nil, err
	}

	return s.songRepo.FindByID(id)
}

// Delete xóa bài hát cùng thống kê và bình luận của nó
func (s *songService) Delete(id uint) error {
	if _, err := s.songRepo.FindByID(id); err != nil {
		return fmt.Errorf("%w: bài hát %d", models.ErrNotFound, id)
	}
	return s.songRepo.Delete(id)
}

// List lấy danh sách bài hát có phân trang
func (s *songService) List(categoryID *uint, search string, page, limit int) ([]models.Song, int64, int, error) {
	songs, total, err := s.songRepo.List(categoryID, strings.TrimSpace(search), page, limit)
	if err != nil {
		return nil, 0, 0, err
	}

	// Tính tổng số trang
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}

	return songs, total, pages, nil
}
