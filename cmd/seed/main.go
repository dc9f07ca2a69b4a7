package main

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/QuanCaViet/quanca_backend/internal/config"
	"github.com/QuanCaViet/quanca_backend/internal/models"
)

// Khởi tạo dữ liệu mẫu cho môi trường phát triển.
// Bỏ qua khi bảng đã có dữ liệu nên chạy lại nhiều lần vẫn an toàn.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nạp cấu hình thất bại: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Kết nối cơ sở dữ liệu thất bại: %v", err)
	}

	if err := seedCategories(db); err != nil {
		log.Fatalf("Tạo thể loại thất bại: %v", err)
	}
	if err := seedSongs(db); err != nil {
		log.Fatalf("Tạo bài hát thất bại: %v", err)
	}
	if err := seedUsers(db); err != nil {
		log.Fatalf("Tạo người dùng thất bại: %v", err)
	}

	fmt.Println("Hoàn thành khởi tạo dữ liệu mẫu")
}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Thể loại đã tồn tại, bỏ qua")
		return nil
	}

	categories := []models.Category{
		{
			Name:        "Bài hát quân đội",
			Description: "Các bài hát truyền thống quân đội Việt Nam",
		},
		{
			Name:        "Ca khúc cách mạng",
			Description: "Những ca khúc trong thời kỳ kháng chiến",
		},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	fmt.Printf("Đã tạo %d thể loại\n", len(categories))
	return nil
}

func seedSongs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Song{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Bài hát đã tồn tại, bỏ qua")
		return nil
	}

	var category models.Category
	if err := db.Where("name = ?", "Bài hát quân đội").First(&category).Error; err != nil {
		return err
	}

	songs := []models.Song{
		{
			Title:            "Hồn Tráng Sĩ",
			Author:           "Nguyễn Văn A",
			Lyrics:           "Lời bài hát dòng 1\nLời bài hát dòng 2\nLời bài hát dòng 3\nLời bài hát dòng 4",
			VideoKaraoke:     "https://www.youtube.com/embed/xxxxxx",
			VideoPerformance: "https://www.youtube.com/embed/yyyyyy",
			CategoryID:       category.ID,
			Year:             1975,
			Meaning:          "Bài hát ca ngợi tinh thần chiến đấu của người lính Việt Nam.",
		},
		{
			Title:            "Tiến Bước Dưới Quân Kỳ",
			Author:           "Doãn Nho",
			Lyrics:           "Vừng đông đang hửng sáng\nNúi non xanh ngàn trùng xa",
			VideoKaraoke:     "https://www.youtube.com/embed/zzzzzz",
			VideoPerformance: "https://www.youtube.com/embed/wwwwww",
			CategoryID:       category.ID,
			Year:             1958,
			Meaning:          "Hành khúc gắn liền với các buổi duyệt binh của quân đội.",
		},
	}

	for i := range songs {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&songs[i]).Error; err != nil {
				return err
			}
			return tx.Create(&models.SongStats{SongID: songs[i].ID}).Error
		})
		if err != nil {
			return err
		}
	}
	fmt.Printf("Đã tạo %d bài hát\n", len(songs))
	return nil
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Người dùng đã tồn tại, bỏ qua")
		return nil
	}

	users := []models.User{
		{
			AuthUID: "seed-admin",
			Email:   "admin@example.com",
			Name:    "Quản trị viên",
			Role:    models.RoleAdmin,
		},
		{
			AuthUID: "seed-user-1",
			Email:   "hocvien1@example.com",
			Name:    "Học viên 1",
			Role:    models.RoleUser,
		},
		{
			AuthUID: "seed-user-2",
			Email:   "hocvien2@example.com",
			Name:    "Học viên 2",
			Role:    models.RoleUser,
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	fmt.Printf("Đã tạo %d người dùng\n", len(users))
	return nil
}
