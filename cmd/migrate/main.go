package main

import (
	"fmt"
	"log"
	"os"

	"github.com/QuanCaViet/quanca_backend/internal/config"
	"github.com/QuanCaViet/quanca_backend/internal/models"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Cách dùng: migrate [up|down]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nạp cấu hình thất bại: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Kết nối cơ sở dữ liệu thất bại: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "up":
		err = db.AutoMigrate(
			&models.User{},
			&models.Category{},
			&models.Song{},
			&models.SongStats{},
			&models.DailyStats{},
			&models.Comment{},
			&models.CommentLike{},
			&models.Notification{},
			&models.PlaylistItem{},
			&models.CompletedSong{},
		)
		if err != nil {
			log.Fatalf("Migration thất bại: %v", err)
		}
		fmt.Println("Migration thành công")

	case "down":
		err = db.Migrator().DropTable(
			&models.CompletedSong{},
			&models.PlaylistItem{},
			&models.Notification{},
			&models.CommentLike{},
			&models.Comment{},
			&models.DailyStats{},
			&models.SongStats{},
			&models.Song{},
			&models.Category{},
			&models.User{},
		)
		if err != nil {
			log.Fatalf("Xóa bảng thất bại: %v", err)
		}
		fmt.Println("Đã xóa toàn bộ bảng")

	default:
		log.Fatalf("Lệnh không xác định: %s", command)
	}
}
