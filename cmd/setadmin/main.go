package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/QuanCaViet/quanca_backend/internal/config"
	"github.com/QuanCaViet/quanca_backend/internal/models"
)

// Nâng quyền một người dùng lên admin theo email.
// Cách dùng: setadmin your@email.com
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Cách dùng: setadmin your@email.com")
	}
	email := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nạp cấu hình thất bại: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Kết nối cơ sở dữ liệu thất bại: %v", err)
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Không tìm thấy người dùng với email %s (người dùng cần đăng nhập ít nhất một lần)", email)
		}
		log.Fatalf("Tìm người dùng thất bại: %v", err)
	}

	fmt.Printf("Tìm thấy người dùng: %s (%s), vai trò hiện tại: %s\n", user.Name, user.Email, user.Role)

	if user.Role == models.RoleAdmin {
		fmt.Println("Người dùng đã là admin")
		return
	}

	if err := db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
		log.Fatalf("Cập nhật vai trò thất bại: %v", err)
	}

	fmt.Println("Đã cập nhật người dùng thành admin")
}
