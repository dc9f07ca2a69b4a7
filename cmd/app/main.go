package main

import (
	"log"
	"os"

	"github.com/QuanCaViet/quanca_backend/internal/config"
	"github.com/QuanCaViet/quanca_backend/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Đang khởi động máy chủ...")

	// Nạp cấu hình
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nạp cấu hình thất bại: %v", err)
	}

	// Chế độ Gin (mặc định debug nếu không đặt biến môi trường)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Kết nối cơ sở dữ liệu
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Kết nối cơ sở dữ liệu thất bại: %v", err)
	}

	// Cấu hình router
	router := routes.SetupRouter(cfg, db)

	log.Printf("Máy chủ lắng nghe trên cổng %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Khởi động máy chủ thất bại: %v", err)
	}
}
