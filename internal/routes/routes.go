package routes

import (
	"log"

	"github.com/QuanCaViet/quanca_backend/internal/config"
	"github.com/QuanCaViet/quanca_backend/internal/controllers"
	"github.com/QuanCaViet/quanca_backend/internal/middlewares"
	"github.com/QuanCaViet/quanca_backend/internal/repository"
	"github.com/QuanCaViet/quanca_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter cấu hình router
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Middleware chung
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// Repository
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	songRepo := repository.NewSongRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Cloudinary
	cloudinaryService, err := services.NewCloudinaryService(cfg)
	if err != nil {
		log.Fatalf("Khởi tạo Cloudinary thất bại: %v", err)
	}

	// Service
	authService := services.NewAuthService(userRepo, cfg)
	categoryService := services.NewCategoryService(categoryRepo)
	songService := services.NewSongService(songRepo, categoryRepo, statsRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	commentService := services.NewCommentService(commentRepo, songRepo, notificationService)
	userService := services.NewUserService(userRepo, songRepo, statsRepo)
	statsService := services.NewStatsService(statsRepo)

	// Controller
	healthController := controllers.NewHealthController()
	categoryController := controllers.NewCategoryController(categoryService)
	songController := controllers.NewSongController(songService, statsService)
	commentController := controllers.NewCommentController(commentService)
	notificationController := controllers.NewNotificationController(notificationService)
	userController := controllers.NewUserController(userService)
	statsController := controllers.NewStatsController(statsService)
	uploadController := controllers.NewUploadController(cloudinaryService)

	// Middleware xác thực
	authMiddleware := middlewares.AuthMiddleware(authService)
	optionalAuthMiddleware := middlewares.OptionalAuthMiddleware(authService)
	adminMiddleware := middlewares.AdminMiddleware()

	api := r.Group("/api/v1")
	{
		// Không cần xác thực
		api.GET("/health", healthController.Check)
		api.POST("/pageview", statsController.RecordPageView)
		api.GET("/leaderboard", userController.Leaderboard)

		// Thể loại
		categories := api.Group("/categories")
		{
			categories.GET("", categoryController.List)
			categories.GET("/:id", categoryController.GetByID)
			categories.POST("", authMiddleware, adminMiddleware, categoryController.Create)
			categories.PUT("/:id", authMiddleware, adminMiddleware, categoryController.Update)
			categories.DELETE("/:id", authMiddleware, adminMiddleware, categoryController.Delete)
		}

		// Bài hát
		songs := api.Group("/songs")
		{
			songs.GET("", songController.List)
			songs.GET("/:id", songController.GetByID)

			// Bình luận của bài hát
			songs.GET("/:id/comments", optionalAuthMiddleware, commentController.List)
			songs.POST("/:id/comments", authMiddleware, commentController.Create)

			// Tiến độ học và danh sách phát
			songs.POST("/:id/complete", authMiddleware, userController.MarkCompleted)
			songs.POST("/:id/playlist", authMiddleware, userController.AddToPlaylist)
			songs.DELETE("/:id/playlist", authMiddleware, userController.RemoveFromPlaylist)

			// Quản trị
			songs.POST("", authMiddleware, adminMiddleware, songController.Create)
			songs.PUT("/:id", authMiddleware, adminMiddleware, songController.Update)
			songs.DELETE("/:id", authMiddleware, adminMiddleware, songController.Delete)
		}

		// Bình luận
		comments := api.Group("/comments")
		{
			comments.PUT("/:id", authMiddleware, commentController.Update)
			comments.DELETE("/:id", authMiddleware, commentController.Delete)
			comments.POST("/:id/like", authMiddleware, commentController.ToggleLike)
		}

		// Thông báo
		notifications := api.Group("/notifications")
		notifications.Use(authMiddleware)
		{
			notifications.GET("", notificationController.List)
			notifications.GET("/unread-count", notificationController.UnreadCount)
			notifications.POST("/:id/read", notificationController.MarkRead)
			notifications.POST("/read-all", notificationController.MarkAllRead)
		}

		// Người dùng
		users := api.Group("/users")
		{
			users.GET("/me", authMiddleware, userController.GetMe)
			users.PUT("/profile", authMiddleware, userController.UpdateProfile)
			users.PUT("/score", authMiddleware, userController.UpdateScore)
			users.GET("/completed", authMiddleware, userController.ListCompleted)
			users.GET("/playlist", authMiddleware, userController.ListPlaylist)

			// Quản trị
			users.GET("", authMiddleware, adminMiddleware, userController.ListAll)
			users.PUT("/:id/role", authMiddleware, adminMiddleware, userController.SetRole)
		}

		// Tải ảnh
		api.POST("/uploads/avatar", authMiddleware, uploadController.UploadAvatar)

		// Thống kê (quản trị)
		api.GET("/stats/traffic", authMiddleware, adminMiddleware, statsController.GetTraffic)
	}

	return r
}
