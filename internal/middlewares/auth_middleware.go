package middlewares

import (
	"net/http"
	"strings"

	"github.com/QuanCaViet/quanca_backend/internal/models"
	"github.com/QuanCaViet/quanca_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware middleware xác thực, yêu cầu token hợp lệ
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
			ctx.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "định dạng xác thực không hợp lệ"})
			ctx.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "token không hợp lệ"})
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

// OptionalAuthMiddleware middleware xác thực tùy chọn, không chặn khách
func OptionalAuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			ctx.Next()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

// AdminMiddleware middleware yêu cầu quyền quản trị, dùng sau AuthMiddleware
func AdminMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get("user")
		if !exists {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "cần đăng nhập"})
			ctx.Abort()
			return
		}

		u := user.(*models.User)
		if !u.IsAdmin() {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "cần quyền quản trị"})
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
