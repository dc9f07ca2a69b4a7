package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/QuanCaViet/quanca_backend/internal/config"
	"github.com/QuanCaViet/quanca_backend/internal/models"
	"github.com/QuanCaViet/quanca_backend/internal/repository"

	"github.com/dgrijalva/jwt-go"
	"gorm.io/gorm"
)

// AuthService xác minh token từ nhà cung cấp xác thực bên ngoài và đồng bộ
// hồ sơ người dùng cục bộ. Đăng ký / đăng nhập / đặt lại mật khẩu do nhà
// cung cấp đảm nhiệm, backend không phát hành token.
type AuthService interface {
	ValidateToken(tokenString string) (*Claims, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

// authService triển khai AuthService
type authService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthService tạo AuthService
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Claims payload của token định danh. Subject là định danh người dùng
// phía nhà cung cấp xác thực.
type Claims struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	jwt.StandardClaims
}

// ValidateToken xác minh chữ ký và hạn của token
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("phương thức ký không được hỗ trợ")
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token không hợp lệ")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, errors.New("token thiếu định danh người dùng")
	}

	return claims, nil
}

// GetUserFromToken xác minh token rồi trả về hồ sơ người dùng cục bộ,
// tạo mới ở lần gặp đầu tiên và cập nhật tên / ảnh đại diện khi thay đổi
func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByAuthUID(claims.Subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = &models.User{
			AuthUID:   claims.Subject,
			Email:     claims.Email,
			Name:      claims.Name,
			AvatarURL: claims.AvatarURL,
			Role:      models.RoleUser,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, fmt.Errorf("không thể tạo hồ sơ người dùng: %v", err)
		}
		return user, nil
	}
	if err != nil {
		return nil, err
	}

	// Đồng bộ thông tin hiển thị khi nhà cung cấp thay đổi
	if (claims.Name != "" && claims.Name != user.Name) ||
		(claims.AvatarURL != "" && claims.AvatarURL != user.AvatarURL) {
		if claims.Name != "" {
			user.Name = claims.Name
		}
		if claims.AvatarURL != "" {
			user.AvatarURL = claims.AvatarURL
		}
		if err := s.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	return user, nil
}
