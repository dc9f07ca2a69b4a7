package models

import (
	"time"
)

// Vai trò người dùng
const (
	RoleUser   = "user"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// Loại thông báo
const (
	NotificationTypeReply = "reply"
	NotificationTypeLike  = "like"
)

// User người dùng (hồ sơ đồng bộ từ nhà cung cấp xác thực bên ngoài)
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	AuthUID    string    `json:"-" gorm:"uniqueIndex;size:128;not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name       string    `json:"name" gorm:"not null"`
	Role       string    `json:"role" gorm:"size:10;default:'user'"`
	AvatarURL  string    `json:"avatar_url"`
	Score      int       `json:"score" gorm:"default:0;index"`
	LastActive time.Time `json:"last_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsAdmin kiểm tra người dùng có quyền quản trị không
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Category thể loại bài hát
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Song bài hát
type Song struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"not null"`
	Author           string    `json:"author" gorm:"not null"`
	Lyrics           string    `json:"lyrics" gorm:"type:text"`
	VideoKaraoke     string    `json:"video_karaoke"`
	VideoPerformance string    `json:"video_performance"`
	CategoryID       uint      `json:"category_id" gorm:"index;not null"`
	Year             int       `json:"year"`
	Meaning          string    `json:"meaning" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Quan hệ
	Category *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Stats    *SongStats `json:"stats,omitempty" gorm:"-"`
}

// SongStats bộ đếm lượt xem / hoàn thành / thích của một bài hát
type SongStats struct {
	SongID      uint      `json:"song_id" gorm:"primaryKey"`
	Views       int       `json:"views" gorm:"default:0"`
	Completions int       `json:"completions" gorm:"default:0"`
	Likes       int       `json:"likes" gorm:"default:0"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DailyStats lượt truy cập theo ngày (khóa dạng yyyy-mm-dd)
type DailyStats struct {
	Date      string    `json:"date" gorm:"primaryKey;size:10"`
	Views     int       `json:"views" gorm:"default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment bình luận của người dùng về một bài hát.
// ParentID nil nghĩa là bình luận gốc; chỉ cho phép một cấp trả lời.
type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SongID     uint      `json:"song_id" gorm:"index;not null"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	ParentID   *uint     `json:"parent_id,omitempty" gorm:"index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	LikesCount int       `json:"likes" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Quan hệ
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`

	// Trạng thái cho người xem hiện tại (không lưu DB)
	Liked bool `json:"liked" gorm:"-"`
}

// CommentThread bình luận gốc kèm các trả lời của nó, dùng cho hiển thị
type CommentThread struct {
	Comment
	Replies []Comment `json:"replies"`
}

// CommentLike một lượt thích của một người dùng trên một bình luận
type CommentLike struct {
	CommentID uint      `json:"comment_id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// Notification thông báo sinh ra từ lượt trả lời hoặc lượt thích.
// Read chỉ chuyển từ false sang true, không bao giờ ngược lại.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Type      string    `json:"type" gorm:"size:10;not null"`
	SongID    uint      `json:"song_id" gorm:"not null"`
	CommentID uint      `json:"comment_id" gorm:"not null"`
	ActorID   uint      `json:"actor_id" gorm:"not null"`
	Preview   string    `json:"preview" gorm:"size:400"`
	Read      bool      `json:"read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`

	// Quan hệ
	Actor *User `json:"actor,omitempty" gorm:"foreignKey:ActorID"`
}

// PlaylistItem một bài hát trong danh sách phát của người dùng
type PlaylistItem struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	SongID    uint      `json:"song_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

// CompletedSong một bài hát người dùng đã học xong
type CompletedSong struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	SongID    uint      `json:"song_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
