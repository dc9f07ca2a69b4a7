package services

import (
	"sort"
	"time"

	"github.com/QuanCaViet/quanca_backend/internal/models"

	"gorm.io/gorm"
)

// Các repository giả trong bộ nhớ dùng cho test tầng service

type likeKey struct {
	commentID uint
	userID    uint
}

type fakeCommentRepo struct {
	comments map[uint]*models.Comment
	order    []uint
	likes    map[likeKey]bool
	nextID   uint
	err      error
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments: make(map[uint]*models.Comment),
		likes:    make(map[likeKey]bool),
	}
}

func (r *fakeCommentRepo) Create(comment *models.Comment) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	comment.ID = r.nextID
	comment.CreatedAt = time.Now()
	stored := *comment
	r.comments[comment.ID] = &stored
	r.order = append(r.order, comment.ID)
	return nil
}

func (r *fakeCommentRepo) FindByID(id uint) (*models.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *c
	return &found, nil
}

func (r *fakeCommentRepo) Update(comment *models.Comment) error {
	if _, ok := r.comments[comment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *comment
	r.comments[comment.ID] = &stored
	return nil
}

func (r *fakeCommentRepo) DeleteWithReplies(id uint) error {
	ids := []uint{id}
	for _, c := range r.comments {
		if c.ParentID != nil && *c.ParentID == id {
			ids = append(ids, c.ID)
		}
	}
	for _, cid := range ids {
		delete(r.comments, cid)
		for key := range r.likes {
			if key.commentID == cid {
				delete(r.likes, key)
			}
		}
	}
	remaining := r.order[:0]
	for _, oid := range r.order {
		if _, ok := r.comments[oid]; ok {
			remaining = append(remaining, oid)
		}
	}
	r.order = remaining
	return nil
}

// ListBySong trả về bình luận của bài hát, mới nhất trước như repository thật
func (r *fakeCommentRepo) ListBySong(songID uint) ([]models.Comment, error) {
	var result []models.Comment
	for i := len(r.order) - 1; i >= 0; i-- {
		c := r.comments[r.order[i]]
		if c.SongID == songID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (r *fakeCommentRepo) HasLiked(commentID, userID uint) (bool, error) {
	return r.likes[likeKey{commentID, userID}], nil
}

func (r *fakeCommentRepo) AddLike(commentID, userID uint) (int, error) {
	c, ok := r.comments[commentID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	r.likes[likeKey{commentID, userID}] = true
	c.LikesCount++
	return c.LikesCount, nil
}

func (r *fakeCommentRepo) RemoveLike(commentID, userID uint) (int, error) {
	c, ok := r.comments[commentID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	key := likeKey{commentID, userID}
	if r.likes[key] {
		delete(r.likes, key)
		if c.LikesCount > 0 {
			c.LikesCount--
		}
	}
	return c.LikesCount, nil
}

func (r *fakeCommentRepo) ListLikedIDs(songID, userID uint) ([]uint, error) {
	var ids []uint
	for key := range r.likes {
		if key.userID != userID {
			continue
		}
		if c, ok := r.comments[key.commentID]; ok && c.SongID == songID {
			ids = append(ids, key.commentID)
		}
	}
	return ids, nil
}

// seed chèn thẳng một bình luận, bỏ qua service
func (r *fakeCommentRepo) seed(c models.Comment) uint {
	r.nextID++
	c.ID = r.nextID
	r.comments[c.ID] = &c
	r.order = append(r.order, c.ID)
	return c.ID
}

type fakeSongRepo struct {
	songs map[uint]*models.Song
}

func newFakeSongRepo(ids ...uint) *fakeSongRepo {
	r := &fakeSongRepo{songs: make(map[uint]*models.Song)}
	for _, id := range ids {
		r.songs[id] = &models.Song{ID: id, Title: "Bài hát", Author: "Tác giả", CategoryID: 1}
	}
	return r
}

func (r *fakeSongRepo) Create(song *models.Song) error {
	song.ID = uint(len(r.songs) + 1)
	r.songs[song.ID] = song
	return nil
}

func (r *fakeSongRepo) FindByID(id uint) (*models.Song, error) {
	s, ok := r.songs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeSongRepo) Update(song *models.Song) error {
	r.songs[song.ID] = song
	return nil
}

func (r *fakeSongRepo) Delete(id uint) error {
	delete(r.songs, id)
	return nil
}

func (r *fakeSongRepo) List(categoryID *uint, search string, page, limit int) ([]models.Song, int64, error) {
	var result []models.Song
	for _, s := range r.songs {
		result = append(result, *s)
	}
	return result, int64(len(result)), nil
}

type fakeCategoryRepo struct {
	categories map[uint]*models.Category
	nextID     uint
}

func newFakeCategoryRepo(ids ...uint) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[uint]*models.Category)}
	for _, id := range ids {
		r.categories[id] = &models.Category{ID: id, Name: "Thể loại"}
		if id > r.nextID {
			r.nextID = id
		}
	}
	return r
}

func (r *fakeCategoryRepo) Create(category *models.Category) error {
	r.nextID++
	category.ID = r.nextID
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *fakeCategoryRepo) FindByID(id uint) (*models.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *c
	return &found, nil
}

func (r *fakeCategoryRepo) Update(category *models.Category) error {
	stored := *category
	r.categories[category.ID] = &stored
	return nil
}

func (r *fakeCategoryRepo) Delete(id uint) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) List() ([]models.Category, error) {
	var result []models.Category
	for _, c := range r.categories {
		result = append(result, *c)
	}
	return result, nil
}

type fakeNotificationRepo struct {
	notifications []*models.Notification
	nextID        uint
	createErr     error
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	notification.ID = r.nextID
	notification.CreatedAt = time.Now()
	stored := *notification
	r.notifications = append(r.notifications, &stored)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(userID uint, limit int) ([]models.Notification, error) {
	var result []models.Notification
	for i := len(r.notifications) - 1; i >= 0 && len(result) < limit; i-- {
		if r.notifications[i].UserID == userID {
			result = append(result, *r.notifications[i])
		}
	}
	return result, nil
}

func (r *fakeNotificationRepo) MarkRead(id, userID uint) error {
	for _, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeNotificationRepo) MarkAllRead(userID uint) error {
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) CountUnread(userID uint) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

// forUser lọc thông báo của một người dùng theo thứ tự tạo
func (r *fakeNotificationRepo) forUser(userID uint) []*models.Notification {
	var result []*models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	return result
}

type progressKey struct {
	userID uint
	songID uint
}

type fakeUserRepo struct {
	users     map[uint]*models.User
	completed map[progressKey]bool
	playlist  []models.PlaylistItem
	nextID    uint
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{
		users:     make(map[uint]*models.User),
		completed: make(map[progressKey]bool),
	}
	for _, u := range users {
		if u.ID == 0 {
			r.nextID++
			u.ID = r.nextID
		} else if u.ID > r.nextID {
			r.nextID = u.ID
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *u
	return &found, nil
}

func (r *fakeUserRepo) FindByAuthUID(authUID string) (*models.User, error) {
	for _, u := range r.users {
		if u.AuthUID == authUID {
			found := *u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) List() ([]models.User, error) {
	var result []models.User
	for _, u := range r.users {
		result = append(result, *u)
	}
	return result, nil
}

func (r *fakeUserRepo) UpdateRole(userID uint, role string) error {
	u, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) UpdateScore(userID uint, score int) error {
	u, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Score = score
	u.LastActive = time.Now()
	return nil
}

func (r *fakeUserRepo) TopByScore(limit int) ([]models.User, error) {
	var result []models.User
	for _, u := range r.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].LastActive.After(result[j].LastActive)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeUserRepo) AddCompletedSong(userID, songID uint) error {
	r.completed[progressKey{userID, songID}] = true
	return nil
}

func (r *fakeUserRepo) ListCompletedSongIDs(userID uint) ([]uint, error) {
	var ids []uint
	for key := range r.completed {
		if key.userID == userID {
			ids = append(ids, key.songID)
		}
	}
	return ids, nil
}

func (r *fakeUserRepo) AddPlaylistItem(userID, songID uint) error {
	for _, item := range r.playlist {
		if item.UserID == userID && item.SongID == songID {
			return nil
		}
	}
	r.playlist = append(r.playlist, models.PlaylistItem{UserID: userID, SongID: songID})
	return nil
}

func (r *fakeUserRepo) RemovePlaylistItem(userID, songID uint) error {
	remaining := r.playlist[:0]
	for _, item := range r.playlist {
		if item.UserID != userID || item.SongID != songID {
			remaining = append(remaining, item)
		}
	}
	r.playlist = remaining
	return nil
}

func (r *fakeUserRepo) ListPlaylist(userID uint) ([]models.PlaylistItem, error) {
	var result []models.PlaylistItem
	for _, item := range r.playlist {
		if item.UserID == userID {
			result = append(result, item)
		}
	}
	return result, nil
}

type fakeStatsRepo struct {
	songStats map[uint]*models.SongStats
	daily     map[string]*models.DailyStats
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{
		songStats: make(map[uint]*models.SongStats),
		daily:     make(map[string]*models.DailyStats),
	}
}

func (r *fakeStatsRepo) GetSongStats(songID uint) (*models.SongStats, error) {
	s, ok := r.songStats[songID]
	if !ok {
		return &models.SongStats{SongID: songID}, nil
	}
	found := *s
	return &found, nil
}

func (r *fakeStatsRepo) increment(songID uint, apply func(*models.SongStats)) error {
	s, ok := r.songStats[songID]
	if !ok {
		s = &models.SongStats{SongID: songID}
		r.songStats[songID] = s
	}
	apply(s)
	return nil
}

func (r *fakeStatsRepo) IncrementSongViews(songID uint) error {
	return r.increment(songID, func(s *models.SongStats) { s.Views++ })
}

func (r *fakeStatsRepo) IncrementSongCompletions(songID uint) error {
	return r.increment(songID, func(s *models.SongStats) { s.Completions++ })
}

func (r *fakeStatsRepo) IncrementSongLikes(songID uint) error {
	return r.increment(songID, func(s *models.SongStats) { s.Likes++ })
}

func (r *fakeStatsRepo) IncrementDailyViews(date string) error {
	d, ok := r.daily[date]
	if !ok {
		d = &models.DailyStats{Date: date}
		r.daily[date] = d
	}
	d.Views++
	return nil
}

func (r *fakeStatsRepo) GetDaily(date string) (*models.DailyStats, error) {
	d, ok := r.daily[date]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *d
	return &found, nil
}

func (r *fakeStatsRepo) ListDaily(days int) ([]models.DailyStats, error) {
	var result []models.DailyStats
	for _, d := range r.daily {
		result = append(result, *d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	if len(result) > days {
		result = result[len(result)-days:]
	}
	return result, nil
}

func (r *fakeStatsRepo) TotalViews() (int64, error) {
	var total int64
	for _, d := range r.daily {
		total += int64(d.Views)
	}
	return total, nil
}
