package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/QuanCaViet/quanca_backend/internal/models"
)

func newCommentFixture(songIDs ...uint) (*fakeCommentRepo, *fakeNotificationRepo, CommentService) {
	commentRepo := newFakeCommentRepo()
	notificationRepo := &fakeNotificationRepo{}
	svc := NewCommentService(commentRepo, newFakeSongRepo(songIDs...), NewNotificationService(notificationRepo))
	return commentRepo, notificationRepo, svc
}

func testUser(id uint, name string) *models.User {
	return &models.User{ID: id, Name: name, Email: name + "@example.com", Role: models.RoleUser}
}

func TestCreateComment(t *testing.T) {
	_, _, svc := newCommentFixture(1)

	comment, err := svc.Create(1, testUser(1, "An"), "  Bài hát rất hay  ", nil)
	if err != nil {
		t.Fatalf("tạo bình luận thất bại: %v", err)
	}
	if comment.ID == 0 {
		t.Error("bình luận chưa được gán ID")
	}
	if comment.Content != "Bài hát rất hay" {
		t.Errorf("nội dung chưa được trim: %q", comment.Content)
	}
	if comment.ParentID != nil {
		t.Error("bình luận gốc không được có ParentID")
	}
}

func TestCreateCommentValidation(t *testing.T) {
	_, _, svc := newCommentFixture(1)

	cases := []struct {
		name    string
		songID  uint
		author  *models.User
		content string
		want    error
	}{
		{"thiếu tác giả", 1, nil, "nội dung", models.ErrValidation},
		{"tác giả không tên", 1, &models.User{ID: 2}, "nội dung", models.ErrValidation},
		{"thiếu bài hát", 0, testUser(1, "An"), "nội dung", models.ErrValidation},
		{"nội dung trống", 1, testUser(1, "An"), "   ", models.ErrValidation},
		{"bài hát không tồn tại", 99, testUser(1, "An"), "nội dung", models.ErrNotFound},
	}

	for _, tc := range cases {
		_, err := svc.Create(tc.songID, tc.author, tc.content, nil)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: muốn %v, nhận %v", tc.name, tc.want, err)
		}
	}
}

func TestCreateCommentSanitizesHTML(t *testing.T) {
	_, _, svc := newCommentFixture(1)

	comment, err := svc.Create(1, testUser(1, "An"), "<b>xin chào</b><script>alert(1)</script>", nil)
	if err != nil {
		t.Fatalf("tạo bình luận thất bại: %v", err)
	}
	if strings.Contains(comment.Content, "<") {
		t.Errorf("nội dung còn thẻ HTML: %q", comment.Content)
	}
	if !strings.Contains(comment.Content, "xin chào") {
		t.Errorf("nội dung văn bản bị mất: %q", comment.Content)
	}
}

func TestCreateReplyNotifiesParentAuthor(t *testing.T) {
	_, notificationRepo, svc := newCommentFixture(1)

	parent, err := svc.Create(1, testUser(1, "An"), "Bình luận gốc", nil)
	if err != nil {
		t.Fatalf("tạo bình luận gốc thất bại: %v", err)
	}

	reply, err := svc.Create(1, testUser(2, "Bình"), "Đồng ý với bạn", &parent.ID)
	if err != nil {
		t.Fatalf("tạo trả lời thất bại: %v", err)
	}
	if reply.ParentID == nil || *reply.ParentID != parent.ID {
		t.Fatal("trả lời không trỏ tới bình luận cha")
	}

	got := notificationRepo.forUser(1)
	if len(got) != 1 {
		t.Fatalf("muốn 1 thông báo cho tác giả gốc, nhận %d", len(got))
	}
	n := got[0]
	if n.Type != models.NotificationTypeReply {
		t.Errorf("loại thông báo: muốn %q, nhận %q", models.NotificationTypeReply, n.Type)
	}
	if n.ActorID != 2 || n.SongID != 1 || n.CommentID != parent.ID {
		t.Errorf("thông báo sai tham chiếu: %+v", n)
	}
	if n.Preview != "Đồng ý với bạn" {
		t.Errorf("đoạn trích: muốn nội dung trả lời, nhận %q", n.Preview)
	}
}

func TestCreateSelfReplyNoNotification(t *testing.T) {
	_, notificationRepo, svc := newCommentFixture(1)

	author := testUser(1, "An")
	parent, err := svc.Create(1, author, "Bình luận gốc", nil)
	if err != nil {
		t.Fatalf("tạo bình luận gốc thất bại: %v", err)
	}
	if _, err := svc.Create(1, author, "Bổ sung thêm", &parent.ID); err != nil {
		t.Fatalf("tự trả lời thất bại: %v", err)
	}

	if len(notificationRepo.notifications) != 0 {
		t.Errorf("tự trả lời không được tạo thông báo, nhận %d", len(notificationRepo.notifications))
	}
}

func TestCreateReplyInvalidParent(t *testing.T) {
	commentRepo, _, svc := newCommentFixture(1, 2)

	parent, err := svc.Create(1, testUser(1, "An"), "Bình luận gốc", nil)
	if err != nil {
		t.Fatalf("tạo bình luận gốc thất bại: %v", err)
	}
	reply, err := svc.Create(1, testUser(2, "Bình"), "Trả lời", &parent.ID)
	if err != nil {
		t.Fatalf("tạo trả lời thất bại: %v", err)
	}

	before := len(commentRepo.comments)

	// Trả lời một trả lời
	if _, err := svc.Create(1, testUser(3, "Cường"), "Trả lời cấp hai", &reply.ID); !errors.Is(err, models.ErrInvalidParent) {
		t.Errorf("trả lời cấp hai: muốn ErrInvalidParent, nhận %v", err)
	}

	// Cha không tồn tại
	missing := uint(999)
	if _, err := svc.Create(1, testUser(3, "Cường"), "Trả lời", &missing); !errors.Is(err, models.ErrInvalidParent) {
		t.Errorf("cha không tồn tại: muốn ErrInvalidParent, nhận %v", err)
	}

	// Cha thuộc bài hát khác
	if _, err := svc.Create(2, testUser(3, "Cường"), "Trả lời", &parent.ID); !errors.Is(err, models.ErrInvalidParent) {
		t.Errorf("cha khác bài hát: muốn ErrInvalidParent, nhận %v", err)
	}

	if len(commentRepo.comments) != before {
		t.Error("bình luận bị từ chối vẫn được lưu")
	}
}

func TestCreateCommentNotificationFailureIgnored(t *testing.T) {
	commentRepo := newFakeCommentRepo()
	notificationRepo := &fakeNotificationRepo{createErr: errors.New("mất kết nối")}
	svc := NewCommentService(commentRepo, newFakeSongRepo(1), NewNotificationService(notificationRepo))

	parent, err := svc.Create(1, testUser(1, "An"), "Bình luận gốc", nil)
	if err != nil {
		t.Fatalf("tạo bình luận gốc thất bại: %v", err)
	}

	reply, err := svc.Create(1, testUser(2, "Bình"), "Trả lời", &parent.ID)
	if err != nil {
		t.Fatalf("lỗi thông báo không được chặn việc tạo trả lời: %v", err)
	}
	if _, found := commentRepo.comments[reply.ID]; !found {
		t.Error("trả lời không được lưu")
	}
}

func TestListThreadBySong(t *testing.T) {
	commentRepo, _, svc := newCommentFixture(1)

	first, _ := svc.Create(1, testUser(1, "An"), "Bình luận đầu", nil)
	second, _ := svc.Create(1, testUser(2, "Bình"), "Bình luận sau", nil)
	if _, err := svc.Create(1, testUser(2, "Bình"), "Trả lời đầu", &first.ID); err != nil {
		t.Fatalf("tạo trả lời thất bại: %v", err)
	}

	// Trả lời có cha không còn trong danh sách phải bị loại khỏi cây
	missing := uint(999)
	commentRepo.seed(models.Comment{SongID: 1, UserID: 3, ParentID: &missing, Content: "Mồ côi"})

	threads, err := svc.ListThreadBySong(1, 0)
	if err != nil {
		t.Fatalf("lấy cây bình luận thất bại: %v", err)
	}
	if len(threads) != 2 {
		t.Fatalf("muốn 2 bình luận gốc, nhận %d", len(threads))
	}

	// Mới nhất trước
	if threads[0].ID != second.ID || threads[1].ID != first.ID {
		t.Errorf("sai thứ tự bình luận gốc: %d, %d", threads[0].ID, threads[1].ID)
	}
	if len(threads[1].Replies) != 1 || threads[1].Replies[0].Content != "Trả lời đầu" {
		t.Errorf("trả lời không nằm dưới bình luận cha: %+v", threads[1].Replies)
	}
	if len(threads[0].Replies) != 0 {
		t.Errorf("bình luận không có trả lời phải có Replies rỗng, nhận %d", len(threads[0].Replies))
	}
	for _, th := range threads {
		for _, reply := range th.Replies {
			if reply.Content == "Mồ côi" {
				t.Error("trả lời mồ côi vẫn xuất hiện trong cây")
			}
		}
	}
}

func TestListThreadMarksLiked(t *testing.T) {
	_, _, svc := newCommentFixture(1)

	comment, _ := svc.Create(1, testUser(1, "An"), "Bình luận", nil)
	viewer := testUser(2, "Bình")
	if _, err := svc.ToggleLike(comment.ID, viewer); err != nil {
		t.Fatalf("thích bình luận thất bại: %v", err)
	}

	threads, err := svc.ListThreadBySong(1, viewer.ID)
	if err != nil {
		t.Fatalf("lấy cây bình luận thất bại: %v", err)
	}
	if !threads[0].Liked {
		t.Error("cờ Liked chưa được đặt cho người xem đã thích")
	}

	// Khách không có trạng thái thích
	guestThreads, err := svc.ListThreadBySong(1, 0)
	if err != nil {
		t.Fatalf("lấy cây bình luận cho khách thất bại: %v", err)
	}
	if guestThreads[0].Liked {
		t.Error("khách không được có cờ Liked")
	}
}

func TestUpdateCommentOnlyAuthor(t *testing.T) {
	_, _, svc := newCommentFixture(1)

	comment, _ := svc.Create(1, testUser(1, "An"), "Bản gốc", nil)

	if _, err := svc.Update(comment.ID, 2, "Sửa trộm"); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("người khác sửa: muốn ErrForbidden, nhận %v", err)
	}

	updated, err := svc.Update(comment.ID, 1, "Bản sửa")
	if err != nil {
		t.Fatalf("tác giả sửa thất bại: %v", err)
	}
	if updated.Content != "Bản sửa" {
		t.Errorf("nội dung sau khi sửa: %q", updated.Content)
	}

	if _, err := svc.Update(999, 1, "Sửa"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("sửa bình luận không tồn tại: muốn ErrNotFound, nhận %v", err)
	}
}

func TestDeleteCommentCascadesReplies(t *testing.T) {
	commentRepo, _, svc := newCommentFixture(1)

	parent, _ := svc.Create(1, testUser(1, "An"), "Bình luận gốc", nil)
	if _, err := svc.Create(1, testUser(2, "Bình"), "Trả lời", &parent.ID); err != nil {
		t.Fatalf("tạo trả lời thất bại: %v", err)
	}

	if err := svc.Delete(parent.ID, 1, false); err != nil {
		t.Fatalf("xóa bình luận thất bại: %v", err)
	}
	if len(commentRepo.comments) != 0 {
		t.Errorf("xóa bình luận gốc phải kéo theo trả lời, còn lại %d", len(commentRepo.comments))
	}
}

func TestDeleteCommentPermissions(t *testing.T) {
	_, _, svc := newCommentFixture(1)

	comment, _ := svc.Create(1, testUser(1, "An"), "Bình luận", nil)

	if err := svc.Delete(comment.ID, 2, false); !errors.Is(err, models.ErrForbidden) {
		t.Errorf("người khác xóa: muốn ErrForbidden, nhận %v", err)
	}
	if err := svc.Delete(comment.ID, 2, true); err != nil {
		t.Errorf("quản trị viên xóa thất bại: %v", err)
	}
	if err := svc.Delete(comment.ID, 1, false); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("xóa bình luận đã xóa: muốn ErrNotFound, nhận %v", err)
	}
}

func TestToggleLike(t *testing.T) {
	_, notificationRepo, svc := newCommentFixture(1)

	comment, _ := svc.Create(1, testUser(1, "An"), "Bình luận", nil)
	actor := testUser(2, "Bình")

	result, err := svc.ToggleLike(comment.ID, actor)
	if err != nil {
		t.Fatalf("thích thất bại: %v", err)
	}
	if !result.Liked || result.Likes != 1 {
		t.Errorf("sau khi thích: muốn liked=true likes=1, nhận %+v", result)
	}

	got := notificationRepo.forUser(1)
	if len(got) != 1 || got[0].Type != models.NotificationTypeLike {
		t.Fatalf("muốn 1 thông báo lượt thích, nhận %+v", got)
	}

	// Bỏ thích: đếm giảm, không có thông báo mới
	result, err = svc.ToggleLike(comment.ID, actor)
	if err != nil {
		t.Fatalf("bỏ thích thất bại: %v", err)
	}
	if result.Liked || result.Likes != 0 {
		t.Errorf("sau khi bỏ thích: muốn liked=false likes=0, nhận %+v", result)
	}
	if len(notificationRepo.notifications) != 1 {
		t.Errorf("bỏ thích không được tạo thông báo, tổng %d", len(notificationRepo.notifications))
	}
}

func TestToggleLikeOwnComment(t *testing.T) {
	_, notificationRepo, svc := newCommentFixture(1)

	author := testUser(1, "An")
	comment, _ := svc.Create(1, author, "Bình luận", nil)

	result, err := svc.ToggleLike(comment.ID, author)
	if err != nil {
		t.Fatalf("tự thích thất bại: %v", err)
	}
	if !result.Liked || result.Likes != 1 {
		t.Errorf("tự thích vẫn phải tính lượt: %+v", result)
	}
	if len(notificationRepo.notifications) != 0 {
		t.Error("tự thích không được tạo thông báo")
	}
}

func TestToggleLikeMissingComment(t *testing.T) {
	_, _, svc := newCommentFixture(1)

	if _, err := svc.ToggleLike(999, testUser(1, "An")); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("thích bình luận không tồn tại: muốn ErrNotFound, nhận %v", err)
	}
}

func TestAssembleThread(t *testing.T) {
	p1 := uint(1)
	p3 := uint(3)
	missing := uint(99)
	comments := []models.Comment{
		{ID: 5, ParentID: &p3, Content: "trả lời mới của 3"},
		{ID: 4, ParentID: &p1, Content: "trả lời của 1"},
		{ID: 3, Content: "gốc mới"},
		{ID: 2, ParentID: &missing, Content: "mồ côi"},
		{ID: 1, Content: "gốc cũ"},
	}

	threads := AssembleThread(comments)
	if len(threads) != 2 {
		t.Fatalf("muốn 2 bình luận gốc, nhận %d", len(threads))
	}
	if threads[0].ID != 3 || threads[1].ID != 1 {
		t.Errorf("thứ tự gốc phải theo đầu vào: %d, %d", threads[0].ID, threads[1].ID)
	}
	if len(threads[0].Replies) != 1 || threads[0].Replies[0].ID != 5 {
		t.Errorf("trả lời của gốc 3: %+v", threads[0].Replies)
	}
	if len(threads[1].Replies) != 1 || threads[1].Replies[0].ID != 4 {
		t.Errorf("trả lời của gốc 1: %+v", threads[1].Replies)
	}

	if got := AssembleThread(nil); len(got) != 0 {
		t.Errorf("danh sách rỗng phải cho cây rỗng, nhận %d", len(got))
	}
}
