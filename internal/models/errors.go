package models

import "errors"

// Các lỗi cố định của tầng nghiệp vụ. Controller so khớp bằng errors.Is
// để chọn mã trạng thái HTTP thay vì đọc chuỗi lỗi.
var (
	ErrValidation    = errors.New("dữ liệu không hợp lệ")
	ErrNotFound      = errors.New("không tìm thấy bản ghi")
	ErrInvalidParent = errors.New("bình luận cha không hợp lệ")
	ErrForbidden     = errors.New("không có quyền thực hiện thao tác này")
)
