package utils

// TruncateRunes cắt chuỗi còn tối đa max ký tự. Đếm theo rune để không cắt
// giữa một ký tự có dấu tiếng Việt.
func TruncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
