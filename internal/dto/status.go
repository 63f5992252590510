package dto

// ── 考勤状态模块 DTO ──

// StatusRequest 考勤状态查询请求
type StatusRequest struct {
	Email string `json:"email" binding:"required"`
}

// StatusResponse 考勤状态响应
// AttendancePercent 已四舍五入到一位小数
type StatusResponse struct {
	Name              string   `json:"name"`
	AttendanceCount   int      `json:"attendance_count"`
	LeavesTaken       int      `json:"leaves_taken"`
	AttendancePercent float64  `json:"attendance_percent"`
	Messages          []string `json:"messages"`
}
