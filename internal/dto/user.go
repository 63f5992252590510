package dto

// ── 管理模块 DTO ──

// AdminUserResponse 管理端用户信息（列表与单查共用）
type AdminUserResponse struct {
	RegNo           string `json:"reg_no"`
	Name            string `json:"name"`
	Age             int    `json:"age"`
	Gender          string `json:"gender"`
	Email           string `json:"email"`
	AttendanceCount int    `json:"attendance_count"`
}

// DeleteUserResponse 删除用户响应
type DeleteUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
