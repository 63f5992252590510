package dto

// ── 注册模块 DTO ──

// RegisterRequest 用户注册请求
// 四个字段均为必填，缺失时返回统一的 Missing required fields 错误
type RegisterRequest struct {
	Name      string `json:"name"       binding:"required"`
	DOB       string `json:"dob"        binding:"required"` // YYYY-MM-DD
	Gender    string `json:"gender"     binding:"required"`
	FaceImage string `json:"face_image" binding:"required"` // base64 图片数据
}

// RegisterResponse 注册成功响应
type RegisterResponse struct {
	Success bool   `json:"success"`
	RegNo   string `json:"reg_no"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}
