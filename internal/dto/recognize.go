package dto

// ── 识别模块 DTO ──

// RecognizeRequest 识别请求
// 图像内容不参与任何真实比对，仅为与前端摄像头上传保持兼容
type RecognizeRequest struct {
	FaceImage string `json:"face_image"`
}

// RecognizeResponse 识别结果响应
// recognized=false 时用户相关字段省略
type RecognizeResponse struct {
	Recognized      bool   `json:"recognized"`
	RegNo           string `json:"reg_no,omitempty"`
	Name            string `json:"name,omitempty"`
	AttendanceCount int    `json:"attendance_count,omitempty"`
	Message         string `json:"message"`
}
