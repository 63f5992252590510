package handler

import (
	"github.com/gin-gonic/gin"

	"face-attendance/backend/internal/dto"
	"face-attendance/backend/internal/service"
	"face-attendance/backend/pkg/response"
)

// RecognitionHandler 识别模块 HTTP 处理器
type RecognitionHandler struct {
	attSvc service.AttendanceService
}

// NewRecognitionHandler 创建 RecognitionHandler
func NewRecognitionHandler(attSvc service.AttendanceService) *RecognitionHandler {
	return &RecognitionHandler{attSvc: attSvc}
}

// Recognize 执行一次识别
// POST /recognize
// 请求体内容不参与判定，解析失败也照常执行
func (h *RecognitionHandler) Recognize(c *gin.Context) {
	var req dto.RecognizeRequest
	_ = c.ShouldBindJSON(&req)

	resp, err := h.attSvc.Recognize(c.Request.Context(), req.FaceImage)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}
