package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"face-attendance/backend/internal/dto"
	"face-attendance/backend/internal/service"
	"face-attendance/backend/pkg/response"
)

// StatusHandler 考勤状态模块 HTTP 处理器
type StatusHandler struct {
	statusSvc service.StatusService
}

// NewStatusHandler 创建 StatusHandler
func NewStatusHandler(statusSvc service.StatusService) *StatusHandler {
	return &StatusHandler{statusSvc: statusSvc}
}

// CheckStatus 按邮箱查询考勤与请假状态
// POST /status
func (h *StatusHandler) CheckStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		response.BadRequest(c, "Please enter an email address.")
		return
	}

	resp, err := h.statusSvc.Check(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "No user found with this email.")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}
