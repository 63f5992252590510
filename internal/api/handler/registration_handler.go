package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"face-attendance/backend/internal/dto"
	"face-attendance/backend/internal/service"
	"face-attendance/backend/pkg/response"
)

// RegistrationHandler 注册模块 HTTP 处理器
type RegistrationHandler struct {
	regSvc service.RegistrationService
}

// NewRegistrationHandler 创建 RegistrationHandler
func NewRegistrationHandler(regSvc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{regSvc: regSvc}
}

// Register 注册新用户
// POST /register
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	resp, err := h.regSvc.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleRegisterError(c, &req, err)
		return
	}

	response.OK(c, resp)
}

func (h *RegistrationHandler) handleRegisterError(c *gin.Context, req *dto.RegisterRequest, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		response.BadRequest(c, "Missing required fields")
	case errors.Is(err, service.ErrNameTaken):
		response.BadRequest(c, fmt.Sprintf("User with name %q already registered.", req.Name))
	case errors.Is(err, service.ErrInvalidDOB):
		response.BadRequest(c, "Invalid date of birth format.")
	case errors.Is(err, service.ErrNameUnusable):
		response.BadRequest(c, "Name contains no usable characters.")
	case errors.Is(err, service.ErrEmailTaken):
		response.BadRequest(c, "Email already registered.")
	default:
		response.InternalError(c)
	}
}
