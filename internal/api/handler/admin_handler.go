package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"face-attendance/backend/internal/dto"
	"face-attendance/backend/internal/service"
	"face-attendance/backend/pkg/response"
)

// AdminHandler 管理模块 HTTP 处理器
type AdminHandler struct {
	userSvc service.UserService
}

// NewAdminHandler 创建 AdminHandler
func NewAdminHandler(userSvc service.UserService) *AdminHandler {
	return &AdminHandler{userSvc: userSvc}
}

// ListUsers 全部用户列表
// GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	// 响应体为纯数组，与既有前端保持一致
	response.OK(c, users)
}

// GetUser 按注册号查询单个用户
// GET /admin/user/:reg_no
func (h *AdminHandler) GetUser(c *gin.Context) {
	regNo := c.Param("reg_no")

	user, err := h.userSvc.GetByRegNo(c.Request.Context(), regNo)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// DeleteUser 按注册号删除用户
// DELETE /admin/user/:reg_no
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	regNo := c.Param("reg_no")

	if err := h.userSvc.Delete(c.Request.Context(), regNo); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, dto.DeleteUserResponse{
		Success: true,
		Message: fmt.Sprintf("User %s deleted.", regNo),
	})
}
