package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 响应格式与既有前端约定保持一致：
// 成功时返回各接口自身的扁平 JSON 结构，失败时统一返回 {"error": "..."}

// ErrorBody 统一错误响应结构
type ErrorBody struct {
	Error string `json:"error"`
}

// ── 成功响应 ──

// OK 200 成功响应，data 原样作为响应体
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "服务器内部错误")
}
