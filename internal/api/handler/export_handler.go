package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"face-attendance/backend/internal/service"
	"face-attendance/backend/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportUsers 导出全部用户记录
// GET /export
func (h *ExportHandler) ExportUsers(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportUsers(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoData) {
			response.BadRequest(c, "No user data to export.")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
