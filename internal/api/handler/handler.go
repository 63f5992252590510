package handler

import "face-attendance/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Registration *RegistrationHandler
	Recognition  *RecognitionHandler
	Status       *StatusHandler
	Admin        *AdminHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Registration: NewRegistrationHandler(svc.Registration),
		Recognition:  NewRecognitionHandler(svc.Attendance),
		Status:       NewStatusHandler(svc.Status),
		Admin:        NewAdminHandler(svc.User),
		Export:       NewExportHandler(svc.Export),
	}
}
