package service

import (
	"go.uber.org/zap"

	"face-attendance/backend/config"
	"face-attendance/backend/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Registration RegistrationService
	Attendance   AttendanceService
	Status       StatusService
	User         UserService
	Export       ExportService
}

// NewService 创建 Service 聚合
// recognizer 由调用方注入，便于将来替换为真实人脸识别实现
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	recognizer Recognizer,
	logger *zap.Logger,
) *Service {
	return &Service{
		Registration: NewRegistrationService(&cfg.Attendance, repo, logger),
		Attendance:   NewAttendanceService(repo, recognizer, logger),
		Status:       NewStatusService(repo, logger),
		User:         NewUserService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
