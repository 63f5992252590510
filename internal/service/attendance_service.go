package service

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"face-attendance/backend/internal/dto"
	"face-attendance/backend/internal/repository"
	"face-attendance/backend/pkg/metrics"
)

// AttendanceService 考勤台账业务接口
type AttendanceService interface {
	// Recognize 执行一次识别：命中则随机选取一名用户并将其考勤计数加一
	Recognize(ctx context.Context, faceImage string) (*dto.RecognizeResponse, error)
}

type attendanceService struct {
	repo       *repository.Repository
	recognizer Recognizer
	logger     *zap.Logger
	pick       func(n int) int // 命中后选取用户下标，测试中可固定
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, recognizer Recognizer, logger *zap.Logger) AttendanceService {
	return &attendanceService{
		repo:       repo,
		recognizer: recognizer,
		logger:     logger,
		pick:       rand.Intn,
	}
}

// Recognize 两种结局的契约：命中 → 选一名用户计数加一；未命中 → 无任何写入
func (s *attendanceService) Recognize(ctx context.Context, faceImage string) (*dto.RecognizeResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, err
	}

	if len(users) == 0 {
		metrics.RecognitionsTotal.WithLabelValues("no_users").Inc()
		return &dto.RecognizeResponse{
			Recognized: false,
			Message:    "No users registered yet.",
		}, nil
	}

	hit, err := s.recognizer.Recognize(ctx, faceImage)
	if err != nil {
		s.logger.Error("识别器执行失败", zap.Error(err))
		return nil, err
	}

	if !hit {
		metrics.RecognitionsTotal.WithLabelValues("not_recognized").Inc()
		return &dto.RecognizeResponse{
			Recognized: false,
			Message:    "Face not recognized. Please register.",
		}, nil
	}

	picked := users[s.pick(len(users))]

	// 考勤计数的唯一写入路径
	updated, err := s.repo.User.IncrementAttendance(ctx, picked.ID)
	if err != nil {
		s.logger.Error("考勤计数自增失败", zap.String("reg_no", picked.RegNo), zap.Error(err))
		return nil, err
	}

	metrics.RecognitionsTotal.WithLabelValues("recognized").Inc()
	s.logger.Info("识别命中",
		zap.String("reg_no", updated.RegNo),
		zap.Int("attendance_count", updated.AttendanceCount),
	)

	return &dto.RecognizeResponse{
		Recognized:      true,
		RegNo:           updated.RegNo,
		Name:            updated.Name,
		AttendanceCount: updated.AttendanceCount,
		Message:         fmt.Sprintf("Recognized %s (%s). Attendance incremented.", updated.Name, updated.RegNo),
	}, nil
}
