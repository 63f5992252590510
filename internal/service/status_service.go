package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"face-attendance/backend/internal/dto"
	"face-attendance/backend/internal/repository"
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("用户不存在")

// StatusService 考勤状态评估业务接口
type StatusService interface {
	// Check 按邮箱查询考勤状态：月度请假滚动归零 → 出勤率 → 提示消息
	Check(ctx context.Context, email string) (*dto.StatusResponse, error)
}

type statusService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewStatusService 创建 StatusService 实例
func NewStatusService(repo *repository.Repository, logger *zap.Logger) StatusService {
	return &statusService{repo: repo, logger: logger, now: time.Now}
}

// WorkingDays 计算指定年月的工作日数（周一至周五），不含节假日
func WorkingDays(year int, month time.Month) int {
	count := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// monthTag 月份标签，形如 "2024-2"（月份不补零，与存量数据保持一致）
func monthTag(t time.Time) string {
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
}

func (s *statusService) Check(ctx context.Context, email string) (*dto.StatusResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	now := s.now()
	workingDays := WorkingDays(now.Year(), now.Month())

	// 月度滚动：月份变化时请假计数归零并立即落库，每次查询至多触发一次
	if tag := monthTag(now); user.LastLeaveMonth != tag {
		user.LeavesTaken = 0
		user.LastLeaveMonth = tag
		if err := s.repo.User.Update(ctx, user); err != nil {
			s.logger.Error("请假计数月度归零落库失败", zap.String("reg_no", user.RegNo), zap.Error(err))
			return nil, err
		}
	}

	percent := 100.0
	if workingDays > 0 {
		percent = math.Max(0, float64(workingDays-user.LeavesTaken)/float64(workingDays)*100)
	}

	// 提示消息按固定顺序逐条判定，命中的全部保留
	var messages []string
	if user.LeavesTaken > 2 {
		messages = append(messages, fmt.Sprintf("Alert: You have taken more than 2 leaves (%d) this month.", user.LeavesTaken))
	}
	if percent < 90 {
		messages = append(messages, fmt.Sprintf("Warning: Your attendance is below 90%% (%.1f%%).", percent))
	}
	if percent == 100 {
		messages = append(messages, "Great job! You have 100% attendance this month.")
	}
	if len(messages) == 0 {
		messages = append(messages, "Your attendance and leave status are within acceptable limits.")
	}

	user.Messages = strings.Join(messages, " | ")
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("保存提示消息失败", zap.String("reg_no", user.RegNo), zap.Error(err))
		return nil, err
	}

	return &dto.StatusResponse{
		Name:              user.Name,
		AttendanceCount:   user.AttendanceCount,
		LeavesTaken:       user.LeavesTaken,
		AttendancePercent: math.Round(percent*10) / 10,
		Messages:          messages,
	}, nil
}
