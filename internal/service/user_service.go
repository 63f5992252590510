package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"face-attendance/backend/internal/dto"
	"face-attendance/backend/internal/model"
	"face-attendance/backend/internal/repository"
)

// UserService 管理端用户业务接口
type UserService interface {
	List(ctx context.Context) ([]dto.AdminUserResponse, error)
	GetByRegNo(ctx context.Context, regNo string) (*dto.AdminUserResponse, error)
	Delete(ctx context.Context, regNo string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger, now: time.Now}
}

func (s *userService) List(ctx context.Context) ([]dto.AdminUserResponse, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("列出用户失败", zap.Error(err))
		return nil, err
	}

	today := s.now()
	result := make([]dto.AdminUserResponse, 0, len(users))
	for i := range users {
		result = append(result, *s.toAdminResponse(&users[i], today))
	}
	return result, nil
}

func (s *userService) GetByRegNo(ctx context.Context, regNo string) (*dto.AdminUserResponse, error) {
	user, err := s.repo.User.GetByRegNo(ctx, regNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("reg_no", regNo), zap.Error(err))
		return nil, err
	}

	return s.toAdminResponse(user, s.now()), nil
}

func (s *userService) Delete(ctx context.Context, regNo string) error {
	// 先确认存在：删除不存在的注册号返回 not-found，存储保持原样
	if _, err := s.repo.User.GetByRegNo(ctx, regNo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("reg_no", regNo), zap.Error(err))
		return err
	}

	if err := s.repo.User.Delete(ctx, regNo); err != nil {
		s.logger.Error("删除用户失败", zap.String("reg_no", regNo), zap.Error(err))
		return err
	}

	s.logger.Info("用户已删除", zap.String("reg_no", regNo))
	return nil
}

func (s *userService) toAdminResponse(user *model.User, today time.Time) *dto.AdminUserResponse {
	return &dto.AdminUserResponse{
		RegNo:           user.RegNo,
		Name:            user.Name,
		Age:             user.Age(today),
		Gender:          user.Gender,
		Email:           user.Email,
		AttendanceCount: user.AttendanceCount,
	}
}
