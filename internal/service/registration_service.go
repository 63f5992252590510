package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"face-attendance/backend/config"
	"face-attendance/backend/internal/dto"
	"face-attendance/backend/internal/model"
	"face-attendance/backend/internal/repository"
	pkgerrors "face-attendance/backend/pkg/errors"
)

// ── 注册模块业务错误 ──

var (
	ErrMissingFields = errors.New("必填字段缺失")
	ErrNameTaken     = errors.New("该姓名已注册")
	ErrEmailTaken    = errors.New("该邮箱已注册")
	ErrInvalidDOB    = errors.New("出生日期格式无效")
)

// RegistrationService 用户注册业务接口
type RegistrationService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
}

type registrationService struct {
	repo     *repository.Repository
	identity *identityGenerator
	logger   *zap.Logger
}

// NewRegistrationService 创建 RegistrationService 实例
func NewRegistrationService(cfg *config.AttendanceConfig, repo *repository.Repository, logger *zap.Logger) RegistrationService {
	return &registrationService{
		repo:     repo,
		identity: newIdentityGenerator(repo, cfg.OrgCode, cfg.EmailDomain),
		logger:   logger,
	}
}

// Register 注册新用户：校验 → 派生邮箱与注册号 → 落库
//
// 已知缺口：姓名/邮箱唯一性检查与插入之间存在竞态窗口，
// 由存储层唯一索引兜底，撞上约束时映射回同样的冲突错误。
func (s *registrationService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	name := strings.TrimSpace(req.Name)
	dobStr := strings.TrimSpace(req.DOB)
	gender := strings.TrimSpace(req.Gender)
	faceImage := strings.TrimSpace(req.FaceImage)

	if name == "" || dobStr == "" || gender == "" || faceImage == "" {
		return nil, ErrMissingFields
	}

	// 姓名唯一性（大小写不敏感）
	if _, err := s.repo.User.GetByName(ctx, name); err == nil {
		return nil, ErrNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询姓名失败", zap.Error(err))
		return nil, err
	}

	dob, err := time.Parse("2006-01-02", dobStr)
	if err != nil {
		return nil, ErrInvalidDOB
	}

	email, err := s.identity.DeriveEmail(ctx, name)
	if err != nil {
		return nil, err
	}

	// DeriveEmail 已保证唯一，此处复核一遍防竞态漏网
	if _, err := s.repo.User.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	regNo, err := s.identity.NextRegNo(ctx)
	if err != nil {
		s.logger.Error("计算注册号失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		ID:        uuid.NewString(),
		RegNo:     regNo,
		Name:      name,
		DOB:       dob,
		Gender:    gender,
		Email:     email,
		FaceImage: faceImage,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if pkgerrors.IsUniqueViolation(err) {
			return nil, ErrNameTaken
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户注册成功",
		zap.String("reg_no", regNo),
		zap.String("email", email),
	)

	return &dto.RegisterResponse{
		Success: true,
		RegNo:   regNo,
		Email:   email,
		Name:    name,
	}, nil
}
