package repository

import (
	"context"

	"gorm.io/gorm"

	"face-attendance/backend/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByRegNo(ctx context.Context, regNo string) (*model.User, error)
	// GetByName 按姓名查询，大小写不敏感
	GetByName(ctx context.Context, name string) (*model.User, error)
	// GetByEmail 按邮箱查询，大小写不敏感
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// ListRegNos 返回指定前缀的全部注册号，用于计算下一个序号
	ListRegNos(ctx context.Context, prefix string) ([]string, error)
	Update(ctx context.Context, user *model.User) error
	// IncrementAttendance 原子自增考勤计数并返回更新后的记录
	IncrementAttendance(ctx context.Context, id string) (*model.User, error)
	Delete(ctx context.Context, regNo string) error
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByRegNo(ctx context.Context, regNo string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("reg_no = ?", regNo).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Order("reg_no ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) ListRegNos(ctx context.Context, prefix string) ([]string, error) {
	var regNos []string
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("reg_no LIKE ?", prefix+"%").
		Pluck("reg_no", &regNos).Error
	if err != nil {
		return nil, err
	}
	return regNos, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) IncrementAttendance(ctx context.Context, id string) (*model.User, error) {
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("attendance_count", gorm.Expr("attendance_count + ?", 1)).Error
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Delete(ctx context.Context, regNo string) error {
	return r.db.WithContext(ctx).
		Where("reg_no = ?", regNo).
		Delete(&model.User{}).Error
}
