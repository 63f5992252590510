package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"face-attendance/backend/internal/repository"
)

func setupTestUser(now time.Time) (*userService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	repo := &repository.Repository{User: userRepo}
	svc := NewUserService(repo, zap.NewNop()).(*userService)
	svc.now = func() time.Time { return now }
	return svc, userRepo
}

func TestUserService_List(t *testing.T) {
	svc, userRepo := setupTestUser(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	addUser(userRepo, "2024-XYZ-0002", "Grace Hopper", "grace.hopper@company.com")
	addUser(userRepo, "2024-XYZ-0001", "Ada Lovelace", "ada.lovelace@company.com")

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("列出用户应成功: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("期望 2 条记录，实际=%d", len(list))
	}
	// 按注册号升序
	if list[0].RegNo != "2024-XYZ-0001" || list[1].RegNo != "2024-XYZ-0002" {
		t.Errorf("排序不符: %s, %s", list[0].RegNo, list[1].RegNo)
	}
	// addUser 的 DOB 为 2000-01-01，2024-06-01 时 24 岁
	if list[0].Age != 24 {
		t.Errorf("期望年龄 24，实际=%d", list[0].Age)
	}
}

func TestUserService_List_Empty(t *testing.T) {
	svc, _ := setupTestUser(time.Now())

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("空库列出应成功: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("空库应返回空列表，实际=%d", len(list))
	}
}

func TestUserService_GetByRegNo(t *testing.T) {
	svc, userRepo := setupTestUser(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	addUser(userRepo, "2024-XYZ-0001", "Ada Lovelace", "ada.lovelace@company.com")

	resp, err := svc.GetByRegNo(context.Background(), "2024-XYZ-0001")
	if err != nil {
		t.Fatalf("按注册号查询应成功: %v", err)
	}
	if resp.Name != "Ada Lovelace" || resp.Email != "ada.lovelace@company.com" {
		t.Errorf("返回内容不符: %+v", resp)
	}
}

func TestUserService_GetByRegNo_NotFound(t *testing.T) {
	svc, _ := setupTestUser(time.Now())

	_, err := svc.GetByRegNo(context.Background(), "2024-XYZ-9999")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, userRepo := setupTestUser(time.Now())
	addUser(userRepo, "2024-XYZ-0001", "Ada Lovelace", "ada.lovelace@company.com")
	addUser(userRepo, "2024-XYZ-0002", "Grace Hopper", "grace.hopper@company.com")

	if err := svc.Delete(context.Background(), "2024-XYZ-0001"); err != nil {
		t.Fatalf("删除应成功: %v", err)
	}

	users, _ := userRepo.List(context.Background())
	if len(users) != 1 || users[0].RegNo != "2024-XYZ-0002" {
		t.Errorf("删除后仅应剩 2024-XYZ-0002，实际: %+v", users)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, userRepo := setupTestUser(time.Now())
	addUser(userRepo, "2024-XYZ-0001", "Ada Lovelace", "ada.lovelace@company.com")

	err := svc.Delete(context.Background(), "2024-XYZ-9999")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}

	users, _ := userRepo.List(context.Background())
	if len(users) != 1 {
		t.Errorf("删除失败不应影响存储，当前条数=%d", len(users))
	}
}
