package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"face-attendance/backend/internal/repository"
)

func setupTestStatus(now time.Time) (*statusService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	repo := &repository.Repository{User: userRepo}
	svc := NewStatusService(repo, zap.NewNop()).(*statusService)
	svc.now = func() time.Time { return now }
	return svc, userRepo
}

func TestWorkingDays(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 21}, // 闰年 2 月，29 天
		{2024, time.June, 20},
		{2024, time.December, 22},
		{2023, time.February, 20},
	}
	for _, tc := range cases {
		if got := WorkingDays(tc.year, tc.month); got != tc.want {
			t.Errorf("WorkingDays(%d, %v) 期望 %d，实际=%d", tc.year, tc.month, tc.want, got)
		}
	}
}

func TestStatusService_Check_UserNotFound(t *testing.T) {
	svc, _ := setupTestStatus(time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC))

	_, err := svc.Check(context.Background(), "nobody@company.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}

func TestStatusService_Check_MonthlyRolloverResetsLeaves(t *testing.T) {
	now := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	svc, userRepo := setupTestStatus(now)

	addUser(userRepo, "2024-XYZ-0001", "Ada Lovelace", "ada.lovelace@company.com")
	stored, _ := userRepo.GetByRegNo(context.Background(), "2024-XYZ-0001")
	stored.LeavesTaken = 5
	stored.LastLeaveMonth = "2024-1"
	_ = userRepo.Update(context.Background(), stored)

	resp, err := svc.Check(context.Background(), "ada.lovelace@company.com")
	if err != nil {
		t.Fatalf("查询应成功: %v", err)
	}
	if resp.LeavesTaken != 0 {
		t.Errorf("跨月后请假计数应归零，实际=%d", resp.LeavesTaken)
	}

	stored, _ = userRepo.GetByRegNo(context.Background(), "2024-XYZ-0001")
	if stored.LeavesTaken != 0 {
		t.Errorf("归零应落库，实际=%d", stored.LeavesTaken)
	}
	if stored.LastLeaveMonth != "2024-2" {
		t.Errorf("月份标签应更新为 2024-2，实际=%s", stored.LastLeaveMonth)
	}
}

func TestStatusService_Check_LeavesAndLowAttendance(t *testing.T) {
	now := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	svc, userRepo := setupTestStatus(now)

	addUser(userRepo, "2024-XYZ-0001", "Ada Lovelace", "ada.lovelace@company.com")
	stored, _ := userRepo.GetByRegNo(context.Background(), "2024-XYZ-0001")
	stored.LeavesTaken = 3
	stored.LastLeaveMonth = "2024-2"
	_ = userRepo.Update(context.Background(), stored)

	resp, err := svc.Check(context.Background(), "ada.lovelace@company.com")
	if err != nil {
		t.Fatalf("查询应成功: %v", err)
	}
	if resp.LeavesTaken != 3 {
		t.Errorf("同月请假计数不应归零，实际=%d", resp.LeavesTaken)
	}
	// 2024-2 共 21 个工作日，(21-3)/21*100 ≈ 85.7
	if resp.AttendancePercent != 85.7 {
		t.Errorf("期望出勤率 85.7，实际=%v", resp.AttendancePercent)
	}
	if len(resp.Messages) != 2 {
		t.Fatalf("期望 2 条消息，实际=%d: %v", len(resp.Messages), resp.Messages)
	}
	if resp.Messages[0] != "Alert: You have taken more than 2 leaves (3) this month." {
		t.Errorf("第一条消息不符: %s", resp.Messages[0])
	}
	if resp.Messages[1] != "Warning: Your attendance is below 90% (85.7%)." {
		t.Errorf("第二条消息不符: %s", resp.Messages[1])
	}
}

func TestStatusService_Check_FullAttendance(t *testing.T) {
	now := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	svc, userRepo := setupTestStatus(now)

	addUser(userRepo, "2024-XYZ-0001", "Ada Lovelace", "ada.lovelace@company.com")
	stored, _ := userRepo.GetByRegNo(context.Background(), "2024-XYZ-0001")
	stored.LastLeaveMonth = "2024-2"
	_ = userRepo.Update(context.Background(), stored)

	resp, err := svc.Check(context.Background(), "ada.lovelace@company.com")
	if err != nil {
		t.Fatalf("查询应成功: %v", err)
	}
	if resp.AttendancePercent != 100 {
		t.Errorf("期望出勤率 100，实际=%v", resp.AttendancePercent)
	}
	if len(resp.Messages) != 1 || resp.Messages[0] != "Great job! You have 100% attendance this month." {
		t.Errorf("满勤消息不符: %v", resp.Messages)
	}
}

func TestStatusService_Check_WithinLimits(t *testing.T) {
	now := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	svc, userRepo := setupTestStatus(now)

	// 1 次请假：(21-1)/21*100 ≈ 95.2，不触发任何警告
	addUser(userRepo, "2024-XYZ-0001", "Ada Lovelace", "ada.lovelace@company.com")
	stored, _ := userRepo.GetByRegNo(context.Background(), "2024-XYZ-0001")
	stored.LeavesTaken = 1
	stored.LastLeaveMonth = "2024-2"
	_ = userRepo.Update(context.Background(), stored)

	resp, err := svc.Check(context.Background(), "ada.lovelace@company.com")
	if err != nil {
		t.Fatalf("查询应成功: %v", err)
	}
	if resp.AttendancePercent != 95.2 {
		t.Errorf("期望出勤率 95.2，实际=%v", resp.AttendancePercent)
	}
	if len(resp.Messages) != 1 || resp.Messages[0] != "Your attendance and leave status are within acceptable limits." {
		t.Errorf("默认消息不符: %v", resp.Messages)
	}
}

func TestStatusService_Check_PersistsJoinedMessages(t *testing.T) {
	now := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	svc, userRepo := setupTestStatus(now)

	addUser(userRepo, "2024-XYZ-0001", "Ada Lovelace", "ada.lovelace@company.com")
	stored, _ := userRepo.GetByRegNo(context.Background(), "2024-XYZ-0001")
	stored.LeavesTaken = 3
	stored.LastLeaveMonth = "2024-2"
	_ = userRepo.Update(context.Background(), stored)

	if _, err := svc.Check(context.Background(), "ada.lovelace@company.com"); err != nil {
		t.Fatalf("查询应成功: %v", err)
	}

	stored, _ = userRepo.GetByRegNo(context.Background(), "2024-XYZ-0001")
	want := "Alert: You have taken more than 2 leaves (3) this month. | Warning: Your attendance is below 90% (85.7%)."
	if stored.Messages != want {
		t.Errorf("落库消息不符:\n期望=%s\n实际=%s", want, stored.Messages)
	}
}

func TestStatusService_Check_EmailCaseInsensitive(t *testing.T) {
	now := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	svc, userRepo := setupTestStatus(now)
	addUser(userRepo, "2024-XYZ-0001", "Ada Lovelace", "ada.lovelace@company.com")

	resp, err := svc.Check(context.Background(), "ADA.LOVELACE@COMPANY.COM")
	if err != nil {
		t.Fatalf("邮箱大小写不敏感查询应成功: %v", err)
	}
	if resp.Name != "Ada Lovelace" {
		t.Errorf("姓名不符: %s", resp.Name)
	}
}
