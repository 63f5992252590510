package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"face-attendance/backend/internal/repository"
)

func setupTestExport() (*exportService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	repo := &repository.Repository{User: userRepo}
	svc := NewExportService(repo, zap.NewNop()).(*exportService)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return svc, userRepo
}

func TestExportService_ExportUsers_NoData(t *testing.T) {
	svc, _ := setupTestExport()

	_, _, err := svc.ExportUsers(context.Background())
	if !errors.Is(err, ErrExportNoData) {
		t.Errorf("空库导出应返回 ErrExportNoData，实际: %v", err)
	}
}

func TestExportService_ExportUsers_Success(t *testing.T) {
	svc, userRepo := setupTestExport()
	addUser(userRepo, "2024-XYZ-0001", "Ada Lovelace", "ada.lovelace@company.com")
	addUser(userRepo, "2024-XYZ-0002", "Grace Hopper", "grace.hopper@company.com")

	buf, filename, err := svc.ExportUsers(context.Background())
	if err != nil {
		t.Fatalf("导出应成功: %v", err)
	}
	if filename != "FaceAttendanceUsers.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}

	// xlsx 即 zip 容器，应以 PK 开头
	data := buf.Bytes()
	if len(data) < 2 || data[0] != 0x50 || data[1] != 0x4B {
		t.Fatal("导出内容不是合法的 xlsx 文件")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("导出文件应能重新打开: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Users")
	if err != nil {
		t.Fatalf("读取 Users 工作表失败: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("期望表头加 2 行数据，实际行数=%d", len(rows))
	}

	for i, h := range exportHeaders {
		if rows[0][i] != h {
			t.Errorf("表头第 %d 列期望 %q，实际=%q", i+1, h, rows[0][i])
		}
	}

	if rows[1][0] != "2024-XYZ-0001" || rows[1][1] != "Ada Lovelace" {
		t.Errorf("首行数据不符: %v", rows[1])
	}
	// DOB 固定为 2000-01-01，2024-06-01 时 24 岁
	if rows[1][2] != "24" {
		t.Errorf("年龄列期望 24，实际=%q", rows[1][2])
	}
	if rows[1][6] != "2000-01-01" {
		t.Errorf("出生日期列期望 2000-01-01，实际=%q", rows[1][6])
	}
	if rows[2][0] != "2024-XYZ-0002" {
		t.Errorf("第二行注册号不符: %q", rows[2][0])
	}
}
