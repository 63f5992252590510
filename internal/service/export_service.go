package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"face-attendance/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoData       = errors.New("没有可导出的用户数据")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// 导出文件名与既有前端下载逻辑保持一致
const exportFilename = "FaceAttendanceUsers.xlsx"

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - 单 Sheet "Users"，一行一条用户记录
type ExportService interface {
	// ExportUsers 导出全部用户记录为 Excel
	ExportUsers(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// 列定义顺序即导出顺序
var exportHeaders = []string{
	"RegNo", "Name", "Age", "Gender", "Email",
	"Attendance Count", "Date of Birth", "Leaves Taken", "Messages",
}

func (s *exportService) ExportUsers(ctx context.Context) (*bytes.Buffer, string, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("查询用户列表失败", zap.Error(err))
		return nil, "", err
	}
	if len(users) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Users"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 16)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 28)
	f.SetColWidth(sheetName, "F", "H", 16)
	f.SetColWidth(sheetName, "I", "I", 48)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheetName, cell(col, 1), h)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	f.SetCellStyle(sheetName, cell("A", 1), cell(lastCol, 1), headerStyle)

	today := s.now()
	for i := range users {
		u := &users[i]
		row := i + 2
		values := []interface{}{
			u.RegNo,
			u.Name,
			u.Age(today),
			u.Gender,
			u.Email,
			u.AttendanceCount,
			u.DOB.Format("2006-01-02"),
			u.LeavesTaken,
			u.Messages,
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(sheetName, cell(col, row), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, exportFilename, nil
}

// ── 辅助函数 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
