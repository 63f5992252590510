package errors

import (
	"errors"
	"strings"
)

// ErrUniqueViolation 存储层唯一约束冲突：并发写入撞上唯一索引
var ErrUniqueViolation = errors.New("记录已存在，唯一约束冲突")

// IsUniqueViolation 判断错误是否为 SQLite 唯一约束冲突
// go-sqlite3 未导出结构化错误码到 GORM 层，按错误文本识别
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
