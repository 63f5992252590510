package model

import "time"

// User 用户考勤表 — 对应 users
//
// 不变式：
//   - RegNo 与 Email 创建后不再变更，全局唯一（存储层唯一索引兜底）
//   - AttendanceCount 只增不减，唯一写入路径是识别成功
//   - LeavesTaken 始终相对 LastLeaveMonth 所标记的月份
type User struct {
	ID              string    `gorm:"type:text;primaryKey"                json:"id"`
	RegNo           string    `gorm:"type:text;not null;column:reg_no"    json:"reg_no"`
	Name            string    `gorm:"type:text;not null"                  json:"name"`
	DOB             time.Time `gorm:"type:date;not null;column:dob"       json:"dob"`
	Gender          string    `gorm:"type:text;not null"                  json:"gender"`
	Email           string    `gorm:"type:text;not null"                  json:"email"`
	AttendanceCount int       `gorm:"not null;default:0"                  json:"attendance_count"`
	LeavesTaken     int       `gorm:"not null;default:0"                  json:"leaves_taken"`
	LastLeaveMonth  string    `gorm:"type:text"                           json:"last_leave_month"` // 形如 "2024-2"，月份不补零
	Messages        string    `gorm:"type:text;not null;default:''"       json:"messages"`
	FaceImage       string    `gorm:"type:text;column:face_image"         json:"-"` // base64 图片数据，无真实比对逻辑
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// Age 根据出生日期计算周岁（未过生日减一）
func (u *User) Age(today time.Time) int {
	age := today.Year() - u.DOB.Year()
	if today.Month() < u.DOB.Month() ||
		(today.Month() == u.DOB.Month() && today.Day() < u.DOB.Day()) {
		age--
	}
	return age
}
