package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"db"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Attendance AttendanceConfig `mapstructure:"attendance"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port          int           `mapstructure:"port"`
	CORS          CORSConfig    `mapstructure:"cors"`
	BodyLimit     int64         `mapstructure:"body_limit"`     // 请求体上限（字节），人脸图片以 base64 上传，默认 4MB
	RateLimit     int           `mapstructure:"rate_limit"`     // 滑动窗口内允许的请求数
	RateWindow    time.Duration `mapstructure:"rate_window"`    // 滑动窗口时长
	EnableMetrics bool          `mapstructure:"enable_metrics"` // 是否暴露 /metrics
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig SQLite 数据库配置
// 单表记录存储，本地文件即数据库，无需网络连接参数
type DatabaseConfig struct {
	Path         string `mapstructure:"path"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

// RedisConfig Redis 配置（仅用于接口限流，连接失败时降级运行）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AttendanceConfig 考勤业务配置
type AttendanceConfig struct {
	// OrgCode 注册号中间段的机构代码，如 2024-XYZ-0001 中的 XYZ
	OrgCode string `mapstructure:"org_code"`
	// EmailDomain 自动生成邮箱的域名部分
	EmailDomain string `mapstructure:"email_domain"`
	// RecognizeProbability 模拟识别器判定"识别成功"的概率 [0,1]
	RecognizeProbability float64 `mapstructure:"recognize_probability"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.body_limit", 4<<20)
	v.SetDefault("server.rate_limit", 30)
	v.SetDefault("server.rate_window", "1m")
	v.SetDefault("server.enable_metrics", true)

	v.SetDefault("db.path", "face_attendance.db")
	v.SetDefault("db.max_open_conns", 1)
	v.SetDefault("db.max_idle_conns", 1)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("attendance.org_code", "XYZ")
	v.SetDefault("attendance.email_domain", "company.com")
	v.SetDefault("attendance.recognize_probability", 0.5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("FACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("配置校验失败: db.path 不能为空")
	}
	if c.Attendance.OrgCode == "" {
		return fmt.Errorf("配置校验失败: attendance.org_code 不能为空")
	}
	if c.Attendance.EmailDomain == "" {
		return fmt.Errorf("配置校验失败: attendance.email_domain 不能为空")
	}
	if p := c.Attendance.RecognizeProbability; p < 0 || p > 1 {
		return fmt.Errorf("配置校验失败: attendance.recognize_probability 必须在 [0,1] 之间")
	}
	return nil
}
