package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
	Email    EmailConfig
	Backup   BackupConfig
}

// ServerConfig HTTP服务器配置
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StoreConfig 文档存储配置
//
// Backend 可选值: "file", "postgres", "redis", "remote", "memory"
// Mirror 可选值: "file", "redis", "memory", "none"
type StoreConfig struct {
	Backend        string
	Mirror         string
	FilePath       string
	BackupFilePath string
	MirrorFilePath string
	RemoteBaseURL  string
	RemoteTimeout  time.Duration
}

// DatabaseConfig PostgreSQL文档后端配置
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level      string
	Format     string // "json" or "console"
	OutputPath string
}

// MetricsConfig 监控指标配置
type MetricsConfig struct {
	Enabled bool
	Port    int
}

// EmailConfig 邮件配置（过期许可证报告）
type EmailConfig struct {
	Enabled     bool
	SMTPHost    string
	SMTPPort    int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	ReportTo    string
}

// BackupConfig 备份工作器配置
type BackupConfig struct {
	SnapshotInterval time.Duration
	ExpiryScanCron   string
	ExpiryWindowDays int
}

// LoadConfig 从环境变量加载配置（Fx兼容）
func LoadConfig() (*Config, error) {
	return Load()
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Store: StoreConfig{
			Backend:        getEnv("STORE_BACKEND", "file"),
			Mirror:         getEnv("STORE_MIRROR", "file"),
			FilePath:       getEnv("STORE_FILE_PATH", "database/data.json"),
			BackupFilePath: getEnv("STORE_BACKUP_FILE_PATH", "database/data.backup.json"),
			MirrorFilePath: getEnv("STORE_MIRROR_FILE_PATH", "database/data.mirror.json"),
			RemoteBaseURL:  getEnv("STORE_REMOTE_BASE_URL", "http://localhost:8080"),
			RemoteTimeout:  getEnvAsDuration("STORE_REMOTE_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "assetdesk"),
			Password:        getEnv("DB_PASSWORD", "assetdesk_dev_password"),
			DBName:          getEnv("DB_NAME", "assetdesk"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			PoolSize: getEnvAsInt("REDIS_POOL_SIZE", 10),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			OutputPath: getEnv("LOG_OUTPUT", "stdout"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
			Port:    getEnvAsInt("METRICS_PORT", 9090),
		},
		Email: EmailConfig{
			Enabled:     getEnvAsBool("EMAIL_ENABLED", false),
			SMTPHost:    getEnv("SMTP_HOST", "localhost"),
			SMTPPort:    getEnvAsInt("SMTP_PORT", 587),
			Username:    getEnv("SMTP_USERNAME", ""),
			Password:    getEnv("SMTP_PASSWORD", ""),
			FromAddress: getEnv("EMAIL_FROM_ADDRESS", "noreply@assetdesk.local"),
			FromName:    getEnv("EMAIL_FROM_NAME", "AssetDesk"),
			ReportTo:    getEnv("EMAIL_REPORT_TO", ""),
		},
		Backup: BackupConfig{
			SnapshotInterval: getEnvAsDuration("BACKUP_SNAPSHOT_INTERVAL", 6*time.Hour),
			ExpiryScanCron:   getEnv("BACKUP_EXPIRY_SCAN_CRON", "@daily"),
			ExpiryWindowDays: getEnvAsInt("BACKUP_EXPIRY_WINDOW_DAYS", 30),
		},
	}, nil
}

// DSN 生成PostgreSQL连接字符串
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Addr 生成Redis地址
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// 辅助函数
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
