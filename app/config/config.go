package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Log      LogConfig      `mapstructure:"log" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"`
	User     UserConfig     `mapstructure:"user" validate:"required"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port" validate:"required,numeric"`
	Mode           string   `mapstructure:"mode" validate:"oneof=debug release test"`
	RequestTimeout int      `mapstructure:"request_timeout" validate:"gte=0"` // 秒，0 表示不限制
	CORSOrigins    []string `mapstructure:"cors_origins"`
}

type LogConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error fatal"`
	Format     string `mapstructure:"format" validate:"oneof=json text"`   // json 或 text
	Output     string `mapstructure:"output" validate:"oneof=stdout file"` // stdout 或 file
	File       string `mapstructure:"file"`                                // output=file 时的日志路径
	MaxSize    int    `mapstructure:"max_size"`                            // 兆字节
	MaxBackups int    `mapstructure:"max_backups"`                         // 备份数量
	MaxAge     int    `mapstructure:"max_age"`                             // 天数
	Compress   bool   `mapstructure:"compress"`                            // 是否压缩旧文件
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"required,oneof=sqlite mysql postgres"`
	DSN             string `mapstructure:"dsn" validate:"required"`
	LogLevel        string `mapstructure:"log_level" validate:"oneof=silent error warn info"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
}

type CacheConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	TTL          int    `mapstructure:"ttl" validate:"gte=0"` // 秒
	WarmSchedule string `mapstructure:"warm_schedule"`        // cron 表达式，为空则不预热
}

type UserConfig struct {
	// 后台创建用户时使用的默认密码
	DefaultPassword string `mapstructure:"default_password" validate:"required,max=72"`
	// bcrypt 计算成本，0 表示使用默认值
	PasswordCost int `mapstructure:"password_cost" validate:"gte=0,lte=31"`
}

// RequestTimeoutDuration 返回单个请求的超时时间
func (s ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// TTLDuration 返回排行榜缓存的过期时间
func (c CacheConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

func Load() *Config {
	cfg, err := Decode()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	return cfg
}

// Decode 从 viper 解码并校验配置
func Decode() (*Config, error) {
	SetDefaults()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("无法解码配置: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}

	return &config, nil
}

// SetDefaults 设置默认配置
func SetDefaults() {
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("server.request_timeout", 10)
	viper.SetDefault("server.cors_origins", []string{"*"})

	// 日志默认配置
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "data/logs/tour-insight.log")
	viper.SetDefault("log.max_size", 100)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("log.max_age", 28)
	viper.SetDefault("log.compress", true)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "data/tour-insight.db")
	viper.SetDefault("database.log_level", "warn")
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", 3600)

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.ttl", 60)
	viper.SetDefault("cache.warm_schedule", "@every 5m")

	viper.SetDefault("user.default_password", "123456")
	viper.SetDefault("user.password_cost", 10)
}

// validateConfig 验证配置的有效性
func validateConfig(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}
	if config.Log.Output == "file" && config.Log.File == "" {
		return fmt.Errorf("日志输出为文件时必须设置 log.file")
	}
	return nil
}
