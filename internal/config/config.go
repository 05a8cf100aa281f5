package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 配置不合法
var ErrInvalidConfig = errors.New("invalid config")

// 工单存储后端
const (
	TicketBackendMemory = "memory"
	TicketBackendRedis  = "redis"
)

// Config 应用配置
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Tickets TicketsConfig `yaml:"tickets"`
	Session SessionConfig `yaml:"session"`
	CORS    CORSConfig    `yaml:"cors"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port            int           `yaml:"port"`
	Name            string        `yaml:"name"`
	Mode            string        `yaml:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// TicketsConfig 工单存储配置
type TicketsConfig struct {
	Backend string `yaml:"backend"` // memory, redis
	Key     string `yaml:"key"`
	Seed    bool   `yaml:"seed"`
}

// SessionConfig WebSocket 会话配置
type SessionConfig struct {
	HeartbeatInterval time.Duration `yaml:"heartbeatInterval"`
	HeartbeatTimeout  time.Duration `yaml:"heartbeatTimeout"`
	MaxMissedBeats    int           `yaml:"maxMissedBeats"`
}

// CORSConfig 跨域配置，为空时回显请求 Origin
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// LoadDotEnv 加载 .env 文件，文件不存在时忽略
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("加载 %s 失败: %w", p, err)
		}
	}
	return nil
}

// LoadConfig 加载配置文件，依次应用默认值、环境变量覆盖、校验
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回全默认配置
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8001
	}
	if c.Server.Name == "" {
		c.Server.Name = "copilot-api"
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Redis.Host == "" {
		c.Redis.Host = "localhost"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Tickets.Backend == "" {
		c.Tickets.Backend = TicketBackendMemory
	}
	if c.Tickets.Key == "" {
		c.Tickets.Key = "copilot:tickets"
	}
	if c.Session.HeartbeatInterval == 0 {
		c.Session.HeartbeatInterval = 30 * time.Second
	}
	if c.Session.HeartbeatTimeout == 0 {
		c.Session.HeartbeatTimeout = 60 * time.Second
	}
	if c.Session.MaxMissedBeats == 0 {
		c.Session.MaxMissedBeats = 3
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// applyEnv 用 COPILOT_* 环境变量覆盖配置
func (c *Config) applyEnv() error {
	if v := os.Getenv("COPILOT_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: COPILOT_PORT=%q", ErrInvalidConfig, v)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("COPILOT_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("COPILOT_TICKET_BACKEND"); v != "" {
		c.Tickets.Backend = v
	}
	if v := os.Getenv("COPILOT_REDIS_HOST"); v != "" {
		c.Redis.Host = v
	}
	if v := os.Getenv("COPILOT_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("COPILOT_REDIS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: COPILOT_REDIS_ENABLED=%q", ErrInvalidConfig, v)
		}
		c.Redis.Enabled = enabled
	}
	return nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: unknown server.mode %q", ErrInvalidConfig, c.Server.Mode)
	}
	switch c.Tickets.Backend {
	case TicketBackendMemory:
	case TicketBackendRedis:
		if !c.Redis.Enabled {
			return fmt.Errorf("%w: tickets.backend is redis but redis.enabled is false", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown tickets.backend %q", ErrInvalidConfig, c.Tickets.Backend)
	}
	if c.Session.HeartbeatInterval <= 0 || c.Session.HeartbeatTimeout <= 0 {
		return fmt.Errorf("%w: session heartbeat durations must be positive", ErrInvalidConfig)
	}
	if c.Session.MaxMissedBeats < 1 {
		return fmt.Errorf("%w: session.maxMissedBeats must be at least 1", ErrInvalidConfig)
	}
	return nil
}
