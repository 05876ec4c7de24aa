package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server    ServerConfig              `yaml:"server"`
	RateLimit RateLimitConfig           `yaml:"rate_limit"`
	CORS      CORSConfig                `yaml:"cors"`
	Platforms map[string]PlatformConfig `yaml:"platforms"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port           int    `yaml:"port"`
	Mode           string `yaml:"mode"`            // debug 或 release
	ReadTimeout    int    `yaml:"read_timeout"`    // 读超时(秒)
	WriteTimeout   int    `yaml:"write_timeout"`   // 写超时(秒)
	MaxHeaderBytes int    `yaml:"max_header_bytes"`
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	GlobalRPS int `yaml:"global_rps"` // 全局每秒请求数
	IPRPS     int `yaml:"ip_rps"`     // 单IP每秒请求数
	Burst     int `yaml:"burst"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowedMethods []string `yaml:"allowed_methods"`
	AllowedHeaders []string `yaml:"allowed_headers"`
	MaxAge         int      `yaml:"max_age"` // 预检缓存时间(秒)
}

// PlatformConfig 平台特定配置
type PlatformConfig struct {
	Enabled      bool   `yaml:"enabled"`
	AndroidStyle string `yaml:"android_style"` // googlemaps专用: intent 或 geo
}

// LoadConfig 加载配置文件
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// 从环境变量覆盖配置
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults 设置默认值
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "debug"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.MaxHeaderBytes == 0 {
		c.Server.MaxHeaderBytes = 1 << 20
	}
	if c.RateLimit.GlobalRPS == 0 {
		c.RateLimit.GlobalRPS = 100
	}
	if c.RateLimit.IPRPS == 0 {
		c.RateLimit.IPRPS = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}
	if len(c.Platforms) == 0 {
		c.Platforms = DefaultPlatforms()
	}
}

// DefaultPlatforms 默认平台配置(全部启用)
func DefaultPlatforms() map[string]PlatformConfig {
	return map[string]PlatformConfig{
		"googlemaps": {Enabled: true, AndroidStyle: "intent"},
		"youtube":    {Enabled: true},
		"zoom":       {Enabled: true},
	}
}

// GetReadTimeout 获取读超时时间
func (c *ServerConfig) GetReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Second
}

// GetWriteTimeout 获取写超时时间
func (c *ServerConfig) GetWriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeout) * time.Second
}
