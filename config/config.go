package config

import (
    "strings"
    "time"

    "github.com/spf13/viper"
)

// Config 全局配置
type Config struct {
    Server    ServerConfig    `mapstructure:"server"`
    Database  DatabaseConfig  `mapstructure:"database"`
    Redis     RedisConfig     `mapstructure:"redis"`
    JWT       JWTConfig       `mapstructure:"jwt"`
    RateLimit RateLimitConfig `mapstructure:"ratelimit"`
    Sentry    SentryConfig    `mapstructure:"sentry"`
}

type ServerConfig struct {
    Addr string `mapstructure:"addr"`
    Mode string `mapstructure:"mode"` // debug, release
    Seed bool   `mapstructure:"seed"` // 启动时写入演示数据
}

type DatabaseConfig struct {
    Driver string `mapstructure:"driver"` // sqlite, postgres
    DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
    Addr       string        `mapstructure:"addr"`
    DB         int           `mapstructure:"db"`
    SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type JWTConfig struct {
    Secret string        `mapstructure:"secret"`
    TTL    time.Duration `mapstructure:"ttl"`
}

type RateLimitConfig struct {
    RPS   float64 `mapstructure:"rps"`
    Burst int     `mapstructure:"burst"`
}

type SentryConfig struct {
    DSN string `mapstructure:"dsn"`
}

// Load 读取配置：config.yaml 可选，环境变量 MALL_ 前缀覆盖
func Load() (*Config, error) {
    v := viper.New()
    v.SetConfigName("config")
    v.SetConfigType("yaml")
    v.AddConfigPath(".")
    v.AddConfigPath("./config")

    v.SetDefault("server.addr", ":8080")
    v.SetDefault("server.mode", "debug")
    v.SetDefault("server.seed", true)
    v.SetDefault("database.driver", "sqlite")
    v.SetDefault("database.dsn", "mall.db")
    v.SetDefault("redis.addr", "localhost:6379")
    v.SetDefault("redis.db", 0)
    v.SetDefault("redis.session_ttl", 24*time.Hour)
    v.SetDefault("jwt.secret", "dev-please-change")
    v.SetDefault("jwt.ttl", 12*time.Hour)
    v.SetDefault("ratelimit.rps", 5.0)
    v.SetDefault("ratelimit.burst", 10)
    v.SetDefault("sentry.dsn", "")

    v.SetEnvPrefix("MALL")
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    if err := v.ReadInConfig(); err != nil {
        // 配置文件缺失时走默认值
        if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
            return nil, err
        }
    }

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, err
    }
    return &cfg, nil
}
