package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Session    SessionConfig    `mapstructure:"session"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	SMTP       SMTPConfig       `mapstructure:"smtp"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}

type SessionConfig struct {
	WorkflowTTLMinutes   int `mapstructure:"workflow_ttl_minutes"`
	SweepIntervalMinutes int `mapstructure:"sweep_interval_minutes"`
}

// SimulationConfig controls the artificial latency applied to the demo's
// "network" operations.
type SimulationConfig struct {
	AnalysisLatencyMS int `mapstructure:"analysis_latency_ms"`
	SlotsLatencyMS    int `mapstructure:"slots_latency_ms"`
	BookingLatencyMS  int `mapstructure:"booking_latency_ms"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// envOverrides are the settings that may come from the environment,
// taking precedence over the config file.
type envOverrides struct {
	Port      int    `envconfig:"PORT"`
	JWTSecret string `envconfig:"JWT_SECRET"`
	SMTPHost  string `envconfig:"SMTP_HOST"`
	SMTPPass  string `envconfig:"SMTP_PASSWORD"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("clinic", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.Port != 0 {
		config.Server.Port = env.Port
	}
	if env.JWTSecret != "" {
		config.JWT.Secret = env.JWTSecret
	}
	if env.SMTPHost != "" {
		config.SMTP.Host = env.SMTPHost
	}
	if env.SMTPPass != "" {
		config.SMTP.Password = env.SMTPPass
	}

	return &config, nil
}

func (c *Config) ServerTimeout() time.Duration {
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}

func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWT.ExpiryHours) * time.Hour
}

func (c *Config) WorkflowTTL() time.Duration {
	return time.Duration(c.Session.WorkflowTTLMinutes) * time.Minute
}

func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Session.SweepIntervalMinutes) * time.Minute
}

func (c *Config) AnalysisLatency() time.Duration {
	return time.Duration(c.Simulation.AnalysisLatencyMS) * time.Millisecond
}

func (c *Config) SlotsLatency() time.Duration {
	return time.Duration(c.Simulation.SlotsLatencyMS) * time.Millisecond
}

func (c *Config) BookingLatency() time.Duration {
	return time.Duration(c.Simulation.BookingLatencyMS) * time.Millisecond
}
