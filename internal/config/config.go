package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port      int    `yaml:"port"`
	GinMode   string `yaml:"gin_mode"`
	StaticDir string `yaml:"static_dir"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	TTL           string `yaml:"ttl"`
	SweepInterval string `yaml:"sweep_interval"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type ClassifierConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

type ConfigFile struct {
	App        AppConfig        `yaml:"app"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Session    SessionConfig    `yaml:"session"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	Classifier ClassifierConfig `yaml:"classifier"`
}

type Config struct {
	Port              string
	GinMode           string
	StaticDir         string
	DSN               string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	SessionTTL        time.Duration
	SweepInterval     time.Duration
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	MailFrom          string
	ClassifierURL     string
	ClassifierTimeout time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.Session.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	sweepInterval, err := time.ParseDuration(configFile.Session.SweepInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid session sweep interval: %w", err)
	}

	classifierTimeout, err := time.ParseDuration(configFile.Classifier.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid classifier timeout: %w", err)
	}

	return &Config{
		Port:              fmt.Sprintf("%d", configFile.App.Port),
		GinMode:           configFile.App.GinMode,
		StaticDir:         configFile.App.StaticDir,
		DSN:               configFile.Database.DSN,
		RedisAddr:         configFile.Redis.Addr,
		RedisPassword:     configFile.Redis.Password,
		RedisDB:           configFile.Redis.DB,
		SessionTTL:        sessionTTL,
		SweepInterval:     sweepInterval,
		SMTPHost:          configFile.SMTP.Host,
		SMTPPort:          configFile.SMTP.Port,
		SMTPUsername:      configFile.SMTP.Username,
		SMTPPassword:      env("SMTP_PASS", configFile.SMTP.Password),
		MailFrom:          configFile.SMTP.From,
		ClassifierURL:     configFile.Classifier.URL,
		ClassifierTimeout: classifierTimeout,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
