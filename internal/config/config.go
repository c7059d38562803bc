package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	CompanySourceFixture = "fixture"
	CompanySourceFile    = "file"
	CompanySourceMySQL   = "mysql"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Company  CompanyConfig  `yaml:"company"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// CompanyConfig selects where the company aggregate comes from.
type CompanyConfig struct {
	Source      string `yaml:"source"`
	Name        string `yaml:"name"`
	FixturePath string `yaml:"fixturePath"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", "10s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	v.SetDefault("SERVER_IDLE_TIMEOUT", "30s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "companykata")
	v.SetDefault("DB_PASSWORD", "secret")
	v.SetDefault("DB_NAME", "companykata")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("COMPANY_SOURCE", CompanySourceFixture)
	v.SetDefault("COMPANY_NAME", "Bloggs Shed Supplies")
	v.SetDefault("COMPANY_FIXTURE_PATH", "")

	durations := map[string]time.Duration{}
	for _, key := range []string{
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
		"SERVER_SHUTDOWN_TIMEOUT", "DB_CONN_MAX_LIFETIME",
	} {
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", key, err)
		}
		durations[key] = d
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ReadTimeout:     durations["SERVER_READ_TIMEOUT"],
			WriteTimeout:    durations["SERVER_WRITE_TIMEOUT"],
			IdleTimeout:     durations["SERVER_IDLE_TIMEOUT"],
			ShutdownTimeout: durations["SERVER_SHUTDOWN_TIMEOUT"],
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: durations["DB_CONN_MAX_LIFETIME"],
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Company: CompanyConfig{
			Source:      v.GetString("COMPANY_SOURCE"),
			Name:        v.GetString("COMPANY_NAME"),
			FixturePath: v.GetString("COMPANY_FIXTURE_PATH"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills the settings a config file left out.
func (c *Config) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Company.Source == "" {
		c.Company.Source = CompanySourceFixture
	}
	if c.Company.Name == "" {
		c.Company.Name = "Bloggs Shed Supplies"
	}
}

func (c *Config) Validate() error {
	switch c.Company.Source {
	case CompanySourceFixture, CompanySourceMySQL:
	case CompanySourceFile:
		if c.Company.FixturePath == "" {
			return fmt.Errorf("company source %q needs a fixture path", c.Company.Source)
		}
	default:
		return fmt.Errorf("unknown company source %q", c.Company.Source)
	}
	return nil
}
