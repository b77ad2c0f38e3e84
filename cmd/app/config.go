package main

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
	"github.com/sushihentaime/blognest/internal/userservice"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Environment    string   `mapstructure:"ENVIRONMENT"`
	Version        string   `mapstructure:"VERSION"`
	AdminEmail     string   `mapstructure:"ADMIN_EMAIL"`
	TrustedOrigins []string `mapstructure:"TRUSTED_ORIGINS"`
	TLSCertFile    string   `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile     string   `mapstructure:"TLS_KEY_FILE"`

	DBHost         string        `mapstructure:"POSTGRES_HOST"`
	DBPort         string        `mapstructure:"POSTGRES_PORT"`
	DBUser         string        `mapstructure:"POSTGRES_USER"`
	DBPassword     string        `mapstructure:"POSTGRES_PASSWORD"`
	DBName         string        `mapstructure:"POSTGRES_DB"`
	DBMaxOpenConns int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxIdleTime  time.Duration `mapstructure:"DB_MAX_IDLE_TIME"`
	MigrationsPath string        `mapstructure:"MIGRATIONS_PATH"`

	MailHost     string `mapstructure:"MAIL_HOST"`
	MailPort     int    `mapstructure:"MAIL_PORT"`
	MailUser     string `mapstructure:"MAIL_USER"`
	MailPassword string `mapstructure:"MAIL_PASSWORD"`
	MailSender   string `mapstructure:"MAIL_SENDER"`

	MQHost     string `mapstructure:"RABBITMQ_HOST"`
	MQPort     string `mapstructure:"RABBITMQ_PORT"`
	MQUser     string `mapstructure:"RABBITMQ_USER"`
	MQPassword string `mapstructure:"RABBITMQ_PASSWORD"`

	LimiterEnabled bool    `mapstructure:"LIMITER_ENABLED"`
	LimiterRPS     float64 `mapstructure:"LIMITER_RPS"`
	LimiterBurst   int     `mapstructure:"LIMITER_BURST"`

	GoogleUserInfoURL string `mapstructure:"GOOGLE_USERINFO_URL"`
}

var configDefaults = map[string]any{
	"PORT":                "4000",
	"ENVIRONMENT":         "development",
	"VERSION":             "1.0.0",
	"ADMIN_EMAIL":         "",
	"TRUSTED_ORIGINS":     "",
	"TLS_CERT_FILE":       "",
	"TLS_KEY_FILE":        "",
	"POSTGRES_HOST":       "localhost",
	"POSTGRES_PORT":       "5432",
	"POSTGRES_USER":       "",
	"POSTGRES_PASSWORD":   "",
	"POSTGRES_DB":         "",
	"DB_MAX_OPEN_CONNS":   25,
	"DB_MAX_IDLE_CONNS":   25,
	"DB_MAX_IDLE_TIME":    "15m",
	"MIGRATIONS_PATH":     "file://migrations",
	"MAIL_HOST":           "",
	"MAIL_PORT":           587,
	"MAIL_USER":           "",
	"MAIL_PASSWORD":       "",
	"MAIL_SENDER":         "",
	"RABBITMQ_HOST":       "localhost",
	"RABBITMQ_PORT":       "5672",
	"RABBITMQ_USER":       "guest",
	"RABBITMQ_PASSWORD":   "guest",
	"LIMITER_ENABLED":     true,
	"LIMITER_RPS":         2,
	"LIMITER_BURST":       4,
	"GOOGLE_USERINFO_URL": userservice.GoogleUserInfoURL,
}

// loadConfig reads the env file at path, if there is one, and lets environment variables
// override any key. Every key has a default so AutomaticEnv also covers keys missing from the file.
func loadConfig(path string) (*Config, error) {
	v := viper.New()

	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}

	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
