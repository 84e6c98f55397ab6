// Package config loads application settings from config.yaml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config exposes the configuration sections. Values resolve from
// config.yaml, overridden by CLUBCONNECT_* environment variables.
type Config struct {
	Logger  LoggerConfig
	Storage StorageConfig
	Backup  BackupConfig
	SMTP    SMTPConfig
	App     AppConfig
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.clubconnect")
	v.SetEnvPrefix("CLUBCONNECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logger.debug", false)
	v.SetDefault("logger.log_to_file", false)
	v.SetDefault("logger.logs_dir", "logs")
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.dsn", "clubconnect.db")
	v.SetDefault("backup.enabled", false)
	v.SetDefault("backup.spec", "@hourly")
	v.SetDefault("backup.dir", "backups")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("app.photos_dir", "photos")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Defaults plus environment are enough to run.
	}

	return &Config{
		Logger:  LoggerConfig{v},
		Storage: StorageConfig{v},
		Backup:  BackupConfig{v},
		SMTP:    SMTPConfig{v},
		App:     AppConfig{v},
	}, nil
}

type LoggerConfig struct{ v *viper.Viper }

func (c LoggerConfig) Debug() bool     { return c.v.GetBool("logger.debug") }
func (c LoggerConfig) LogToFile() bool { return c.v.GetBool("logger.log_to_file") }
func (c LoggerConfig) LogsDir() string { return c.v.GetString("logger.logs_dir") }

type StorageConfig struct{ v *viper.Viper }

func (c StorageConfig) Driver() string { return c.v.GetString("storage.driver") }
func (c StorageConfig) DSN() string    { return c.v.GetString("storage.dsn") }

type BackupConfig struct{ v *viper.Viper }

func (c BackupConfig) Enabled() bool { return c.v.GetBool("backup.enabled") }
func (c BackupConfig) Spec() string  { return c.v.GetString("backup.spec") }
func (c BackupConfig) Dir() string   { return c.v.GetString("backup.dir") }

type SMTPConfig struct{ v *viper.Viper }

func (c SMTPConfig) Host() string     { return c.v.GetString("smtp.host") }
func (c SMTPConfig) Port() int        { return c.v.GetInt("smtp.port") }
func (c SMTPConfig) Login() string    { return c.v.GetString("smtp.login") }
func (c SMTPConfig) Password() string { return c.v.GetString("smtp.password") }
func (c SMTPConfig) From() string     { return c.v.GetString("smtp.from") }

type AppConfig struct{ v *viper.Viper }

func (c AppConfig) PhotosDir() string { return c.v.GetString("app.photos_dir") }
