package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Templates TemplatesConfig
	Static    StaticConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

// TemplatesConfig holds the paths of the two template files. The paths are
// fixed at startup; the files themselves are re-read on every request so
// template edits take effect without a restart.
type TemplatesConfig struct {
	QuizPath string
	MetaPath string
}

type StaticConfig struct {
	Dir string
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("server.body_limit", 10*1024*1024)
	viper.SetDefault("templates.quiz_path", "templates/xml_template.xml")
	viper.SetDefault("templates.meta_path", "templates/meta_block.xml")
	viper.SetDefault("static.dir", "static")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	// Environment variable overrides, matching the names the service has
	// always been deployed with.
	viper.AutomaticEnv()
	viper.BindEnv("server.port", "SERVER_PORT", "PORT")
	viper.BindEnv("templates.quiz_path", "XML_TEMPLATE_PATH")
	viper.BindEnv("templates.meta_path", "META_BLOCK_PATH")
	viper.BindEnv("static.dir", "STATIC_DIR")
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.env", "ENV")

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; env vars and defaults cover everything.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit"),
		},
		Templates: TemplatesConfig{
			QuizPath: viper.GetString("templates.quiz_path"),
			MetaPath: viper.GetString("templates.meta_path"),
		},
		Static: StaticConfig{
			Dir: viper.GetString("static.dir"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	return config, nil
}
