package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8765"`
	BoardSize  int     `yaml:"board-size" env:"BOARD_SIZE" env-default:"20"`
	Redis      Redis   `yaml:"redis"`
	Session    Session `yaml:"session"`
	Client     Client  `yaml:"client"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Session struct {
	TTL time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"1h"`
}

// Client - settings of the console client.
type Client struct {
	ServiceURL     string        `yaml:"service-url" env:"CLIENT_SERVICE_URL" env-default:"http://localhost:8080"`
	FeedURL        string        `yaml:"feed-url" env:"CLIENT_FEED_URL" env-default:"ws://localhost:8765/ws"`
	RequestTimeout time.Duration `yaml:"request-timeout" env:"CLIENT_REQUEST_TIMEOUT" env-default:"10s"`
	Mode           string        `yaml:"mode" env:"CLIENT_MODE" env-default:"remote"`
	Role           string        `yaml:"role" env:"CLIENT_ROLE" env-default:"X"`
	LogFile        string        `yaml:"log-file" env:"CLIENT_LOG_FILE" env-default:"gomoku-client.log"`
}

// MustLoad - load all configurations in config.yml file. Environment variables alone are
// used when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// ParseLogLevel - maps the log-level setting to a slog level, info by default.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
