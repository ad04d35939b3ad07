package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Address     string        `env:"ADDRESS"`
	DatabaseDSN string        `env:"DATABASE_URI"`
	RedisAddr   string        `env:"REDIS_ADDR"`
	FolderPath  string        `env:"FOLDER_PATH"`
	SessionTTL  time.Duration `env:"SESSION_TTL"`
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.Address, "a", cfg.Address, "адрес HTTP-сервера host:port")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "адрес Redis host:port")
	flag.StringVar(&cfg.FolderPath, "folder", cfg.FolderPath, "каталог хранения файлов")
	flag.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "время жизни токена сессии")

	flag.Parse()

	// Defaults
	// validate Address: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.Address) {
		cfg.Address = "localhost:5000"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.FolderPath == "" {
		cfg.FolderPath = "/tmp/files_manager"
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}

	return cfg
}
