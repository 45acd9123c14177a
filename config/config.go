package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`
	DB struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"db"`
	JWT struct {
		Secret string `yaml:"secret"`
		// Token lifetime in milliseconds.
		ExpirationMS int64 `yaml:"expiration_ms"`
	} `yaml:"jwt"`
	AuthService struct {
		URL string `yaml:"url"`
	} `yaml:"auth_service"`
	Telegram struct {
		Token       string `yaml:"token"`
		AdminChatID int64  `yaml:"admin_chat_id"`
	} `yaml:"telegram"`
}

// TokenTTL converts the configured expiration to a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.ExpirationMS) * time.Millisecond
}

// Load reads config/envs/<env>.yaml and applies environment overrides.
// Both servers refuse to start without a signing secret, so Load fails
// when none is configured.
func Load(env string) (*Config, error) {
	if env == "" {
		env = "local"
	}

	configPath := filepath.Join("config", "envs", env+".yaml")

	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	// Override with environment variables (Docker support)
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if ttl := os.Getenv("JWT_EXPIRATION_MS"); ttl != "" {
		ms, err := strconv.ParseInt(ttl, 10, 64)
		if err != nil {
			return nil, errors.New("JWT_EXPIRATION_MS must be an integer")
		}
		cfg.JWT.ExpirationMS = ms
	}
	if url := os.Getenv("AUTH_SERVICE_URL"); url != "" {
		cfg.AuthService.URL = url
	}
	if token := os.Getenv("TELEGRAM_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
	if chat := os.Getenv("TELEGRAM_ADMIN_CHAT_ID"); chat != "" {
		id, err := strconv.ParseInt(chat, 10, 64)
		if err != nil {
			return nil, errors.New("TELEGRAM_ADMIN_CHAT_ID must be an integer")
		}
		cfg.Telegram.AdminChatID = id
	}

	// Database overrides
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		cfg.DB.Port = port
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}

	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	if cfg.JWT.ExpirationMS <= 0 {
		cfg.JWT.ExpirationMS = 3600000
	}

	logrus.WithField("env", env).Info("configuration loaded")
	return &cfg, nil
}
