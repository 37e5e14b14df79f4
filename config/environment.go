package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverFile   = "file"
	DriverSQL    = "sql"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config is the service configuration. Precedence, lowest first:
// defaults, JSONC config file, environment, command-line flags.
type Config struct {
	Port           string   `json:"port"`
	StorageDriver  string   `json:"storage_driver"`
	StorageKey     string   `json:"storage_key"`
	DataDir        string   `json:"data_dir"`
	DBURL          string   `json:"db_url"`
	RedisAddr      string   `json:"redis_addr"`
	RedisPassword  string   `json:"redis_password"`
	RedisDB        int      `json:"redis_db"`
	OpenAIAPIKey   string   `json:"openai_api_key"`
	OpenAIBaseURL  string   `json:"openai_base_url"`
	OpenAIModel    string   `json:"openai_model"`
	OpenAITimeout  Duration `json:"openai_timeout"`
	AllowedOrigins []string `json:"allowed_origins"`
	LogMode        string   `json:"log_mode"`
}

func Defaults() Config {
	return Config{
		Port:           "8080",
		StorageDriver:  DriverFile,
		StorageKey:     "studySyncData",
		DataDir:        ".studysync",
		DBURL:          "studysync.db",
		RedisAddr:      "localhost:6379",
		OpenAIBaseURL:  "https://api.openai.com",
		OpenAIModel:    "gpt-4o-mini",
		OpenAITimeout:  Duration(60 * time.Second),
		AllowedOrigins: []string{"http://localhost:3000"},
		LogMode:        "development",
	}
}

// ApplyEnv overlays every variable that is set and non-empty.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	str := func(name string, dst *string) {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			*dst = v
		}
	}

	str("PORT", &c.Port)
	str("STORAGE_DRIVER", &c.StorageDriver)
	str("STORAGE_KEY", &c.StorageKey)
	str("DATA_DIR", &c.DataDir)
	str("DB_URL", &c.DBURL)
	str("REDIS_ADDR", &c.RedisAddr)
	str("REDIS_PASSWORD", &c.RedisPassword)
	str("OPENAI_API_KEY", &c.OpenAIAPIKey)
	str("OPENAI_BASE_URL", &c.OpenAIBaseURL)
	str("OPENAI_MODEL", &c.OpenAIModel)
	str("LOG_MODE", &c.LogMode)

	if v := strings.TrimSpace(getenv("REDIS_DB")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.RedisDB = n
		}
	}
	if v := strings.TrimSpace(getenv("OPENAI_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.OpenAITimeout = Duration(time.Duration(n) * time.Second)
		}
	}
	if v := strings.TrimSpace(getenv("ALLOWED_ORIGINS")); v != "" {
		c.AllowedOrigins = splitList(v)
	}
}

// IsProduction reports whether APP_ENV marks a production deployment, in
// which case no .env file is loaded.
func IsProduction(getenv func(string) string) bool {
	if getenv == nil {
		getenv = os.Getenv
	}
	switch strings.ToLower(strings.TrimSpace(getenv("APP_ENV"))) {
	case "prod", "production":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
