package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/studycare/studycare-client/internal/pkg/validation"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageFile   = "file"
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageMongo  = "mongo"
)

type Config struct {
	APIURL         string        `env:"STUDYCARE_API_URL, default=http://localhost:5000/api" validate:"required,url"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,   default=0s"                         validate:"gte=0"`
	LogLevel       string        `env:"LOG_LEVEL,         default=info"`
	LogPretty      bool          `env:"LOG_PRETTY,        default=false"`
	Port           string        `env:"PORT,              default=8080"                       validate:"required"`
	UploadWorkers  int           `env:"UPLOAD_WORKERS,    default=4"                          validate:"min=1,max=64"`
	// AllowedOrigins lists browser front ends allowed to call the dashboard
	// server, comma separated. The server's own origin is always allowed.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" validate:"dive,url"`

	Storage StorageConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER, default=file" validate:"oneof=file memory redis mongo"`
	// Path is the JSON file used by the file driver; empty means the user
	// config directory.
	Path string `env:"STORAGE_PATH"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=studycare"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
	Prefix   string `env:"REDIS_PREFIX,   default=studycare:storage:"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith is Load with an explicit source of variables.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints. Call it again after applying flag
// overrides.
func (c *Config) Validate() error {
	if err := validation.Default().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
