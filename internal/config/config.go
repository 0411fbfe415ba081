package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	DSN     string        `yaml:"dsn" env:"DATABASE_URL" env-required:"true"`
	HTTP    HTTPConfig    `yaml:"http"`
	Auth    AuthConfig    `yaml:"auth"`
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis"`
	Cache   CacheConfig   `yaml:"cache"`
}

type HTTPConfig struct {
	Host        string        `yaml:"host" env:"HTTP_HOST"`
	Port        string        `yaml:"port" env:"PORT" env-default:"8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
	// LazyInit defers building the application to the first request.
	LazyInit    bool     `yaml:"lazy_init" env:"HTTP_LAZY_INIT"`
	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:","`
}

type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AccessTTL     time.Duration `yaml:"access_ttl" env-default:"1h"`
	RefreshTTL    time.Duration `yaml:"refresh_ttl" env-default:"168h"`
	LoginRate     float64       `yaml:"login_rate" env-default:"5"` // requests per second per IP
	SessionSecret string        `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`
}

type StorageConfig struct {
	Driver      string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"local"` // local or supabase
	BaseDir     string `yaml:"base_dir" env-default:"./uploads"`
	BaseURL     string `yaml:"base_url" env-default:"http://localhost:8080/uploads"`
	SupabaseURL string `yaml:"supabase_url" env:"SUPABASE_URL"`
	ServiceKey  string `yaml:"service_key" env:"SUPABASE_SERVICE_KEY"`
	MaxSize     int64  `yaml:"max_size" env-default:"10485760"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type CacheConfig struct {
	DashboardTTL time.Duration `yaml:"dashboard_ttl" env-default:"5m"`
	Cleanup      time.Duration `yaml:"cleanup" env-default:"10m"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	return MustLoadPath(path)
}

func MustLoadPath(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

// Load reads configPath, letting variables from an optional .env file and
// the environment override it.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &PathError{Path: configPath}
	}

	// .env is optional; an existing environment variable always wins.
	_ = godotenv.Load()

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, &ReadError{Err: err}
	}

	return &cfg, nil
}

type PathError struct {
	Path string
}

func (e *PathError) Error() string {
	return "config file does not exist: " + e.Path
}

type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return "cannot read config: " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

func fetchConfigPath() string {
	var res string

	// --config="path/to/config.yaml"
	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
