package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Бэкенды хранилища данных и картинок
const (
	StoreSQL       = "sql"
	StoreFirestore = "firestore"

	ImageLocal      = "local"
	ImageCloudinary = "cloudinary"
	ImageS3         = "s3"
	ImageFirebase   = "firebase"
)

type Config struct {
	// Server-side settings
	DatabaseDSN   string `env:"DATABASE_URI"`
	AuthSecret    string `env:"AUTH_SECRET"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	StoreBackend  string `env:"STORE_BACKEND"`
	CORSOrigins   string `env:"CORS_ORIGINS"`

	// Firebase / Firestore
	FirebaseProjectID   string `env:"FIREBASE_PROJECT_ID"`
	FirebaseCredentials string `env:"FIREBASE_CREDENTIALS"`
	FirebaseBucket      string `env:"FIREBASE_BUCKET"`

	// Images
	ImageStore    string `env:"IMAGE_STORE"`
	ImageDir      string `env:"IMAGE_DIR"`
	ImageMaxMB    int    `env:"IMAGE_MAX_MB"`
	CloudinaryURL string `env:"CLOUDINARY_URL"`

	AWSRegion          string        `env:"AWS_REGION"`
	AWSS3Bucket        string        `env:"AWS_S3_BUCKET"`
	AWSS3Endpoint      string        `env:"AWS_S3_ENDPOINT"`
	AWSAccessKeyID     string        `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string        `env:"AWS_SECRET_ACCESS_KEY"`
	AWSS3Presign       bool          `env:"AWS_S3_PRESIGN"`
	AWSS3URLLifetime   time.Duration `env:"AWS_S3_URL_LIFETIME"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL  string `env:"-"`
	SessionDir string `env:"SESSION_DIR"`
	Version    bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи cookie админа")
	flag.StringVar(&cfg.StoreBackend, "store", cfg.StoreBackend, "хранилище данных: sql|firestore")
	flag.StringVar(&cfg.ImageStore, "images", cfg.ImageStore, "хранилище картинок: local|cloudinary|s3|firebase")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the kiosk server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.SessionDir, "session-dir", cfg.SessionDir, "directory for the client session state")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "redcross"
	}
	cfg.StoreBackend = strings.ToLower(cfg.StoreBackend)
	if cfg.StoreBackend != StoreFirestore {
		cfg.StoreBackend = StoreSQL
	}
	switch cfg.ImageStore = strings.ToLower(cfg.ImageStore); cfg.ImageStore {
	case ImageCloudinary, ImageS3, ImageFirebase:
	default:
		cfg.ImageStore = ImageLocal
	}
	if cfg.ImageDir == "" {
		cfg.ImageDir = "images"
	}
	if cfg.ImageMaxMB <= 0 {
		cfg.ImageMaxMB = 5
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}
	if cfg.AWSS3URLLifetime <= 0 {
		cfg.AWSS3URLLifetime = 24 * time.Hour
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	if cfg.SessionDir == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.SessionDir = filepath.Join(dir, "giftkiosk")
		} else {
			home, _ := os.UserHomeDir()
			cfg.SessionDir = filepath.Join(home, ".giftkiosk")
		}
	}
}

// AllowedOrigins разбирает CORS_ORIGINS (через запятую). Пусто — только свой origin.
func (cfg *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(cfg.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// ImageMaxBytes — предел размера загружаемой картинки.
func (cfg *Config) ImageMaxBytes() int64 {
	return int64(cfg.ImageMaxMB) * 1024 * 1024
}
