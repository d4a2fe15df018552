package configs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config dimuat sekali saat start lalu dioper sebagai pointer ke setiap komponen.
type Config struct {
	Env  string
	Port string

	Database DatabaseConfig

	SharedSecret string

	Session SessionConfig
	Redis   RedisConfig
	Storage StorageConfig
	Notify  NotifyConfig
	Signup  SignupConfig

	BaseURL        string
	AdminPagesDir  string
	PublicDir      string
	CORSOrigins    []string
	RequestTimeout time.Duration
	SeedAdminsFile string
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	StatementTimeout time.Duration
	MaxOpenConns     int
	MaxIdleConns     int
	SlowThreshold    time.Duration
}

type SessionConfig struct {
	Store           string // db | redis | memory
	CookieName      string
	CookieSecure    bool
	IdleTimeout     time.Duration
	CleanupInterval time.Duration
	HashKey         string
	BlockKey        string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type StorageConfig struct {
	Driver        string // oss | local | memory
	MaxUploadSize int64
	Prefix        string

	LocalDir     string
	LocalBaseURL string

	OSSEndpoint      string
	OSSAccessKey     string
	OSSSecretKey     string
	OSSSecurityToken string
	OSSBucket        string
	OSSPublicBase    string

	WebPQuality   float32
	WebPMaxWidth  int
	WebPMaxHeight int

	ReaperSchedule    string
	ReaperMaxAttempts int
}

type NotifyConfig struct {
	Driver          string // resend | telegram | log
	OperatorAddress string
	MailFrom        string
	ResendAPIKey    string
	TelegramToken   string
	TelegramChatID  int64
}

type SignupConfig struct {
	LinkSecret string
	LinkTTL    time.Duration
}

// DSN menyusun connection string postgres dari DB_* bila DATABASE_URL kosong.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=schoolsite",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
	if d.StatementTimeout > 0 {
		dsn += fmt.Sprintf("&options=-c%%20statement_timeout%%3D%d", d.StatementTimeout.Milliseconds())
	}
	return dsn
}

// LoadEnv memuat .env kalau ada; ENV sistem tetap menang.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}
}

// Load membaca seluruh konfigurasi dari environment.
func Load() (*Config, error) {
	cfg := &Config{
		Env:  getenv("APP_ENV", "development"),
		Port: getenv("PORT", "3000"),

		Database: DatabaseConfig{
			URL:              getenv("DATABASE_URL", ""),
			Host:             getenv("DB_HOST", "127.0.0.1"),
			Port:             getenv("DB_PORT", "5432"),
			User:             getenv("DB_USER", "postgres"),
			Password:         getenv("DB_PASSWORD", ""),
			Name:             getenv("DB_NAME", "schoolsite"),
			SSLMode:          getenv("DB_SSLMODE", "disable"),
			StatementTimeout: getenvDuration("DB_STATEMENT_TIMEOUT", 3*time.Second),
			MaxOpenConns:     getenvInt("DB_MAX_OPEN_CONNS", 20),
			MaxIdleConns:     getenvInt("DB_MAX_IDLE_CONNS", 10),
			SlowThreshold:    getenvDuration("DB_SLOW_THRESHOLD", 200*time.Millisecond),
		},

		SharedSecret: os.Getenv("SHARED_PASSWORD"),

		Session: SessionConfig{
			Store:           strings.ToLower(getenv("SESSION_STORE", "db")),
			CookieName:      getenv("SESSION_COOKIE_NAME", "admin_sid"),
			CookieSecure:    getenvBool("SESSION_COOKIE_SECURE", false),
			IdleTimeout:     getenvDuration("SESSION_IDLE_TIMEOUT", 5*time.Minute),
			CleanupInterval: getenvDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute),
			HashKey:         os.Getenv("SESSION_HASH_KEY"),
			BlockKey:        os.Getenv("SESSION_BLOCK_KEY"),
		},

		Redis: RedisConfig{
			Addr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
		},

		Storage: StorageConfig{
			Driver:            strings.ToLower(getenv("STORAGE_DRIVER", "local")),
			MaxUploadSize:     int64(getenvInt("MAX_UPLOAD_SIZE", 5*1024*1024)),
			Prefix:            getenv("STORAGE_PREFIX", "school"),
			LocalDir:          getenv("STORAGE_LOCAL_DIR", "./uploads"),
			LocalBaseURL:      getenv("STORAGE_LOCAL_BASE_URL", "/uploads"),
			OSSEndpoint:       os.Getenv("ALI_OSS_ENDPOINT"),
			OSSAccessKey:      os.Getenv("ALI_OSS_ACCESS_KEY"),
			OSSSecretKey:      os.Getenv("ALI_OSS_SECRET_KEY"),
			OSSSecurityToken:  os.Getenv("ALI_OSS_SECURITY_TOKEN"),
			OSSBucket:         os.Getenv("ALI_OSS_BUCKET"),
			OSSPublicBase:     os.Getenv("ALI_OSS_PUBLIC_BASE"),
			WebPQuality:       getenvFloat("IMAGE_WEBP_QUALITY", 80),
			WebPMaxWidth:      getenvInt("IMAGE_WEBP_MAX_W", 1600),
			WebPMaxHeight:     getenvInt("IMAGE_WEBP_MAX_H", 1600),
			ReaperSchedule:    getenv("ORPHAN_REAPER_SCHEDULE", "15 2 * * *"),
			ReaperMaxAttempts: getenvInt("ORPHAN_REAPER_MAX_ATTEMPTS", 5),
		},

		Notify: NotifyConfig{
			Driver:          strings.ToLower(getenv("NOTIFY_DRIVER", "log")),
			OperatorAddress: os.Getenv("ADMIN_EMAIL"),
			MailFrom:        getenv("MAIL_FROM", "School Admin <onboarding@resend.dev>"),
			ResendAPIKey:    os.Getenv("RESEND_API_KEY"),
			TelegramToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
			TelegramChatID:  int64(getenvInt("TELEGRAM_CHAT_ID", 0)),
		},

		Signup: SignupConfig{
			LinkSecret: os.Getenv("SIGNUP_LINK_SECRET"),
			LinkTTL:    getenvDuration("SIGNUP_LINK_TTL", 72*time.Hour),
		},

		BaseURL:        strings.TrimRight(getenv("BASE_URL", "http://localhost:3000"), "/"),
		AdminPagesDir:  getenv("ADMIN_PAGES_DIR", "./web/admin"),
		PublicDir:      getenv("PUBLIC_DIR", "./web/public"),
		CORSOrigins:    splitList(getenv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:5500")),
		RequestTimeout: getenvDuration("REQUEST_TIMEOUT", 15*time.Second),
		SeedAdminsFile: os.Getenv("SEED_ADMINS_FILE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if strings.TrimSpace(c.SharedSecret) == "" {
		errs = append(errs, errors.New("SHARED_PASSWORD is required"))
	}
	if c.Session.IdleTimeout <= 0 {
		errs = append(errs, errors.New("SESSION_IDLE_TIMEOUT must be positive"))
	}
	switch c.Session.Store {
	case "db", "redis", "memory":
	default:
		errs = append(errs, fmt.Errorf("SESSION_STORE %q is not supported", c.Session.Store))
	}
	switch c.Storage.Driver {
	case "oss":
		if c.Storage.OSSEndpoint == "" || c.Storage.OSSAccessKey == "" || c.Storage.OSSSecretKey == "" || c.Storage.OSSBucket == "" {
			errs = append(errs, errors.New("ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET are required for STORAGE_DRIVER=oss"))
		}
	case "local", "memory":
	default:
		errs = append(errs, fmt.Errorf("STORAGE_DRIVER %q is not supported", c.Storage.Driver))
	}
	switch c.Notify.Driver {
	case "resend":
		if c.Notify.ResendAPIKey == "" || c.Notify.OperatorAddress == "" {
			errs = append(errs, errors.New("RESEND_API_KEY and ADMIN_EMAIL are required for NOTIFY_DRIVER=resend"))
		}
	case "telegram":
		if c.Notify.TelegramToken == "" || c.Notify.TelegramChatID == 0 {
			errs = append(errs, errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID are required for NOTIFY_DRIVER=telegram"))
		}
	case "log":
	default:
		errs = append(errs, fmt.Errorf("NOTIFY_DRIVER %q is not supported", c.Notify.Driver))
	}
	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

// getenvDuration menerima "90s"/"5m" atau KEY_SECONDS=<int>.
func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float32) float32 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "":
		return fallback
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
