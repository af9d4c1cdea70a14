package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// CounterBackendRedis moves counters out of the primary database
const CounterBackendRedis = "redis"

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	MongoDatabase string

	CounterBackend  string
	RedisURL        string
	VisitCounterKey string

	AllowedOrigins   []string
	AllowCredentials bool

	SMTPHost     string
	SMTPPort     int
	EmailUser    string
	EmailPass    string
	MailReceiver string

	AdminUsername     string
	AdminPasswordHash string

	LogFormat string

	// HashPassword, when set, asks main to print a bcrypt digest and exit
	HashPassword string
}

// MailEnabled reports whether notification mail can be sent
func (c Config) MailEnabled() bool {
	return c.EmailUser != "" && c.EmailPass != "" && c.MailReceiver != ""
}

// ParseFlags validates flags and fills the rest from the environment.
// A .env file in the working directory is loaded first; it never overrides
// variables that are already set.
func ParseFlags(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var origins, credentials string

	fs := flag.NewFlagSet("college-site", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or mongo)")
	fs.StringVar(&cfg.MongoDatabase, "mongo-db", "", "MongoDB database name")
	fs.StringVar(&cfg.CounterBackend, "counter", "", "Counter backend (empty for the main database, or redis)")
	fs.StringVar(&cfg.RedisURL, "redis", "", "Redis URL for the counter backend")
	fs.StringVar(&cfg.VisitCounterKey, "visit-key", "", "Visit counter key")
	fs.StringVar(&origins, "origins", "", "Comma-separated CORS allow-list")
	fs.StringVar(&credentials, "credentials", "", "Allow credentialed CORS requests (true/false)")
	fs.StringVar(&cfg.SMTPHost, "smtp-host", "", "SMTP host")
	fs.IntVar(&cfg.SMTPPort, "smtp-port", 0, "SMTP port")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")

	// Utility mode
	fs.StringVar(&cfg.HashPassword, "hash-password", "", "Print a bcrypt hash of the given password and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.HashPassword != "" {
		return cfg, nil
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3001 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	switch cfg.DatabaseType {
	case "sqlite", "postgres", "mongo":
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" && cfg.DatabaseType == "mongo" {
		cfg.DatabaseURL = os.Getenv("MONGODB_URI")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = envOr("MONGODB_DATABASE", "college")
	}

	// Counters
	if cfg.CounterBackend == "" {
		cfg.CounterBackend = os.Getenv("COUNTER_BACKEND")
	}
	if cfg.CounterBackend != "" && cfg.CounterBackend != CounterBackendRedis {
		return Config{}, fmt.Errorf("unsupported COUNTER_BACKEND %q", cfg.CounterBackend)
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}
	if cfg.CounterBackend == CounterBackendRedis && cfg.RedisURL == "" {
		return Config{}, errors.New("REDIS_URL required when COUNTER_BACKEND=redis")
	}
	if cfg.VisitCounterKey == "" {
		cfg.VisitCounterKey = envOr("VISIT_COUNTER_KEY", "site_visits")
	}

	// CORS
	if origins == "" {
		origins = envOr("ALLOWED_ORIGINS", "http://localhost:3000")
	}
	cfg.AllowedOrigins = SplitList(origins)

	if credentials == "" {
		credentials = envOr("CORS_ALLOW_CREDENTIALS", "true")
	}
	allow, err := strconv.ParseBool(credentials)
	if err != nil {
		return Config{}, fmt.Errorf("invalid CORS_ALLOW_CREDENTIALS: %w", err)
	}
	cfg.AllowCredentials = allow

	// Mail (optional - disabled when credentials are missing)
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = envOr("SMTP_HOST", "smtp.gmail.com")
	}
	if cfg.SMTPPort == 0 {
		port, err := strconv.Atoi(envOr("SMTP_PORT", "587"))
		if err != nil {
			return Config{}, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTPPort = port
	}
	cfg.EmailUser = os.Getenv("EMAIL_USER")
	cfg.EmailPass = os.Getenv("EMAIL_PASS")
	cfg.MailReceiver = os.Getenv("COLLEGE_EMAIL_RECEIVER")

	// Admin login (optional - disabled when no hash is configured)
	cfg.AdminUsername = envOr("ADMIN_USERNAME", "admin")
	cfg.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")

	if cfg.LogFormat == "" {
		cfg.LogFormat = envOr("LOG_FORMAT", "text")
	}

	return cfg, nil
}

// SplitList splits a comma-separated list, trimming spaces and dropping
// empty items.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
