package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"

	defaultJWTSecret = "focotour-demo-secret"
)

type Config struct {
	Port            string
	JWTSecret       string
	SessionTTL      time.Duration
	AllowOrigins    []string
	LogPrefix       string
	LogstashTCPAddr string
	FrontendURL     string
	SwaggerSpecPath string

	CatalogSource string
	AuthDelay     time.Duration
	PageDelay     time.Duration

	StorageDriver string
	RedisAddr     string
	RedisPassword string
	DatabaseURL   string

	MinIOEndpoint           string
	MinIOAccessKey          string
	MinIOSecretKey          string
	MinIOUseSSL             bool
	MinIOBucketDestinations string
	MinIOPublicURL          string

	DestinationImageMaxBytes     int64
	DestinationImageMaxDimension int

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPUseTLS   bool

	ReminderLead  time.Duration
	ReminderIcon  string
	EventTimezone string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	driver := strings.ToLower(getenv("STORAGE_DRIVER", StorageMemory))
	switch driver {
	case StorageMemory, StorageRedis, StoragePostgres:
	default:
		log.Printf("config: unknown STORAGE_DRIVER %q, using %s", driver, StorageMemory)
		driver = StorageMemory
	}

	databaseURL := getenv("DATABASE_URL", "")
	if driver == StoragePostgres {
		databaseURL = must("DATABASE_URL")
	}
	redisAddr := getenv("REDIS_ADDR", "")
	if driver == StorageRedis {
		redisAddr = must("REDIS_ADDR")
	}

	return Config{
		Port:            getenv("PORT", "8080"),
		JWTSecret:       getenv("JWT_SECRET", defaultJWTSecret),
		SessionTTL:      durationEnv("SESSION_TTL", 24*time.Hour),
		AllowOrigins:    splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogPrefix:       getenv("LOG_PREFIX", "focotour"),
		LogstashTCPAddr: getenv("LOGSTASH_TCP_ADDR", ""),
		FrontendURL:     getenv("FRONTEND_URL", ""),
		SwaggerSpecPath: getenv("SWAGGER_SPEC", "docs/swagger.yaml"),

		CatalogSource: getenv("CATALOG_SOURCE", "embedded"),
		AuthDelay:     durationEnv("AUTH_DELAY", time.Second),
		PageDelay:     durationEnv("PAGE_DELAY", 500*time.Millisecond),

		StorageDriver: driver,
		RedisAddr:     redisAddr,
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		DatabaseURL:   databaseURL,

		MinIOEndpoint:           getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:          getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:          getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:             getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketDestinations: getenv("MINIO_BUCKET_DESTINATIONS", "focotour-destinations"),
		MinIOPublicURL:          getenv("MINIO_PUBLIC_URL", ""),

		DestinationImageMaxBytes:     int64Env("DESTINATION_IMAGE_MAX_BYTES", 5*1024*1024),
		DestinationImageMaxDimension: intEnv("DESTINATION_IMAGE_MAX_DIMENSION", 3840),

		SMTPHost:     getenv("SMTP_HOST", ""),
		SMTPPort:     getenv("SMTP_PORT", "587"),
		SMTPUsername: getenv("SMTP_USERNAME", ""),
		SMTPPassword: getenv("SMTP_PASSWORD", ""),
		SMTPFrom:     getenv("SMTP_FROM", ""),
		SMTPUseTLS:   getenv("SMTP_USE_TLS", "false") == "true",

		ReminderLead:  durationEnv("REMINDER_LEAD", time.Hour),
		ReminderIcon:  getenv("REMINDER_ICON", "/js/logo.png"),
		EventTimezone: getenv("EVENT_TIMEZONE", "America/Bogota"),
	}
}

// ObjectStorageEnabled reports whether MinIO credentials are configured.
func (c Config) ObjectStorageEnabled() bool {
	return c.MinIOEndpoint != "" && c.MinIOAccessKey != "" && c.MinIOSecretKey != ""
}

// EventLocation resolves EventTimezone, falling back to Colombia's fixed
// UTC-5 offset when the zone database is unavailable.
func (c Config) EventLocation() *time.Location {
	if loc, err := time.LoadLocation(c.EventTimezone); err == nil {
		return loc
	}
	log.Printf("config: unknown EVENT_TIMEZONE %q, using UTC-5", c.EventTimezone)
	return time.FixedZone("COT", -5*60*60)
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func durationEnv(k string, d time.Duration) time.Duration {
	raw := getenv(k, "")
	if raw == "" {
		return d
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		log.Printf("config: invalid %s %q, using %s", k, raw, d)
		return d
	}
	return v
}

func intEnv(k string, d int) int {
	raw := getenv(k, "")
	if raw == "" {
		return d
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("config: invalid %s %q, using %d", k, raw, d)
		return d
	}
	return v
}

func int64Env(k string, d int64) int64 {
	raw := getenv(k, "")
	if raw == "" {
		return d
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		log.Printf("config: invalid %s %q, using %d", k, raw, d)
		return d
	}
	return v
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
