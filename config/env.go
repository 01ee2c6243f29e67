package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultDatabaseDriver = "sqlserver"
	defaultSQLiteDSN      = "mrvrecords.db"
	defaultPostgresDSN    = "host=localhost user=postgres password=postgres dbname=mrvrecords port=5432 sslmode=disable"
	defaultMySQLDSN       = "root:root@tcp(127.0.0.1:3306)/mrvrecords?charset=utf8mb4&parseTime=True&loc=Local"
	defaultConnectTimeout = "60"
	defaultAppPort        = "8000"
	defaultAppEnv         = "local"
	defaultMaxBodyBytes   = "4194304"

	// Origins of the static web front-end that consumes this API.
	defaultCORSOrigins = "https://wonderful-smoke-0751a6310.6.azurestaticapps.net," +
		"https://wonderful-smoke-0751a6310-preview.centralus.6.azurestaticapps.net"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = newStore()
)

// Load reads config/app.json and .env once. Process environment variables
// always win over both files.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func DatabaseDriver() string {
	_ = Load()

	driver := strings.ToLower(get("DB_DRIVER", defaultDatabaseDriver))
	switch driver {
	case "sqlite", "postgres", "mysql", "sqlserver":
		return driver
	default:
		return defaultDatabaseDriver
	}
}

// DatabaseDSN returns DATABASE_DSN when set. Otherwise the SQL Server DSN is
// assembled from DB_SERVER, DB_USERNAME, DB_PASSWORD and DB_NAME.
func DatabaseDSN() string {
	_ = Load()

	override := get("DATABASE_DSN", "")
	if override != "" {
		return override
	}

	switch DatabaseDriver() {
	case "postgres":
		return defaultPostgresDSN
	case "mysql":
		return defaultMySQLDSN
	case "sqlite":
		return defaultSQLiteDSN
	default:
		return sqlServerDSN()
	}
}

func sqlServerDSN() string {
	q := url.Values{}
	q.Set("database", get("DB_NAME", "master"))
	q.Set("encrypt", "true")
	q.Set("TrustServerCertificate", "false")
	q.Set("connection timeout", strconv.Itoa(int(DatabaseConnectTimeout().Seconds())))

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(get("DB_USERNAME", ""), get("DB_PASSWORD", "")),
		Host:     get("DB_SERVER", "localhost"),
		RawQuery: q.Encode(),
	}
	return u.String()
}

// DatabaseConnectTimeout is the connection-level timeout applied to the pool.
func DatabaseConnectTimeout() time.Duration {
	_ = Load()
	n, err := strconv.Atoi(get("DB_CONNECT_TIMEOUT", defaultConnectTimeout))
	if err != nil || n <= 0 {
		n = 60
	}
	return time.Duration(n) * time.Second
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// CORSAllowedOrigins returns the browser origins allowed to call the API.
func CORSAllowedOrigins() []string {
	_ = Load()
	var origins []string
	for _, o := range strings.Split(get("CORS_ALLOWED_ORIGINS", defaultCORSOrigins), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// ── Log sink ─────────────────────────────────────────────────────────────────

func LogMongoURI() string        { _ = Load(); return get("LOG_MONGO_URI", "") }
func LogMongoDatabase() string   { _ = Load(); return get("LOG_MONGO_DB", "mrvrecords") }
func LogMongoCollection() string { _ = Load(); return get("LOG_MONGO_COLLECTION", "logs") }

func newStore() *viper.Viper {
	v := viper.New()
	v.SetDefault("DB_DRIVER", defaultDatabaseDriver)
	v.SetDefault("DB_CONNECT_TIMEOUT", defaultConnectTimeout)
	v.SetDefault("APP_PORT", defaultAppPort)
	v.SetDefault("APP_ENV", defaultAppEnv)
	v.SetDefault("MAX_BODY_BYTES", defaultMaxBodyBytes)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.AutomaticEnv()
	return v
}

func loadFromFiles(configPath, envPath string) error {
	loaded := newStore()

	loaded.SetConfigFile(configPath)
	loaded.SetConfigType("json")
	if err := loaded.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("decode %s: %w", configPath, err)
	}

	loaded.SetConfigFile(envPath)
	loaded.SetConfigType("env")
	if err := loaded.MergeInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", envPath, err)
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values.GetString(key)); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
