package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	Environment     string
	SupabaseURL     string
	SupabaseKey     string // service role key, admin API only
	SupabaseAnonKey string
	SupabaseDBURL   string
	SupabaseJWKSURL string // Constructed from SupabaseURL + /auth/v1/.well-known/jwks.json
	CORSOrigins     string
	TablePrefix     string
	// Session and auth
	SessionSecret     string
	SiteURL           string
	SignupRedirectURL string
	// Rendering
	ViewCacheTTL time.Duration // 0 disables view caching
	// Public form protection
	ContactRatePerMinute int
	TrustedProxies       []string // IPs or CIDRs whose X-Forwarded-For is believed
	// Logging
	LogDir      string // empty = stdout only
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	tablePrefix := getTablePrefix(env)
	supabaseURL := strings.TrimRight(getEnv("SUPABASE_URL", ""), "/")

	// Construct JWKS URL from Supabase URL
	jwksURL := supabaseURL + "/auth/v1/.well-known/jwks.json"

	siteURL := getEnv("SITE_URL", "http://localhost:3000")

	return &Config{
		Port:                 getEnv("PORT", "8080"),
		Environment:          env,
		SupabaseURL:          supabaseURL,
		SupabaseKey:          getEnv("SUPABASE_KEY", ""),
		SupabaseAnonKey:      getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseDBURL:        getEnv("SUPABASE_DB_URL", ""),
		SupabaseJWKSURL:      jwksURL,
		CORSOrigins:          getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:          tablePrefix,
		SessionSecret:        getEnv("SESSION_SECRET", "dev-session-secret-change-me-before-deploying"),
		SiteURL:              siteURL,
		SignupRedirectURL:    getEnv("SIGNUP_REDIRECT_URL", siteURL+"/admin"),
		ViewCacheTTL:         getDuration("VIEW_CACHE_TTL", 5*time.Minute),
		ContactRatePerMinute: getInt("CONTACT_RATE_PER_MINUTE", 5),
		TrustedProxies:       getList("TRUSTED_PROXIES"),
		LogDir:               getEnv("LOG_DIR", ""),
		LogMaxFiles:          getInt("LOG_MAX_FILES", 10),
	}
}

// IsConfigured reports whether the Supabase connection settings are present.
func (c *Config) IsConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != "" && c.SupabaseDBURL != ""
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getList splits a comma-separated value, dropping blanks.
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getDuration accepts Go duration strings ("90s", "5m") or a bare number of seconds.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
