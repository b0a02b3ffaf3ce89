// Package config loads the application configuration from a yaml file and
// environment variables using cleanenv.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// watch pipeline, registry directory refresh, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"domainwatch" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Watch contains the watch pipeline tunables
	Watch struct {
		// StaleAfter is how old a stored snapshot may get before a watch run refreshes it
		StaleAfter time.Duration `env:"WATCH_STALE_AFTER" env-default:"168h" yaml:"staleAfter"`
		// CloseWatchDays is the number of days before expiration within which a
		// domain is refreshed on every run regardless of staleness
		CloseWatchDays int `env:"WATCH_CLOSE_WATCH_DAYS" env-default:"7" yaml:"closeWatchDays"`
		// LookupTimeout bounds a single registry lookup
		LookupTimeout time.Duration `env:"WATCH_LOOKUP_TIMEOUT" env-default:"15s" yaml:"lookupTimeout"`
		// NotifyTimeout bounds a single notification delivery
		NotifyTimeout time.Duration `env:"WATCH_NOTIFY_TIMEOUT" env-default:"10s" yaml:"notifyTimeout"`
	} `yaml:"watch"`

	// Refresh contains the registry directory refresh configurations
	Refresh struct {
		// TLDListURL is the IANA top-level domain list endpoint
		TLDListURL string `env:"REFRESH_TLD_LIST_URL" env-default:"https://data.iana.org/TLD/tlds-alpha-by-domain.txt" yaml:"tldListURL"` //nolint: lll
		// GTLDListURL is the ICANN gTLD registry endpoint
		GTLDListURL string `env:"REFRESH_GTLD_LIST_URL" env-default:"https://www.icann.org/resources/registries/gtlds/v2/gtlds.json" yaml:"gtldListURL"` //nolint: lll
		// BootstrapURL is the IANA RDAP bootstrap registry endpoint
		BootstrapURL string `env:"REFRESH_BOOTSTRAP_URL" env-default:"https://data.iana.org/rdap/dns.json" yaml:"bootstrapURL"` //nolint: lll
		// Interval is how often the periodic directory refresh job runs
		Interval time.Duration `env:"REFRESH_INTERVAL" env-default:"24h" yaml:"interval"`
		// Timeout bounds a single source download
		Timeout time.Duration `env:"REFRESH_TIMEOUT" env-default:"1m" yaml:"timeout"`
	} `yaml:"refresh"`

	// Limits contains the limited-mode creation policy configurations
	Limits struct {
		// Enabled toggles enforcement of the creation policy
		Enabled bool `env:"LIMITS_ENABLED" env-default:"true" yaml:"enabled"`
		// MaxWatchLists is the maximum number of watchlists per user
		MaxWatchLists int `env:"LIMITS_MAX_WATCH_LISTS" env-default:"3" yaml:"maxWatchLists"`
		// MaxWatchListDomains is the maximum number of domains per watchlist
		MaxWatchListDomains int `env:"LIMITS_MAX_WATCH_LIST_DOMAINS" env-default:"10" yaml:"maxWatchListDomains"`
	} `yaml:"limits"`

	// JWT contains the RS256 key pair for API authentication
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
