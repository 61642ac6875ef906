package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"adchecker/internal/domain/constants"
	domainerrors "adchecker/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultGraphURL           = "https://graph.facebook.com"
	defaultGraphVersion       = "v18.0"
	defaultDialogURL          = "https://www.facebook.com"
	defaultUpstreamTimeout    = 15 * time.Second
	defaultSessionCookieName  = "meta-ad-checker-session"
	defaultStateCookieName    = "oauth_state"
	defaultRetainPerUser      = 1
)

// DefaultLoginScopes are requested on the Meta consent dialog.
var DefaultLoginScopes = []string{"public_profile", "ads_read", "business_management", "pages_show_list"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"gt=0,lte=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`
	} `json:"http" yaml:"http"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Security SecurityConfig `json:"security" yaml:"security"`

	Meta MetaConfig `json:"meta" yaml:"meta"`

	Frontend struct {
		URL string `json:"url" yaml:"url" validate:"required,url"`
	} `json:"frontend" yaml:"frontend"`

	Cache CacheConfig `json:"cache" yaml:"cache"`

	// PubSub configuration for account activity events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RateLimitConfig bounds inbound requests per client IP. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond" validate:"gte=0"`
	Burst             int     `json:"burst" yaml:"burst" validate:"gte=0"`
}

// StorageConfig selects the database backend.
type StorageConfig struct {
	Driver string `json:"driver" yaml:"driver" validate:"oneof=postgres sqlite"`

	// SQLitePath is the database file (or ":memory:") used by the sqlite driver
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`

	// AutoMigrate creates or updates tables at startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
}

// SecurityConfig holds the process-wide secrets.
type SecurityConfig struct {
	// EncryptionKey is the secret the token cipher derives its AES key from
	EncryptionKey string `json:"encryptionKey" yaml:"encryptionKey"`

	// SessionSecret signs session tokens
	SessionSecret string `json:"sessionSecret" yaml:"sessionSecret"`

	SessionCookieName string `json:"sessionCookieName" yaml:"sessionCookieName"`
	StateCookieName   string `json:"stateCookieName" yaml:"stateCookieName"`
}

// MetaConfig configures the Meta OAuth app and Graph API access.
type MetaConfig struct {
	ClientID     string        `json:"clientId" yaml:"clientId" validate:"required"`
	ClientSecret string        `json:"clientSecret" yaml:"clientSecret" validate:"required"`
	RedirectURI  string        `json:"redirectUri" yaml:"redirectUri" validate:"required,url"`
	GraphURL     string        `json:"graphUrl" yaml:"graphUrl" validate:"url"`
	DialogURL    string        `json:"dialogUrl" yaml:"dialogUrl" validate:"url"`
	APIVersion   string        `json:"apiVersion" yaml:"apiVersion"`
	Scopes       []string      `json:"scopes" yaml:"scopes"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// CacheConfig configures the account cache.
type CacheConfig struct {
	// RetainPerUser is how many snapshots per user survive a write. Zero keeps all.
	RetainPerUser *int `json:"retainPerUser" yaml:"retainPerUser"`
}

// Retain returns the effective retention count.
func (c CacheConfig) Retain() int {
	if c.RetainPerUser == nil {
		return defaultRetainPerUser
	}

	return *c.RetainPerUser
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty to disable
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId" validate:"required_if=Provider google"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId" validate:"required_if=Provider google"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint" validate:"required_if=Provider local"`
}

// IsProduction reports whether cookies must be marked Secure.
func (c *Config) IsProduction() bool {
	return c.Env.Env == constants.EnvProduction
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if filepath.IsAbs(path) {
				searchPaths = append(searchPaths, path)

				continue
			}
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SECURITY_ENCRYPTIONKEY -> security.encryptionKey
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	return Load("config", "config", "../config", "../../config")
}

// Load reads the named config file from the search paths, applies defaults and validates the result.
func Load(name string, configPath ...string) (*Config, error) {
	cfg, err := LoadWithEnv[Config](name, configPath...)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = constants.StorageDriverPostgres
	}
	if c.Meta.GraphURL == "" {
		c.Meta.GraphURL = defaultGraphURL
	}
	if c.Meta.DialogURL == "" {
		c.Meta.DialogURL = defaultDialogURL
	}
	if c.Meta.APIVersion == "" {
		c.Meta.APIVersion = defaultGraphVersion
	}
	if len(c.Meta.Scopes) == 0 {
		c.Meta.Scopes = DefaultLoginScopes
	}
	if c.Meta.Timeout <= 0 {
		c.Meta.Timeout = defaultUpstreamTimeout
	}
	if c.Security.SessionCookieName == "" {
		c.Security.SessionCookieName = defaultSessionCookieName
	}
	if c.Security.StateCookieName == "" {
		c.Security.StateCookieName = defaultStateCookieName
	}
	c.Frontend.URL = strings.TrimRight(c.Frontend.URL, "/")
}

// Validate reports missing or malformed settings as domain errors.ErrConfiguration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Security.EncryptionKey) == "" {
		return domainerrors.ErrConfiguration.WithDetails("security.encryptionKey is required")
	}
	if strings.TrimSpace(c.Security.SessionSecret) == "" {
		return domainerrors.ErrConfiguration.WithDetails("security.sessionSecret is required")
	}
	if c.Storage.Driver == constants.StorageDriverPostgres && c.Postgres == nil {
		return domainerrors.ErrConfiguration.WithDetails("postgres is required for the postgres storage driver")
	}
	if c.Storage.Driver == constants.StorageDriverSQLite && c.Storage.SQLitePath == "" {
		return domainerrors.ErrConfiguration.WithDetails("storage.sqlitePath is required for the sqlite storage driver")
	}

	if err := validator.New().Struct(c); err != nil {
		return domainerrors.ErrConfiguration.WithDetails(err.Error())
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
