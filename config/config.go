package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

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
	defaultUserID             = 1
	defaultAccessTokenTTL     = 24 * time.Hour
	defaultProviderTimeout    = 15 * time.Second
	defaultWatcherInterval    = 10 * time.Minute
	defaultCacheTTL           = 15 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Version     string `json:"version" yaml:"version"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		// AllowOrigins lists the origins accepted by CORS. Empty means "*".
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// RecreationGov configures the campsite search and availability provider
	RecreationGov *RecreationGovConfig `json:"recreationGov" yaml:"recreationGov"`

	// Watcher configures the background availability watcher
	Watcher *WatcherConfig `json:"watcher" yaml:"watcher"`

	// Cache configures the Redis cache in front of the search provider
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Delivery selects the message sender used for notifications
	Delivery *DeliveryConfig `json:"delivery" yaml:"delivery"`

	// Firebase configuration for push delivery
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for the SMS gateway topic
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for booking QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// AuthConfig defines identity-related configuration
type AuthConfig struct {
	// DefaultUserID is the acting user when a request carries no token
	DefaultUserID  uint          `json:"defaultUserId" yaml:"defaultUserId"`
	AccessSecret   string        `json:"accessSecret" yaml:"accessSecret"`
	AccessTokenTTL time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RecreationGovConfig defines the Recreation.gov endpoints
type RecreationGovConfig struct {
	// RIDB API base URL, e.g. https://ridb.recreation.gov/api/v1
	RIDBBaseURL string `json:"ridbBaseUrl" yaml:"ridbBaseUrl"`

	// Availability API base URL, e.g. https://www.recreation.gov/api/camps
	AvailabilityBaseURL string `json:"availabilityBaseUrl" yaml:"availabilityBaseUrl"`

	// Public booking site used for QR codes, e.g. https://www.recreation.gov
	BookingBaseURL string `json:"bookingBaseUrl" yaml:"bookingBaseUrl"`

	APIKey    string        `json:"apiKey" yaml:"apiKey"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`

	// PageSize is the RIDB page size; MaxPages caps paging per query
	PageSize int `json:"pageSize" yaml:"pageSize"`
	MaxPages int `json:"maxPages" yaml:"maxPages"`
}

// WatcherConfig defines the background availability watcher
type WatcherConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// CacheConfig defines the Redis search cache
type CacheConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	TTL      time.Duration `json:"ttl" yaml:"ttl"`
	Prefix   string        `json:"prefix" yaml:"prefix"`
}

// DeliveryConfig defines how notification messages leave the service
type DeliveryConfig struct {
	// Provider: "log", "local", "pubsub" or "firebase"
	Provider string `json:"provider" yaml:"provider"`

	// LocalEndpoint receives JSON messages when Provider is "local"
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig defines Firebase configuration for push delivery
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	Topic           string `json:"topic" yaml:"topic"`
}

// PubSubConfig defines the Pub/Sub topic consumed by the SMS gateway
type PubSubConfig struct {
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override YAML values.
	// WATCHER_INTERVAL -> watcher.interval, RECREATIONGOV_APIKEY -> recreationGov.apiKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
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
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never deal with nil.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.DefaultUserID == 0 {
		cfg.Auth.DefaultUserID = defaultUserID
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.RecreationGov == nil {
		cfg.RecreationGov = &RecreationGovConfig{}
	}
	rg := cfg.RecreationGov
	if rg.RIDBBaseURL == "" {
		rg.RIDBBaseURL = "https://ridb.recreation.gov/api/v1"
	}
	if rg.AvailabilityBaseURL == "" {
		rg.AvailabilityBaseURL = "https://www.recreation.gov/api/camps"
	}
	if rg.BookingBaseURL == "" {
		rg.BookingBaseURL = "https://www.recreation.gov"
	}
	if rg.Timeout <= 0 {
		rg.Timeout = defaultProviderTimeout
	}
	if rg.PageSize <= 0 {
		rg.PageSize = 50
	}
	if rg.MaxPages <= 0 {
		rg.MaxPages = 10
	}

	if cfg.Watcher == nil {
		cfg.Watcher = &WatcherConfig{}
	}
	if cfg.Watcher.Interval <= 0 {
		cfg.Watcher.Interval = defaultWatcherInterval
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
	if cfg.Cache.Prefix == "" {
		cfg.Cache.Prefix = "campwatch:search"
	}

	if cfg.Delivery == nil {
		cfg.Delivery = &DeliveryConfig{}
	}
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
