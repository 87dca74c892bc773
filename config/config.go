package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"alertradar/internal/domain/constants"

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

	defaultAlertCollection        = "locationAlerts"
	defaultUserCollection         = "users"
	defaultRadiusMiles            = 10
	defaultMaxRadiusMiles         = 100
	defaultWindow                 = 24 * time.Hour
	defaultMaxWindow              = 7 * 24 * time.Hour
	defaultRecenterThresholdMiles = 1
	defaultFanoutWorkers          = 8
	defaultAlertText              = "Someone near you needs help!"
	defaultPushTimeout            = 10 * time.Second
	defaultRedisChannel           = "alertradar:alerts"
	defaultPollInterval           = 2 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
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
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis carries alert change notifications when the postgres backend is active
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for Firestore and push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Store selects the alert and recipient backend
	Store *StoreConfig `json:"store" yaml:"store"`

	// Feed configuration for nearby alert subscriptions
	Feed *FeedConfig `json:"feed" yaml:"feed"`

	// Fanout configuration for push distribution of new alerts
	Fanout *FanoutConfig `json:"fanout" yaml:"fanout"`

	// Push configuration for the notification transport
	Push *PushConfig `json:"push" yaml:"push"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the redis connection used for change notification
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Channel  string `json:"channel" yaml:"channel"`
}

// FirebaseConfig defines Firebase configuration for Firestore and push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// StoreConfig selects the persistence backend
type StoreConfig struct {
	// Backend: "firestore", "postgres" or "memory"
	Backend string `json:"backend" yaml:"backend"`

	AlertCollection string `json:"alertCollection" yaml:"alertCollection"`
	UserCollection  string `json:"userCollection" yaml:"userCollection"`

	// PollInterval bounds how late a postgres subscriber sees an insert when no Redis signal arrives
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
}

// FeedConfig defines defaults for nearby alert subscriptions
type FeedConfig struct {
	DefaultRadiusMiles float64       `json:"defaultRadiusMiles" yaml:"defaultRadiusMiles"`
	MaxRadiusMiles     float64       `json:"maxRadiusMiles" yaml:"maxRadiusMiles"`
	DefaultWindow      time.Duration `json:"defaultWindow" yaml:"defaultWindow"`
	MaxWindow          time.Duration `json:"maxWindow" yaml:"maxWindow"`

	// RecenterPolicy: "once" recenters on the first location fix only, "threshold" on every fix
	// further than RecenterThresholdMiles from the current center
	RecenterPolicy         string  `json:"recenterPolicy" yaml:"recenterPolicy"`
	RecenterThresholdMiles float64 `json:"recenterThresholdMiles" yaml:"recenterThresholdMiles"`
}

// FanoutConfig defines how new alerts are pushed to recipients
type FanoutConfig struct {
	// Scope: "global" notifies every push-enabled recipient, "radius" only those near the alert
	Scope       string  `json:"scope" yaml:"scope"`
	RadiusMiles float64 `json:"radiusMiles" yaml:"radiusMiles"`

	// Number of concurrent dispatch workers
	Workers int `json:"workers" yaml:"workers"`

	AlertText string `json:"alertText" yaml:"alertText"`
	Badge     int    `json:"badge" yaml:"badge"`
}

// PushConfig defines the push transport
type PushConfig struct {
	// Provider: "fcm", "http" or "log"
	Provider string        `json:"provider" yaml:"provider"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty for in-process fanout
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected on push requests; verification is skipped when empty
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every section left out of config.yaml.
// The defaults reproduce the mobile client: 10 mile radius, 24 hour window, global fanout.
func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = constants.StoreBackendFirestore
	}
	if cfg.Store.AlertCollection == "" {
		cfg.Store.AlertCollection = defaultAlertCollection
	}
	if cfg.Store.UserCollection == "" {
		cfg.Store.UserCollection = defaultUserCollection
	}
	if cfg.Store.PollInterval <= 0 {
		cfg.Store.PollInterval = defaultPollInterval
	}

	if cfg.Feed == nil {
		cfg.Feed = &FeedConfig{}
	}
	if cfg.Feed.DefaultRadiusMiles <= 0 {
		cfg.Feed.DefaultRadiusMiles = defaultRadiusMiles
	}
	if cfg.Feed.MaxRadiusMiles <= 0 {
		cfg.Feed.MaxRadiusMiles = defaultMaxRadiusMiles
	}
	if cfg.Feed.DefaultWindow <= 0 {
		cfg.Feed.DefaultWindow = defaultWindow
	}
	if cfg.Feed.MaxWindow <= 0 {
		cfg.Feed.MaxWindow = defaultMaxWindow
	}
	if cfg.Feed.RecenterPolicy == "" {
		cfg.Feed.RecenterPolicy = constants.RecenterPolicyOnce
	}
	if cfg.Feed.RecenterThresholdMiles <= 0 {
		cfg.Feed.RecenterThresholdMiles = defaultRecenterThresholdMiles
	}

	if cfg.Fanout == nil {
		cfg.Fanout = &FanoutConfig{}
	}
	if cfg.Fanout.Scope == "" {
		cfg.Fanout.Scope = constants.FanoutScopeGlobal
	}
	if cfg.Fanout.RadiusMiles <= 0 {
		cfg.Fanout.RadiusMiles = defaultRadiusMiles
	}
	if cfg.Fanout.Workers <= 0 {
		cfg.Fanout.Workers = defaultFanoutWorkers
	}
	if cfg.Fanout.AlertText == "" {
		cfg.Fanout.AlertText = defaultAlertText
	}
	if cfg.Fanout.Badge <= 0 {
		cfg.Fanout.Badge = 1
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.Provider == "" {
		cfg.Push.Provider = constants.PushProviderLog
	}
	if cfg.Push.Timeout <= 0 {
		cfg.Push.Timeout = defaultPushTimeout
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.Redis != nil && cfg.Redis.Channel == "" {
		cfg.Redis.Channel = defaultRedisChannel
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
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
