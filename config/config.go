package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"tourguard/internal/domain/constants"

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

	defaultIssuer          = "tourguard"
	defaultAccessTTL       = 24 * time.Hour
	defaultExchange        = "tourguard.events"
	defaultNotifierTimeout = 10 * time.Second
	defaultMQTTTopic       = "tourguard/tourists/+/location"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
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

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// PubSub configuration for broadcast events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push alerts
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Notifier *NotifierConfig `json:"notifier" yaml:"notifier"`

	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	Geofence *GeofenceConfig `json:"geofence" yaml:"geofence"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// MQTT configuration for device location ingestion
	MQTT *MQTTConfig `json:"mqtt" yaml:"mqtt"`

	// Worker configuration for the alert retry worker
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines bearer token configuration
type AuthConfig struct {
	JWTSecret string        `json:"jwtSecret" yaml:"jwtSecret"`
	Issuer    string        `json:"issuer" yaml:"issuer"`
	AccessTTL time.Duration `json:"accessTtl" yaml:"accessTtl"`
}

// RedisConfig defines the geofence snapshot cache connection
type RedisConfig struct {
	Addr        string        `json:"addr" yaml:"addr"`
	Password    string        `json:"password" yaml:"password"`
	DB          int           `json:"db" yaml:"db"`
	SnapshotTTL time.Duration `json:"snapshotTtl" yaml:"snapshotTtl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "google", "amqp", "local" or "noop"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP broker URL and topic exchange (for amqp provider)
	AMQPURL  string `json:"amqpUrl" yaml:"amqpUrl"`
	Exchange string `json:"exchange" yaml:"exchange"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// NotifierConfig defines how alerts reach authorities
type NotifierConfig struct {
	// Simulate logs alerts instead of delivering them
	Simulate bool          `json:"simulate" yaml:"simulate"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`

	// Webhook gateway endpoints for the non-push channels
	SMSEndpoint   string `json:"smsEndpoint" yaml:"smsEndpoint"`
	EmailEndpoint string `json:"emailEndpoint" yaml:"emailEndpoint"`
	CallEndpoint  string `json:"callEndpoint" yaml:"callEndpoint"`

	// SigningSecret signs webhook bodies with HMAC-SHA256
	SigningSecret string        `json:"signingSecret" yaml:"signingSecret"`
	MaxAttempts   int           `json:"maxAttempts" yaml:"maxAttempts"`
	Backoff       time.Duration `json:"backoff" yaml:"backoff"`
}

// DispatchConfig is the alert routing policy
type DispatchConfig struct {
	// ChannelBySeverity maps an incident severity to the alert channel
	ChannelBySeverity map[string]string `json:"channelBySeverity" yaml:"channelBySeverity"`

	// Contacts maps a channel to the authority contact
	Contacts map[string]string `json:"contacts" yaml:"contacts"`

	DefaultChannel string `json:"defaultChannel" yaml:"defaultChannel"`
	DefaultContact string `json:"defaultContact" yaml:"defaultContact"`
}

// GeofenceConfig defines geofence index behaviour
type GeofenceConfig struct {
	RefreshInterval     time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
	NearbyDefaultMeters float64       `json:"nearbyDefaultMeters" yaml:"nearbyDefaultMeters"`
	NearbyMaxMeters     float64       `json:"nearbyMaxMeters" yaml:"nearbyMaxMeters"`
}

// RateLimitConfig defines the per-client limit on write endpoints
type RateLimitConfig struct {
	Enabled           bool    `json:"enabled" yaml:"enabled"`
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// MQTTConfig defines the device location subscription
type MQTTConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Broker   string `json:"broker" yaml:"broker"`
	ClientID string `json:"clientId" yaml:"clientId"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	// Topic must contain one single-level wildcard standing for the tourist id
	Topic string `json:"topic" yaml:"topic"`
	QoS   byte   `json:"qos" yaml:"qos"`
}

// WorkerConfig defines the alert retry worker
type WorkerConfig struct {
	Port             int  `json:"port" yaml:"port"`
	MaxRetryAttempts int  `json:"maxRetryAttempts" yaml:"maxRetryAttempts"`
	VerifyPushAuth   bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
	// RetryBackoff is multiplied by the attempt count before each retry
	RetryBackoff time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
	// PushAudience is the expected audience of Pub/Sub push tokens
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	if cfg.Postgres == nil {
		cfg.Postgres = &postgres.DBConn{}
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// applyDefaults fills every optional section that was left out of the file.
func applyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Issuer == "" {
		cfg.Auth.Issuer = defaultIssuer
	}
	if cfg.Auth.AccessTTL <= 0 {
		cfg.Auth.AccessTTL = defaultAccessTTL
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{Addr: "localhost:6379"}
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{Provider: constants.PubSubProviderNoop}
	}
	if cfg.PubSub.Exchange == "" {
		cfg.PubSub.Exchange = defaultExchange
	}

	if cfg.Notifier == nil {
		cfg.Notifier = &NotifierConfig{Simulate: true}
	}
	if cfg.Notifier.Timeout <= 0 {
		cfg.Notifier.Timeout = defaultNotifierTimeout
	}
	if cfg.Notifier.MaxAttempts <= 0 {
		cfg.Notifier.MaxAttempts = 3
	}
	if cfg.Notifier.Backoff <= 0 {
		cfg.Notifier.Backoff = 500 * time.Millisecond
	}

	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	if len(cfg.Dispatch.ChannelBySeverity) == 0 {
		cfg.Dispatch.ChannelBySeverity = map[string]string{"critical": "call"}
	}
	if cfg.Dispatch.DefaultChannel == "" {
		cfg.Dispatch.DefaultChannel = "push"
	}
	if cfg.Dispatch.DefaultContact == "" {
		cfg.Dispatch.DefaultContact = constants.DefaultAuthorityContact
	}

	if cfg.Geofence == nil {
		cfg.Geofence = &GeofenceConfig{}
	}
	if cfg.Geofence.RefreshInterval <= 0 {
		cfg.Geofence.RefreshInterval = 30 * time.Second
	}
	if cfg.Geofence.NearbyDefaultMeters <= 0 {
		cfg.Geofence.NearbyDefaultMeters = 1000
	}
	if cfg.Geofence.NearbyMaxMeters <= 0 {
		cfg.Geofence.NearbyMaxMeters = 50000
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.RequestsPerSecond <= 0 {
		cfg.RateLimit.RequestsPerSecond = 2
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = 10
	}

	if cfg.MQTT == nil {
		cfg.MQTT = &MQTTConfig{}
	}
	if cfg.MQTT.Topic == "" {
		cfg.MQTT.Topic = defaultMQTTTopic
	}
	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = "tourguard"
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = 8081
	}
	if cfg.Worker.MaxRetryAttempts <= 0 {
		cfg.Worker.MaxRetryAttempts = 5
	}
	if cfg.Worker.RetryBackoff <= 0 {
		cfg.Worker.RetryBackoff = 2 * time.Second
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
