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
	defaultHTTPPort           = 5000
	defaultMongoURI           = "mongodb://127.0.0.1:27017/localhunt"
	defaultMongoDatabase      = "localhunt"
	defaultAdminEmail         = "admin@localhunt.com"
	defaultNominatimURL       = "https://nominatim.openstreetmap.org"
	defaultOverpassURL        = "https://overpass-api.de/api/interpreter"
	defaultUserAgent          = "showmyshop/1.0"
	defaultPlacesRadius       = 10000
	defaultPlacesMaxRadius    = 50000
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects the persistence driver for shops and reviews
	Store *StoreConfig `json:"store" yaml:"store"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Cache *CacheConfig `json:"cache" yaml:"cache"`

	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	Places *PlacesConfig `json:"places" yaml:"places"`

	// Breaker configures the circuit breakers in front of the public map APIs
	Breaker *BreakerConfig `json:"breaker" yaml:"breaker"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Firebase configuration for ID token verification
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for shop listing QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// TestRoutes exposes development helpers such as local token issuing
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
}

// TestRoutesConfig toggles the /test routes
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines which backend persists shops and reviews
type StoreConfig struct {
	// Driver is "mongo" or "postgres"
	Driver string `json:"driver" yaml:"driver"`
}

// MongoConfig defines the document store connection
type MongoConfig struct {
	URI      string        `json:"uri" yaml:"uri"`
	Database string        `json:"database" yaml:"database"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	// Transactions requires a replica set deployment
	Transactions bool `json:"transactions" yaml:"transactions"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// CacheConfig defines caching of geocoding and point-of-interest lookups
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// GeocodingConfig defines the Nominatim client
type GeocodingConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	// RPS is the outbound request rate allowed by the provider usage policy
	RPS   float64 `json:"rps" yaml:"rps"`
	Burst int     `json:"burst" yaml:"burst"`
}

// PlacesConfig defines the Overpass client
type PlacesConfig struct {
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	DefaultRadius int           `json:"defaultRadius" yaml:"defaultRadius"`
	MaxRadius     int           `json:"maxRadius" yaml:"maxRadius"`
	RPS           float64       `json:"rps" yaml:"rps"`
	Burst         int           `json:"burst" yaml:"burst"`
}

type BreakerConfig struct {
	MaxRequests  uint32        `json:"maxRequests" yaml:"maxRequests"`
	Interval     time.Duration `json:"interval" yaml:"interval"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	FailureRatio float64       `json:"failureRatio" yaml:"failureRatio"`
	MinRequests  uint32        `json:"minRequests" yaml:"minRequests"`
}

// AuthConfig defines how callers are identified and who is an admin
type AuthConfig struct {
	// Provider is "firebase" or "jwt"
	Provider    string        `json:"provider" yaml:"provider"`
	JWTSecret   string        `json:"jwtSecret" yaml:"jwtSecret"`
	JWTTTL      time.Duration `json:"jwtTtl" yaml:"jwtTtl"`
	AdminEmails []string      `json:"adminEmails" yaml:"adminEmails"`
}

// FirebaseConfig defines Firebase Admin SDK configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the push worker HTTP endpoint
type WorkerConfig struct {
	Port            int    `json:"port" yaml:"port"`
	VerifyPushToken bool   `json:"verifyPushToken" yaml:"verifyPushToken"`
	Audience        string `json:"audience" yaml:"audience"`
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

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// MONGO_URI -> mongo.uri, GEOCODING_BASEURL -> geocoding.baseUrl
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

	ApplyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// ApplyDefaults fills every optional section so the rest of the service can
// dereference configuration without nil checks.
func ApplyDefaults(cfg *Config) {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = "showmyshop"
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "mongo"
	}

	if cfg.Mongo == nil {
		cfg.Mongo = &MongoConfig{}
	}
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = defaultMongoURI
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = defaultMongoDatabase
	}
	if cfg.Mongo.Timeout == 0 {
		cfg.Mongo.Timeout = 10 * time.Second
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 24 * time.Hour
	}

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = defaultNominatimURL
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = defaultUserAgent
	}
	if cfg.Geocoding.Timeout == 0 {
		cfg.Geocoding.Timeout = 5 * time.Second
	}
	if cfg.Geocoding.RPS == 0 {
		cfg.Geocoding.RPS = 1
	}
	if cfg.Geocoding.Burst == 0 {
		cfg.Geocoding.Burst = 1
	}

	if cfg.Places == nil {
		cfg.Places = &PlacesConfig{}
	}
	if cfg.Places.BaseURL == "" {
		cfg.Places.BaseURL = defaultOverpassURL
	}
	if cfg.Places.Timeout == 0 {
		cfg.Places.Timeout = 25 * time.Second
	}
	if cfg.Places.DefaultRadius == 0 {
		cfg.Places.DefaultRadius = defaultPlacesRadius
	}
	if cfg.Places.MaxRadius == 0 {
		cfg.Places.MaxRadius = defaultPlacesMaxRadius
	}
	if cfg.Places.RPS == 0 {
		cfg.Places.RPS = 2
	}
	if cfg.Places.Burst == 0 {
		cfg.Places.Burst = 2
	}

	if cfg.Breaker == nil {
		cfg.Breaker = &BreakerConfig{
			MaxRequests:  1,
			Interval:     60 * time.Second,
			Timeout:      30 * time.Second,
			FailureRatio: 0.5,
			MinRequests:  5,
		}
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = "jwt"
	}
	if cfg.Auth.JWTTTL == 0 {
		cfg.Auth.JWTTTL = time.Hour
	}
	if len(cfg.Auth.AdminEmails) == 0 {
		cfg.Auth.AdminEmails = []string{defaultAdminEmail}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size == 0 {
		cfg.QRCode.Size = 256
	}
	if cfg.QRCode.ErrorCorrectionLevel == "" {
		cfg.QRCode.ErrorCorrectionLevel = "M"
	}
	if cfg.QRCode.BaseURL == "" {
		cfg.QRCode.BaseURL = "http://localhost:3000"
	}

	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port == 0 {
		cfg.Worker.Port = 5001
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
