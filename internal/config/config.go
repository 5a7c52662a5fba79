package config

import (
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Engine   EngineConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	LogFormat      string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CacheConfig struct {
	Enabled       bool
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
	OverviewTTL   time.Duration
	LocationsTTL  time.Duration
}

// EngineConfig tunes the recommendation engine and the simulated latencies around it
type EngineConfig struct {
	SurplusMargin       int
	HighPriorityRatio   float64
	MediumDeficit       int
	CostRateMin         float64
	CostRateMax         float64
	UnitValue           float64
	SettleDelay         time.Duration
	AnalysisDelay       time.Duration
	RefreshInterval     time.Duration
	MonitorTickInterval time.Duration
}

// SeedConfig selects where the initial network comes from
type SeedConfig struct {
	Source          string // builtin, file, object, postgres
	FilePath        string
	ObjectEndpoint  string
	ObjectAccessKey string
	ObjectSecretKey string
	ObjectBucket    string
	ObjectKey       string
	ObjectUseSSL    bool
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		setDefaults()

		// Read from environment variables
		viper.AutomaticEnv()

		instance = fromViper()
	})

	return instance
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_MODE", "debug")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.SetDefault("SERVER_READ_TIMEOUT", 15)
	viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
	viper.SetDefault("SERVER_RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("SERVER_RATE_LIMIT_BURST", 40)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "supplychain")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_HOST", "127.0.0.1")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_KEY_PREFIX", "rebalance:network:")
	viper.SetDefault("CACHE_OVERVIEW_TTL", "10s")
	viper.SetDefault("CACHE_LOCATIONS_TTL", "30s")
	viper.SetDefault("ENGINE_SURPLUS_MARGIN", 5)
	viper.SetDefault("ENGINE_HIGH_PRIORITY_RATIO", 0.3)
	viper.SetDefault("ENGINE_MEDIUM_DEFICIT", 10)
	viper.SetDefault("ENGINE_COST_RATE_MIN", 15.0)
	viper.SetDefault("ENGINE_COST_RATE_MAX", 25.0)
	viper.SetDefault("ENGINE_UNIT_VALUE", 50.0)
	viper.SetDefault("ENGINE_SETTLE_DELAY", "3s")
	viper.SetDefault("ENGINE_ANALYSIS_DELAY", "0s")
	viper.SetDefault("ENGINE_REFRESH_INTERVAL", "0s")
	viper.SetDefault("MONITOR_TICK_INTERVAL", "5s")
	viper.SetDefault("SEED_SOURCE", "builtin")
	viper.SetDefault("SEED_FILE", "./data/seeds/network.csv")
	viper.SetDefault("SEED_OBJECT_ENDPOINT", "")
	viper.SetDefault("SEED_OBJECT_ACCESS_KEY", "")
	viper.SetDefault("SEED_OBJECT_SECRET_KEY", "")
	viper.SetDefault("SEED_OBJECT_BUCKET", "")
	viper.SetDefault("SEED_OBJECT_KEY", "network.csv")
	viper.SetDefault("SEED_OBJECT_USE_SSL", true)
}

func fromViper() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Mode:           viper.GetString("SERVER_MODE"),
			LogFormat:      viper.GetString("LOG_FORMAT"),
			ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
			AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			RateLimitRPS:   viper.GetFloat64("SERVER_RATE_LIMIT_RPS"),
			RateLimitBurst: viper.GetInt("SERVER_RATE_LIMIT_BURST"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			DBName:   viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Cache: CacheConfig{
			Enabled:       viper.GetBool("CACHE_ENABLED"),
			RedisURL:      viper.GetString("REDIS_URL"),
			RedisHost:     viper.GetString("REDIS_HOST"),
			RedisPort:     viper.GetString("REDIS_PORT"),
			RedisPassword: viper.GetString("REDIS_PASSWORD"),
			RedisDB:       viper.GetInt("REDIS_DB"),
			KeyPrefix:     viper.GetString("CACHE_KEY_PREFIX"),
			OverviewTTL:   viper.GetDuration("CACHE_OVERVIEW_TTL"),
			LocationsTTL:  viper.GetDuration("CACHE_LOCATIONS_TTL"),
		},
		Engine: EngineConfig{
			SurplusMargin:       viper.GetInt("ENGINE_SURPLUS_MARGIN"),
			HighPriorityRatio:   viper.GetFloat64("ENGINE_HIGH_PRIORITY_RATIO"),
			MediumDeficit:       viper.GetInt("ENGINE_MEDIUM_DEFICIT"),
			CostRateMin:         viper.GetFloat64("ENGINE_COST_RATE_MIN"),
			CostRateMax:         viper.GetFloat64("ENGINE_COST_RATE_MAX"),
			UnitValue:           viper.GetFloat64("ENGINE_UNIT_VALUE"),
			SettleDelay:         viper.GetDuration("ENGINE_SETTLE_DELAY"),
			AnalysisDelay:       viper.GetDuration("ENGINE_ANALYSIS_DELAY"),
			RefreshInterval:     viper.GetDuration("ENGINE_REFRESH_INTERVAL"),
			MonitorTickInterval: viper.GetDuration("MONITOR_TICK_INTERVAL"),
		},
		Seed: SeedConfig{
			Source:          viper.GetString("SEED_SOURCE"),
			FilePath:        viper.GetString("SEED_FILE"),
			ObjectEndpoint:  viper.GetString("SEED_OBJECT_ENDPOINT"),
			ObjectAccessKey: viper.GetString("SEED_OBJECT_ACCESS_KEY"),
			ObjectSecretKey: viper.GetString("SEED_OBJECT_SECRET_KEY"),
			ObjectBucket:    viper.GetString("SEED_OBJECT_BUCKET"),
			ObjectKey:       viper.GetString("SEED_OBJECT_KEY"),
			ObjectUseSSL:    viper.GetBool("SEED_OBJECT_USE_SSL"),
		},
	}
}
