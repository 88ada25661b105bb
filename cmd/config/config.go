package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

// LoadConfig reads config/server.yaml (or /config/server.yaml) once,
// after loading a .env file when present. PROFILING_SERVER_* variables
// override file values.
func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		_ = godotenv.Load()

		cfg, err := Load(viper.GetViper(), "server", "config", "/config")
		if err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = cfg
	})

	return configInstance
}

func Load(v *viper.Viper, name string, paths ...string) (AppConfig, error) {
	v.SetEnvPrefix("profiling_server")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.BindEnv("general.environment", "ENV")
	v.SetConfigName(name)
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return AppConfig{}, err
	}

	return AppConfig{
		General: GeneralConfig{
			LogLevel:       v.GetString("general.log_level"),
			Environment:    v.GetString("general.environment"),
			Timezone:       v.GetString("general.timezone"),
			Addr:           v.GetString("general.addr"),
			AllowedOrigins: v.GetStringSlice("general.allowed_origins"),
		},
		Database: DatabaseConfig{
			Engine:         v.GetString("database.engine"),
			URL:            v.GetString("database.url"),
			DSN:            v.GetString("database.dsn"),
			AutoMigrate:    v.GetBool("database.auto_migrate"),
			MigrationsPath: v.GetString("database.migrations_path"),
		},
		Kafka: KafkaConfig{
			Brokers:        v.GetStringSlice("kafka.brokers"),
			Group:          v.GetString("kafka.group"),
			SchemaRegistry: v.GetString("kafka.schema_registry"),
		},
		Cache: CacheConfig{
			Backend: v.GetString("cache.backend"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		MailerSend: MailerSendConfig{
			APIKey:    v.GetString("mailersend.api_key"),
			FromEmail: v.GetString("mailersend.from_email"),
			FromName:  v.GetString("mailersend.from_name"),
		},
		SMSGateway: SMSGatewayConfig{
			BaseURL:    v.GetString("sms_gateway.base_url"),
			APIKey:     v.GetString("sms_gateway.api_key"),
			SenderName: v.GetString("sms_gateway.sender_name"),
			Retries:    v.GetInt("sms_gateway.retries"),
		},
		OTP: OTPConfig{
			TTL:            v.GetDuration("otp.ttl"),
			ResendCooldown: v.GetDuration("otp.resend_cooldown"),
			MaxAttempts:    v.GetInt("otp.max_attempts"),
		},
		Accounts: AccountsConfig{
			SessionTTL: v.GetDuration("accounts.session_ttl"),
		},
		Registry: RegistryConfig{
			CacheTTL:           v.GetDuration("registry.cache_ttl"),
			DuplicateThreshold: v.GetFloat64("registry.duplicate_threshold"),
		},
		Lookups: LookupsConfig{
			Path: v.GetString("lookups.path"),
		},
		Profiling: ProfilingConfig{
			DraftRetention:  v.GetDuration("profiling.draft_retention"),
			JanitorSchedule: v.GetString("profiling.janitor_schedule"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")
	v.SetDefault("general.environment", "local")
	v.SetDefault("general.timezone", "Asia/Manila")
	v.SetDefault("general.addr", ":3000")
	v.SetDefault("database.engine", "memory")
	v.SetDefault("database.migrations_path", "migrations")
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("kafka.group", "profiling-server")
	v.SetDefault("sms_gateway.retries", 2)
	v.SetDefault("otp.ttl", 5*time.Minute)
	v.SetDefault("otp.resend_cooldown", time.Minute)
	v.SetDefault("otp.max_attempts", 5)
	v.SetDefault("accounts.session_ttl", 24*time.Hour)
	v.SetDefault("registry.cache_ttl", 10*time.Minute)
	v.SetDefault("registry.duplicate_threshold", 0.85)
	v.SetDefault("profiling.draft_retention", 30*24*time.Hour)
	v.SetDefault("profiling.janitor_schedule", "@every 1h")
}

type AppConfig struct {
	General    GeneralConfig
	Database   DatabaseConfig
	Kafka      KafkaConfig
	Cache      CacheConfig
	Redis      RedisConfig
	MailerSend MailerSendConfig
	SMSGateway SMSGatewayConfig
	OTP        OTPConfig
	Accounts   AccountsConfig
	Registry   RegistryConfig
	Lookups    LookupsConfig
	Profiling  ProfilingConfig
}

type GeneralConfig struct {
	LogLevel       string
	Environment    string
	Timezone       string
	Addr           string
	AllowedOrigins []string
}

func (c GeneralConfig) IsLocal() bool {
	return c.Environment == "local"
}

type DatabaseConfig struct {
	// Engine is memory or postgres.
	Engine         string
	URL            string
	DSN            string
	AutoMigrate    bool
	MigrationsPath string
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

type CacheConfig struct {
	// Backend is memory or redis.
	Backend string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MailerSendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type SMSGatewayConfig struct {
	BaseURL    string
	APIKey     string
	SenderName string
	Retries    int
}

type OTPConfig struct {
	TTL            time.Duration
	ResendCooldown time.Duration
	MaxAttempts    int
}

type AccountsConfig struct {
	SessionTTL time.Duration
}

type RegistryConfig struct {
	CacheTTL           time.Duration
	DuplicateThreshold float64
}

type LookupsConfig struct {
	// Path overrides the reference lists compiled into the binary.
	Path string
}

type ProfilingConfig struct {
	DraftRetention  time.Duration
	JanitorSchedule string
}
