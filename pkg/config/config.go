package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	CORS     CORSConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Realtime RealtimeConfig
	Credits  CreditsConfig
	Seed     SeedConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// HTTPConfig bounds request handling at the network boundary.
type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// RealtimeConfig tunes the websocket hub.
type RealtimeConfig struct {
	SendBufferSize  int
	WriteWait       time.Duration
	PongWait        time.Duration
	MaxMessageBytes int64
}

// CreditsConfig holds the leaderboard bonus schedule. Positions beyond the
// configured bonuses receive no automatic award.
type CreditsConfig struct {
	RankBonuses []int
	TopN        int
}

// SeedConfig toggles sample-data loading on startup.
type SeedConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.HTTP = HTTPConfig{
		ReadTimeout:  parseDuration(v.GetString("HTTP_READ_TIMEOUT"), 15*time.Second),
		WriteTimeout: parseDuration(v.GetString("HTTP_WRITE_TIMEOUT"), 30*time.Second),
		IdleTimeout:  parseDuration(v.GetString("HTTP_IDLE_TIMEOUT"), 60*time.Second),
	}

	cfg.Realtime = RealtimeConfig{
		SendBufferSize:  v.GetInt("REALTIME_SEND_BUFFER"),
		WriteWait:       parseDuration(v.GetString("REALTIME_WRITE_WAIT"), 10*time.Second),
		PongWait:        parseDuration(v.GetString("REALTIME_PONG_WAIT"), 60*time.Second),
		MaxMessageBytes: v.GetInt64("REALTIME_MAX_MESSAGE_BYTES"),
	}

	cfg.Credits = CreditsConfig{
		RankBonuses: []int{100, 75, 50},
		TopN:        v.GetInt("CREDITS_TOP_N"),
	}

	cfg.Seed = SeedConfig{Enabled: v.GetBool("SEED_SAMPLE_DATA")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("REALTIME_SEND_BUFFER", 32)
	v.SetDefault("REALTIME_MAX_MESSAGE_BYTES", 8192)
	v.SetDefault("CREDITS_TOP_N", 10)
	v.SetDefault("SEED_SAMPLE_DATA", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
