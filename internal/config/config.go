/**
* Name: 			config.go
* Description: 		서버 및 외부 API 설정 로드
* Workflow: 		기본값 -> YAML 파일(선택) -> 환경 변수 순으로 덮어쓰기
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Plan    PlanConfig    `yaml:"plan"`
	Image   ImageConfig   `yaml:"image"`
	Speech  SpeechConfig  `yaml:"speech"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`

	// SanitizePlanHTML strips unsafe markup from model HTML before it reaches the page.
	SanitizePlanHTML bool `yaml:"sanitize_plan_html"`
}

type ServerConfig struct {
	Addr             string        `yaml:"addr"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
	CORSAllowOrigins []string      `yaml:"cors_allow_origins"`
	// TrustedProxies may set X-Forwarded-For. Empty means only the socket peer counts.
	TrustedProxies   []string      `yaml:"trusted_proxies"`
	RateLimitRPS     float64       `yaml:"rate_limit_rps"`
	RateLimitBurst   int           `yaml:"rate_limit_burst"`
}

// 플랜 생성 (chat completion)
type PlanConfig struct {
	APIKey    string        `yaml:"api_key"`
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	MaxTokens int           `yaml:"max_tokens"`
	Timeout   time.Duration `yaml:"timeout"`
}

// 이미지 생성 (Replicate)
type ImageConfig struct {
	APIToken string        `yaml:"api_token"`
	BaseURL  string        `yaml:"base_url"`
	Model    string        `yaml:"model"`
	Version  string        `yaml:"version"`
	Timeout  time.Duration `yaml:"timeout"`
}

const (
	SpeechProviderElevenLabs = "elevenlabs"
	SpeechProviderGoogle     = "google"
)

// 음성 합성 (ElevenLabs 또는 Google TTS)
type SpeechConfig struct {
	Provider        string        `yaml:"provider"`
	APIKey          string        `yaml:"api_key"`
	BaseURL         string        `yaml:"base_url"`
	ModelID         string        `yaml:"model_id"`
	DefaultVoice    string        `yaml:"default_voice"`
	Stability       float64       `yaml:"stability"`
	SimilarityBoost float64       `yaml:"similarity_boost"`
	MaxAudioBytes   int64         `yaml:"max_audio_bytes"`
	Timeout         time.Duration `yaml:"timeout"`

	GoogleCredentialsFile string `yaml:"google_credentials_file"`
	GoogleLanguageCode    string `yaml:"google_language_code"`
	GoogleVoice           string `yaml:"google_voice"`
}

type StorageConfig struct {
	// UsageDBPath is the sqlite file for the usage ledger. Empty disables it.
	UsageDBPath string `yaml:"usage_db_path"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:             ":8080",
			ReadTimeout:      10 * time.Second,
			WriteTimeout:     3 * time.Minute,
			ShutdownTimeout:  5 * time.Second,
			CORSAllowOrigins: []string{"*"},
			RateLimitRPS:     1,
			RateLimitBurst:   5,
		},
		Plan: PlanConfig{
			BaseURL:   "https://api.openai.com/v1",
			Model:     "gpt-4o-mini",
			MaxTokens: 800,
			Timeout:   90 * time.Second,
		},
		Image: ImageConfig{
			BaseURL: "https://api.replicate.com/v1",
			Model:   "black-forest-labs/flux-schnell",
			Timeout: 120 * time.Second,
		},
		Speech: SpeechConfig{
			Provider:           SpeechProviderElevenLabs,
			BaseURL:            "https://api.elevenlabs.io",
			ModelID:            "eleven_monolingual_v1",
			DefaultVoice:       "21m00Tcm4TlvDq8ikWAM",
			Stability:          0.5,
			SimilarityBoost:    0.75,
			MaxAudioBytes:      10 << 20,
			Timeout:            60 * time.Second,
			GoogleLanguageCode: "en-US",
			GoogleVoice:        "en-US-Wavenet-F",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		SanitizePlanHTML: true,
	}
}

// LoadDotEnv reads .env.local and .env if present. Variables already set in the
// process environment are left untouched.
func LoadDotEnv() {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Speech.Provider {
	case SpeechProviderElevenLabs, SpeechProviderGoogle:
	default:
		return fmt.Errorf("unknown speech provider %q", c.Speech.Provider)
	}
	if c.Server.RateLimitRPS < 0 || c.Server.RateLimitBurst < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}
	return nil
}

func applyEnv(c *Config) error {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	setString(&c.Server.Addr, "SERVER_ADDR")
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		c.Server.CORSAllowOrigins = splitList(v)
	}
	if v := os.Getenv("TRUSTED_PROXIES"); v != "" {
		c.Server.TrustedProxies = splitList(v)
	}

	setString(&c.Plan.APIKey, "OPENAI_API_KEY")
	setString(&c.Plan.BaseURL, "OPENAI_BASE_URL")
	setString(&c.Plan.Model, "OPENAI_MODEL")

	setString(&c.Image.APIToken, "REPLICATE_API_TOKEN")
	setString(&c.Image.BaseURL, "REPLICATE_BASE_URL")
	setString(&c.Image.Model, "REPLICATE_MODEL")
	setString(&c.Image.Version, "REPLICATE_VERSION")

	setString(&c.Speech.Provider, "SPEECH_PROVIDER")
	setString(&c.Speech.APIKey, "ELEVENLABS_API_KEY")
	setString(&c.Speech.BaseURL, "ELEVENLABS_BASE_URL")
	setString(&c.Speech.ModelID, "ELEVENLABS_MODEL_ID")
	setString(&c.Speech.DefaultVoice, "ELEVENLABS_DEFAULT_VOICE")
	setString(&c.Speech.GoogleCredentialsFile, "GOOGLE_APPLICATION_CREDENTIALS")
	setString(&c.Speech.GoogleLanguageCode, "GOOGLE_TTS_LANGUAGE")
	setString(&c.Speech.GoogleVoice, "GOOGLE_TTS_VOICE")

	setString(&c.Storage.UsageDBPath, "USAGE_DB_PATH")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")

	durations := []struct {
		dst *time.Duration
		key string
	}{
		{&c.Server.ReadTimeout, "READ_TIMEOUT"},
		{&c.Server.WriteTimeout, "WRITE_TIMEOUT"},
		{&c.Server.ShutdownTimeout, "SHUTDOWN_TIMEOUT"},
		{&c.Plan.Timeout, "OPENAI_TIMEOUT"},
		{&c.Image.Timeout, "REPLICATE_TIMEOUT"},
		{&c.Speech.Timeout, "SPEECH_TIMEOUT"},
	}
	for _, d := range durations {
		if err := setDuration(d.dst, d.key); err != nil {
			return err
		}
	}

	if err := setInt(&c.Plan.MaxTokens, "OPENAI_MAX_TOKENS"); err != nil {
		return err
	}
	if err := setInt(&c.Server.RateLimitBurst, "RATE_LIMIT_BURST"); err != nil {
		return err
	}
	if err := setInt64(&c.Speech.MaxAudioBytes, "SPEECH_MAX_AUDIO_BYTES"); err != nil {
		return err
	}
	if err := setFloat(&c.Server.RateLimitRPS, "RATE_LIMIT_RPS"); err != nil {
		return err
	}
	if err := setFloat(&c.Speech.Stability, "ELEVENLABS_STABILITY"); err != nil {
		return err
	}
	if err := setFloat(&c.Speech.SimilarityBoost, "ELEVENLABS_SIMILARITY_BOOST"); err != nil {
		return err
	}
	return setBool(&c.SanitizePlanHTML, "SANITIZE_PLAN_HTML")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}

func setInt(dst *int, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setInt64(dst *int64, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = f
	return nil
}

func setBool(dst *bool, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = b
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
