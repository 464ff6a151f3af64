package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Port         string           `mapstructure:"port"`
	Debug        bool             `mapstructure:"debug"`
	AIProvider   string           `mapstructure:"ai_provider"`
	AIEndpoint   string           `mapstructure:"ai_endpoint"`
	Model        string           `mapstructure:"model"`
	GoogleAPIKey string           `mapstructure:"GOOGLE_API_KEY"`
	OpenAIAPIKey string           `mapstructure:"OPENAI_API_KEY"`
	Simplifier   SimplifierConfig `mapstructure:"simplifier"`
}

type SimplifierConfig struct {
	MaxChunkSize      int     `mapstructure:"max_chunk_size"`
	SubChunkSize      int     `mapstructure:"sub_chunk_size"`
	MaxAttempts       int     `mapstructure:"max_attempts"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	MaxUploadBytes    int64   `mapstructure:"max_upload_bytes"`
}

// GoogleAPIKeys splits the GOOGLE_API_KEY value on commas so several keys can
// be rotated through when the provider rate-limits one of them.
func (c *Config) GoogleAPIKeys() []string {
	keys := make([]string, 0)
	for _, k := range strings.Split(c.GoogleAPIKey, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("GOOGLE_API_KEY")
	v.BindEnv("OPENAI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.AIProvider != ProviderGemini && config.AIProvider != ProviderOpenAI {
		return nil, fmt.Errorf("unknown ai_provider: %q", config.AIProvider)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("ai_provider", ProviderGemini)
	v.SetDefault("model", "gemini-1.5-pro-latest")
	v.SetDefault("simplifier.max_chunk_size", 15000)
	v.SetDefault("simplifier.sub_chunk_size", 8000)
	v.SetDefault("simplifier.max_attempts", 3)
	v.SetDefault("simplifier.requests_per_second", 0.5)
	v.SetDefault("simplifier.max_upload_bytes", 10<<20)
}
