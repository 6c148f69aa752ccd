// Package config loads application configuration from a YAML file,
// environment variables, and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App        App        `mapstructure:"app"`
	LLM        LLM        `mapstructure:"llm"`
	Generation Generation `mapstructure:"generation"`
}

// App holds general application configuration.
type App struct {
	LogLevel string `mapstructure:"log_level"`
	DataDir  string `mapstructure:"data_dir"`
}

// LLM holds model provider configuration.
type LLM struct {
	Provider string         `mapstructure:"provider"`
	DeepSeek DeepSeekConfig `mapstructure:"deepseek"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
}

// DeepSeekConfig holds DeepSeek API configuration.
type DeepSeekConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// GeminiConfig holds Google Gemini configuration.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// Generation holds content-generation policy settings.
type Generation struct {
	MinWords    int     `mapstructure:"min_words"`
	MaxRetries  int     `mapstructure:"max_retries"`
	Temperature float64 `mapstructure:"temperature"`
}

var globalConfig *Config

// Load reads configuration from the given file (or .contentforge.yaml
// in the working directory and $HOME), .env, and the environment.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".contentforge")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	bindEnvironmentVariables()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary.
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

func setDefaults() {
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.data_dir", ".contentforge")

	viper.SetDefault("llm.provider", "deepseek")
	viper.SetDefault("llm.deepseek.model", "deepseek-chat")
	viper.SetDefault("llm.deepseek.base_url", "https://api.deepseek.com/v1")
	viper.SetDefault("llm.gemini.model", "gemini-flash-lite-latest")

	viper.SetDefault("generation.min_words", 1200)
	viper.SetDefault("generation.max_retries", 2)
	viper.SetDefault("generation.temperature", 0.7)
}

func bindEnvironmentVariables() {
	_ = viper.BindEnv("llm.deepseek.api_key", "DEEPSEEK_API_KEY")
	_ = viper.BindEnv("llm.gemini.api_key", "GEMINI_API_KEY")
	_ = viper.BindEnv("llm.provider", "CONTENTFORGE_LLM_PROVIDER")
	_ = viper.BindEnv("app.log_level", "CONTENTFORGE_LOG_LEVEL")
	_ = viper.BindEnv("app.data_dir", "CONTENTFORGE_DATA_DIR")
}
