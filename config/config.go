package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8000"

	// AI Configuration
	AIProvider string `mapstructure:"AI_PROVIDER"`    // "gemini", "openai" or "none"
	GeminiKey  string `mapstructure:"GEMINI_API_KEY"` // API key for Google Gemini
	OpenAIKey  string `mapstructure:"OPENAI_API_KEY"` // API key for OpenAI

	// Output Configuration
	OutputDir string `mapstructure:"OUTPUT_DIR"` // Directory for generated projects and screenshots

	// Browser Configuration
	NavigationTimeoutSeconds int `mapstructure:"NAVIGATION_TIMEOUT_SECONDS"` // Per-navigation budget
	ViewportWidth            int `mapstructure:"VIEWPORT_WIDTH"`
	ViewportHeight           int `mapstructure:"VIEWPORT_HEIGHT"`
}

// NavigationTimeout exposes the browser budget as a duration.
func (c Config) NavigationTimeout() time.Duration {
	return time.Duration(c.NavigationTimeoutSeconds) * time.Second
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8000")
	viper.SetDefault("AI_PROVIDER", "gemini")
	viper.SetDefault("OUTPUT_DIR", "generated_projects")
	viper.SetDefault("NAVIGATION_TIMEOUT_SECONDS", 30)
	viper.SetDefault("VIEWPORT_WIDTH", 1920)
	viper.SetDefault("VIEWPORT_HEIGHT", 1080)

	viper.AutomaticEnv() // Read environment variables that match keys

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.GeminiKey == "" && config.OpenAIKey == "" {
		log.Println("WARN: No AI API key is set. Analysis will run on the rule-based path only.")
	}

	return
}
