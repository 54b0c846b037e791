package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SummarizerConfig groups the generation parameters for the summarization provider
type SummarizerConfig struct {
	Model            string
	MaxOutputTokens  int64
	Temperature      float64
	RequestTimeout   time.Duration
	PromptCharBudget int
}

// AppConfig is loaded once at startup and passed read-only to the components
// that need it
type AppConfig struct {
	Environment string
	Port        string // health endpoint, optional with default "8080"

	DiscordBotToken string
	AnthropicAPIKey string

	// InvocationTimeout bounds one whole /tldr invocation
	InvocationTimeout time.Duration

	SummarizerConfig SummarizerConfig
}

// LoadConfig reads configuration from the environment. Missing required
// secrets fail here, before the event loop starts, naming the missing
// variable.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	discordBotToken, err := getEnvRequired("DISCORD_BOT_TOKEN")
	if err != nil {
		return nil, err
	}

	anthropicAPIKey, err := getEnvRequired("ANTHROPIC_API_KEY")
	if err != nil {
		return nil, err
	}

	maxOutputTokens, err := getEnvInt("SUMMARY_MAX_TOKENS", 1024)
	if err != nil {
		return nil, err
	}
	if maxOutputTokens < 1 {
		return nil, fmt.Errorf("SUMMARY_MAX_TOKENS must be positive, got %d", maxOutputTokens)
	}

	temperature, err := getEnvFloat("SUMMARY_TEMPERATURE", 0.3)
	if err != nil {
		return nil, err
	}
	if temperature < 0 || temperature > 1 {
		return nil, fmt.Errorf("SUMMARY_TEMPERATURE must be within [0, 1], got %g", temperature)
	}

	timeoutSeconds, err := getEnvInt("SUMMARY_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, err
	}

	promptCharBudget, err := getEnvInt("PROMPT_CHAR_BUDGET", 80000)
	if err != nil {
		return nil, err
	}
	if promptCharBudget < 1 {
		return nil, fmt.Errorf("PROMPT_CHAR_BUDGET must be positive, got %d", promptCharBudget)
	}

	invocationTimeoutSeconds, err := getEnvInt("INVOCATION_TIMEOUT_SECONDS", 180)
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		Environment:       getEnvWithDefault("ENVIRONMENT", "dev"),
		Port:              getEnvWithDefault("PORT", "8080"),
		DiscordBotToken:   discordBotToken,
		AnthropicAPIKey:   anthropicAPIKey,
		InvocationTimeout: time.Duration(invocationTimeoutSeconds) * time.Second,
		SummarizerConfig: SummarizerConfig{
			Model:            getEnvWithDefault("SUMMARY_MODEL", "claude-sonnet-4-0"),
			MaxOutputTokens:  int64(maxOutputTokens),
			Temperature:      temperature,
			RequestTimeout:   time.Duration(timeoutSeconds) * time.Second,
			PromptCharBudget: promptCharBudget,
		},
	}

	log.Printf("✅ Configuration loaded (model: %s, environment: %s)",
		config.SummarizerConfig.Model, config.Environment)
	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return parsed, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, value)
	}
	return parsed, nil
}
