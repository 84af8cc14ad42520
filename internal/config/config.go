package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Mode        string        `mapstructure:"mode"`
	Port        int           `mapstructure:"port"`
	BotToken    string        `mapstructure:"bot_token"`
	WebhookURL  string        `mapstructure:"webhook_url"`
	APIBase     string        `mapstructure:"api_base"`
	CodeLength  int           `mapstructure:"code_length"`
	SendTimeout time.Duration `mapstructure:"send_timeout"`
}

func Load() (*Config, error) {
	// .env is optional; deployed environments inject the variables directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("api_base", "https://api.telegram.org")
	v.SetDefault("code_length", 8)
	v.SetDefault("send_timeout", "10s")

	_ = v.BindEnv("bot_token", "BOT_TOKEN")
	_ = v.BindEnv("webhook_url", "WEBHOOK_URL")

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("⚠️ Config file not found (%s), using defaults\n", fileName)
	} else {
		fmt.Printf("✅ Loaded config: %s\n", fileName)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.BotToken == "" || cfg.WebhookURL == "" {
		return nil, errors.New("BOT_TOKEN and WEBHOOK_URL must be set")
	}
	fmt.Printf("🧩 Mode: %s | Port: %d\n", cfg.Mode, cfg.Port)
	return &cfg, nil
}
