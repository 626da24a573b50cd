package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultEnv           = "local"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	ServerAddress string `mapstructure:"server_address"`
	EnableTLS     bool   `mapstructure:"enable_tls"`
}

// MustLoad loads the client configuration from the environment
func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	viper.AutomaticEnv()
	viper.SetDefault("server_address", defaultServerAddress)
	viper.SetDefault("app_env", defaultEnv)

	return &Config{
		Env:           viper.GetString("app_env"),
		ServerAddress: viper.GetString("server_address"),
		EnableTLS:     viper.GetBool("enable_tls"),
	}
}
