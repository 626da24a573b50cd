package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Env     string
	Server  server
	Storage storage
	Logger  logger
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type storage struct {
	Driver      string `env:"STORAGE_DRIVER"`
	SQLitePath  string `env:"SQLITE_PATH"`
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", ":8080")
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("storage_driver", DriverSQLite)
	viper.SetDefault("sqlite_path", "catalog.db")
	viper.SetDefault("migrations_path", "migrations")
	viper.SetDefault("log_level", "info")

	return &Config{
		Env: viper.GetString("app_env"),
		Server: server{
			RunAddress: viper.GetString("run_address"),
		},
		Storage: storage{
			Driver:      viper.GetString("storage_driver"),
			SQLitePath:  viper.GetString("sqlite_path"),
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Logger: logger{
			LogLevel: viper.GetString("log_level"),
		},
	}
}
