package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Server   Server
	Storage  Storage
	Postgres Postgres
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"students-service"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

// Storage выбирает реализацию репозитория: postgres либо memory
// (для локального запуска без базы).
type Storage struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
