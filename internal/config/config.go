// Package config предоставляет структуры и функции для загрузки конфигурации
// сервера и клиента.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек сервера.
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	MigrationsPath          string `yaml:"migrations_path" env-default:"./migrations"`
	HTTPServer              `yaml:"http_server"`
}

// HTTPServer структура для настройки HTTP-сервера.
type HTTPServer struct {
	Address     string        `yaml:"address" env-default:":8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Client структура для настройки клиента API.
// Курс ExchangeRate задаёт количество лемпир за 1 доллар США
// и используется при подсчёте суммарных месячных расходов.
type Client struct {
	APIBaseURL   string        `env:"API_BASE_URL" env-default:"http://localhost:8080/api/v1"`
	ExchangeRate float64       `env:"EXCHANGE_RATE" env-default:"26"`
	Timeout      time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`
}

// MustLoad загружает конфигурацию сервера из YAML-файла по пути CONFIG_PATH.
// Завершает процесс, если файл отсутствует или не читается.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

// MustLoadClient загружает конфигурацию клиента из переменных окружения.
func MustLoadClient() *Client {
	var cfg Client
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read client config: %s", err)
	}
	return &cfg
}
