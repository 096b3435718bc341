package config

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Значение по умолчанию для таймаута получения соединения из пула.
const defaultConnTimeout = 30 * time.Second

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress       string
	DatabaseDSN         string
	PgMigrationsPath    string
	DatabaseConnTimeout time.Duration
}

// NewConfig инициализирует конфигурацию: значения по умолчанию,
// затем переменные окружения (и .env, если есть), затем флаги.
func NewConfig() *Config {

	viper.SetDefault("SERVER_ADDRESS", "localhost:8080") // Значения по умолчанию
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("PG_MIGRATIONS_PATH", "internal/migrations")
	viper.SetDefault("DATABASE_CONNECTION_TIMEOUT", "")

	viper.AutomaticEnv()

	// Читаем .env, если есть (не переопределяет переменные окружения!)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // Ошибку игнорируем, если файла нет

	// Определяем флаги, но НЕ задаем в них значения по умолчанию
	serverAddress := flag.String("a", "", "server address")
	databaseDSN := flag.String("d", "", "PostgreSQL DSN")
	migrationsPath := flag.String("m", "", "path to SQL migrations")

	flag.Parse()

	cfg := &Config{
		ServerAddress:       viper.GetString("SERVER_ADDRESS"),
		DatabaseDSN:         viper.GetString("DATABASE_DSN"),
		PgMigrationsPath:    viper.GetString("PG_MIGRATIONS_PATH"),
		DatabaseConnTimeout: connTimeout(),
	}

	// Если флаг передан — он имеет высший приоритет
	if *serverAddress != "" {
		cfg.ServerAddress = *serverAddress
	}
	if *databaseDSN != "" {
		cfg.DatabaseDSN = *databaseDSN
	}
	if *migrationsPath != "" {
		cfg.PgMigrationsPath = *migrationsPath
	}

	log.Printf("Инициализация конфигурации: ServerAddress=%s", cfg.ServerAddress)
	log.Printf("Инициализация конфигурации: PgMigrationsPath=%s", cfg.PgMigrationsPath)
	log.Printf("Инициализация конфигурации: DatabaseConnTimeout=%s", cfg.DatabaseConnTimeout)

	if err := cfg.Validate(); err != nil {
		log.Printf("Ошибка конфигурации: %v", err)
	}

	return cfg
}

// connTimeout читает DATABASE_CONNECTION_TIMEOUT — целое число секунд,
// без суффиксов единиц. Отсутствующее или некорректное значение не
// фатально: пишем предупреждение и возвращаем значение по умолчанию.
func connTimeout() time.Duration {
	raw := viper.GetString("DATABASE_CONNECTION_TIMEOUT")
	if raw == "" {
		return defaultConnTimeout
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("Не удалось разобрать DATABASE_CONNECTION_TIMEOUT=%q, используем %s", raw, defaultConnTimeout)
		return defaultConnTimeout
	}
	return time.Duration(seconds) * time.Second
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("адрес сервера не может быть пустым")
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("адрес подключения к БД не может быть пустым")
	}
	return nil
}
