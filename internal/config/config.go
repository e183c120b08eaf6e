package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"item-parser/internal/localization"
)

// Table sources accepted by TABLE_SOURCE.
const (
	SourceJSON     = "json"
	SourcePostgres = "postgres"
	SourceNeo4j    = "neo4j"
)

type Config struct {
	Language      string `validate:"required,language"`
	GameLanguage  string `validate:"omitempty,language"`
	AssetsDir     string `validate:"required_if=TableSource json"`
	TableSource   string `validate:"oneof=json postgres neo4j"`
	DatabaseURL   string `validate:"required_if=TableSource postgres"`
	Neo4jURI      string `validate:"required_if=TableSource neo4j"`
	Neo4jUser     string
	Neo4jPassword string
	WorkerCount   int    `validate:"min=1,max=256"`
	LogLevel      string `validate:"oneof=trace debug info warn error fatal panic disabled"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		Language:      getEnv("PARSER_LANGUAGE", "en"),
		GameLanguage:  getEnv("PARSER_GAME_LANGUAGE", ""),
		AssetsDir:     getEnv("ASSETS_DIR", "assets"),
		TableSource:   getEnv("TABLE_SOURCE", SourceJSON),
		DatabaseURL:   getEnv("DATABASE_URL", "postgres://localhost:5432/item_parser?sslmode=disable"),
		Neo4jURI:      getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:     getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword: getEnv("NEO4J_PASSWORD", "password"),
		WorkerCount:   getEnvInt("WORKER_COUNT", 8),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid integer, using default")
		return fallback
	}
	return n
}

var validate *validator.Validate

func init() {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	validate = v
}

func newValidator() (*validator.Validate, error) {
	v := validator.New()
	err := v.RegisterValidation("language", func(fl validator.FieldLevel) bool {
		_, err := localization.ParseLanguage(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return nil, fmt.Errorf("register language validation: %w", err)
	}
	return v, nil
}

// Validate reports every invalid setting, naming the environment variable.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", envNames[e.Field()], fmt.Sprint(e.Value()), e.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

var envNames = map[string]string{
	"Language":      "PARSER_LANGUAGE",
	"GameLanguage":  "PARSER_GAME_LANGUAGE",
	"AssetsDir":     "ASSETS_DIR",
	"TableSource":   "TABLE_SOURCE",
	"DatabaseURL":   "DATABASE_URL",
	"Neo4jURI":      "NEO4J_URI",
	"Neo4jUser":     "NEO4J_USER",
	"Neo4jPassword": "NEO4J_PASSWORD",
	"WorkerCount":   "WORKER_COUNT",
	"LogLevel":      "LOG_LEVEL",
}
