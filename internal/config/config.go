package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config agrupa la configuración necesaria para correr la aplicación.
// Se completa desde variables de entorno (ver tags envconfig).
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// DatabaseTLSSkipVerify desactiva la verificación del certificado TLS de Postgres.
	// Solo para proveedores gestionados con certificados autofirmados.
	DatabaseTLSSkipVerify bool  `envconfig:"DATABASE_TLS_SKIP_VERIFY" default:"false"`
	DatabaseMaxConns      int32 `envconfig:"DATABASE_MAX_CONNS" default:"10"`

	RequestTimeout     time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	Environment        Environment   `envconfig:"APP_ENV" default:"development"`
	ExposeErrorDetails bool          `envconfig:"EXPOSE_ERROR_DETAILS" default:"false"`
}

// Load lee variables de entorno y valida lo mínimo indispensable.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	// Normalizamos por si alguien manda ":8080"
	cfg.Port = strings.TrimPrefix(strings.TrimSpace(cfg.Port), ":")
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("missing required env var: DATABASE_URL")
	}

	if cfg.DatabaseMaxConns < 1 {
		return Config{}, fmt.Errorf("DATABASE_MAX_CONNS must be positive, got %d", cfg.DatabaseMaxConns)
	}
	if cfg.RequestTimeout <= 0 {
		return Config{}, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	cfg.Environment = ParseEnvironment(string(cfg.Environment))

	return cfg, nil
}

// LoadDotenv carga un archivo .env si existe.
// Que no exista no es un error: en producción las variables vienen del entorno.
func LoadDotenv(filenames ...string) (bool, error) {
	err := godotenv.Load(filenames...)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
