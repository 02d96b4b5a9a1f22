package config

import "strings"

// Environment representa el entorno de despliegue.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

func (environment Environment) String() string {
	return string(environment)
}

// IsProduction indica si el entorno es producción.
func (environment Environment) IsProduction() bool {
	return environment == Production
}

// ParseEnvironment normaliza el valor recibido.
// Valores desconocidos caen en Development para que la app arranque igual.
func ParseEnvironment(value string) Environment {
	switch Environment(strings.ToLower(strings.TrimSpace(value))) {
	case Production:
		return Production
	case Staging:
		return Staging
	case Testing:
		return Testing
	default:
		return Development
	}
}
