package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Lelo88/productos-api-golang/internal/config"
)

// Init configura el logger global según el entorno.
// En producción: JSON a stdout, nivel info. En el resto: consola legible, nivel debug.
func Init(environment config.Environment) {
	InitWithWriter(environment, os.Stdout)
}

// InitWithWriter permite redirigir la salida (tests).
func InitWithWriter(environment config.Environment, writer io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if environment.IsProduction() {
		log.Logger = zerolog.New(writer).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		return
	}

	console := zerolog.ConsoleWriter{Out: writer, NoColor: writer != os.Stdout}
	log.Logger = zerolog.New(console).With().Timestamp().Caller().Logger().Level(zerolog.DebugLevel)
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
