package logx

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"github.com/Lelo88/productos-api-golang/internal/config"
)

func TestInitWithWriter_Production(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	var buffer bytes.Buffer
	InitWithWriter(config.Production, &buffer)

	Debug().Msg("hidden")
	require.Zero(t, buffer.Len(), "debug must be filtered in production")

	Info().Str("producto_id", "7").Msg("producto creado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "producto creado", entry["message"])
	require.Equal(t, "7", entry["producto_id"])
}

func TestInitWithWriter_Development(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	var buffer bytes.Buffer
	InitWithWriter(config.Development, &buffer)

	Debug().Msg("visible")
	Warn().Msg("cuidado")
	Error().Msg("falló")

	output := buffer.String()
	require.Contains(t, output, "visible")
	require.Contains(t, output, "cuidado")
	require.Contains(t, output, "falló")
}
