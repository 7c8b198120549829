package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/spra-api/pkg/logger"
)

func TestNew_ProduccionEmiteJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Env: "production", Level: "info", Writer: &buf})

	log.Info().Str("pedido", "ORD-1").Msg("plan generado")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(out, "{"), "en producción la salida es JSON: %s", out)
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"pedido":"ORD-1"`)
	assert.Contains(t, out, `"message":"plan generado"`)
}

func TestNew_DesarrolloUsaConsola(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Env: "development", Level: "info", Writer: &buf})

	log.Info().Msg("iniciando")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.False(t, strings.HasPrefix(out, "{"), "fuera de producción la salida es legible: %s", out)
	assert.Contains(t, out, "iniciando")
}

func TestNew_NivelFiltraMensajes(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Env: "production", Level: "warn", Writer: &buf})

	log.Info().Msg("esto no debe salir")
	log.Warn().Msg("esto sí")

	out := buf.String()
	assert.NotContains(t, out, "esto no debe salir")
	assert.Contains(t, out, "esto sí")
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Env: "production", Level: "verboso", Writer: &buf})

	log.Debug().Msg("debug suprimido")
	log.Info().Msg("info visible")

	out := buf.String()
	assert.NotContains(t, out, "debug suprimido")
	assert.Contains(t, out, "info visible")
}
