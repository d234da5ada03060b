package telemetry_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hierclust/telemetry"
)

func TestInitLogger_ParsesKnownLevels(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"bogus": zerolog.InfoLevel,
		"":      zerolog.InfoLevel,
	}
	for input, want := range cases {
		telemetry.InitLogger(input)
		assert.Equal(t, want, zerolog.GlobalLevel())
	}
}
