package domain_test

import (
	"testing"

	"github.com/stockroom/stockroom/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, 50, cfg.MaxInputLength)
	assert.False(t, cfg.ClearScreen)
	assert.False(t, cfg.Pause)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, domain.Config{}.Validate())
	assert.NoError(t, domain.Config{Log: domain.LogConfig{Level: "DEBUG", Format: "json"}}.Validate())
	assert.NoError(t, domain.Config{Log: domain.LogConfig{Level: "warning"}}.Validate())

	err := domain.Config{MaxInputLength: -1}.Validate()
	assert.ErrorContains(t, err, "max_input_length")

	err = domain.Config{Log: domain.LogConfig{Level: "verbose"}}.Validate()
	assert.ErrorContains(t, err, `unknown log level "verbose"`)

	err = domain.Config{Log: domain.LogConfig{Format: "xml"}}.Validate()
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}

func TestConfig_MergeKeepsDefaultsForZeroValues(t *testing.T) {
	cfg := domain.DefaultConfig().Merge(domain.Config{Currency: "£", Log: domain.LogConfig{Level: "Info"}})
	assert.Equal(t, "£", cfg.Currency)
	assert.Equal(t, 50, cfg.MaxInputLength)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestField_Limit(t *testing.T) {
	assert.Equal(t, 10, domain.Field{MaxLength: 10}.Limit(50))
	assert.Equal(t, 30, domain.Field{}.Limit(30))
	assert.Equal(t, domain.DefaultMaxLength, domain.Field{}.Limit(0))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "text", domain.KindText.String())
	assert.Equal(t, "integer", domain.KindInteger.String())
	assert.Equal(t, "decimal", domain.KindDecimal.String())
}
