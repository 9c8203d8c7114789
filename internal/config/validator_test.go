package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "starcase")
	t.Setenv("API_KEY", "key")
}

func TestValidateEnv_AllSet(t *testing.T) {
	setRequiredEnv(t)
	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_MissingVariable(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_NAME", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestValidateEnv_SchemaVersionMismatch(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestValidateEnvWithWarnings_ExampleValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 1)
}
