package config

import (
	"os"
	"testing"
)

// clearConfigEnv unsets every variable Load reads so each test starts from
// a clean environment regardless of the host shell. Original values are
// restored on cleanup.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "VERSION",
		"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
		"API_KEY", "CATALOG_PATH", "PVP_JOIN_TIMEOUT", "LOG_DIR", "TRUSTED_PROXIES",
	} {
		if value, ok := os.LookupEnv(key); ok {
			k, v := key, value
			t.Cleanup(func() { os.Setenv(k, v) })
			os.Unsetenv(key)
		}
	}
}
