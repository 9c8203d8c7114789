package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool("not a connection string", 5, time.Minute, time.Minute)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}

func TestNewPool_UnreachableHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping connection attempt in short mode")
	}

	// Port 1 is never a postgres listener; the ping must fail fast.
	_, err := NewPool("postgres://u:p@127.0.0.1:1/db?sslmode=disable&connect_timeout=1", 5, time.Minute, time.Minute)
	assert.Error(t, err)
}
