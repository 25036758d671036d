package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	c := LoadConfig()

	require.NotZero(t, c.ServerPort)

	assert.Equal(t, 8000, c.ServerPort)
	assert.Equal(t, "localhost", c.Database.Host)
	assert.Equal(t, 5432, c.Database.Port)
	assert.Equal(t, "postgres", c.Database.User)
	assert.Equal(t, "accounts", c.Database.DBName)
	assert.Equal(t, 10, c.Database.MaxOpenConns)
	assert.False(t, c.Database.UseSSL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_NAME", "users_prod")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("DB_USE_SSL", "true")

	c := LoadConfig()

	assert.Equal(t, 9100, c.ServerPort)
	assert.Equal(t, "db.internal", c.Database.Host)
	assert.Equal(t, 5433, c.Database.Port)
	assert.Equal(t, "svc", c.Database.User)
	assert.Equal(t, "hunter2", c.Database.Password)
	assert.Equal(t, "users_prod", c.Database.DBName)
	assert.Equal(t, 4, c.Database.MaxOpenConns)
	assert.True(t, c.Database.UseSSL)
}
