package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	t.Setenv("TEST_GETENV", "")
	assert.Equal(t, "default", getenv("TEST_GETENV", "default"))

	t.Setenv("TEST_GETENV", "test-value")
	assert.Equal(t, "test-value", getenv("TEST_GETENV", "default"))
}

func TestGetenvInt(t *testing.T) {
	t.Setenv("TEST_GETENV_INT", "")
	assert.Equal(t, 42, getenvInt("TEST_GETENV_INT", 42))

	t.Setenv("TEST_GETENV_INT", "100")
	assert.Equal(t, 100, getenvInt("TEST_GETENV_INT", 42))

	t.Setenv("TEST_GETENV_INT", "not-an-int")
	assert.Equal(t, 42, getenvInt("TEST_GETENV_INT", 42))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList("a, b"))
	assert.Equal(t, []string{"http://localhost:5173"}, splitList("http://localhost:5173"))
	assert.Nil(t, splitList(" , "))
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "STORE", "DB_NAME", "ADMIN_EMAIL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.Store)
	assert.Equal(t, "community", cfg.DBName)
	assert.Empty(t, cfg.AdminEmail)
}
