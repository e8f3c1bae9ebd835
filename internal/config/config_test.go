package config_test

import (
	"testing"

	"panel-rsvp/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSupabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://proj.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service")
	t.Setenv("ADMIN_SECRET_KEY", "secret")
}

func TestLoad_Supabase(t *testing.T) {
	setSupabaseEnv(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.BackendSupabase, cfg.StoreBackend)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://proj.supabase.co", cfg.SupabaseURL)
}

func TestLoad_MissingStoreConfigIsFatal(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "")
	t.Setenv("ADMIN_SECRET_KEY", "secret")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestLoad_SQLiteBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "test.db")
	t.Setenv("ADMIN_SECRET_KEY", "secret")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, config.BackendSQLite, cfg.StoreBackend)
	assert.Equal(t, "test.db", cfg.SQLitePath)
}

func TestLoad_UnknownBackend(t *testing.T) {
	setSupabaseEnv(t)
	t.Setenv("STORE_BACKEND", "dynamo")

	_, err := config.Load()

	assert.Error(t, err)
}

func TestLoad_MissingAdminSecret(t *testing.T) {
	setSupabaseEnv(t)
	t.Setenv("ADMIN_SECRET_KEY", "")

	_, err := config.Load()

	assert.Error(t, err)
}
