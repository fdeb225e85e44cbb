package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("SERVER_PORT", "")

	cfg := Load()

	require.Equal(t, "fs", cfg.StorageDriver)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	require.Equal(t, "55", cfg.CountryCode)
	require.Equal(t, 5*1024*1024, cfg.StorageQuotaBytes)
	require.False(t, cfg.AuthEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("STORAGE_QUOTA_BYTES", "not-a-number")
	t.Setenv("S3_PATH_STYLE", "TRUE")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()

	require.Equal(t, "redis", cfg.StorageDriver)
	require.Equal(t, 3, cfg.RedisDB)
	require.Equal(t, 5*1024*1024, cfg.StorageQuotaBytes)
	require.True(t, cfg.S3PathStyle)
	require.True(t, cfg.AuthEnabled())
}
