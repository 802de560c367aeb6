package config_test

import (
	"path/filepath"
	"testing"

	"coolschool-backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := config.New()

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "debug", cfg.GinMode)
	require.Equal(t, "memory", cfg.NewsStorage)
	require.False(t, cfg.IsRelease())
	require.Equal(t, filepath.Join("data", "ContactData.json"), cfg.ContactDataFile())
	require.Equal(t, filepath.Join("data", "recruitData.json"), cfg.RecruitDataFile())
	require.Equal(t, []string{"http://localhost:3000"}, cfg.GetCORSOrigins())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("NEWS_STORAGE", "file")
	t.Setenv("DATA_DIR", "/var/lib/coolschool")
	t.Setenv("CORS_ORIGINS", "https://coolschool.vn,https://admin.coolschool.vn")

	cfg := config.New()

	require.Equal(t, "9090", cfg.Port)
	require.True(t, cfg.IsRelease())
	require.Equal(t, "file", cfg.NewsStorage)
	require.Equal(t, filepath.Join("/var/lib/coolschool", "newsData.json"), cfg.NewsDataFile())
	require.Equal(t, []string{"https://coolschool.vn", "https://admin.coolschool.vn"}, cfg.GetCORSOrigins())
}
