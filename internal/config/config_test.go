package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"policyhub/internal/config"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("DB_HOST", "test-host")
	defer os.Unsetenv("DB_HOST")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "test-host", cfg.DBHost)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "ncdhhs-cwis-policy-manuals", cfg.StorageBucket)
	assert.Equal(t, 30, cfg.FetchTimeoutSeconds)
	assert.Equal(t, 8081, cfg.ServerPort)
	assert.Equal(t, "file://migrations", cfg.MigrationPath)
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	content := []byte("STORAGE_BUCKET=loaded-from-file")
	err := os.WriteFile(".env", content, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(".env")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "loaded-from-file", cfg.StorageBucket)
}

func TestValidate(t *testing.T) {
	t.Run("MissingBucket", func(t *testing.T) {
		cfg := &config.Config{DBHost: "h", DBName: "d", FetchTimeoutSeconds: 30}
		err := cfg.Validate()
		assert.ErrorIs(t, err, config.ErrMissingRequired)
	})

	t.Run("NonPositiveTimeout", func(t *testing.T) {
		cfg := &config.Config{DBHost: "h", DBName: "d", StorageBucket: "b"}
		err := cfg.Validate()
		assert.ErrorIs(t, err, config.ErrMissingRequired)
	})

	t.Run("Valid", func(t *testing.T) {
		cfg := &config.Config{DBHost: "h", DBName: "d", StorageBucket: "b", FetchTimeoutSeconds: 30}
		assert.NoError(t, cfg.Validate())
	})
}
