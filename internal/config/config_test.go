package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:          "8480",
			JWTSecret:     "secure-secret-at-least-32-chars-long!!",
			DBPassword:    "secure-password",
			ProviderModel: "gpt-4o-mini",
			Env:           "development",
		}
	}

	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		c := base()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing provider model", func(t *testing.T) {
		c := base()
		c.ProviderModel = ""
		assert.Error(t, c.Validate())
	})

	t.Run("production requires provider key", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.ProviderAPIKey = ""
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default jwt secret", func(t *testing.T) {
		c := base()
		c.Env = "prod"
		c.ProviderAPIKey = "sk-test"
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects short jwt secret", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.ProviderAPIKey = "sk-test"
		c.JWTSecret = "short"
		assert.Error(t, c.Validate())
	})

	t.Run("valid production config", func(t *testing.T) {
		c := base()
		c.Env = "production"
		c.ProviderAPIKey = "sk-test"
		c.DBSSLMode = "require"
		assert.NoError(t, c.Validate())
	})
}

func TestConfig_DSN(t *testing.T) {
	c := &Config{
		DBHost:     "db.internal",
		DBPort:     "5432",
		DBUser:     "arcana",
		DBPassword: "pw",
		DBName:     "arcana",
		DBSSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5432 user=arcana password=pw dbname=arcana sslmode=require",
		c.DSN())
}
