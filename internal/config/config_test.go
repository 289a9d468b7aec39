package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
		_ = os.Unsetenv(k)
	}
}

func Test_Defaults(t *testing.T) {
	req := require.New(t)
	unsetEnv(t, "PORT", "STORAGE_DRIVER", "STORAGE_PATH", "REPLY_DELAY", "SESSION_IDLE",
		"SWEEP_INTERVAL", "ALLOWED_ORIGINS", "OPENAI_API_KEY")

	cfg, err := FromEnviron()
	req.NoError(err)
	req.Equal("8080", cfg.Port)
	req.Equal("badger", cfg.StorageDriver)
	req.Equal(900*time.Millisecond, cfg.ReplyDelay)
	req.Equal([]string{"*"}, cfg.Origins())
	req.False(cfg.AIEnabled())
}

func Test_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("REPLY_DELAY", "2s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := FromEnviron()
	req.NoError(err)
	req.Equal("9090", cfg.Port)
	req.Equal("memory", cfg.StorageDriver)
	req.Equal(2*time.Second, cfg.ReplyDelay)
	req.Equal([]string{"http://a.test", "http://b.test"}, cfg.Origins())
	req.True(cfg.AIEnabled())
	req.True(cfg.CookieSecure)
}

func Test_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:          "8080",
			StorageDriver: "badger",
			StoragePath:   "./data",
			SessionIdle:   time.Minute,
			SweepInterval: time.Minute,
		}
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Port = "" }},
		{"unknown driver", func(c *Config) { c.StorageDriver = "redis" }},
		{"badger without path", func(c *Config) { c.StoragePath = "" }},
		{"postgres without url", func(c *Config) { c.StorageDriver = "postgres" }},
		{"negative delay", func(c *Config) { c.ReplyDelay = -time.Second }},
		{"zero idle", func(c *Config) { c.SessionIdle = 0 }},
		{"zero sweep interval", func(c *Config) { c.SweepInterval = 0 }},
	}

	base := valid()
	assert.NoError(t, base.Validate())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
