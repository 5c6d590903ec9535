package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name:     "both flags set",
			args:     []string{"cmd", "-d", "/tmp/p.db", "-a", "/tmp/av"},
			expected: &Config{DatabaseDSN: "/tmp/p.db", AvatarDir: "/tmp/av"},
		},
		{
			name:     "unknown flags ignored",
			args:     []string{"cmd", "-d", "/tmp/p.db", "-x", "junk"},
			expected: &Config{DatabaseDSN: "/tmp/p.db"},
		},
		{
			name:     "no flags leave config untouched",
			args:     []string{"cmd"},
			expected: &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}

func TestLoadConfig_DefaultsApply(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd"}

	cfg := LoadConfig()
	assert.Equal(t, "profile.db", cfg.DatabaseDSN)
	assert.Equal(t, "avatars", cfg.AvatarDir)
}
