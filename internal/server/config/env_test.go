package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want func(c *Config)
	}{
		{
			name: "nothing set keeps values",
			env:  map[string]string{},
			want: func(c *Config) {},
		},
		{
			name: "bare port",
			env:  map[string]string{"PORT": "8080"},
			want: func(c *Config) { c.HTTPAddr = ":8080" },
		},
		{
			name: "full address",
			env:  map[string]string{"PORT": "127.0.0.1:8080"},
			want: func(c *Config) { c.HTTPAddr = "127.0.0.1:8080" },
		},
		{
			name: "empty values ignored",
			env:  map[string]string{"PORT": "", "DATABASE_URL": "  "},
			want: func(c *Config) {},
		},
		{
			name: "all variables",
			env: map[string]string{
				"DATABASE_URL": "postgres://x",
				"FRONTEND_URL": "https://app.example",
				"APP_ENV":      "production",
				"LOG_LEVEL":    "warn",
			},
			want: func(c *Config) {
				c.DatabaseDSN = "postgres://x"
				c.FrontendURL = "https://app.example"
				c.Environment = "production"
				c.LogLevel = "warn"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got, want Config
			got.LoadDefaults()
			want.LoadDefaults()
			tt.want(&want)

			got.ApplyEnv(lookupFrom(tt.env))
			assert.Equal(t, want, got)
		})
	}
}
