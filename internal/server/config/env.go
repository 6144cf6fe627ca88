package config

import (
	"os"
	"strings"
)

var osLookupEnv = os.LookupEnv

// ApplyEnv overlays the deployment variables PORT, DATABASE_URL,
// FRONTEND_URL, APP_ENV and LOG_LEVEL. Unset or empty variables leave the
// current value alone. PORT may be a bare port ("8080") or a full address.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("PORT"); ok {
		if !strings.Contains(v, ":") {
			v = ":" + v
		}
		c.HTTPAddr = v
	}
	if v, ok := get("DATABASE_URL"); ok {
		c.DatabaseDSN = v
	}
	if v, ok := get("FRONTEND_URL"); ok {
		c.FrontendURL = v
	}
	if v, ok := get("APP_ENV"); ok {
		c.Environment = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
}
