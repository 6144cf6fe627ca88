package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/snsplatform/internal/flagx"
	"github.com/dmitrijs2005/snsplatform/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "30s" and integer nanoseconds are accepted.
type JsonConfig struct {
	HTTPAddr            string         `json:"http_addr"`
	GRPCAddr            *string        `json:"grpc_addr"`
	DatabaseDSN         string         `json:"database_dsn"`
	FrontendURL         string         `json:"frontend_url"`
	Environment         string         `json:"environment"`
	LogLevel            string         `json:"log_level"`
	MaxBodyBytes        int64          `json:"max_body_bytes"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	ShutdownTimeout     timex.Duration `json:"shutdown_timeout"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
	S3RootUser          string         `json:"s3_root_user"`
	S3RootPassword      string         `json:"s3_root_password"`
	S3Bucket            string         `json:"s3_bucket"`
	S3Region            string         `json:"s3_region"`
	S3BaseEndpoint      string         `json:"s3_base_endpoint"`
}

// parseJson overlays values from the JSON file named by -c/-config. Keys
// missing from the file keep their current value; grpc_addr may be set to
// "" to disable the gRPC endpoint. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.applyTo(config)
}

func (c *JsonConfig) applyTo(config *Config) {
	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	if c.GRPCAddr != nil {
		config.GRPCAddr = *c.GRPCAddr
	}
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.FrontendURL, c.FrontendURL)
	setString(&config.Environment, c.Environment)
	setString(&config.LogLevel, c.LogLevel)
	if c.MaxBodyBytes > 0 {
		config.MaxBodyBytes = c.MaxBodyBytes
	}
	if c.RequestTimeout.Duration > 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.HealthCheckInterval.Duration > 0 {
		config.HealthCheckInterval = c.HealthCheckInterval.Duration
	}
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}
