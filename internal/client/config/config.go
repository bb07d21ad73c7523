package config

import (
	"time"

	"github.com/logifrete/protocolos/internal/common"
	"github.com/logifrete/protocolos/internal/imagex"
)

// Config holds runtime settings for the protocolo driver client.
//
// Fields:
//   - APIBaseURL / APIKey: hosted backend endpoint and key.
//   - DatabasePath: sqlite file backing the local offline store.
//   - OnlineCheckInterval: how often the client probes backend reachability.
//   - S3*: object storage settings for photo uploads.
//   - MaxImageWidth / ImageQuality: photo normalization bounds.
type Config struct {
	APIBaseURL          string
	APIKey              string
	DatabasePath        string
	OnlineCheckInterval time.Duration
	S3Bucket            string
	S3Region            string
	S3BaseEndpoint      string
	S3AccessKey         string
	S3SecretKey         string
	MaxImageWidth       int
	ImageQuality        float64
}

// LoadDefaults populates c with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:54321"
	c.APIKey = ""
	c.DatabasePath = "protocolos.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.S3Bucket = common.FotosBucket
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
	c.MaxImageWidth = imagex.DefaultMaxWidth
	c.ImageQuality = imagex.DefaultQuality
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from an optional JSON file and finally from command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
