package config

import (
	"flag"
	"os"
	"time"

	"github.com/logifrete/protocolos/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend base URL
//	-k string   backend API key
//	-f string   local database path
//	-i int      online check interval, seconds
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g. "http://127.0.0.1:9000/")
//	-u string   S3 access key
//	-p string   S3 secret key
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config file flags.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-f", "-i", "-b", "-g", "-e", "-u", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.APIBaseURL, "a", config.APIBaseURL, "backend base URL")
	fs.StringVar(&config.APIKey, "k", config.APIKey, "backend API key")
	fs.StringVar(&config.DatabasePath, "f", config.DatabasePath, "local database path")

	onlineCheckInterval := fs.Int("i", 0, "online check interval (in seconds)")

	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only overlay when the flag was actually given; the configured value
	// may be sub-second and must not be floored away
	if *onlineCheckInterval > 0 {
		config.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	}
}
