// Package config loads runtime configuration for the protocolo driver client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://backend.example.com",
//	  "api_key": "...",
//	  "database_path": "protocolos.db",
//	  "online_check_interval": "3s",
//	  "s3_bucket": "fotos-protocolos",
//	  "s3_base_endpoint": "http://127.0.0.1:9000/"
//	}
package config
