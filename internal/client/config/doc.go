// Package config loads runtime configuration for the jobmatch CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed JOBMATCH_, after loading a dotenv file
//     (-e/-env-file, or ./.env when it exists).
//  4. Command-line flags, which override everything else.
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds:
//
//	{
//	  "base_url": "https://api.example.com/api",
//	  "notifications_url": "wss://api.example.com/ws/notifications",
//	  "store_backend": "sqlite",
//	  "store_path": "jobmatch.db",
//	  "expiry_margin": "30s",
//	  "online_check_interval": "3s"
//	}
//
// The store passphrase is never read from JSON; set JOBMATCH_STORE_PASSPHRASE.
package config
