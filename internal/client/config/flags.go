package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string     backend base URL
//	-n string     notifications WebSocket URL
//	-s string     session store backend: sqlite, memory or redis
//	-d string     SQLite file of the session store
//	-r string     Redis URL of the session store
//	-m duration   expiry margin for access tokens
//	-i int        online check interval (seconds)
//	-l string     log level
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// stages do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-s", "-d", "-r", "-m", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend base URL")
	fs.StringVar(&cfg.NotificationsURL, "n", cfg.NotificationsURL, "notifications WebSocket URL")
	fs.StringVar(&cfg.StoreBackend, "s", cfg.StoreBackend, "session store backend (sqlite, memory, redis)")
	fs.StringVar(&cfg.StorePath, "d", cfg.StorePath, "session store SQLite file")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "session store Redis URL")
	fs.DurationVar(&cfg.ExpiryMargin, "m", cfg.ExpiryMargin, "treat tokens as expired this long before exp")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
}
