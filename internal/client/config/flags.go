package config

import (
	"flag"
	"os"
	"time"

	"github.com/pushkard/userconsole/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base address of the directory service
//	-d string   path of the local SQLite file
//	-s int      rows per page
//	-t int      inactivity timeout in seconds
//
// os.Args is filtered through flagx.FilterArgs first so flags owned by
// other components (like -c/-config) do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base address of the directory service")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.IntVar(&cfg.PageSize, "s", cfg.PageSize, "rows per page")
	idleTimeout := fs.Int("t", int(cfg.IdleTimeout.Seconds()), "inactivity timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.IdleTimeout = time.Duration(*idleTimeout) * time.Second
}
