package config

import (
	"flag"
	"os"
	"time"

	"github.com/mindwell/mindwell/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend service
//	-m string   generative model name
//	-d string   path of the local cache database
//	-t int      request timeout in seconds
//
// os.Args is filtered to only the flags handled here, via flagx.FilterArgs,
// so they coexist with flags owned by other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend service")
	fs.StringVar(&cfg.GeminiModel, "m", cfg.GeminiModel, "generative model name")
	fs.StringVar(&cfg.CacheDSN, "d", cfg.CacheDSN, "path of the local cache database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
