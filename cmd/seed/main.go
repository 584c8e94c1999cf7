package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/nobuchiyo/studylens/internal/seedrecords"
	"github.com/nobuchiyo/studylens/pkg/logger"
)

// Default configuration constants.
const (
	defaultCount   = 50
	defaultTimeout = 10 * time.Second
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		count   = flag.Int("count", defaultCount, "Number of sample records to submit")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	ctx := context.Background()
	stats, err := seedrecords.Run(ctx, *baseURL, *count, *timeout)
	if err != nil {
		log.Error(ctx, "seed run aborted", logger.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "seed run complete",
		logger.Int("submitted", stats.Submitted),
		logger.Int("failed", stats.Failed),
	)
}
