package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/ballarena/config"
	"github.com/lixenwraith/ballarena/weapon"
)

var (
	configFlag   = flag.String("config", "", "YAML config file, defaults apply when empty")
	leftFlag     = flag.String("left", "sword", "Comma-separated left side variants, \"random\" picks one")
	rightFlag    = flag.String("right", "dagger", "Comma-separated right side variants, \"random\" picks one")
	seedFlag     = flag.Uint64("seed", 1, "Base random seed, match i uses a seed derived from seed and i")
	batchFlag    = flag.Int("batch", 1, "Number of headless matches to run")
	workersFlag  = flag.Int("workers", 0, "Concurrent matches in batch mode, 0 uses all CPUs")
	watchFlag    = flag.Bool("watch", false, "Watch a single match in the terminal")
	listFlag     = flag.Bool("list", false, "List variants by group and exit")
	logLevelFlag = flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	logJSONFlag  = flag.Bool("log-json", false, "Emit JSON log lines")
	logFileFlag  = flag.String("log-file", "", "Write logs to file, watch mode discards logs when empty")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nballarena crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	log, closeLog, err := setupLogging(*logLevelFlag, *logJSONFlag, *logFileFlag, *watchFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(2)
	}
	defer closeLog()

	reg := weapon.Registry()
	if *listFlag {
		printVariants(os.Stdout, reg)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}

	left, err := parseSide(reg, *leftFlag, *seedFlag)
	if err != nil {
		log.WithError(err).Fatal("left side")
	}
	right, err := parseSide(reg, *rightFlag, *seedFlag+1)
	if err != nil {
		log.WithError(err).Fatal("right side")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *watchFlag {
		if err := runWatch(ctx, cfg, reg, left, right, *seedFlag, log); err != nil && ctx.Err() == nil {
			log.WithError(err).Fatal("watch failed")
		}
		return
	}

	b := batch{
		cfg:     cfg,
		reg:     reg,
		left:    left,
		right:   right,
		seed:    *seedFlag,
		count:   *batchFlag,
		workers: *workersFlag,
		log:     log,
	}
	tally, results, err := b.run(ctx)
	if err != nil {
		log.WithError(err).Fatal("batch failed")
	}
	printSummary(os.Stdout, tally, results)
}

// setupLogging builds the process logger, the returned func closes any log file
func setupLogging(level string, asJSON bool, path string, quiet bool) (*logrus.Logger, func(), error) {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(lvl)
	if asJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	closer := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		closer = func() { f.Close() }
	case quiet:
		// Terminal is owned by the viewer
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return log, closer, nil
}
