package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/google/uuid"
	"github.com/oomph-ac/ballistics/settings"
	"github.com/sirupsen/logrus"
)

const defaultSettingsPath = "ballistics.toml"

// The following program fires projectiles and predicts their paths in a scene described by a settings file.
func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	path := defaultSettingsPath
	if len(os.Args) > 2 {
		path = os.Args[2]
	}
	if err := run(os.Args[1], path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Usage: ./ballistics <init|predict|fire|view> [settings.toml]")
}

func run(cmd, path string) error {
	if cmd == "init" {
		if err := settings.SaveDefault(path); err != nil {
			return err
		}
		fmt.Printf("Default settings written to %s\n", path)
		return nil
	}

	conf, err := settings.Load(path)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(conf, cmd == "view")
	if err != nil {
		return err
	}
	defer closeLog()

	defer setupSentry(conf, logger)()
	defer sentry.Recover()

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(conf.Profiling.Address))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		logger.WithField("address", conf.Profiling.Address).Info("statsview started")
	}

	switch cmd {
	case "predict":
		return runPredict(conf, logger)
	case "fire":
		return runFire(conf, logger)
	case "view":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runView(ctx, conf, logger)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// newLogger returns the logger of a run. The terminal view owns stdout, so it logs to a file instead.
func newLogger(conf settings.Settings, toFile bool) (*logrus.Entry, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	level, err := logrus.ParseLevel(conf.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)

	closeLog := func() {}
	if toFile {
		f, err := os.OpenFile("./ballistics.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed opening log file: %w", err)
		}
		logger.SetOutput(f)
		closeLog = func() { _ = f.Close() }
	}
	return logger.WithField("run", uuid.NewString()), closeLog, nil
}

// setupSentry initialises error reporting if a DSN is configured. The returned function flushes pending
// events.
func setupSentry(conf settings.Settings, logger logrus.FieldLogger) func() {
	if conf.Sentry.DSN == "" {
		return func() {}
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         conf.Sentry.DSN,
		Environment: conf.Sentry.Environment,
	}); err != nil {
		logger.WithField("error", err).Warn("sentry disabled")
		return func() {}
	}
	return func() {
		sentry.Flush(2 * time.Second)
	}
}
