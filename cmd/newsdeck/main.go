package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newsdeck/pkg/aggregator"
	"github.com/umputun/newsdeck/pkg/ainews"
	"github.com/umputun/newsdeck/pkg/config"
	"github.com/umputun/newsdeck/pkg/metrics"
	"github.com/umputun/newsdeck/pkg/provider"
	"github.com/umputun/newsdeck/pkg/repository"
	"github.com/umputun/newsdeck/pkg/scheduler"
	"github.com/umputun/newsdeck/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	SetupLog(opts.Debug)
	if opts.NoColor {
		color.NoColor = true
	}
	lgr.Printf("[INFO] starting newsdeck version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}
	cancel()
	lgr.Print("[INFO] shutdown complete")
}

// run loads configuration, wires all components and blocks until ctx is done or the server fails
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// re-setup logger with secrets from config, so api keys never show up in logs
	SetupLog(opts.Debug, cfg.Secrets()...)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init repositories: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	mtr := metrics.New()
	httpClient := provider.NewHTTPClient(cfg.Aggregator.Timeout)

	providers := provider.New(cfg.Providers, httpClient)
	configured := 0
	for _, p := range providers {
		if p.Configured() {
			configured++
		}
	}
	lgr.Printf("[INFO] %d of %d news providers configured", configured, len(providers))

	agg := aggregator.New(aggregator.Config{
		Providers:     providers,
		Recorder:      mtr,
		Timeout:       cfg.Aggregator.Timeout,
		MaxWorkers:    cfg.Aggregator.MaxWorkers,
		RetryAttempts: cfg.Aggregator.RetryAttempts,
		RetryDelay:    cfg.Aggregator.RetryDelay,
		PageSize:      cfg.Aggregator.PageSize,
	})

	generators, err := ainews.NewGenerators(cfg.AI.Generators, ainews.GeneratorOptions{
		MaxTokens:   cfg.AI.MaxTokens,
		Temperature: cfg.AI.Temperature,
		Client:      &http.Client{Timeout: cfg.AI.Timeout},
	})
	if err != nil {
		return fmt.Errorf("failed to create ai generators: %w", err)
	}
	withKeys := 0
	for _, g := range cfg.AI.Generators {
		if g.APIKey != "" {
			withKeys++
		}
	}
	lgr.Printf("[INFO] %d ai news generators, %d with api keys, categories %v", len(generators), withKeys, cfg.AI.Categories)

	aiNews := ainews.NewService(ainews.Config{
		Store:         repos.AINews,
		Generators:    generators,
		Categories:    cfg.AI.Categories,
		Timeout:       cfg.AI.Timeout,
		RateLimit:     cfg.AI.RateLimit,
		RetentionDays: cfg.AI.RetentionDays,
		Recorder:      mtr,
	})

	sched := scheduler.NewScheduler(scheduler.Params{
		AINews:         aiNews,
		SettingManager: repos.Setting,
		IsPlaceholder:  ainews.IsPlaceholder,
		CanGenerate:    withKeys > 0,
		WarmupInterval: cfg.AI.WarmupInterval,
		MaxRefreshes:   cfg.AI.MaxRefreshes,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(server.Params{
		Config:     cfg,
		Aggregator: agg,
		AINews:     aiNews,
		Ads:        repos.Advertisement,
		Scheduler:  sched,
		Metrics:    mtr.Handler(),
		BaseURL:    cfg.Server.BaseURL,
		Version:    revision,
		Debug:      opts.Debug,
	})

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// SetupLog configures lgr and the standard logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
