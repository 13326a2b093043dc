// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/seniorhub/household-service/internal/config"
	"github.com/seniorhub/household-service/internal/db"
	"github.com/seniorhub/household-service/internal/delivery"
	"github.com/seniorhub/household-service/internal/logging"
	"github.com/seniorhub/household-service/internal/mail"
	"github.com/seniorhub/household-service/internal/monitoring/prometheus"
	"github.com/seniorhub/household-service/internal/storage"
	"github.com/seniorhub/household-service/internal/tracing"
	"github.com/seniorhub/household-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("household-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	var store storage.StorageInterface
	switch specs.PersistenceDriver {
	case "postgres":
		dbConfig := db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		}
		dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create database client: %v", err)
		}
		defer dbClient.Close()
		store = storage.NewStorage(dbClient, tracer, monitor, logger)
	default:
		logger.Info("Using seeded in-memory persistence")
		store = storage.NewSeededInMemoryStorage()
	}

	var provider mail.EmailProviderInterface
	if specs.EmailProvider == "resend" && specs.ResendAPIKey != "" {
		provider = mail.NewResendProvider(specs.ResendAPIKey, specs.EmailFrom, logger)
		logger.Info("Email delivery via Resend")
	} else {
		provider = mail.NewConsoleProvider(logger)
		logger.Info("Email delivery via console")
	}

	queue := delivery.NewQueue(provider, delivery.NewMetrics(), logger, specs.EmailJobMaxRetries, specs.EmailJobRetryDelay)

	router := web.NewRouter(
		specs,
		store,
		queue,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	// Let queued invitation emails finish before exiting.
	if err := queue.Shutdown(ctx); err != nil {
		logger.Warnf("delivery queue drain incomplete: %v", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
