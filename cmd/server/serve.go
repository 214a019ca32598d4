package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	humane "github.com/sierrasoftworks/humane-errors-go"
	clicmd "github.com/spechtlabs/clusterman/internal/cli/cmd"
	"github.com/spechtlabs/clusterman/pkg/api"
	"github.com/spechtlabs/clusterman/pkg/lnhttp"
	"github.com/spechtlabs/clusterman/pkg/manager"
	"github.com/spechtlabs/clusterman/pkg/models"
	"github.com/spechtlabs/clusterman/pkg/storage"
	serverutils "github.com/spechtlabs/clusterman/pkg/utils"
	"github.com/spechtlabs/go-otel-utils/otelzap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve [--port|-p <int>] [--db-url|-d <string>] [--health-port <int>]",
		Short: "Run the cluster management API service",
		Long: `Start the cluster management HTTP API.

This command:

- Opens the management database and applies migrations
- Serves the versioned management REST API
- Starts a local HTTP server for metrics and health checks

Configuration is provided via flags and environment variables (see --help).`,
		Example: `# Start the server with defaults from config and environment
clusterman-server serve

# Override the database location and health port
clusterman-server serve --db-url sqlite:/var/lib/clusterman/cm.db --health-port 9090`,
		Args:      cobra.ExactArgs(0),
		ValidArgs: []string{},
		Run: func(cmd *cobra.Command, args []string) {
			if err := runE(cmd, args); err != nil {
				otelzap.L().WithError(err).Fatal("Exiting")
			}

			otelzap.L().Info("Exiting")
		},
	}
)

func configureGinMode(debug bool) {
	if debug {
		configFileName := viper.GetViper().ConfigFileUsed()
		if file, err := os.ReadFile(configFileName); err == nil && len(file) > 0 {
			otelzap.L().Sugar().With(
				"config_file", configFileName,
				string(file), "config", string(file),
			).Debug("Config file used")
		}
		gin.SetMode(gin.DebugMode)
		return
	}

	configFileName := viper.GetViper().ConfigFileUsed()
	otelzap.L().Sugar().With("config_file", configFileName).Debug("Config file used")
	gin.SetMode(gin.ReleaseMode)
}

func getHealthPort() int {
	localPort := viper.GetInt("server.healthPort")
	if localPort == 0 {
		localPort = 8080
	}
	return localPort
}

func runE(cmd *cobra.Command, _ []string) humane.Error {
	debug := viper.GetBool("debug")
	configureGinMode(debug)

	ctx, cancelFn := context.WithCancelCause(cmd.Context())
	serverutils.InterruptHandler(ctx, cancelFn)

	dbURL := viper.GetString("database.url")
	db, err := storage.OpenFromURL(dbURL)
	if err != nil {
		cancelFn(err)
		return humane.Wrap(err, "failed to open the management database", "check the database.url setting")
	}
	if err := storage.AutoMigrate(db); err != nil {
		cancelFn(err)
		return humane.Wrap(err, "failed to migrate the management database", "check the database file is writable")
	}

	svc := manager.NewManagerService(db,
		manager.WithDatabaseURL(dbURL),
		manager.WithVersionInfo(models.VersionInfo{
			Version:   clicmd.Version,
			GitCommit: clicmd.Commit,
			BuildDate: clicmd.Date,
		}),
	)

	// Create shared Prometheus instance for all servers
	sharedPrometheus := ginprometheus.NewPrometheus("clusterman")

	apiServer := api.NewManagerServer(
		api.WithPrometheusMiddleware(sharedPrometheus),
	)
	if herr := apiServer.LoadApiRoutes(svc); herr != nil {
		cancelFn(herr)
		return herr
	}

	srv := lnhttp.NewServer(&http.Server{
		Addr:              fmt.Sprintf(":%d", viper.GetInt("server.port")),
		ReadTimeout:       viper.GetDuration("server.readTimeout"),
		ReadHeaderTimeout: viper.GetDuration("server.readHeaderTimeout"),
		WriteTimeout:      viper.GetDuration("server.writeTimeout"),
		IdleTimeout:       viper.GetDuration("server.idleTimeout"),
	}, &lnhttp.TCPListenerProvider{})

	// Create local metrics server
	healthSrv := newHealthServer(db)
	healthSrv.Addr = fmt.Sprintf(":%d", getHealthPort())

	// Start API server
	go func() {
		otelzap.L().InfoContext(ctx, "Starting API server", zap.String("addr", srv.Addr))

		if err := srv.Serve(ctx, apiServer.Engine()); err != nil {
			cancelFn(err)
			otelzap.L().WithError(err).FatalContext(ctx, "Failed to serve API")
		}
	}()

	// Start metrics server (Local)
	go func() {
		otelzap.L().InfoContext(ctx, "Starting local metrics server", zap.String("addr", healthSrv.Addr))

		if err := healthSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cancelFn(fmt.Errorf("local metrics server failed: %w", err))
			otelzap.L().WithError(err).FatalContext(ctx, "Failed to start local metrics server")
		}
	}()

	// Wait for context done
	<-ctx.Done()
	// No more logging to ctx from here onwards

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	otelzap.L().Info("Shutting down servers...")

	// Shutdown local metrics server first
	if err := healthSrv.Shutdown(shutdownCtx); err != nil {
		otelzap.L().WithError(err).Error("Failed to shutdown local metrics server gracefully")
		// Continue with other shutdowns even if local server shutdown failed
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		otelzap.L().WithError(err).Error("Failed to shutdown API server gracefully")
		return humane.Wrap(err, "failed to shutdown API server gracefully")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	otelzap.L().Info("Servers shut down successfully")

	// Check termination cause
	cause := context.Cause(ctx)
	if cause != nil && !errors.Is(cause, context.Canceled) {
		return humane.Wrap(cause, "server terminated due to error")
	}

	return nil
}

func newHealthServer(db *gorm.DB) *http.Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginzap.GinzapWithConfig(otelzap.L(), &ginzap.Config{
		UTC:        true,
		TimeFormat: time.RFC3339,
	}))

	// Metrics endpoint - expose all Prometheus metrics
	// Since we're using a shared Prometheus instance, all metrics will be available via the default handler
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Ready endpoint - checks if the management database is reachable
	router.GET("/ready", func(c *gin.Context) {
		status := "ready"
		httpStatus := http.StatusOK
		reason := "database reachable"

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			status = "not ready"
			httpStatus = http.StatusServiceUnavailable
			reason = err.Error()
		}

		c.JSON(httpStatus, gin.H{
			"status": status,
			"reason": reason,
		})
	})

	return &http.Server{
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
