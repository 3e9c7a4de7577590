package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"storefront_server/api"
	"storefront_server/config"
	"storefront_server/storage"
	"storefront_server/structs"
	"syscall"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config
var store storage.CartStore

// init function to load environment variables and initialize logger and cart store
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	var err error
	store, err = storage.New(logger, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize cart store", gecho.Field("error", err))
	}
}

func main() {
	// Setup graceful shutdown BEFORE starting the server
	setupGracefulShutdown(logger)

	r := api.App(store)

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))

	// Start server
	if err := http.ListenAndServe(cfg.Server.Port, r); err != nil {
		logger.Error("Failed to start server", gecho.Field("error", err))
	}
}

// setupGracefulShutdown sets up signal handling for graceful application shutdown
func setupGracefulShutdown(logger *gecho.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	logger.Info("Graceful shutdown handler initialized")

	go func() {
		sig := <-c
		logger.Info("Received shutdown signal", "signal", sig)

		if err := store.Close(); err != nil {
			logger.Warn("Failed to close cart store", gecho.Field("error", err))
		}

		os.Exit(0)
	}()
}
