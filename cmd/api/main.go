package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gearstore/gearstore-api/internal/handlers"
	"github.com/gearstore/gearstore-api/internal/keystore"
	"github.com/gearstore/gearstore-api/internal/routes"
	"github.com/gearstore/gearstore-api/internal/store"
)

func main() {
	// Missing .env just means the process environment is used as-is.
	_ = godotenv.Load()

	initLogger()
	defer zap.L().Sync() //nolint:errcheck

	// --- Local Key-Value Store ---
	keysPath := os.Getenv("KEYSTORE_PATH")
	if keysPath == "" {
		keysPath = "gearstore.db"
	}
	keys, err := keystore.Open(keysPath)
	if err != nil {
		zap.S().Fatalf("Failed to open keystore: %v", err)
	}
	defer keys.Close()

	// --- In-Memory Stores ---
	catalog := store.SeedCatalog()
	carts := store.NewCarts()
	orders := store.NewOrders()
	users := store.SeedUsers()

	// --- Application Setup ---
	app := handlers.New(catalog, carts, orders, users, keys)
	router := routes.SetupRouter(app)

	// --- Start Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	zap.S().Infof("Starting gearstore API server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		zap.S().Fatalf("Failed to start server: %v", err)
	}
}

func initLogger() {
	var logger *zap.Logger
	var err error
	if os.Getenv("LOG_MODE") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
