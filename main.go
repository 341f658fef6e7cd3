package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/balatro-poker/cliparse"
	"github.com/danielhkuo/balatro-poker/db"
	"github.com/danielhkuo/balatro-poker/game"
	"github.com/danielhkuo/balatro-poker/jokers"
	"github.com/danielhkuo/balatro-poker/middleware"
	"github.com/danielhkuo/balatro-poker/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Joker catalog: builtin name or YAML file
	catalog, ok := jokers.Builtin(cfg.JokerCatalog)
	if !ok {
		catalog, err = jokers.LoadCatalog(cfg.JokerCatalog)
		if err != nil {
			slog.Error("joker catalog load failed", "catalog", cfg.JokerCatalog, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Joker catalog ready", "catalog", catalog.Name(), "jokers", catalog.Len())

	// Storage
	var store game.Store
	if cfg.DatabaseType == cliparse.DatabaseMemory {
		store = db.NewMemoryStore()
		slog.Warn("Using in-memory storage, games are lost on restart")
	} else {
		dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database setup failed", "type", cfg.DatabaseType, "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		store = db.NewSQLStore(dbConn)
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	}

	manager := game.NewManager(store, jokers.NewEngine(catalog, nil))

	// Create router
	mux := router.NewRouter(manager)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
