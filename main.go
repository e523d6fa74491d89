package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"note-go/config"
	"note-go/pkg/logger"
	"note-go/server"
	"note-go/store"
)

const sessionSweepInterval = 1 * time.Hour

func main() {
	log.Println("Starting note-go...")

	// Load Config
	if err := config.LoadConfig("config.yaml"); err != nil {
		log.Printf("Failed to load config.yaml: %v. Using defaults/env vars if available.", err)
	}
	cfg := &config.GlobalConfig

	// Initialize Logger
	if err := logger.Init(cfg.Log.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Open Database
	st, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Web Server
	srv := server.NewServer(st, cfg)

	// Start the expired-session sweep
	srv.StartSessionSweeper(sessionSweepInterval)

	// Run Server
	port := ":" + strconv.Itoa(cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:    port,
		Handler: srv.Router(),
	}

	// Initializing the server in a goroutine so that
	// it won't block the graceful shutdown handling below
	go func() {
		log.Printf("Server listening on %s", port)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	srv.StopSessionSweeper()

	if err := st.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}

	log.Println("Server exiting")
}
