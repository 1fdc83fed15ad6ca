package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danielxmed/nobra-calculator-sub006/internal/audit"
	"github.com/danielxmed/nobra-calculator-sub006/internal/config"
	"github.com/danielxmed/nobra-calculator-sub006/internal/registry"
	"github.com/danielxmed/nobra-calculator-sub006/internal/server"
	_ "github.com/danielxmed/nobra-calculator-sub006/internal/scores"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	var store audit.Store = audit.NopStore{}
	if cfg.EnableAudit {
		pg, err := audit.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("audit store connection failed: %v", err)
		}
		defer pg.Close()
		store = pg
	}

	router := server.New(registry.Default, store, cfg.CORSOrigins)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	log.Printf("serving %d calculators on :%s", len(registry.Default.List()), cfg.Port)
	waitForShutdown(srv)
}

func waitForShutdown(srv *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
