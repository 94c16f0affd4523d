package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studydeck-backend/internal/config"
	"studydeck-backend/internal/handlers"
	"studydeck-backend/internal/router"
	"studydeck-backend/internal/services"
	"studydeck-backend/internal/store"
	"studydeck-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting StudyDeck Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Content Store ────
	contentStore := store.New()
	log.Println("✓ In-memory content store ready (session lifetime)")

	// ──── Step 3: Select Model Generator ────
	var generator services.Generator
	if cfg.DemoMode {
		generator = services.NewDemoGenerator()
		log.Println("✓ Demo mode: generation uses fixed placeholder responses")
	} else {
		generator = services.NewOllamaClient(
			cfg.OllamaURL,
			cfg.OllamaModel,
			time.Duration(cfg.ProbeTimeout)*time.Second,
			time.Duration(cfg.GenerateTimeout)*time.Second,
		)

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ProbeTimeout)*time.Second)
		if generator.Probe(ctx) {
			log.Printf("✓ Model server reachable at %s", cfg.OllamaURL)
		} else {
			log.Printf("⚠ Model server not reachable at %s (generation disabled until it comes up)", cfg.OllamaURL)
		}
		cancel()
	}

	// ──── Step 4: Initialize Services ────
	extractService := services.NewPDFExtractService()
	youtubeService := services.NewYouTubeService()
	log.Println("✓ Ingestion services initialized")

	// ──── Step 5: Start WebSocket Hub ────
	wsHub := websocket.NewHub()
	log.Println("✓ WebSocket hub started")

	// ──── Step 6: Initialize Handlers ────
	contentHandler := handlers.NewContentHandler(
		contentStore,
		extractService,
		youtubeService,
		wsHub,
		cfg.MaxPDFPages,
		time.Duration(cfg.ExtractTimeout)*time.Second,
	)
	generateHandler := handlers.NewGenerateHandler(contentStore, generator)
	modelHandler := handlers.NewModelHandler(generator)

	// ──── Step 7: Start HTTP Server ────
	r := router.New(
		contentHandler,
		generateHandler,
		modelHandler,
		wsHub,
		cfg.FrontendURL,
		cfg.GenerateRatePerMin,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  60 * time.Second, // uploads can be large
		WriteTimeout: time.Duration(cfg.GenerateTimeout+30) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ StudyDeck Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
