package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/yt-prospector/internal/api"
	"github.com/yt-prospector/internal/config"
	"github.com/yt-prospector/internal/enrich"
	"github.com/yt-prospector/internal/models"
	"github.com/yt-prospector/internal/sheetstore"
	"github.com/yt-prospector/pkg/httpclient"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize run history database (optional)
	var db *models.Database
	if cfg.DatabaseURL != "" {
		db, err = models.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
	} else {
		log.Printf("DB_URL not set, run history disabled")
	}

	// Initialize YouTube client
	youtubeClient, err := api.NewYouTubeClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatalf("Failed to initialize YouTube client: %v", err)
	}

	// Initialize SerpAPI client with timeout, retry and rate limiting
	serpHTTP := httpclient.New(httpclient.Config{
		Timeout: cfg.HTTPTimeout,
		Retries: cfg.SerpRetries,
		Backoff: cfg.SerpRetryBackoff,
	})
	limiter := rate.NewLimiter(rate.Limit(cfg.SerpRateLimit), 1)
	serpClient := api.NewSerpClient(cfg.SerpAPIKey, serpHTTP, limiter)

	// Initialize Google Sheets store
	var sheetOpts []option.ClientOption
	if cfg.GoogleCredentialsFile != "" {
		sheetOpts = append(sheetOpts,
			option.WithCredentialsFile(cfg.GoogleCredentialsFile),
			option.WithScopes(sheets.SpreadsheetsScope),
		)
	}
	store, err := sheetstore.NewGoogleStore(ctx, cfg.SpreadsheetID, sheetOpts...)
	if err != nil {
		log.Fatalf("Failed to initialize Sheets store: %v", err)
	}

	// Wire the pipeline
	pipeline := enrich.NewPipeline(
		youtubeClient,
		youtubeClient,
		enrich.NewAssembler(serpClient),
		sheetstore.NewWriter(store),
	)

	server := api.NewServer(pipeline, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := server.Start(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
