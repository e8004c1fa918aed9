package main

import (
	"context"
	"fmt"
	"os"

	archive "nearmarket/internal/archiveService"
	auth "nearmarket/internal/authService"
	chat "nearmarket/internal/chatService"
	"nearmarket/internal/config"
	listing "nearmarket/internal/listingService"
	"nearmarket/internal/location"
	"nearmarket/internal/notify"
	offer "nearmarket/internal/offerService"
	"nearmarket/internal/repository"
	"nearmarket/internal/server"
	"nearmarket/internal/storage"
	"nearmarket/utils"

	"github.com/redis/go-redis/v9"
)

func main() {

	cfg := config.Load()

	repo := buildRepo(cfg)
	hub := notify.NewHub()
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	uploads := storage.NewClient(buildObjectStore(cfg), storage.DefaultRetryPolicy(), cfg.DefaultAvatar)
	resolver := location.NewResolver(cfg.GeocoderURL, buildLocationCache(cfg))

	router := server.SetupRouter(server.Deps{
		Auth:          auth.NewAuthService(repo, tokens),
		Listings:      listing.NewListingService(repo),
		Offers:        offer.NewOfferService(repo, hub),
		Chats:         chat.NewChatService(repo, hub),
		Archive:       archive.NewArchiveService(repo),
		Resolver:      resolver,
		Uploads:       uploads,
		Tokens:        tokens,
		Hub:           hub,
		AvatarBucket:  cfg.AvatarBucket,
		ListingBucket: cfg.ListingBucket,
	})

	fmt.Printf("Starting marketplace server on %s...\n", cfg.Addr())
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepo selects Postgres when DB_HOST is set and falls back to the
// in-memory repository otherwise (dev/test mode).
func buildRepo(cfg config.Config) repository.MarketDB {
	if cfg.DBHost == "" {
		utils.Info("using in-memory repository", nil)
		return repository.NewMemoryRepo()
	}

	db, err := repository.Open(cfg.DSN())
	if err != nil {
		utils.Fatal("failed to connect to postgres", map[string]any{"error": err.Error()})
	}
	repo, err := repository.NewGormRepo(db)
	if err != nil {
		utils.Fatal("failed to migrate database", map[string]any{"error": err.Error()})
	}
	utils.Info("connected to postgres", map[string]any{"host": cfg.DBHost, "db": cfg.DBName})
	return repo
}

// buildObjectStore selects S3 when a region is configured and the in-memory
// store otherwise.
func buildObjectStore(cfg config.Config) storage.ObjectStore {
	if cfg.S3Region == "" {
		utils.Info("using in-memory object store", nil)
		return storage.NewMemoryStore()
	}

	store, err := storage.NewS3Store(context.Background(), cfg.S3Region)
	if err != nil {
		utils.Fatal("failed to initialise s3 store", map[string]any{"error": err.Error()})
	}
	return store
}

// buildLocationCache backs the resolver with Redis when configured.
func buildLocationCache(cfg config.Config) location.Cache {
	if cfg.RedisAddr == "" {
		return location.NewMemoryCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	utils.Info("caching location fixes in redis", map[string]any{"addr": cfg.RedisAddr})
	return location.NewRedisCache(client)
}
