package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/clodbot/clodbot-discord/internal/clients/sheets"
	"github.com/clodbot/clodbot-discord/internal/clients/showdown"
	"github.com/clodbot/clodbot-discord/internal/clients/smogon"
	"github.com/clodbot/clodbot-discord/internal/config"
	clerr "github.com/clodbot/clodbot-discord/internal/errors"
	"github.com/clodbot/clodbot-discord/internal/handlers/discord"
	"github.com/clodbot/clodbot-discord/internal/repositories/credentials"
	"github.com/clodbot/clodbot-discord/internal/repositories/denylist"
	"github.com/clodbot/clodbot-discord/internal/repositories/scopes"
	"github.com/clodbot/clodbot-discord/internal/services"
)

// smogonCredentialKey is the credential store entry holding the bot-level
// stats endpoint login.
const smogonCredentialKey = "smogon-stats"

type smogonCredential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Bot Token: %s...%s", cfg.Discord.Token[:8], cfg.Discord.Token[len(cfg.Discord.Token)-4:])
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	providerConfig := &services.ProviderConfig{}

	log.Printf("Connecting to Redis at: %s", cfg.Redis.Addr)
	candidate := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if pingErr := candidate.Ping(ctx).Err(); pingErr != nil {
		cancel()
		log.Printf("Failed to connect to Redis: %v", pingErr)
		log.Println("Falling back to in-memory repositories")
	} else {
		cancel()
		log.Println("Successfully connected to Redis")

		redisClient = candidate
		providerConfig.ScopeRepository = scopes.NewRedisRepository(&scopes.RedisRepoConfig{Client: redisClient})
		providerConfig.DenylistRepository = denylist.NewRedisRepository(&denylist.RedisRepoConfig{Client: redisClient})
		providerConfig.CredentialRepository = credentials.NewRedisRepository(&credentials.RedisRepoConfig{Client: redisClient})

		log.Println("Using Redis for persistence")
	}

	credRepo := providerConfig.CredentialRepository
	if credRepo == nil {
		credRepo = credentials.NewInMemoryRepository()
		providerConfig.CredentialRepository = credRepo
	}

	username, password := resolveSmogonCredential(credRepo, cfg)

	showdownClient, err := showdown.New(&showdown.Config{
		Host: cfg.Replay.Host,
	})
	if err != nil {
		log.Fatalf("Failed to create Showdown client: %v", err)
	}

	smogonClient, err := smogon.New(&smogon.Config{
		BaseURL:  cfg.Smogon.BaseURL,
		Username: username,
		Password: password,
	})
	if err != nil {
		log.Fatalf("Failed to create Smogon client: %v", err)
	}

	sheetsService, err := sheets.New(context.Background(), &sheets.Config{
		CredentialsFile: cfg.Sheets.CredentialsFile,
	})
	if err != nil {
		log.Fatalf("Failed to create Sheets client: %v", err)
	}

	providerConfig.ShowdownClient = showdownClient
	providerConfig.SmogonClient = smogonClient
	providerConfig.SheetsService = sheetsService

	serviceProvider := services.NewProvider(providerConfig)
	defer serviceProvider.SetService.Shutdown()

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
	})

	dg.AddHandler(handler.HandleInteraction)

	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// resolveSmogonCredential prefers the stored credential pair and seeds the
// store from the environment on first run.
func resolveSmogonCredential(repo credentials.Repository, cfg *config.Config) (string, string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	blob, err := repo.Get(ctx, smogonCredentialKey)
	if err == nil {
		var cred smogonCredential
		if jsonErr := json.Unmarshal(blob, &cred); jsonErr == nil {
			log.Println("Using stored Smogon stats credential")
			return cred.Username, cred.Password
		}
		log.Println("Stored Smogon stats credential is unreadable, falling back to environment")
	} else if !clerr.IsNotFound(err) {
		log.Printf("Failed to read Smogon stats credential: %v", err)
	}

	if cfg.Smogon.Username == "" {
		return "", ""
	}

	blob, err = json.Marshal(smogonCredential{
		Username: cfg.Smogon.Username,
		Password: cfg.Smogon.Password,
	})
	if err == nil {
		if setErr := repo.Set(ctx, smogonCredentialKey, blob); setErr != nil {
			log.Printf("Failed to store Smogon stats credential: %v", setErr)
		}
	}

	return cfg.Smogon.Username, cfg.Smogon.Password
}
