package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"funhub/config"
	"funhub/database"
	"funhub/jobs"
	"funhub/providers"
	"funhub/routes"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Failed to load config:", err)
	}

	database.Connect()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.OriginsCSV(),
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Device-ID",
		AllowCredentials: true,
	}))

	tokens := services.NewTokens(services.TokenConfig{
		Secret:            []byte(cfg.JWTSecret),
		GameSessionTTL:    cfg.GameSessionTTL,
		AccountSessionTTL: cfg.AccountSessionTTL,
	})
	playersSvc := services.NewPlayers(database.DB)
	ledger := services.NewSessionLedger(database.DB)
	boards := services.NewLeaderboards(database.DB)
	subs := services.NewSubmissions(database.DB, tokens, ledger, boards, playersSvc)
	paypal := providers.NewPayPalClient(cfg.PayPalClientID, cfg.PayPalClientSecret, cfg.IsProduction())

	routes.Setup(app, cfg, tokens, subs, boards, playersSvc, paypal)
	jobs.StartCleanupScheduler()

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Println("Server running at", addr)

	go func() {
		if err := app.Listen(addr); err != nil {
			log.Panicf("Failed to start server: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("Gracefully shutting down...")
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited cleanly")
}
