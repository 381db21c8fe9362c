package routes

import (
	"time"

	"funhub/config"
	"funhub/controllers/auth"
	"funhub/controllers/credits"
	"funhub/controllers/games"
	"funhub/controllers/health"
	"funhub/controllers/leaderboard"
	"funhub/controllers/players"
	"funhub/middlewares"
	"funhub/providers"
	"funhub/services"

	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg config.Config,
	tokens *services.Tokens,
	subs *services.Submissions,
	boards *services.Leaderboards,
	playersSvc *services.Players,
	paypal *providers.PayPalClient,
) {
	app.Get("/health", health.Handler(cfg))

	gameroutes := app.Group("/games")
	gameroutes.Post("/:game_slug/start", middlewares.RateLimit(30, time.Minute), games.StartHandler(subs))

	boardroutes := app.Group("/leaderboard")
	boardroutes.Post("/:game_slug/submit", middlewares.RateLimit(10, time.Minute), leaderboard.SubmitHandler(subs))
	boardroutes.Get("/:game_slug/me", middlewares.RateLimit(60, time.Minute), leaderboard.MeHandler(boards))
	boardroutes.Get("/:game_slug", middlewares.RateLimit(60, time.Minute), leaderboard.ListHandler(boards))

	playerroutes := app.Group("/players")
	playerroutes.Post("/register", players.RegisterHandler(playersSvc))
	playerroutes.Get("/me", middlewares.DeviceAuth, players.Me)

	authroutes := app.Group("/auth")
	authroutes.Post("/request-otp", middlewares.RateLimit(3, time.Hour), auth.RequestOtpHandler(cfg))
	authroutes.Post("/verify-otp", middlewares.RateLimit(10, time.Minute), auth.VerifyOtpHandler(tokens, playersSvc))

	creditroutes := app.Group("/credits", middlewares.DeviceAuth, middlewares.OptionalAccountAuth(tokens))
	creditroutes.Get("/", credits.Balance)
	creditroutes.Post("/use", middlewares.RateLimit(30, time.Minute), credits.Use)
	creditroutes.Post("/verify-purchase", middlewares.RateLimit(5, time.Minute), credits.VerifyPurchaseHandler(paypal))
}
