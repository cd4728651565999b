package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/flupretail/flup-backend/internal/modules/assistant"
	"github.com/flupretail/flup-backend/internal/modules/auth"
	"github.com/flupretail/flup-backend/internal/modules/cart"
	"github.com/flupretail/flup-backend/internal/modules/catalog"
	"github.com/flupretail/flup-backend/internal/modules/checkout"
	"github.com/flupretail/flup-backend/internal/modules/customer"
	"github.com/flupretail/flup-backend/internal/modules/dashboard"
	"github.com/flupretail/flup-backend/internal/modules/orders"
	"github.com/flupretail/flup-backend/internal/modules/receipt"
	"github.com/flupretail/flup-backend/internal/modules/settings"
	"github.com/flupretail/flup-backend/internal/modules/user"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}
	log.Info().Msg("connected to the database")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Session-ID"},
		AllowCredentials: false,
	}).Handler)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router)

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtKey) == 0 {
		log.Fatal().Msg("JWT_SECRET is required")
	}
	authService := auth.NewService(userRepo, jwtKey)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog & Customers ─────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	customerRepo := customer.NewPostgresRepository(db)
	customerService := customer.NewService(customerRepo)
	customer.NewHandler(customerService).RegisterRoutes(router)

	// ── Settings (tax rate feeds the cart engine) ───────────
	settingsRepo := settings.NewPostgresRepository(db)
	settingsService := settings.NewService(settingsRepo)
	settings.NewHandler(settingsService).RegisterRoutes(router)

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	taxRate := settingsService.TaxRate(startupCtx)
	cancel()

	// ── POS: cart + checkout ────────────────────────────────
	carts := cart.NewStore(taxRate)
	cart.NewHandler(carts).RegisterRoutes(router)

	webhooks := assistant.NewWebhookClient(assistant.WebhookURLs{
		Chat:    os.Getenv("ASSISTANT_CHAT_WEBHOOK"),
		Notify:  os.Getenv("ASSISTANT_NOTIFY_WEBHOOK"),
		Reorder: os.Getenv("ASSISTANT_REORDER_WEBHOOK"),
	}, log)
	assistant.NewHandler(webhooks).RegisterRoutes(router)

	salesRepo := checkout.NewPostgresRepository(db)
	coordinator := checkout.NewCoordinator(carts, salesRepo, customer.NewRoster(customerRepo), webhooks, log)
	checkout.NewHandler(coordinator).RegisterRoutes(router)

	// ── Orders, receipts & dashboard ────────────────────────
	ordersRepo := orders.NewPostgresRepository(db)
	ordersService := orders.NewService(ordersRepo)
	orders.NewHandler(ordersService).RegisterRoutes(router)

	receiptService := receipt.NewService(ordersService, settingsService)
	receipt.NewHandler(receiptService).RegisterRoutes(router)

	dashboardRepo := dashboard.NewPostgresRepository(db)
	dashboardService := dashboard.NewService(dashboardRepo)
	dashboard.NewHandler(dashboardService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Float64("tax_rate", taxRate).Msg("Flup API server starting")
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
