package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/superfood-sragen/storefront-system/internal/api/handler"
	"github.com/superfood-sragen/storefront-system/internal/api/middleware"
	"github.com/superfood-sragen/storefront-system/internal/core/service"
	"github.com/superfood-sragen/storefront-system/internal/infrastructure/config"
	mongorepo "github.com/superfood-sragen/storefront-system/internal/infrastructure/db/mongo"
	redisrepo "github.com/superfood-sragen/storefront-system/internal/infrastructure/db/redis"
)

type indexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

// App is the wired HTTP application: the Echo instance with every route
// registered, plus the handles main needs outside the request path.
type App struct {
	Echo   *echo.Echo
	Promos *service.PromoService

	ensurers []indexEnsurer
}

// EnsureIndexes creates every collection index the repositories rely on.
// Call once at startup, before serving traffic.
func (a *App) EnsureIndexes(ctx context.Context) error {
	for _, e := range a.ensurers {
		if err := e.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

// NewRouter builds the Echo instance with all routes registered and returns
// it wrapped in an App.
func NewRouter(cfg *config.Config, log zerolog.Logger, db *mongo.Database, rdb *redis.Client) *App {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Edge + global middleware ---
	e.Pre(middleware.EdgeGuard())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	promoRepo := mongorepo.NewPromoRepository(db)
	storeRepo := mongorepo.NewStoreProfileRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	tokenStore := redisrepo.NewTokenStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, tokenStore, cfg.JWTSecret, cfg.TokenTTL, log)
	productService := service.NewProductService(productRepo, log)
	promoService := service.NewPromoService(promoRepo, log)
	storeService := service.NewStoreProfileService(storeRepo, log)
	userService := service.NewUserService(userRepo, log)
	checkoutService := service.NewCheckoutService(productRepo, orderRepo, storeRepo, cfg.Store.WhatsAppPhone, log)
	dashboardService := service.NewDashboardService(productRepo, promoRepo, orderRepo, userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	promoHandler := handler.NewPromoHandler(promoService)
	storeHandler := handler.NewStoreHandler(storeService)
	userHandler := handler.NewUserHandler(userService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authRequired := middleware.Auth(cfg.JWTSecret, tokenStore)
	adminArea := middleware.AdminArea()
	adminOnly := middleware.AdminOnly()

	// --- Health probes and operational surfaces (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	api := e.Group("/api")

	// --- Auth ---
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, authRequired)
	api.POST("/auth/logout", authHandler.Logout, authRequired)

	// --- Catalog: reads are public, writes need the admin area ---
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.POST("/products", productHandler.Create, authRequired, adminArea)
	api.PUT("/products/:id", productHandler.Update, authRequired, adminArea)
	api.DELETE("/products/:id", productHandler.Delete, authRequired, adminArea)

	api.GET("/promos", promoHandler.List)
	api.GET("/promos/:id", promoHandler.Get)
	api.POST("/promos", promoHandler.Create, authRequired, adminArea)
	api.PUT("/promos/:id", promoHandler.Update, authRequired, adminArea)
	api.DELETE("/promos/:id", promoHandler.Delete, authRequired, adminArea)

	// --- Store profile (POST and PUT both upsert; first-time saves arrive as POST) ---
	api.GET("/store-profile", storeHandler.Get)
	api.POST("/store-profile", storeHandler.Update, authRequired, adminArea)
	api.PUT("/store-profile", storeHandler.Update, authRequired, adminArea)

	// --- Checkout ---
	api.POST("/checkout", checkoutHandler.Checkout, authRequired)

	// --- Admin console ---
	api.GET("/dashboard/stats", dashboardHandler.Stats, authRequired, adminArea)
	api.GET("/users", userHandler.List, authRequired, adminOnly)
	api.PUT("/users/:id", userHandler.Update, authRequired, adminOnly)
	api.DELETE("/users/:id", userHandler.Delete, authRequired, adminOnly)

	return &App{
		Echo:   e,
		Promos: promoService,
		ensurers: []indexEnsurer{
			userRepo,
			productRepo,
			promoRepo,
			orderRepo,
		},
	}
}
