package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartapp "github.com/univendor/backend/internal/application/cart"
	catalogapp "github.com/univendor/backend/internal/application/catalog"
	identityapp "github.com/univendor/backend/internal/application/identity"
	orderapp "github.com/univendor/backend/internal/application/order"
	vendorapp "github.com/univendor/backend/internal/application/vendor"
	"github.com/univendor/backend/internal/infrastructure/config"
	"github.com/univendor/backend/internal/infrastructure/logger"
	"github.com/univendor/backend/internal/infrastructure/mail"
	"github.com/univendor/backend/internal/infrastructure/persistence"
	"github.com/univendor/backend/internal/infrastructure/session"
	"github.com/univendor/backend/internal/interfaces/http/handler"
	"github.com/univendor/backend/internal/interfaces/http/middleware"
	"github.com/univendor/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting univendor backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Session store backed by Redis
	sessionStore, err := session.NewRedisSessionStore(&cfg.Redis, &cfg.Session)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := sessionStore.Close(); err != nil {
			log.Error("Error closing session store", zap.Error(err))
		}
	}()
	log.Info("Session store connected successfully")

	// Outbound mail
	var mailer mail.Mailer
	switch cfg.Mail.Provider {
	case "ses":
		mailer, err = mail.NewSESMailer(context.Background(), &cfg.Mail)
		if err != nil {
			log.Fatal("Failed to initialize SES mailer", zap.Error(err))
		}
		log.Info("Mail provider initialized", zap.String("provider", "ses"), zap.String("region", cfg.Mail.Region))
	default:
		mailer = mail.NewLogMailer(log)
		log.Info("Mail provider initialized", zap.String("provider", "log"))
	}

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	otpRepo := persistence.NewGormOtpRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	domainRepo := persistence.NewGormCustomDomainRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	cartRepo := persistence.NewGormCartItemRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Initialize application services
	authService := identityapp.NewAuthService(userRepo, otpRepo, sessionStore, mailer, cfg.Otp.TTL, log)
	userService := identityapp.NewUserService(userRepo)
	vendorService := vendorapp.NewVendorService(vendorRepo, userRepo, log)
	domainService := vendorapp.NewDomainService(domainRepo, vendorRepo, log)
	storefrontService := vendorapp.NewStorefrontService(vendorRepo, domainRepo, productRepo, categoryRepo)
	productService := catalogapp.NewProductService(productRepo, vendorRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo, vendorRepo)
	cartService := cartapp.NewCartService(cartRepo, productRepo)
	checkoutService := orderapp.NewCheckoutService(cartRepo, productRepo, orderRepo, &cfg.Checkout, log)
	orderService := orderapp.NewOrderService(orderRepo, vendorRepo)

	// Seed the bootstrap super admin
	bootstrap := identityapp.NewBootstrap(userRepo, log)
	if err := bootstrap.Run(context.Background(), cfg.Auth.BootstrapAdminEmail); err != nil {
		log.Fatal("Failed to seed bootstrap admin", zap.Error(err))
	}

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService, &cfg.Session)
	userHandler := handler.NewUserHandler(userService, authService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	domainHandler := handler.NewCustomDomainHandler(domainService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService, checkoutService)
	storefrontHandler := handler.NewStorefrontHandler(storefrontService)
	systemHandler := handler.NewSystemHandler(db.DB, version)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, body limit, session resolution.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.Session(authService, &cfg.Session, log))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Register API routes
	authRoutes := &router.AuthRoutes{Handler: authHandler}
	if cfg.HTTP.AuthRateLimitEnabled {
		// Login code endpoints get a stricter per-client limit
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		engine.Use(middleware.RateLimitByKey(authLimiter, func(c *gin.Context) string {
			if c.FullPath() == "/api/auth/send-otp" || c.FullPath() == "/api/auth/verify-otp" {
				return c.ClientIP()
			}
			return ""
		}))
	}

	router.NewRouter(engine).
		Register(authRoutes).
		Register(&router.AdminRoutes{Users: userHandler, Vendors: vendorHandler, Domains: domainHandler}).
		Register(&router.VendorRoutes{Handler: vendorHandler}).
		Register(&router.CatalogRoutes{Products: productHandler, Categories: categoryHandler}).
		Register(&router.CartRoutes{Handler: cartHandler}).
		Register(&router.OrderRoutes{Handler: orderHandler}).
		Register(&router.StorefrontRoutes{Handler: storefrontHandler}).
		Register(&router.SystemRoutes{Handler: systemHandler}).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
