package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"discount-club.backend/internal/config"
	"discount-club.backend/internal/infrastructure/repositories"
	"discount-club.backend/internal/interfaces/http/handlers"
	"discount-club.backend/internal/interfaces/http/middleware"
	"discount-club.backend/internal/usecases"
	"discount-club.backend/pkg/jwt"
	"discount-club.backend/pkg/logger"
	"discount-club.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis. Quota checks and plan lookups degrade to the
	// database when Redis is down, but sessions require it.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, plan cache disabled", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Redis initialized")
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	customerRepo := repositories.NewCustomerRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	planRepo := repositories.NewPlanRepository(db)
	auditRepo := repositories.NewAuditRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize usecases
	guard := usecases.NewGuard(auditRepo)
	planLimits := usecases.NewPlanLimitService(planRepo, cfg.Quota.PlanCacheTTL)
	customerUsecase := usecases.NewCustomerUsecase(customerRepo, planLimits, guard)
	merchantUsecase := usecases.NewMerchantUsecase(merchantRepo, planLimits, guard)
	productUsecase := usecases.NewProductUsecase(productRepo, merchantRepo, planLimits, guard)
	cartUsecase := usecases.NewCartUsecase(cartRepo, productRepo, merchantRepo, guard)
	checkoutUsecase := usecases.NewCheckoutUsecase(cartUsecase, cartRepo, orderRepo, uow, guard)
	redemptionUsecase := usecases.NewRedemptionUsecase(orderRepo, customerRepo, merchantRepo, uow, guard)

	// Initialize handlers
	customerHandler := handlers.NewCustomerHandler(customerUsecase)
	merchantHandler := handlers.NewMerchantHandler(merchantUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)
	cartHandler := handlers.NewCartHandler(cartUsecase)
	orderHandler := handlers.NewOrderHandler(checkoutUsecase)
	redemptionHandler := handlers.NewRedemptionHandler(redemptionUsecase)

	// Principal resolution accepts either a bearer JWT or a session id
	principalMiddleware := middleware.PrincipalMiddleware(jwtService, sessionStore)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		customerHandler:     customerHandler,
		merchantHandler:     merchantHandler,
		productHandler:      productHandler,
		cartHandler:         cartHandler,
		orderHandler:        orderHandler,
		redemptionHandler:   redemptionHandler,
		principalMiddleware: principalMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Start server
	log.Printf("🚀 Discount Club Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
