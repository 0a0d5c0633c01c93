package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"catalog-service/internal/config"
	"catalog-service/internal/db"
	"catalog-service/internal/domain/customer"
	"catalog-service/internal/domain/product"
	authHandler "catalog-service/internal/handlers/auth"
	customerHandler "catalog-service/internal/handlers/customer"
	productHandler "catalog-service/internal/handlers/product"
	"catalog-service/internal/middleware"
	"catalog-service/internal/pkg/cache"
	"catalog-service/internal/pkg/token"
	"catalog-service/internal/pkg/validate"
	"catalog-service/internal/repository/postgres"
	authUsecase "catalog-service/internal/service/auth"
	customersvc "catalog-service/internal/service/customer"
	productsvc "catalog-service/internal/service/product"
	"catalog-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	http   *http.Server

	pool    *pgxpool.Pool
	redis   *redis.Client
	stopHub context.CancelFunc
}

func NewServer() (*Server, error) {
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &Server{cfg: cfg, engine: gin.New(), logger: logger}, nil
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	s.pool = pool

	// ----- Redis (optional) -----
	var productCache *cache.Cache[product.Product]
	var customerCache *cache.Cache[customer.Customer]
	if s.cfg.RedisAddr != "" {
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			PoolSize: 10,
		})
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		s.redis = redisClient
		productCache = cache.New[product.Product](redisClient, "product", s.cfg.CacheTTL)
		customerCache = cache.New[customer.Customer](redisClient, "customer", s.cfg.CacheTTL)
		s.logger.Info("redis entity cache enabled", zap.String("addr", s.cfg.RedisAddr))
	} else {
		s.logger.Info("redis not configured, entity cache disabled")
	}

	// ----- Token Manager -----
	tokenManager, err := token.NewManager(s.cfg.Token)
	if err != nil {
		return fmt.Errorf("failed to build token manager: %w", err)
	}

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(s.logger)
	hubCtx, stopHub := context.WithCancel(ctx)
	s.stopHub = stopHub
	go hub.Run(hubCtx)

	// ----- Repositories -----
	store := postgres.NewDB(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(store)

	// ----- Services -----
	authService := authUsecase.NewAuthService(s.cfg.AdminEmail, s.cfg.AdminPasswordHash, tokenManager, s.logger)
	productService := productsvc.NewProductService(productRepo, productCache, hub, s.logger)
	customerService := customersvc.NewCustomerService(customerRepo, customerCache, hub, s.logger)

	// ----- Handlers -----
	validator := validate.New()
	handlers := &Handlers{
		AuthHandler:     authHandler.NewAuthHandler(authService),
		ProductHandler:  productHandler.NewProductHandler(productService, validator),
		CustomerHandler: customerHandler.NewCustomerHandler(customerService, validator),
		AuthMiddleware:  middleware.NewAuthMiddleware(authService),
		Hub:             hub,
	}

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RequestID(),
		middleware.RecoveryMiddleware(s.logger),
		middleware.LoggingMiddleware(s.logger),
		middleware.CORSMiddleware(),
	)

	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	s.http = &http.Server{Addr: s.cfg.HTTPAddr, Handler: s.engine}
	s.logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the HTTP listener, the hub, and the store connections.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.http != nil {
		err = s.http.Shutdown(ctx)
	}
	if s.stopHub != nil {
		s.stopHub()
	}
	if s.redis != nil {
		s.redis.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	s.logger.Sync()
	return err
}
