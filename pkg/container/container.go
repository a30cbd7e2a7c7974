package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"watchitup-backend/internal/config"
	"watchitup-backend/internal/infrastructure/cache"
	"watchitup-backend/internal/infrastructure/database"
	"watchitup-backend/pkg/jwt"
	"watchitup-backend/pkg/logger"

	cartHandler "watchitup-backend/internal/domains/cart/handler"
	cartRepo "watchitup-backend/internal/domains/cart/repository"
	cartService "watchitup-backend/internal/domains/cart/service"
	"watchitup-backend/internal/domains/cart/session"
	catalogRepo "watchitup-backend/internal/domains/catalog/repository"
	couponHandler "watchitup-backend/internal/domains/coupon/handler"
	couponRepo "watchitup-backend/internal/domains/coupon/repository"
	couponService "watchitup-backend/internal/domains/coupon/service"
	inventoryRepo "watchitup-backend/internal/domains/inventory/repository"
	inventoryService "watchitup-backend/internal/domains/inventory/service"
	notificationService "watchitup-backend/internal/domains/notification/service"
	offerHandler "watchitup-backend/internal/domains/offer/handler"
	offerRepo "watchitup-backend/internal/domains/offer/repository"
	offerService "watchitup-backend/internal/domains/offer/service"
	orderHandler "watchitup-backend/internal/domains/order/handler"
	orderRepo "watchitup-backend/internal/domains/order/repository"
	orderService "watchitup-backend/internal/domains/order/service"
	paymentGateway "watchitup-backend/internal/domains/payment/gateway"
	"watchitup-backend/internal/domains/payment/gateway/razorpay"
	paymentHandler "watchitup-backend/internal/domains/payment/handler"
	paymentRepo "watchitup-backend/internal/domains/payment/repository"
	paymentService "watchitup-backend/internal/domains/payment/service"
	walletHandler "watchitup-backend/internal/domains/wallet/handler"
	walletRepo "watchitup-backend/internal/domains/wallet/repository"
	walletService "watchitup-backend/internal/domains/wallet/service"
)

// ========================================
// CONTAINER
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       *cache.RedisCache
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager

	// Repositories
	CartRepo      cartRepo.RepositoryInterface
	CatalogRepo   catalogRepo.RepositoryInterface
	CouponRepo    couponRepo.RepositoryInterface
	InventoryRepo inventoryRepo.Repository
	OfferRepo     offerRepo.RepositoryInterface
	OrderRepo     orderRepo.OrderRepository
	PaymentRepo   paymentRepo.PaymentRepository
	WalletRepo    walletRepo.RepositoryInterface

	// Services
	Sessions         *session.Store
	CartService      cartService.ServiceInterface
	CouponService    couponService.ServiceInterface
	InventoryService inventoryService.Service
	Notifier         notificationService.ServiceInterface
	OfferService     offerService.ServiceInterface
	OrderService     orderService.OrderService
	PaymentGateway   paymentGateway.Gateway
	PaymentService   paymentService.PaymentService
	WalletService    walletService.ServiceInterface

	// Handlers
	CartHandler    *cartHandler.CartHandler
	CouponHandler  *couponHandler.CouponHandler
	OfferHandler   *offerHandler.OfferHandler
	OrderHandler   *orderHandler.OrderHandler
	PaymentHandler *paymentHandler.PaymentHandler
	WalletHandler  *walletHandler.WalletHandler
}

// NewContainer builds the whole graph or fails fast.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	if err := c.initServices(); err != nil {
		return nil, err
	}
	c.initHandlers()

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

func (c *Container) initInfrastructure() error {
	db := database.NewPostgresDB(&c.Config.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	c.Cache = cache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := c.Cache.Ping(context.Background()); err != nil {
		// Checkout sessions need Redis, but the API can still serve
		// everything else while it recovers.
		logger.Warn("redis connection failed", map[string]interface{}{"error": err.Error()})
	}

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})

	c.JWTManager = jwt.NewManager(
		c.Config.JWT.Secret,
		c.Config.JWT.AccessTokenExpiry,
		c.Config.JWT.RefreshTokenExpiry,
	)
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	c.CartRepo = cartRepo.NewPostgresRepository(pool)
	c.CatalogRepo = catalogRepo.NewRepository(pool)
	c.CouponRepo = couponRepo.NewRepository(pool)
	c.InventoryRepo = inventoryRepo.NewRepository(pool)
	c.OfferRepo = offerRepo.NewRepository(pool)
	c.OrderRepo = orderRepo.NewOrderRepository(pool)
	c.PaymentRepo = paymentRepo.NewPaymentRepository(pool)
	c.WalletRepo = walletRepo.NewRepository(pool)
}

func (c *Container) initServices() error {
	c.Sessions = session.NewStore(c.Cache)
	c.OfferService = offerService.NewResolver(c.OfferRepo)
	c.CouponService = couponService.NewCouponService(c.CouponRepo)
	c.InventoryService = inventoryService.NewService(c.InventoryRepo)
	c.WalletService = walletService.NewWalletService(c.WalletRepo)
	c.Notifier = notificationService.NewService(c.AsynqClient)

	c.CartService = cartService.NewService(
		c.CartRepo, c.CatalogRepo, c.OfferService, c.CouponService, c.Sessions,
	)

	c.OrderService = orderService.NewOrderService(
		c.OrderRepo, c.CartRepo, c.CartService, c.CouponRepo, c.CouponService,
		c.InventoryService, c.WalletService, c.Sessions, c.Notifier,
	)

	// Online payment is optional in development. Without credentials
	// the payment routes are simply not mounted.
	if c.Config.Razorpay.KeyID != "" {
		gwConfig, err := razorpay.NewConfig(
			c.Config.Razorpay.KeyID,
			c.Config.Razorpay.KeySecret,
			c.Config.Razorpay.APIURL,
			c.Config.Razorpay.WebhookURL,
		)
		if err != nil {
			return fmt.Errorf("failed to configure payment gateway: %w", err)
		}
		c.PaymentGateway, err = razorpay.NewClient(gwConfig)
		if err != nil {
			return fmt.Errorf("failed to build payment gateway client: %w", err)
		}
		c.PaymentService = paymentService.NewPaymentService(
			c.PaymentRepo, c.OrderRepo, c.PaymentGateway, c.InventoryService, c.Notifier,
		)
	} else {
		logger.Warn("razorpay credentials not set, online payment disabled", nil)
	}
	return nil
}

func (c *Container) initHandlers() {
	c.CartHandler = cartHandler.NewCartHandler(c.CartService)
	c.CouponHandler = couponHandler.NewCouponHandler(c.CouponService)
	c.OfferHandler = offerHandler.NewOfferHandler(c.OfferRepo)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)
	if c.PaymentService != nil {
		c.PaymentHandler = paymentHandler.NewPaymentHandler(c.PaymentService)
	}
	c.WalletHandler = walletHandler.NewWalletHandler(c.WalletService)
}

// Close releases infrastructure connections. Safe to call once at
// shutdown.
func (c *Container) Close() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("failed to close asynq client", err)
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
