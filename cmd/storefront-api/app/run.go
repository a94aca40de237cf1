package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/aurea-shop/storefront-api/configs"
	"github.com/aurea-shop/storefront-api/internal/adapter/cache"
	"github.com/aurea-shop/storefront-api/internal/adapter/http"
	"github.com/aurea-shop/storefront-api/internal/adapter/kafka"
	"github.com/aurea-shop/storefront-api/internal/adapter/queue"
	"github.com/aurea-shop/storefront-api/internal/adapter/repo"
	"github.com/aurea-shop/storefront-api/internal/cart"
	"github.com/aurea-shop/storefront-api/internal/logging"
	"github.com/aurea-shop/storefront-api/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init("storefront-api", cfg.App.LogFile)

	// init database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, nil, err
	}

	logger.Info("storefront-api: starting up")

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, nil, err
	}

	// init rabbitmq
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}

	// repos + cache
	orderRepo := repo.NewMySQLOrderRepo(db)
	productRepo := repo.NewMySQLProductRepo(db)
	settingsRepo := repo.NewMySQLSettingsRepo(db)
	analyticsRepo := repo.NewMySQLAnalyticsRepo(db)
	guard := cache.NewRedisIdempotencyStore(rdb, cfg.Checkout.GuardTTL)
	statusCache := cache.NewRedisOrderStatusCache(rdb, cfg.Cache.TTL)
	cartStore := cache.NewRedisCartStore(rdb, cfg.Cart.TTL)
	engine := cart.NewEngine(cartStore)

	// events
	producer, err := queue.NewRabbitProducer(ch)
	if err != nil {
		return nil, nil, err
	}
	if err := setupQueue(ch, settingsRepo); err != nil {
		return nil, nil, err
	}
	if err := setupKafkaListener(cfg, orderRepo, statusCache); err != nil {
		return nil, nil, err
	}

	// usecases + handlers + router
	placeUC := usecase.NewPlaceOrder(engine, orderRepo, settingsRepo, guard, producer)
	statusUC := usecase.NewSetOrderStatus(orderRepo, statusCache)
	cartH := http.NewCartHandler(engine, settingsRepo)
	orderH := http.NewOrderHandler(placeUC, statusUC, orderRepo)
	productH := http.NewProductHandler(productRepo)
	settingsH := http.NewSettingsHandler(settingsRepo)
	analyticsH := http.NewAnalyticsHandler(analyticsRepo)
	router := http.NewRouter(cartH, orderH, productH, settingsH, analyticsH)

	cleanup := func() {
		_ = db.Close()
		_ = rdb.Close()
		_ = ch.Close()
		_ = conn.Close()
	}

	return &App{Router: router}, cleanup, nil
}

func setupQueue(ch *amqp091.Channel, settings usecase.SettingsRepo) error {
	h := queue.NewOrderPlacedHandler(settings, queue.LogNotifier{})

	router := queue.NewRouter(ch, queue.WithPrefetch(50))
	router.Register("order.placed.q", queue.JSONHandler[usecase.PlacedMsg]{HandleFunc: h.HandlePlaced})

	return router.Start()
}

func setupKafkaListener(cfg configs.Config, orders *repo.MySQLOrderRepo, statusCache *cache.RedisOrderStatusCache) error {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		return err
	}

	h := kafka.NewPaymentStatusChangedHandler(orders, statusCache)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.PaymentsTopic}, h.Handle)
	consumer.Logger = logging.New("kafka")

	go func() {
		if err := consumer.Start(context.Background()); err != nil && err != context.Canceled {
			logging.Base().Error("kafka consumer stopped", "err", err)
		}
	}()
	return nil
}
