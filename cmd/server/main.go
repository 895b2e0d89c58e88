package main

import (
    "context"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "github.com/d60-Lab/mini-mall/config"
    "github.com/d60-Lab/mini-mall/internal/api"
    "github.com/d60-Lab/mini-mall/internal/api/handler"
    "github.com/d60-Lab/mini-mall/internal/repository"
    "github.com/d60-Lab/mini-mall/internal/service"
    "github.com/d60-Lab/mini-mall/internal/session"
    "github.com/d60-Lab/mini-mall/pkg/database"
    "github.com/d60-Lab/mini-mall/pkg/logger"
    "github.com/d60-Lab/mini-mall/pkg/telemetry"
)

// @title mini-mall API
// @version 1.0
// @description 极简商城：商品浏览、会话购物车、游客/登录结算、员工订单流转
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
    cfg, err := config.Load()
    if err != nil {
        panic(err)
    }
    if err := logger.Init(cfg.Server.Mode); err != nil {
        panic(err)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        } else {
            defer sentry.Flush(2 * time.Second)
        }
    }

    ctx := context.Background()
    shutdownTracer, err := telemetry.SetupTracer(ctx, "mini-mall")
    if err != nil {
        logger.Warn("tracer init failed", zap.Error(err))
    } else {
        defer func() { _ = shutdownTracer(context.Background()) }()
    }

    db, err := database.InitDB(cfg)
    if err != nil {
        logger.Fatal("init database", zap.Error(err))
    }
    if cfg.Server.Seed {
        if err := database.Seed(ctx, db); err != nil {
            logger.Fatal("seed database", zap.Error(err))
        }
    }

    rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
    cartStore := session.NewCartStore(rdb, cfg.Redis.SessionTTL)

    userRepo := repository.NewUserRepository(db)
    productRepo := repository.NewProductRepository(db)
    orderRepo := repository.NewOrderRepository(db)

    h := handler.New(
        service.NewAccountService(userRepo, cfg.JWT),
        service.NewCatalogService(productRepo),
        service.NewCartService(cartStore, productRepo),
        service.NewCheckoutService(cartStore, productRepo, orderRepo, userRepo),
        service.NewFulfillmentService(orderRepo),
    )

    r := api.NewRouter(cfg, h)
    logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
    if err := r.Run(cfg.Server.Addr); err != nil {
        logger.Fatal("server exited", zap.Error(err))
    }
}
