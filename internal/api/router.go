package api

import (
    "strings"

    sentrygin "github.com/getsentry/sentry-go/gin"
    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    "github.com/gin-gonic/gin/binding"
    "github.com/go-playground/validator/v10"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

    "github.com/d60-Lab/mini-mall/config"
    _ "github.com/d60-Lab/mini-mall/docs"
    "github.com/d60-Lab/mini-mall/internal/api/handler"
    "github.com/d60-Lab/mini-mall/internal/api/middleware"
    "github.com/d60-Lab/mini-mall/internal/model"
)

// RegisterValidations 挂自定义校验规则到 gin 的 binding 校验器
func RegisterValidations() {
    if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
        // notblank: 必填且不能是纯空白
        _ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
            return strings.TrimSpace(fl.Field().String()) != ""
        })
    }
}

// NewRouter 组装全部路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
    gin.SetMode(cfg.Server.Mode)
    RegisterValidations()
    r := gin.New()
    r.Use(gin.Logger(), gin.Recovery())
    if cfg.Sentry.DSN != "" {
        r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
    }
    r.Use(otelgin.Middleware("mini-mall"))

    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
    r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

    api := r.Group("/api/v1", gzip.Gzip(gzip.DefaultCompression), middleware.Authenticate(cfg.JWT))
    {
        authLimited := api.Group("/auth", middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
        {
            authLimited.POST("/signup", h.Signup)
            authLimited.POST("/login", h.Login)
        }

        account := api.Group("/account", middleware.RequireAuth())
        {
            account.GET("", h.GetAccount)
            account.PUT("", h.UpdateAccount)
        }

        api.GET("/products", h.ListProducts)
        api.GET("/products/:id", h.GetProduct)

        api.GET("/cart", h.ViewCart)
        api.DELETE("/cart", h.ClearCart)
        api.POST("/cart/items/:productID", h.AddCartItem)
        api.DELETE("/cart/items/:productID", h.RemoveCartItem)

        api.POST("/checkout", h.Checkout)

        orders := api.Group("/orders")
        {
            orders.GET("/mine", middleware.RequireAuth(), h.ListMyOrders)
            orders.GET("", middleware.RequireRole(model.RoleStaff), h.ListOrders)
            orders.POST("/:id/advance", middleware.RequireRole(model.RoleStaff), h.AdvanceOrder)
        }
    }
    return r
}
