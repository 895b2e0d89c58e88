package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/mini-mall/internal/service"
    "github.com/d60-Lab/mini-mall/internal/session"
)

// Handler 聚合各业务服务，路由处理函数都挂在它上面
type Handler struct {
    accountSvc  service.AccountService
    catalogSvc  service.CatalogService
    cartSvc     service.CartService
    checkoutSvc service.CheckoutService
    fulfillSvc  service.FulfillmentService
}

func New(
    accountSvc service.AccountService,
    catalogSvc service.CatalogService,
    cartSvc service.CartService,
    checkoutSvc service.CheckoutService,
    fulfillSvc service.FulfillmentService,
) *Handler {
    return &Handler{
        accountSvc:  accountSvc,
        catalogSvc:  catalogSvc,
        cartSvc:     cartSvc,
        checkoutSvc: checkoutSvc,
        fulfillSvc:  fulfillSvc,
    }
}

const cartCookie = "cart_session"

// cartToken 取出购物车会话令牌；首次访问时签发并种 cookie
// 也接受 X-Cart-Session 头，方便非浏览器客户端
func cartToken(c *gin.Context) string {
    if t := c.GetHeader("X-Cart-Session"); t != "" {
        return t
    }
    if t, err := c.Cookie(cartCookie); err == nil && t != "" {
        return t
    }
    t := session.NewToken()
    c.SetCookie(cartCookie, t, 86400, "/", "", false, true)
    c.Header("X-Cart-Session", t)
    return t
}
