package handler

import (
    "errors"
    "io"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/mini-mall/internal/api/middleware"
    "github.com/d60-Lab/mini-mall/internal/service"
    "github.com/d60-Lab/mini-mall/pkg/response"
)

type checkoutRequest struct {
    Name    string `json:"name"`
    Email   string `json:"email" binding:"omitempty,email"`
    Address string `json:"address"`
}

// Checkout 结算：游客或已登录用户都可下单
// 表单字段优先，已登录用户缺省回落账号资料
// @Summary 结算下单
// @Tags 结算
// @Accept json
// @Produce json
// @Param request body checkoutRequest false "买家信息，全部可选"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
    // 空 body 视为游客无覆盖；分块传输时 ContentLength 为 -1，不能据此跳过绑定
    var req checkoutRequest
    if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
        response.BadRequest(c, err.Error())
        return
    }
    token := cartToken(c)
    ident := middleware.Identity(c)
    orderID, err := h.checkoutSvc.Checkout(c.Request.Context(), token, ident, service.BuyerInfo{
        Name:    req.Name,
        Email:   req.Email,
        Address: req.Address,
    })
    if err != nil {
        if errors.Is(err, service.ErrEmptyCart) {
            response.BadRequest(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"order_id": orderID})
}
