package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/mini-mall/pkg/response"
)

// AddCartItem 加购，数量 +1
// @Summary 加入购物车
// @Tags 购物车
// @Produce json
// @Param productID path int true "商品ID"
// @Success 200 {object} response.Response
// @Router /api/v1/cart/items/{productID} [post]
func (h *Handler) AddCartItem(c *gin.Context) {
    pid, err := strconv.ParseInt(c.Param("productID"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid product id")
        return
    }
    token := cartToken(c)
    if err := h.cartSvc.Add(c.Request.Context(), token, pid); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, nil)
}

// RemoveCartItem 整条移除，与数量无关
// @Summary 移出购物车
// @Tags 购物车
// @Produce json
// @Param productID path int true "商品ID"
// @Success 200 {object} response.Response
// @Router /api/v1/cart/items/{productID} [delete]
func (h *Handler) RemoveCartItem(c *gin.Context) {
    pid, err := strconv.ParseInt(c.Param("productID"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid product id")
        return
    }
    token := cartToken(c)
    if err := h.cartSvc.Remove(c.Request.Context(), token, pid); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, nil)
}

// ViewCart 购物车明细，按当前价计算小计与合计
// @Summary 查看购物车
// @Tags 购物车
// @Produce json
// @Success 200 {object} response.Response{data=model.CartView}
// @Router /api/v1/cart [get]
func (h *Handler) ViewCart(c *gin.Context) {
    token := cartToken(c)
    view, err := h.cartSvc.View(c.Request.Context(), token)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, view)
}

// ClearCart 清空购物车
// @Summary 清空购物车
// @Tags 购物车
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/cart [delete]
func (h *Handler) ClearCart(c *gin.Context) {
    token := cartToken(c)
    if err := h.cartSvc.Clear(c.Request.Context(), token); err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, nil)
}
