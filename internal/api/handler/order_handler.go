package handler

import (
    "errors"
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/mini-mall/internal/api/middleware"
    "github.com/d60-Lab/mini-mall/internal/service"
    "github.com/d60-Lab/mini-mall/pkg/response"
)

// ListOrders 全部订单（员工），游客单用户名显示 (guest)
// @Summary 订单列表（员工）
// @Tags 订单
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
    orders, err := h.fulfillSvc.ListAll(c.Request.Context(), middleware.Identity(c))
    if err != nil {
        if errors.Is(err, service.ErrStaffOnly) {
            response.Forbidden(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, orders)
}

// ListMyOrders 自己的订单，新单在前
// @Summary 我的订单
// @Tags 订单
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/orders/mine [get]
func (h *Handler) ListMyOrders(c *gin.Context) {
    ident := middleware.Identity(c)
    orders, err := h.fulfillSvc.ListMine(c.Request.Context(), ident.UserID)
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, orders)
}

// AdvanceOrder 订单状态前进一步（员工）
// @Summary 推进订单状态
// @Tags 订单
// @Produce json
// @Security BearerAuth
// @Param id path int true "订单ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/orders/{id}/advance [post]
func (h *Handler) AdvanceOrder(c *gin.Context) {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid order id")
        return
    }
    status, err := h.fulfillSvc.Advance(c.Request.Context(), middleware.Identity(c), id)
    if err != nil {
        switch {
        case errors.Is(err, service.ErrStaffOnly):
            response.Forbidden(c, err.Error())
        case errors.Is(err, service.ErrOrderNotFound):
            response.NotFound(c, err.Error())
        default:
            response.InternalError(c, err)
        }
        return
    }
    response.Success(c, gin.H{"order_id": id, "status": status})
}
