package handler

import (
    "errors"
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/mini-mall/internal/service"
    "github.com/d60-Lab/mini-mall/pkg/response"
)

// ListProducts 商品列表与搜索
// @Summary 商品列表
// @Tags 商品
// @Produce json
// @Param q query string false "按名称/描述模糊搜索"
// @Success 200 {object} response.Response
// @Router /api/v1/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
    products, err := h.catalogSvc.Search(c.Request.Context(), c.Query("q"))
    if err != nil {
        response.InternalError(c, err)
        return
    }
    response.Success(c, products)
}

// GetProduct 商品详情
// @Summary 商品详情
// @Tags 商品
// @Produce json
// @Param id path int true "商品ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil {
        response.BadRequest(c, "invalid product id")
        return
    }
    product, err := h.catalogSvc.Get(c.Request.Context(), id)
    if err != nil {
        if errors.Is(err, service.ErrProductNotFound) {
            response.NotFound(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, product)
}
