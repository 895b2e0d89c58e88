package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/mini-mall/internal/api/middleware"
    "github.com/d60-Lab/mini-mall/internal/service"
    "github.com/d60-Lab/mini-mall/pkg/response"
)

type signupRequest struct {
    Username string `json:"username" binding:"required,notblank"`
    Password string `json:"password" binding:"required"`
    Name     string `json:"name"`
    Email    string `json:"email" binding:"omitempty,email"`
    Address  string `json:"address"`
}

type loginRequest struct {
    Username string `json:"username" binding:"required"`
    Password string `json:"password" binding:"required"`
}

type accountUpdateRequest struct {
    Name    string `json:"name"`
    Email   string `json:"email" binding:"omitempty,email"`
    Address string `json:"address"`
}

// Signup 注册账号
// @Summary 注册
// @Tags 账号
// @Accept json
// @Produce json
// @Param request body signupRequest true "注册信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
    var req signupRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    user, err := h.accountSvc.Signup(c.Request.Context(), req.Username, req.Password, req.Name, req.Email, req.Address)
    if err != nil {
        switch {
        case errors.Is(err, service.ErrMissingCredentials):
            response.BadRequest(c, err.Error())
        case errors.Is(err, service.ErrUsernameTaken):
            response.Conflict(c, err.Error())
        default:
            response.InternalError(c, err)
        }
        return
    }
    response.Success(c, user)
}

// Login 登录并签发访问令牌
// @Summary 登录
// @Tags 账号
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    user, token, err := h.accountSvc.Login(c.Request.Context(), req.Username, req.Password)
    if err != nil {
        if errors.Is(err, service.ErrInvalidCredentials) {
            response.Unauthorized(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, gin.H{"user": user, "token": token})
}

// GetAccount 查看账号资料
// @Summary 账号资料
// @Tags 账号
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/account [get]
func (h *Handler) GetAccount(c *gin.Context) {
    ident := middleware.Identity(c)
    user, err := h.accountSvc.Get(c.Request.Context(), ident.UserID)
    if err != nil {
        if errors.Is(err, service.ErrUserNotFound) {
            response.NotFound(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, user)
}

// UpdateAccount 更新账号资料（姓名/邮箱/地址）
// @Summary 更新账号资料
// @Tags 账号
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body accountUpdateRequest true "资料"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/account [put]
func (h *Handler) UpdateAccount(c *gin.Context) {
    var req accountUpdateRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    ident := middleware.Identity(c)
    user, err := h.accountSvc.UpdateProfile(c.Request.Context(), ident.UserID, req.Name, req.Email, req.Address)
    if err != nil {
        if errors.Is(err, service.ErrUserNotFound) {
            response.NotFound(c, err.Error())
            return
        }
        response.InternalError(c, err)
        return
    }
    response.Success(c, user)
}
