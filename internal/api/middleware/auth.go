package middleware

import (
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/mini-mall/config"
    "github.com/d60-Lab/mini-mall/internal/auth"
    "github.com/d60-Lab/mini-mall/internal/model"
    "github.com/d60-Lab/mini-mall/pkg/response"
)

const identityKey = "identity"

// Authenticate 解析 Authorization: Bearer 令牌并把身份放进请求上下文
// 不带令牌的请求照常放行（游客），带非法令牌的直接 401
func Authenticate(jwtCfg config.JWTConfig) gin.HandlerFunc {
    return func(c *gin.Context) {
        header := c.GetHeader("Authorization")
        if header == "" {
            c.Next()
            return
        }
        tokenString, ok := strings.CutPrefix(header, "Bearer ")
        if !ok {
            response.Unauthorized(c, "malformed authorization header")
            c.Abort()
            return
        }
        ident, err := auth.Parse(jwtCfg, tokenString)
        if err != nil {
            response.Unauthorized(c, "invalid access token")
            c.Abort()
            return
        }
        c.Set(identityKey, ident)
        c.Next()
    }
}

// RequireAuth 必须已登录
func RequireAuth() gin.HandlerFunc {
    return func(c *gin.Context) {
        if Identity(c) == nil {
            response.Unauthorized(c, "please log in first")
            c.Abort()
            return
        }
        c.Next()
    }
}

// RequireRole 统一的角色门禁，员工专属路由挂这里
func RequireRole(role string) gin.HandlerFunc {
    return func(c *gin.Context) {
        ident := Identity(c)
        if ident == nil {
            response.Unauthorized(c, "please log in first")
            c.Abort()
            return
        }
        if ident.Role != role {
            response.Forbidden(c, "you do not have permission to do that")
            c.Abort()
            return
        }
        c.Next()
    }
}

// Identity 取出请求方身份，游客返回 nil
func Identity(c *gin.Context) *model.Identity {
    v, ok := c.Get(identityKey)
    if !ok {
        return nil
    }
    ident, _ := v.(*model.Identity)
    return ident
}
