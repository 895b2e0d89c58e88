package auth

import (
    "errors"
    "fmt"
    "strconv"
    "time"

    "github.com/golang-jwt/jwt/v5"

    "github.com/d60-Lab/mini-mall/config"
    "github.com/d60-Lab/mini-mall/internal/model"
)

var ErrInvalidToken = errors.New("invalid access token")

// Claims 访问令牌载荷：用户 ID 放 Subject，用户名与角色为自定义声明
type Claims struct {
    Username string `json:"username"`
    Role     string `json:"role"`
    jwt.RegisteredClaims
}

// Issue 为用户签发 HS256 访问令牌
func Issue(cfg config.JWTConfig, user *model.User) (string, error) {
    now := time.Now()
    claims := Claims{
        Username: user.Username,
        Role:     user.Role,
        RegisteredClaims: jwt.RegisteredClaims{
            Subject:   strconv.FormatInt(user.ID, 10),
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
        },
    }
    return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
}

// Parse 校验令牌并还原请求方身份
func Parse(cfg config.JWTConfig, tokenString string) (*model.Identity, error) {
    token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
        }
        return []byte(cfg.Secret), nil
    })
    if err != nil {
        return nil, ErrInvalidToken
    }
    claims, ok := token.Claims.(*Claims)
    if !ok || !token.Valid {
        return nil, ErrInvalidToken
    }
    userID, err := strconv.ParseInt(claims.Subject, 10, 64)
    if err != nil {
        return nil, ErrInvalidToken
    }
    return &model.Identity{UserID: userID, Username: claims.Username, Role: claims.Role}, nil
}
