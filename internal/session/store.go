package session

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "time"

    "github.com/google/uuid"
    "github.com/redis/go-redis/v9"

    "github.com/d60-Lab/mini-mall/internal/model"
)

// CartStore 按不透明会话令牌保存购物车，跨请求共享
// 购物车不是跨会话资源，不需要任何跨会话锁
type CartStore interface {
    // Load 读取购物车；令牌无记录时返回空车
    Load(ctx context.Context, token string) (model.Cart, error)
    // Save 覆盖写入并续期；写入前清洗非法数量
    Save(ctx context.Context, token string, cart model.Cart) error
    // Clear 整体清空
    Clear(ctx context.Context, token string) error
}

// NewToken 生成购物车会话令牌
func NewToken() string { return uuid.New().String() }

type redisCartStore struct {
    client *redis.Client
    ttl    time.Duration
}

func NewCartStore(client *redis.Client, ttl time.Duration) CartStore {
    if ttl <= 0 {
        ttl = 24 * time.Hour
    }
    return &redisCartStore{client: client, ttl: ttl}
}

func cartKey(token string) string { return fmt.Sprintf("mall:cart:%s", token) }

func (s *redisCartStore) Load(ctx context.Context, token string) (model.Cart, error) {
    raw, err := s.client.Get(ctx, cartKey(token)).Result()
    if errors.Is(err, redis.Nil) {
        return model.Cart{}, nil
    }
    if err != nil {
        return nil, err
    }
    var cart model.Cart
    if err := json.Unmarshal([]byte(raw), &cart); err != nil {
        return nil, fmt.Errorf("decode cart: %w", err)
    }
    cart.Normalize()
    return cart, nil
}

func (s *redisCartStore) Save(ctx context.Context, token string, cart model.Cart) error {
    cart.Normalize()
    if len(cart) == 0 {
        return s.Clear(ctx, token)
    }
    raw, err := json.Marshal(cart)
    if err != nil {
        return fmt.Errorf("encode cart: %w", err)
    }
    return s.client.Set(ctx, cartKey(token), raw, s.ttl).Err()
}

func (s *redisCartStore) Clear(ctx context.Context, token string) error {
    return s.client.Del(ctx, cartKey(token)).Err()
}
