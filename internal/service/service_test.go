package service

import (
    "context"
    "strconv"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/mini-mall/config"
    "github.com/d60-Lab/mini-mall/internal/model"
    "github.com/d60-Lab/mini-mall/internal/repository"
    "github.com/d60-Lab/mini-mall/internal/session"
)

// testEnv 每个用例独立的内存库 + miniredis
type testEnv struct {
    db          *gorm.DB
    mr          *miniredis.Miniredis
    store       session.CartStore
    userRepo    repository.UserRepository
    productRepo repository.ProductRepository
    orderRepo   repository.OrderRepository
}

func newTestEnv(t *testing.T) *testEnv {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    require.NoError(t, err)
    require.NoError(t, db.AutoMigrate(&model.User{}, &model.Product{}, &model.Order{}, &model.OrderItem{}))

    mr := miniredis.RunT(t)
    client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

    return &testEnv{
        db:          db,
        mr:          mr,
        store:       session.NewCartStore(client, 0),
        userRepo:    repository.NewUserRepository(db),
        productRepo: repository.NewProductRepository(db),
        orderRepo:   repository.NewOrderRepository(db),
    }
}

func (e *testEnv) seedProduct(t *testing.T, name string, price float64) *model.Product {
    t.Helper()
    p := &model.Product{Name: name, Description: name, Price: price, Stock: 10}
    require.NoError(t, e.productRepo.Create(context.Background(), p))
    return p
}

func (e *testEnv) seedUser(t *testing.T, username, role string) *model.User {
    t.Helper()
    u := &model.User{
        Username:     username,
        PasswordHash: "x",
        Name:         username + " name",
        Email:        username + "@example.com",
        Address:      username + " street",
        Role:         role,
    }
    require.NoError(t, e.userRepo.Create(context.Background(), u))
    return u
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

func testJWTConfig() config.JWTConfig {
    return config.JWTConfig{Secret: "test-secret", TTL: time.Hour}
}
