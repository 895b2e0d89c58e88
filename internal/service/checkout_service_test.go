package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/mini-mall/internal/model"
)

func newCheckout(env *testEnv) CheckoutService {
    return NewCheckoutService(env.store, env.productRepo, env.orderRepo, env.userRepo)
}

func TestCheckoutEmptyCartCreatesNothing(t *testing.T) {
    env := newTestEnv(t)
    svc := newCheckout(env)

    _, err := svc.Checkout(context.Background(), "tok", nil, BuyerInfo{Name: "Guest"})
    require.ErrorIs(t, err, ErrEmptyCart)

    var cnt int64
    require.NoError(t, env.db.Model(&model.Order{}).Count(&cnt).Error)
    assert.Zero(t, cnt)
}

func TestCheckoutCreatesOrderWithItems(t *testing.T) {
    env := newTestEnv(t)
    svc := newCheckout(env)
    ctx := context.Background()

    a := env.seedProduct(t, "Wireless Mouse", 24.99)
    b := env.seedProduct(t, "Mechanical Keyboard", 79.99)
    require.NoError(t, env.store.Save(ctx, "tok", model.Cart{a.ID: 2, b.ID: 1}))

    orderID, err := svc.Checkout(ctx, "tok", nil, BuyerInfo{Name: "Guest", Email: "g@example.com", Address: "Nowhere 1"})
    require.NoError(t, err)
    require.NotZero(t, orderID)

    var order model.Order
    require.NoError(t, env.db.Preload("Items").First(&order, orderID).Error)
    assert.Nil(t, order.UserID)
    assert.Equal(t, model.StatusOpen, order.Status)
    assert.Equal(t, "Guest", order.GuestName)
    require.Len(t, order.Items, 2)

    byProduct := map[int64]model.OrderItem{}
    for _, it := range order.Items {
        byProduct[it.ProductID] = it
    }
    assert.Equal(t, 2, byProduct[a.ID].Quantity)
    assert.InDelta(t, 24.99, byProduct[a.ID].UnitPrice, 1e-9)
    assert.Equal(t, 1, byProduct[b.ID].Quantity)
    assert.InDelta(t, 79.99, byProduct[b.ID].UnitPrice, 1e-9)

    // 成功结算后购物车清空
    cart, err := env.store.Load(ctx, "tok")
    require.NoError(t, err)
    assert.Empty(t, cart)
}

func TestCheckoutUnitPriceIsSnapshot(t *testing.T) {
    env := newTestEnv(t)
    svc := newCheckout(env)
    ctx := context.Background()

    a := env.seedProduct(t, "Laptop Pro 14", 1299.00)
    require.NoError(t, env.store.Save(ctx, "tok", model.Cart{a.ID: 1}))

    orderID, err := svc.Checkout(ctx, "tok", nil, BuyerInfo{})
    require.NoError(t, err)

    // 下单后调价，订单行价格不变
    require.NoError(t, env.db.Model(a).Update("price", 1.00).Error)

    var item model.OrderItem
    require.NoError(t, env.db.Where("order_id = ?", orderID).First(&item).Error)
    assert.InDelta(t, 1299.00, item.UnitPrice, 1e-9)
}

func TestCheckoutSkipsNonPositiveAndMissing(t *testing.T) {
    env := newTestEnv(t)
    svc := newCheckout(env)
    ctx := context.Background()

    a := env.seedProduct(t, "Wireless Mouse", 24.99)
    // 绕过 Save 的清洗，直接塞入带非法数量和已下架商品的快照
    env.mr.Set("mall:cart:tok", `{"`+itoa(a.ID)+`":2,"9999":3,"8888":0}`)

    orderID, err := svc.Checkout(ctx, "tok", nil, BuyerInfo{})
    require.NoError(t, err)

    var items []model.OrderItem
    require.NoError(t, env.db.Where("order_id = ?", orderID).Find(&items).Error)
    require.Len(t, items, 1)
    assert.Equal(t, a.ID, items[0].ProductID)
    assert.Equal(t, 2, items[0].Quantity)
}

func TestCheckoutBuyerResolution(t *testing.T) {
    env := newTestEnv(t)
    svc := newCheckout(env)
    ctx := context.Background()

    user := env.seedUser(t, "alice", model.RoleCustomer)
    ident := &model.Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
    a := env.seedProduct(t, "Wireless Mouse", 24.99)

    // 表单覆盖地址，其余回落账号资料
    require.NoError(t, env.store.Save(ctx, "tok", model.Cart{a.ID: 1}))
    orderID, err := svc.Checkout(ctx, "tok", ident, BuyerInfo{Address: "Override Blvd 7"})
    require.NoError(t, err)

    var order model.Order
    require.NoError(t, env.db.First(&order, orderID).Error)
    require.NotNil(t, order.UserID)
    assert.Equal(t, user.ID, *order.UserID)
    assert.Equal(t, "alice name", order.GuestName)
    assert.Equal(t, "alice@example.com", order.GuestEmail)
    assert.Equal(t, "Override Blvd 7", order.GuestAddress)
}

func TestCheckoutGuestWithoutOverridesGetsEmptySnapshot(t *testing.T) {
    env := newTestEnv(t)
    svc := newCheckout(env)
    ctx := context.Background()

    a := env.seedProduct(t, "Wireless Mouse", 24.99)
    require.NoError(t, env.store.Save(ctx, "tok", model.Cart{a.ID: 1}))

    orderID, err := svc.Checkout(ctx, "tok", nil, BuyerInfo{})
    require.NoError(t, err)

    var order model.Order
    require.NoError(t, env.db.First(&order, orderID).Error)
    assert.Nil(t, order.UserID)
    assert.Empty(t, order.GuestName)
    assert.Empty(t, order.GuestEmail)
    assert.Empty(t, order.GuestAddress)
}

func TestCheckoutStorageFailureLeavesCart(t *testing.T) {
    env := newTestEnv(t)
    svc := newCheckout(env)
    ctx := context.Background()

    a := env.seedProduct(t, "Wireless Mouse", 24.99)
    require.NoError(t, env.store.Save(ctx, "tok", model.Cart{a.ID: 2}))

    // 模拟落库失败：订单表没了，事务必然出错
    require.NoError(t, env.db.Migrator().DropTable(&model.Order{}))

    _, err := svc.Checkout(ctx, "tok", nil, BuyerInfo{})
    require.Error(t, err)

    // 购物车原样保留，用户可以重试
    cart, err := env.store.Load(ctx, "tok")
    require.NoError(t, err)
    assert.Equal(t, model.Cart{a.ID: 2}, cart)
}

func TestCheckoutSnapshotSurvivesProfileEdit(t *testing.T) {
    env := newTestEnv(t)
    svc := newCheckout(env)
    ctx := context.Background()

    user := env.seedUser(t, "bob", model.RoleCustomer)
    ident := &model.Identity{UserID: user.ID, Username: user.Username, Role: user.Role}
    a := env.seedProduct(t, "Wireless Mouse", 24.99)
    require.NoError(t, env.store.Save(ctx, "tok", model.Cart{a.ID: 1}))

    orderID, err := svc.Checkout(ctx, "tok", ident, BuyerInfo{})
    require.NoError(t, err)

    // 改账号资料，订单上的快照不动
    require.NoError(t, env.userRepo.UpdateProfile(ctx, user.ID, "New Name", "new@example.com", "New Street"))

    var order model.Order
    require.NoError(t, env.db.First(&order, orderID).Error)
    assert.Equal(t, "bob name", order.GuestName)
    assert.Equal(t, "bob@example.com", order.GuestEmail)
}
