package repository

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/mini-mall/internal/model"
)

func setupDB(t *testing.T) *gorm.DB {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    require.NoError(t, err)
    require.NoError(t, db.AutoMigrate(&model.User{}, &model.Product{}, &model.Order{}, &model.OrderItem{}))
    return db
}

func TestCreateWithItemsAtomic(t *testing.T) {
    db := setupDB(t)
    repo := NewOrderRepository(db)
    ctx := context.Background()

    order := &model.Order{Status: model.StatusOpen, CreatedAt: time.Now().UTC()}
    items := []model.OrderItem{
        {ProductID: 1, Quantity: 2, UnitPrice: 10},
        // 违反 quantity > 0 检查约束，整个事务必须回滚
        {ProductID: 2, Quantity: 0, UnitPrice: 5},
    }
    err := repo.CreateWithItems(ctx, order, items)
    require.Error(t, err)

    var orderCnt, itemCnt int64
    require.NoError(t, db.Model(&model.Order{}).Count(&orderCnt).Error)
    require.NoError(t, db.Model(&model.OrderItem{}).Count(&itemCnt).Error)
    assert.Zero(t, orderCnt)
    assert.Zero(t, itemCnt)
}

func TestCreateWithItemsLinksItems(t *testing.T) {
    db := setupDB(t)
    repo := NewOrderRepository(db)
    ctx := context.Background()

    order := &model.Order{Status: model.StatusOpen, CreatedAt: time.Now().UTC()}
    items := []model.OrderItem{
        {ProductID: 1, Quantity: 2, UnitPrice: 10},
        {ProductID: 2, Quantity: 1, UnitPrice: 5},
    }
    require.NoError(t, repo.CreateWithItems(ctx, order, items))
    require.NotZero(t, order.ID)

    got, err := repo.GetByID(ctx, order.ID)
    require.NoError(t, err)
    require.Len(t, got.Items, 2)
    for _, it := range got.Items {
        assert.Equal(t, order.ID, it.OrderID)
    }
}

func TestAdvanceStatusErrors(t *testing.T) {
    db := setupDB(t)
    repo := NewOrderRepository(db)
    ctx := context.Background()

    _, err := repo.AdvanceStatus(ctx, 42)
    assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

    o := &model.Order{Status: "???", CreatedAt: time.Now().UTC()}
    require.NoError(t, db.Create(o).Error)
    _, err = repo.AdvanceStatus(ctx, o.ID)
    assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestListAllUsernames(t *testing.T) {
    db := setupDB(t)
    repo := NewOrderRepository(db)
    ctx := context.Background()

    u := model.User{Username: "alice", PasswordHash: "x", Role: model.RoleCustomer}
    require.NoError(t, db.Create(&u).Error)
    require.NoError(t, db.Create(&model.Order{UserID: &u.ID, Status: model.StatusOpen, CreatedAt: time.Now().UTC()}).Error)
    require.NoError(t, db.Create(&model.Order{Status: model.StatusOpen, CreatedAt: time.Now().UTC()}).Error)

    rows, err := repo.ListAll(ctx)
    require.NoError(t, err)
    require.Len(t, rows, 2)
    assert.Equal(t, model.GuestMarker, rows[0].Username)
    assert.Equal(t, "alice", rows[1].Username)
}
