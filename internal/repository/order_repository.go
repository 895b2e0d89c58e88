package repository

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/d60-Lab/mini-mall/internal/model"
)

// ErrUnknownStatus 订单上存了流转表之外的状态，视为数据不一致，拒绝流转
var ErrUnknownStatus = errors.New("order has unknown status")

type OrderRepository interface {
    // CreateWithItems 在一个事务内落地订单与全部订单行，不允许出现只有其一的中间态
    CreateWithItems(ctx context.Context, order *model.Order, items []model.OrderItem) error

    GetByID(ctx context.Context, id int64) (*model.Order, error)

    // ListByUser 某用户的订单，新单在前
    ListByUser(ctx context.Context, userID int64) ([]*model.Order, error)

    // ListAll 全部订单带下单用户名，游客显示占位符，新单在前
    ListAll(ctx context.Context) ([]*model.OrderSummary, error)

    // AdvanceStatus 读取当前状态并推进一步，读写在同一事务内；
    // 订单不存在返回 gorm.ErrRecordNotFound，状态非法返回 ErrUnknownStatus
    AdvanceStatus(ctx context.Context, orderID int64) (string, error)
}

type orderRepository struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepository{db: db} }

func (r *orderRepository) CreateWithItems(ctx context.Context, order *model.Order, items []model.OrderItem) error {
    return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        if err := tx.Create(order).Error; err != nil {
            return err
        }
        if len(items) == 0 {
            return nil
        }
        for i := range items {
            items[i].OrderID = order.ID
        }
        return tx.Create(&items).Error
    })
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
    var o model.Order
    if err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error; err != nil {
        return nil, err
    }
    return &o, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]*model.Order, error) {
    var rows []*model.Order
    err := r.db.WithContext(ctx).
        Where("user_id = ?", userID).
        Order("id DESC").
        Find(&rows).Error
    return rows, err
}

func (r *orderRepository) ListAll(ctx context.Context) ([]*model.OrderSummary, error) {
    var rows []*model.OrderSummary
    err := r.db.WithContext(ctx).
        Table("orders o").
        Select("o.*, COALESCE(u.username, ?) AS username", model.GuestMarker).
        Joins("LEFT JOIN users u ON o.user_id = u.id").
        Order("o.id DESC").
        Scan(&rows).Error
    return rows, err
}

func (r *orderRepository) AdvanceStatus(ctx context.Context, orderID int64) (string, error) {
    var next string
    err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var o model.Order
        if err := tx.First(&o, orderID).Error; err != nil {
            return err
        }
        n, ok := model.NextStatus(o.Status)
        if !ok {
            return ErrUnknownStatus
        }
        next = n
        if n == o.Status {
            // 终态幂等，无需回写
            return nil
        }
        return tx.Model(&model.Order{}).Where("id = ?", orderID).
            Update("status", n).Error
    })
    if err != nil {
        return "", err
    }
    return next, nil
}
