package service

import (
    "context"
    "errors"

    "go.uber.org/zap"
    "gorm.io/gorm"

    "github.com/d60-Lab/mini-mall/internal/model"
    "github.com/d60-Lab/mini-mall/internal/repository"
    "github.com/d60-Lab/mini-mall/pkg/logger"
)

var (
    ErrStaffOnly     = errors.New("staff role required")
    ErrOrderNotFound = errors.New("order not found")
    // ErrCorruptStatus 库里出现流转表之外的状态：宁可报错，不做静默复位
    ErrCorruptStatus = errors.New("order status is inconsistent")
)

// FulfillmentService 员工侧订单流转与订单查询
type FulfillmentService interface {
    // Advance 沿 Open → Ready → Shipped → Picked-up 推进一步；终态幂等
    Advance(ctx context.Context, actor *model.Identity, orderID int64) (string, error)
    // ListAll 全部订单，新单在前，仅员工可用
    ListAll(ctx context.Context, actor *model.Identity) ([]*model.OrderSummary, error)
    // ListMine 用户自己的订单，新单在前
    ListMine(ctx context.Context, userID int64) ([]*model.Order, error)
}

type fulfillmentService struct {
    orderRepo repository.OrderRepository
}

func NewFulfillmentService(orderRepo repository.OrderRepository) FulfillmentService {
    return &fulfillmentService{orderRepo: orderRepo}
}

func (s *fulfillmentService) Advance(ctx context.Context, actor *model.Identity, orderID int64) (string, error) {
    if !actor.IsStaff() {
        return "", ErrStaffOnly
    }
    next, err := s.orderRepo.AdvanceStatus(ctx, orderID)
    if err != nil {
        switch {
        case errors.Is(err, gorm.ErrRecordNotFound):
            return "", ErrOrderNotFound
        case errors.Is(err, repository.ErrUnknownStatus):
            return "", ErrCorruptStatus
        }
        return "", err
    }
    logger.Info("order advanced",
        zap.Int64("order_id", orderID),
        zap.String("status", next),
        zap.String("actor", actor.Username))
    return next, nil
}

func (s *fulfillmentService) ListAll(ctx context.Context, actor *model.Identity) ([]*model.OrderSummary, error) {
    if !actor.IsStaff() {
        return nil, ErrStaffOnly
    }
    return s.orderRepo.ListAll(ctx)
}

func (s *fulfillmentService) ListMine(ctx context.Context, userID int64) ([]*model.Order, error) {
    return s.orderRepo.ListByUser(ctx, userID)
}
