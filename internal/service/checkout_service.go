package service

import (
    "context"
    "errors"
    "sort"
    "strings"
    "time"

    "go.uber.org/zap"

    "github.com/d60-Lab/mini-mall/internal/model"
    "github.com/d60-Lab/mini-mall/internal/repository"
    "github.com/d60-Lab/mini-mall/internal/session"
    "github.com/d60-Lab/mini-mall/pkg/logger"
)

var ErrEmptyCart = errors.New("cart is empty")

// BuyerInfo 结算表单的买家字段，全部可选
type BuyerInfo struct {
    Name    string
    Email   string
    Address string
}

// CheckoutService 把购物车 + 买家身份转为一笔持久化订单
type CheckoutService interface {
    // Checkout 原子落地订单及订单行，成功后清空购物车并返回订单 ID；
    // 落库失败时购物车保持原样，允许重试
    Checkout(ctx context.Context, token string, ident *model.Identity, buyer BuyerInfo) (int64, error)
}

type checkoutService struct {
    store       session.CartStore
    productRepo repository.ProductRepository
    orderRepo   repository.OrderRepository
    userRepo    repository.UserRepository
}

func NewCheckoutService(
    store session.CartStore,
    productRepo repository.ProductRepository,
    orderRepo repository.OrderRepository,
    userRepo repository.UserRepository,
) CheckoutService {
    return &checkoutService{store: store, productRepo: productRepo, orderRepo: orderRepo, userRepo: userRepo}
}

func (s *checkoutService) Checkout(ctx context.Context, token string, ident *model.Identity, buyer BuyerInfo) (int64, error) {
    cart, err := s.store.Load(ctx, token)
    if err != nil {
        return 0, err
    }
    if len(cart) == 0 {
        return 0, ErrEmptyCart
    }

    // 买家快照：表单优先，已登录用户回落到账号资料，游客回落为空串
    name, email, address := strings.TrimSpace(buyer.Name), strings.TrimSpace(buyer.Email), strings.TrimSpace(buyer.Address)
    var userID *int64
    if ident != nil {
        stored, err := s.userRepo.GetByID(ctx, ident.UserID)
        if err != nil {
            return 0, err
        }
        if name == "" {
            name = stored.Name
        }
        if email == "" {
            email = stored.Email
        }
        if address == "" {
            address = stored.Address
        }
        uid := ident.UserID
        userID = &uid
    }

    ids := make([]int64, 0, len(cart))
    for id := range cart {
        ids = append(ids, id)
    }
    sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

    products, err := s.productRepo.GetByIDs(ctx, ids)
    if err != nil {
        return 0, err
    }

    order := &model.Order{
        UserID:       userID,
        GuestName:    name,
        GuestEmail:   email,
        GuestAddress: address,
        Status:       model.StatusOpen,
        CreatedAt:    time.Now().UTC(),
    }
    items := make([]model.OrderItem, 0, len(ids))
    for _, id := range ids {
        p, ok := products[id]
        if !ok {
            // 商品已下架，跳过该条目
            continue
        }
        qty := cart[id]
        if qty < 1 {
            continue
        }
        // UnitPrice 取当前价，落库后即为不可变快照
        items = append(items, model.OrderItem{ProductID: id, Quantity: qty, UnitPrice: p.Price})
    }

    if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
        return 0, err
    }
    if err := s.store.Clear(ctx, token); err != nil {
        // 订单已落库，购物车清理失败只记告警
        logger.Warn("clear cart after checkout failed", zap.Int64("order_id", order.ID), zap.Error(err))
    }
    logger.Info("order placed",
        zap.Int64("order_id", order.ID),
        zap.Int("items", len(items)),
        zap.Bool("guest", userID == nil))
    return order.ID, nil
}
