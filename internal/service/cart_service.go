package service

import (
    "context"
    "sort"

    "github.com/d60-Lab/mini-mall/internal/model"
    "github.com/d60-Lab/mini-mall/internal/repository"
    "github.com/d60-Lab/mini-mall/internal/session"
)

// CartService 会话购物车操作；全部操作对映射而言是全函数，无业务错误
type CartService interface {
    Add(ctx context.Context, token string, productID int64) error
    Remove(ctx context.Context, token string, productID int64) error
    // View 按当前商品数据解析条目；商品已下架的条目静默丢弃
    View(ctx context.Context, token string) (*model.CartView, error)
    Clear(ctx context.Context, token string) error
}

type cartService struct {
    store       session.CartStore
    productRepo repository.ProductRepository
}

func NewCartService(store session.CartStore, productRepo repository.ProductRepository) CartService {
    return &cartService{store: store, productRepo: productRepo}
}

func (s *cartService) Add(ctx context.Context, token string, productID int64) error {
    cart, err := s.store.Load(ctx, token)
    if err != nil {
        return err
    }
    cart.Add(productID)
    return s.store.Save(ctx, token, cart)
}

func (s *cartService) Remove(ctx context.Context, token string, productID int64) error {
    cart, err := s.store.Load(ctx, token)
    if err != nil {
        return err
    }
    cart.Remove(productID)
    return s.store.Save(ctx, token, cart)
}

func (s *cartService) View(ctx context.Context, token string) (*model.CartView, error) {
    cart, err := s.store.Load(ctx, token)
    if err != nil {
        return nil, err
    }
    return buildCartView(ctx, s.productRepo, cart)
}

func (s *cartService) Clear(ctx context.Context, token string) error {
    return s.store.Clear(ctx, token)
}

// buildCartView 解析购物车：line_total = 数量 × 当前价，total 为各行之和
func buildCartView(ctx context.Context, productRepo repository.ProductRepository, cart model.Cart) (*model.CartView, error) {
    view := &model.CartView{Items: []model.CartItem{}}
    if len(cart) == 0 {
        return view, nil
    }
    ids := make([]int64, 0, len(cart))
    for id := range cart {
        ids = append(ids, id)
    }
    sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

    products, err := productRepo.GetByIDs(ctx, ids)
    if err != nil {
        return nil, err
    }
    for _, id := range ids {
        p, ok := products[id]
        if !ok {
            continue
        }
        qty := cart[id]
        line := float64(qty) * p.Price
        view.Items = append(view.Items, model.CartItem{Product: *p, Quantity: qty, LineTotal: line})
        view.Total += line
    }
    return view, nil
}
