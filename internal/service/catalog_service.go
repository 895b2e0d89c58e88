package service

import (
    "context"
    "errors"
    "strings"

    "gorm.io/gorm"

    "github.com/d60-Lab/mini-mall/internal/model"
    "github.com/d60-Lab/mini-mall/internal/repository"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService 商品目录只读查询
type CatalogService interface {
    Search(ctx context.Context, q string) ([]*model.Product, error)
    Get(ctx context.Context, id int64) (*model.Product, error)
}

type catalogService struct {
    productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
    return &catalogService{productRepo: productRepo}
}

func (s *catalogService) Search(ctx context.Context, q string) ([]*model.Product, error) {
    return s.productRepo.Search(ctx, strings.TrimSpace(q))
}

func (s *catalogService) Get(ctx context.Context, id int64) (*model.Product, error) {
    p, err := s.productRepo.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrProductNotFound
        }
        return nil, err
    }
    return p, nil
}
