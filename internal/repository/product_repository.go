package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/mini-mall/internal/model"
)

type ProductRepository interface {
    Create(ctx context.Context, product *model.Product) error
    GetByID(ctx context.Context, id int64) (*model.Product, error)
    // GetByIDs 按 ID 批量查询，缺失的 ID 不在返回结果中
    GetByIDs(ctx context.Context, ids []int64) (map[int64]*model.Product, error)
    // Search 按名称/描述模糊匹配，q 为空返回全部，ID 倒序
    Search(ctx context.Context, q string) ([]*model.Product, error)
    Count(ctx context.Context) (int64, error)
}

type productRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepository{db: db} }

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
    return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
    var p model.Product
    if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*model.Product, error) {
    if len(ids) == 0 {
        return map[int64]*model.Product{}, nil
    }
    var rows []*model.Product
    if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
        return nil, err
    }
    res := make(map[int64]*model.Product, len(rows))
    for _, p := range rows {
        res[p.ID] = p
    }
    return res, nil
}

func (r *productRepository) Search(ctx context.Context, q string) ([]*model.Product, error) {
    var rows []*model.Product
    tx := r.db.WithContext(ctx).Order("id DESC")
    if q != "" {
        like := "%" + q + "%"
        tx = tx.Where("name LIKE ? OR description LIKE ?", like, like)
    }
    if err := tx.Find(&rows).Error; err != nil {
        return nil, err
    }
    return rows, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&cnt).Error
    return cnt, err
}
