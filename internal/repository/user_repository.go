package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/mini-mall/internal/model"
)

type UserRepository interface {
    Create(ctx context.Context, user *model.User) error
    GetByID(ctx context.Context, id int64) (*model.User, error)
    GetByUsername(ctx context.Context, username string) (*model.User, error)
    ExistsByUsername(ctx context.Context, username string) (bool, error)
    UpdateProfile(ctx context.Context, id int64, name, email, address string) error
}

type userRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
    return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.User{}).
        Where("username = ?", username).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

// UpdateProfile 只更新资料三项，用户名/角色/密码不在此路径变更
func (r *userRepository) UpdateProfile(ctx context.Context, id int64, name, email, address string) error {
    return r.db.WithContext(ctx).
        Model(&model.User{}).
        Where("id = ?", id).
        Updates(map[string]any{"name": name, "email": email, "address": address}).Error
}
