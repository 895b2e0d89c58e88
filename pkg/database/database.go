package database

import (
    "context"
    "fmt"

    "golang.org/x/crypto/bcrypt"
    "gorm.io/driver/postgres"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/mini-mall/config"
    "github.com/d60-Lab/mini-mall/internal/model"
    "github.com/d60-Lab/mini-mall/internal/repository"
)

// InitDB 按配置打开数据库并迁移表结构
func InitDB(cfg *config.Config) (*gorm.DB, error) {
    var dialector gorm.Dialector
    switch cfg.Database.Driver {
    case "postgres":
        dialector = postgres.Open(cfg.Database.DSN)
    case "sqlite", "":
        dialector = sqlite.Open(cfg.Database.DSN)
    default:
        return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
    }
    db, err := gorm.Open(dialector, &gorm.Config{})
    if err != nil {
        return nil, fmt.Errorf("open database: %w", err)
    }
    if err := Migrate(db); err != nil {
        return nil, err
    }
    return db, nil
}

func Migrate(db *gorm.DB) error {
    if err := db.AutoMigrate(
        &model.User{},
        &model.Product{},
        &model.Order{},
        &model.OrderItem{},
    ); err != nil {
        return fmt.Errorf("migrate schema: %w", err)
    }
    return nil
}

// Seed 空库时写入演示数据：一个员工账号和六件商品
func Seed(ctx context.Context, db *gorm.DB) error {
    var userCount int64
    if err := db.WithContext(ctx).Model(&model.User{}).Count(&userCount).Error; err != nil {
        return err
    }
    if userCount == 0 {
        hash, err := bcrypt.GenerateFromPassword([]byte("staff"), bcrypt.DefaultCost)
        if err != nil {
            return err
        }
        staff := model.User{
            Username:     "staff",
            PasswordHash: string(hash),
            Name:         "Order Processor",
            Email:        "staff@example.com",
            Address:      "Warehouse Lane",
            Role:         model.RoleStaff,
        }
        if err := db.WithContext(ctx).Create(&staff).Error; err != nil {
            return err
        }
    }

    productCount, err := repository.NewProductRepository(db).Count(ctx)
    if err != nil {
        return err
    }
    if productCount == 0 {
        products := []model.Product{
            {Name: "Laptop Pro 14", Description: "14-inch laptop with 16GB RAM, 512GB SSD", Price: 1299.00, Stock: 10},
            {Name: "Gaming Desktop X", Description: "Ryzen 7, RTX 4070, 32GB RAM, 1TB SSD", Price: 1899.99, Stock: 5},
            {Name: `27" 4K Monitor`, Description: "IPS, 60Hz, HDR10", Price: 329.00, Stock: 15},
            {Name: "Laser Printer 2000", Description: "Fast B/W laser printer", Price: 149.99, Stock: 20},
            {Name: "Wireless Mouse", Description: "Ergonomic 2.4GHz mouse", Price: 24.99, Stock: 50},
            {Name: "Mechanical Keyboard", Description: "RGB backlit, blue switches", Price: 79.99, Stock: 30},
        }
        if err := db.WithContext(ctx).Create(&products).Error; err != nil {
            return err
        }
    }
    return nil
}
