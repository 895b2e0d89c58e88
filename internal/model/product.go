package model

// Product 商品模型
// Stock 仅作展示，下单不校验也不扣减
type Product struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock       int     `json:"stock" gorm:"not null;default:0"`
}

func (Product) TableName() string { return "products" }
