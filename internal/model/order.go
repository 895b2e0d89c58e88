package model

import (
	"time"
)

// 订单状态，只能沿固定顺序前进
const (
	StatusOpen     = "Open"
	StatusReady    = "Ready"
	StatusShipped  = "Shipped"
	StatusPickedUp = "Picked-up" // 终态
)

// statusNext 状态流转表，无回退、无跳跃
var statusNext = map[string]string{
	StatusOpen:     StatusReady,
	StatusReady:    StatusShipped,
	StatusShipped:  StatusPickedUp,
	StatusPickedUp: StatusPickedUp,
}

// NextStatus 返回下一状态；未知状态返回 ok=false，由调用方报错
func NextStatus(status string) (next string, ok bool) {
	next, ok = statusNext[status]
	return next, ok
}

// Order 订单模型
// UserID 为空表示游客下单；guest_* 三列是下单时刻的买家快照，落库后不再变更
type Order struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       *int64    `json:"user_id" gorm:"index:idx_order_user"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	GuestAddress string    `json:"guest_address"`
	Status       string    `json:"status" gorm:"type:varchar(16);index;not null;default:'Open'"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_order_user;not null"`

	// 外键：用户删除时置空，订单行随订单级联删除
	User  *User       `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	Items []OrderItem `json:"items,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 订单行，随订单一次性批量写入，之后只读
// UnitPrice 是下单时刻的价格快照，与商品后续调价无关
type OrderItem struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   int64   `json:"order_id" gorm:"index:idx_item_order;not null"`
	ProductID int64   `json:"product_id" gorm:"not null"`
	Quantity  int     `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(10,2);not null"`

	Product *Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (OrderItem) TableName() string { return "order_items" }

// GuestMarker 游客订单在员工列表中的用户名占位
const GuestMarker = "(guest)"

// OrderSummary 员工订单列表项，带下单用户名
type OrderSummary struct {
	ID           int64     `json:"id"`
	UserID       *int64    `json:"user_id"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	GuestAddress string    `json:"guest_address"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `json:"username"`
}
