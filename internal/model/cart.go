package model

// Cart 会话级购物车：商品 ID -> 数量
// 无持久身份，新会话从空开始；结算成功后整体清空
type Cart map[int64]int

// Add 数量 +1，未有条目默认从 0 开始
func (c Cart) Add(productID int64) {
	c[productID]++
}

// Remove 整条删除，与数量无关
func (c Cart) Remove(productID int64) {
	delete(c, productID)
}

// Normalize 去掉非法数量的条目，入口处统一清洗
func (c Cart) Normalize() {
	for id, qty := range c {
		if qty <= 0 {
			delete(c, id)
		}
	}
}

// CartItem 购物车展示行，价格取当前商品价
type CartItem struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// CartView 购物车展示结果
type CartView struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
