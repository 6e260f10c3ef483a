package entity

type OrderItem struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	OrderID string `gorm:"index" json:"-"`

	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"` // ชื่อ ณ ตอนสั่ง ไม่อ้างเมนูสด
	UnitPrice  int64  `json:"price"`
	Quantity   int    `json:"quantity"`

	Selections []OrderItemSelection `gorm:"foreignKey:OrderItemID" json:"selections,omitempty"`
}
