package entity

type OrderItemSelection struct {
	ID          uint `gorm:"primaryKey" json:"-"`
	OrderItemID uint `gorm:"index" json:"-"`

	GroupName  string `json:"groupName"`
	ChoiceName string `json:"choiceName"`
	PriceDelta int64  `json:"priceDelta"` // ส่วนเพิ่มจาก addon; กลุ่ม fixed เป็น 0 เพราะรวมใน unitPrice แล้ว
}
