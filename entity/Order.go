package entity

import (
	"time"
)

const (
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
)

const (
	PaymentPromptPay = "promptpay"
	PaymentCash      = "cash"
)

type Order struct {
	// id รูปแบบ {dayKey}-{queueNumber}-{suffix} → หา order ได้จาก prefix วันเดียว
	ID     string `gorm:"primaryKey" json:"id"`
	DayKey string `gorm:"index" json:"-"`

	QueueNumber int `json:"queueNumber"` // เลขคิวประจำวัน ไม่ซ้ำในวันเดียวกัน

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	// snapshot รายการทั้งหมด — แก้เมนูทีหลังไม่กระทบออเดอร์เก่า
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	TotalPrice      int64  `json:"totalPrice"`
	PaymentMethod   string `json:"paymentMethod"` // promptpay | cash
	PaymentProofUrl string `json:"paymentProofUrl,omitempty"`

	Status    string    `json:"status"` // preparing | ready
	CreatedAt time.Time `json:"createdAt"`
}
