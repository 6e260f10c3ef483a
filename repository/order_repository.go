package repository

import (
	"github.com/Sittipanpee/dessert-site/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create เขียน order + items + selections เป็นก้อนเดียวใน tx
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// ListByDay คืนออเดอร์ของวันนั้นเรียงตามเลขคิว
// วันไม่มีออเดอร์ → slice ว่าง ไม่ใช่ error
func (r *OrderRepository) ListByDay(day string) ([]entity.Order, error) {
	orders := make([]entity.Order, 0)
	err := r.DB.
		Preload("Items.Selections").
		Where("day_key = ?", day).
		Order("queue_number ASC").
		Find(&orders).Error
	return orders, err
}

// GetInDay หา order ใน collection ของวันเดียว ไม่ scan วันอื่น
func (r *OrderRepository) GetInDay(day, id string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items.Selections").
		Where("id = ? AND day_key = ?", id, day).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateFields อัปเดตเฉพาะ field ที่ patch ได้ ด้วย per-row UPDATE
// (เลี่ยงการเขียนทับทั้ง collection ของวัน → patch สองตัวพร้อมกันไม่ทับกัน)
func (r *OrderRepository) UpdateFields(id string, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}
