package services

import (
	"sync"

	"github.com/Sittipanpee/dessert-site/entity"
)

// QueueEstimator จำค่าที่เคยรายงานต่อ order
// poll รอบถัดไปอาจนับได้มากขึ้นชั่วคราว (order ข้างหน้า flip ระหว่าง poll)
// เลยตัดด้วย min(fresh, prev) ให้ตัวเลขฝั่งลูกค้าลดลงอย่างเดียว
type QueueEstimator struct {
	mu   sync.Mutex
	last map[string]int
}

func NewQueueEstimator() *QueueEstimator {
	return &QueueEstimator{last: make(map[string]int)}
}

// Ahead นับออเดอร์ preparing ที่เลขคิวน้อยกว่า target ใน orders ของวันเดียวกัน
// target เป็น ready แล้ว → 0 เสมอ และเลิกจำค่า
func (e *QueueEstimator) Ahead(orders []entity.Order, target *entity.Order) int {
	if target.Status == entity.OrderStatusReady {
		e.Forget(target.ID)
		return 0
	}

	fresh := 0
	for _, o := range orders {
		if o.Status == entity.OrderStatusPreparing && o.QueueNumber < target.QueueNumber {
			fresh++
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if prev, ok := e.last[target.ID]; ok && prev < fresh {
		fresh = prev
	}
	e.last[target.ID] = fresh
	return fresh
}

func (e *QueueEstimator) Forget(orderID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.last, orderID)
}
