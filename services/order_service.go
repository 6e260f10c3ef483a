package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sittipanpee/dessert-site/entity"
	"github.com/Sittipanpee/dessert-site/repository"
	"github.com/Sittipanpee/dessert-site/utils"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	Queue     *QueueService
	Estimator *QueueEstimator

	now func() time.Time // เทสต์ override ได้
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, queue *QueueService, est *QueueEstimator) *OrderService {
	return &OrderService{DB: db, Repo: repo, Queue: queue, Estimator: est, now: time.Now}
}

// ----- DTOs from Controller -----

type OrderItemSelectionIn struct {
	GroupName  string `json:"groupName"`
	ChoiceName string `json:"choiceName"`
	PriceDelta int64  `json:"priceDelta"`
}

type OrderItemIn struct {
	MenuItemID string                 `json:"menuItemId"`
	Name       string                 `json:"name"`
	Price      int64                  `json:"price"`
	Quantity   int                    `json:"quantity"`
	Selections []OrderItemSelectionIn `json:"selections"`
}

type CreateOrderReq struct {
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Items         []OrderItemIn `json:"items"`
	TotalPrice    int64         `json:"totalPrice"`
	PaymentMethod string        `json:"paymentMethod"`
}

type PatchOrderReq struct {
	Status          *string `json:"status"`
	PaymentProofUrl *string `json:"paymentProofUrl"`
}

// ----- Create -----

// Create ออกเลขคิวแล้วเขียนออเดอร์ของวันนี้
// ยอด totalPrice เชื่อจาก client ตาม behavior เดิมของระบบ ไม่คำนวณซ้ำ
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customerName is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items is required", ErrValidation)
	}
	if req.PaymentMethod != entity.PaymentPromptPay && req.PaymentMethod != entity.PaymentCash {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.PaymentMethod)
	}

	now := s.now()
	day := utils.DayKeyAt(now)

	// serialize ทั้งก้อน: ออกเลข + insert อยู่ใต้ lock เดียว
	// สอง request พร้อมกันจะไม่มีทางได้เลขซ้ำ
	s.Queue.mu.Lock()
	defer s.Queue.mu.Unlock()

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.Queue.issueNumber(tx, day)
		if err != nil {
			return err
		}

		order := entity.Order{
			ID:            utils.NewOrderID(day, n, now),
			DayKey:        day,
			QueueNumber:   n,
			CustomerName:  name,
			CustomerPhone: strings.TrimSpace(req.CustomerPhone),
			TotalPrice:    req.TotalPrice,
			PaymentMethod: req.PaymentMethod,
			Status:        entity.OrderStatusPreparing,
			CreatedAt:     now,
		}
		for _, it := range req.Items {
			item := entity.OrderItem{
				MenuItemID: it.MenuItemID,
				Name:       it.Name,
				UnitPrice:  it.Price,
				Quantity:   it.Quantity,
			}
			for _, sel := range it.Selections {
				item.Selections = append(item.Selections, entity.OrderItemSelection{
					GroupName:  sel.GroupName,
					ChoiceName: sel.ChoiceName,
					PriceDelta: sel.PriceDelta,
				})
			}
			order.Items = append(order.Items, item)
		}

		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ----- Lookup -----

func (s *OrderService) ListByDay(day string) ([]entity.Order, error) {
	if day == "" {
		day = utils.DayKeyAt(s.now())
	}
	return s.Repo.ListByDay(day)
}

// GetByID หา order จาก collection ของวันใน prefix เท่านั้น
func (s *OrderService) GetByID(id string) (*entity.Order, error) {
	day, ok := utils.DayKeyFromOrderID(id)
	if !ok {
		return nil, fmt.Errorf("%w: order %q", ErrNotFound, id)
	}
	o, err := s.Repo.GetInDay(day, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %q", ErrNotFound, id)
		}
		return nil, err
	}
	return o, nil
}

// ----- Patch -----

// Patch แก้ได้แค่ status กับ paymentProofUrl field อื่น immutable
// สั่ง ready ซ้ำได้ (idempotent)
func (s *OrderService) Patch(id string, req *PatchOrderReq) (*entity.Order, error) {
	if req.Status != nil {
		st := *req.Status
		if st != entity.OrderStatusPreparing && st != entity.OrderStatusReady {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, st)
		}
	}

	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.PaymentProofUrl != nil {
		fields["payment_proof_url"] = *req.PaymentProofUrl
	}
	if len(fields) > 0 {
		if _, err := s.Repo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// ----- Queue position -----

type QueuePosition struct {
	QueuesAhead      int `json:"queuesAhead"`
	EstimatedMinutes int `json:"estimatedMinutes"`
}

// QueuePosition นับคิวข้างหน้า + เวลารอโดยประมาณของ order หนึ่งตัว
func (s *OrderService) QueuePosition(id string) (*QueuePosition, error) {
	o, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.ListByDay(o.DayKey)
	if err != nil {
		return nil, err
	}
	ahead := s.Estimator.Ahead(orders, o)

	cfg, err := s.Queue.Config()
	if err != nil {
		return nil, err
	}
	return &QueuePosition{
		QueuesAhead:      ahead,
		EstimatedMinutes: (ahead + 1) * cfg.MinutesPerQueue,
	}, nil
}
