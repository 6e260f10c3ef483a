package services

import (
	"errors"
	"fmt"

	"github.com/Sittipanpee/dessert-site/entity"
	"github.com/Sittipanpee/dessert-site/repository"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List() ([]entity.Menu, error) {
	return s.Repo.List()
}

// ----- Quote -----

type QuoteItemIn struct {
	MenuID     uint            `json:"menuId"`
	Quantity   int             `json:"quantity"`
	Selections map[uint][]uint `json:"selections"` // groupId -> choiceIds
}

type QuoteLine struct {
	MenuID    uint   `json:"menuId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"lineTotal"`
}

// Quote คิดราคาฝั่ง server ด้วยฟังก์ชันเดียวกับที่ cart ฝั่ง client ใช้
// ให้หน้าเว็บขอยอดรวมก่อนยืนยันสั่ง
func (s *MenuService) Quote(items []QuoteItemIn) ([]QuoteLine, int64, error) {
	lines := make([]QuoteLine, 0, len(items))
	var total int64

	for _, it := range items {
		m, err := s.Repo.GetWithOptions(it.MenuID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, fmt.Errorf("%w: menu %d", ErrNotFound, it.MenuID)
			}
			return nil, 0, err
		}

		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		unit := UnitPrice(m, it.Selections)
		lines = append(lines, QuoteLine{
			MenuID:    m.ID,
			Name:      m.Name,
			UnitPrice: unit,
			Quantity:  qty,
			LineTotal: unit * int64(qty),
		})
		total += unit * int64(qty)
	}
	return lines, total, nil
}
